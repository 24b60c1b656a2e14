package game

import "pacman/meta"

type StandardRules struct {
	TimeCost    float64
	FoodPoints  float64
	WinPoints   float64
	LosePoints  float64
	GhostPoints float64
	ScaredMoves int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		TimeCost:    1,
		FoodPoints:  10,
		WinPoints:   500,
		LosePoints:  500,
		GhostPoints: 200,
		ScaredMoves: meta.SCARED_TIME,
	}
}

func (sr *StandardRules) TimePenalty() float64 {
	return sr.TimeCost
}

func (sr *StandardRules) FoodReward() float64 {
	return sr.FoodPoints
}

func (sr *StandardRules) WinReward() float64 {
	return sr.WinPoints
}

func (sr *StandardRules) LosePenalty() float64 {
	return sr.LosePoints
}

func (sr *StandardRules) GhostReward() float64 {
	return sr.GhostPoints
}

func (sr *StandardRules) ScaredTime() int {
	return sr.ScaredMoves
}
