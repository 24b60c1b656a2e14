package metrics

import (
	"time"

	"github.com/google/uuid"
)

// SearchMetric describes the work done by one top-level search.
type SearchMetric struct {
	Strategy    string
	Depth       int
	Duration    time.Duration
	Nodes       int // States entered by the search, root included
	Evaluations int // Calls to the evaluation function
	Prunes      int // Sibling loops cut short by alpha-beta bounds
}

type MoveMetric struct {
	Step   int
	Agent  int
	Action string
	SearchMetric
}

type GameMetric struct {
	ID         uuid.UUID
	Layout     string
	Winner     string // "pacman", "ghosts" or "" when the move cap is reached
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(strategy string, depth int)
	AddNode()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
}

// Search is single-threaded, so the counters need no synchronization.
type collector struct {
	strategy    string
	depth       int
	startTime   time.Time
	nodes       int
	evaluations int
	prunes      int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth int) {
	*m = collector{
		strategy:  strategy,
		depth:     depth,
		startTime: time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddEvaluation() {
	m.evaluations++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes,
		Evaluations: m.evaluations,
		Prunes:      m.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddEvaluation()                   {}
func (m *dummyCollector) AddPrune()                        {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
