package game

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the static description of a board: walls never change during a game.
type Layout struct {
	Name     string
	Width    int
	Height   int
	Walls    Grid
	Food     Grid
	Capsules []Position
	Pacman   Position
	Ghosts   []Position // In text order, top row first
}

var builtinLayouts = map[string]string{
	"testClassic": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%`,
	"minimaxClassic": `
%%%%%%%%%
%.P    G%
% %.%G%%%
%G    %%%
%%%%%%%%%`,
	"trappedClassic": `
%%%%%%%%
%   P G%
%G%%%%%%
%....  %
%%%%%%%%`,
	"smallClassic": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%`,
}

// LoadLayout returns a built-in layout by name, or reads the named file.
func LoadLayout(name string) (*Layout, error) {
	if text, ok := builtinLayouts[name]; ok {
		return ParseLayout(name, text)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load layout %q", name)
	}
	return ParseLayout(name, string(data))
}

// ParseLayout reads a text board where % is a wall, . food, o a capsule, P pacman and G a ghost.
// The first line of text is the top row.
func ParseLayout(name, text string) (*Layout, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, errors.Wrapf(ErrInvalidLayout, "%s: empty", name)
	}
	rows := strings.Split(text, "\n")
	width := len(rows[0])
	height := len(rows)

	l := &Layout{
		Name:   name,
		Width:  width,
		Height: height,
		Walls:  NewGrid(width, height),
		Food:   NewGrid(width, height),
	}

	foundPacman := false
	for r, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidLayout, "%s: row %d has width %d, expected %d", name, r, len(row), width)
		}
		y := height - 1 - r
		for x, glyph := range row {
			p := Position{X: x, Y: y}
			switch glyph {
			case '%':
				l.Walls[x][y] = true
			case '.':
				l.Food[x][y] = true
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				if foundPacman {
					return nil, errors.Wrapf(ErrInvalidLayout, "%s: more than one pacman", name)
				}
				l.Pacman = p
				foundPacman = true
			case 'G':
				l.Ghosts = append(l.Ghosts, p)
			case ' ':
			default:
				return nil, errors.Wrapf(ErrInvalidLayout, "%s: unknown glyph %q at row %d column %d", name, glyph, r, x)
			}
		}
	}
	if !foundPacman {
		return nil, errors.Wrapf(ErrInvalidLayout, "%s: no pacman", name)
	}
	return l, nil
}

func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.X >= l.Width || p.Y < 0 || p.Y >= l.Height {
		return true
	}
	return l.Walls[p.X][p.Y]
}

// LayoutNames lists the built-in layouts.
func LayoutNames() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
