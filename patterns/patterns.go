// Package patterns holds the named seed figures and places them on a board.
package patterns

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-patterns/model"
)

// ID identifies a seed pattern. The numeric values double as menu choices.
type ID int

const (
	Pulsar ID = iota + 1
	Gliders
	GliderGun
	QueenBee
)

var (
	ErrUnknownPattern     = errors.New("unknown pattern")
	ErrPatternOutOfBounds = errors.New("pattern does not fit board interior")
)

var names = map[ID]string{
	Pulsar:    "Pulsar",
	Gliders:   "Gliders",
	GliderGun: "Glider Gun",
	QueenBee:  "Queen Bee Shuttle",
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Pattern(%d)", int(id))
}

// Valid reports whether id names a known pattern
func (id ID) Valid() bool {
	_, ok := tables[id]
	return ok
}

// Coord is a (row, column) cell coordinate
type Coord struct {
	Row int
	Col int
}

// All returns every known pattern in menu order
func All() []ID {
	return []ID{Pulsar, Gliders, GliderGun, QueenBee}
}

// lookup returns a copy of the coordinate list for id
func lookup(id ID) ([]Coord, bool) {
	cells, ok := tables[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(cells), true
}

// Bounds returns the smallest rectangle containing every cell of id
func Bounds(id ID) (lo, hi Coord, ok bool) {
	cells, ok := tables[id]
	if !ok || len(cells) == 0 {
		return Coord{}, Coord{}, false
	}
	lo, hi = cells[0], cells[0]
	for _, c := range cells[1:] {
		lo.Row = min(lo.Row, c.Row)
		lo.Col = min(lo.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
	}
	return lo, hi, true
}

// Seed kills every cell of board and marks the cells of id alive. An unknown
// id leaves the board all dead and returns ErrUnknownPattern. A pattern that
// reaches the border of a smaller board leaves it all dead and returns
// ErrPatternOutOfBounds.
func Seed(board *model.Board, id ID) error {
	board.Clear()

	lo, hi, ok := Bounds(id)
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[Seed] pattern id %d", int(id))
	}
	if !board.IsInterior(lo.Row, lo.Col) || !board.IsInterior(hi.Row, hi.Col) {
		return errors.Wrapf(ErrPatternOutOfBounds, "[Seed] %s spans (%d,%d)-(%d,%d) on %dx%d board",
			id, lo.Row, lo.Col, hi.Row, hi.Col, board.Rows(), board.Columns())
	}

	for _, c := range tables[id] {
		board.Set(c.Row, c.Col, model.Alive)
	}
	return nil
}
