package model

import (
	"crypto/md5"
	"fmt"
)

// Reference board dimensions
const (
	Rows    = 24
	Columns = 44
)

// Cell is the state of a single board position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Position addresses a cell by row and column
type Position struct {
	Row int
	Col int
}

// Board is a fixed-size grid of cells stored row-major
type Board struct {
	rows    int
	columns int
	cells   []Cell
}

// NewBoard creates an all-dead board with the given dimensions. A board
// smaller than 3x3 has no interior cell and is rejected.
func NewBoard(rows, columns int) *Board {
	checkDimensions(rows, columns)
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
}

func checkDimensions(rows, columns int) {
	if rows < 3 || columns < 3 {
		panic(fmt.Sprintf("model: board %dx%d has no interior", rows, columns))
	}
}

// New creates an all-dead board with the reference dimensions
func New() *Board {
	return NewBoard(Rows, Columns)
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns
func (b *Board) Columns() int {
	return b.columns
}

// InBounds reports whether (row, col) addresses a cell of the board
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// IsInterior reports whether the full Moore neighborhood of (row, col) lies
// inside the board.
func (b *Board) IsInterior(row, col int) bool {
	return row >= 1 && row < b.rows-1 && col >= 1 && col < b.columns-1
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("model: cell (%d,%d) outside %dx%d board", row, col, b.rows, b.columns))
	}
	return row*b.columns + col
}

// Get returns the state of a cell
func (b *Board) Get(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// Set sets the state of a cell
func (b *Board) Set(row, col int, c Cell) {
	b.cells[b.index(row, col)] = c
}

// Clear kills every cell
func (b *Board) Clear() {
	clear(b.cells)
}

// SnapshotInto copies every cell of b into target. Both boards must share
// dimensions.
func (b *Board) SnapshotInto(target *Board) {
	if target.rows != b.rows || target.columns != b.columns {
		panic(fmt.Sprintf("model: snapshot %dx%d into %dx%d",
			b.rows, b.columns, target.rows, target.columns))
	}
	copy(target.cells, b.cells)
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := NewBoard(b.rows, b.columns)
	b.SnapshotInto(c)
	return c
}

// CountLiving returns the total number of living cells
func (b *Board) CountLiving() (count int) {
	for _, c := range b.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// livingCells lists the living cells in row-major order
func (b *Board) livingCells() []Position {
	var out []Position
	for i, c := range b.cells {
		if c == Alive {
			out = append(out, Position{Row: i / b.columns, Col: i % b.columns})
		}
	}
	return out
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.columns != other.columns {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the board state
func (b *Board) Hash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
