package model

import (
	"fmt"

	"github.com/sheikhrachel/gol-patterns/rules"
)

// Summary tallies the transitions of one generation
type Summary struct {
	Births     int
	Deaths     int
	Survivals  int
	Population int
}

// CountNeighbors counts the living cells in the Moore neighborhood of an
// interior cell.
func (b *Board) CountNeighbors(row, col int) int {
	if !b.IsInterior(row, col) {
		panic(fmt.Sprintf("model: neighbor count for non-interior cell (%d,%d)", row, col))
	}
	count := 0
	for r := row - 1; r <= row+1; r++ {
		base := r * b.columns
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if b.cells[base+c] == Alive {
				count++
			}
		}
	}
	return count
}

// NextGeneration writes the generation following b into next. Only interior
// cells are evaluated; border cells of next are always dead. b is not
// modified.
func (b *Board) NextGeneration(next *Board) Summary {
	if next == b {
		panic("model: next generation must not alias the current board")
	}
	if next.rows != b.rows || next.columns != b.columns {
		panic(fmt.Sprintf("model: next generation %dx%d for %dx%d board",
			next.rows, next.columns, b.rows, b.columns))
	}

	var s Summary
	for row := range b.rows {
		for col := range b.columns {
			idx := row*b.columns + col
			if !b.IsInterior(row, col) {
				next.cells[idx] = Dead
				continue
			}

			t := rules.Apply(b.CountNeighbors(row, col), b.cells[idx] == Alive)
			switch t {
			case rules.Birth:
				s.Births++
			case rules.Survival:
				s.Survivals++
			case rules.Loneliness, rules.Overcrowding:
				s.Deaths++
			}

			if t.Alive() {
				next.cells[idx] = Alive
				s.Population++
			} else {
				next.cells[idx] = Dead
			}
		}
	}
	return s
}

// Advance replaces b with its next generation, using scratch as the write
// buffer.
func (b *Board) Advance(scratch *Board) Summary {
	s := b.NextGeneration(scratch)
	scratch.SnapshotInto(b)
	return s
}
