package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board buffers between runs
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves an all-dead board with the given dimensions
func (p *BoardPool) Get(rows, columns int) *Board {
	if p == nil {
		return NewBoard(rows, columns)
	}
	b := p.pool.Get().(*Board)
	b.reset(rows, columns)
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	b.Clear()
	p.pool.Put(b)
}

// reset resizes a pooled board and kills every cell
func (b *Board) reset(rows, columns int) {
	checkDimensions(rows, columns)
	b.rows = rows
	b.columns = columns
	if cap(b.cells) < rows*columns {
		b.cells = make([]Cell, rows*columns)
		return
	}
	b.cells = b.cells[:rows*columns]
	clear(b.cells)
}
