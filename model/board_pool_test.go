package model

import "testing"

func TestBoardPoolReturnsClearedBoards(t *testing.T) {
	pool := NewBoardPool()

	b := pool.Get(Rows, Columns)
	b.Set(5, 5, Alive)
	b.Set(6, 6, Alive)
	BoardToPool(b, pool)

	for range 3 {
		got := pool.Get(Rows, Columns)
		if got.Rows() != Rows || got.Columns() != Columns {
			t.Fatalf("pooled board is %dx%d", got.Rows(), got.Columns())
		}
		if n := got.CountLiving(); n != 0 {
			t.Fatalf("pooled board has %d living cells", n)
		}
		got.Set(1, 1, Alive)
		pool.Put(got)
	}
}

func TestBoardPoolResizes(t *testing.T) {
	pool := NewBoardPool()
	small := pool.Get(4, 4)
	small.Set(2, 2, Alive)
	pool.Put(small)

	big := pool.Get(10, 12)
	if big.Rows() != 10 || big.Columns() != 12 || big.CountLiving() != 0 {
		t.Fatalf("unexpected pooled board %dx%d with %d living", big.Rows(), big.Columns(), big.CountLiving())
	}
	big.Set(9, 11, Alive)

	mustPanic(t, "tiny", func() { pool.Get(1, 1) })
}

func TestNilPoolAllocates(t *testing.T) {
	var pool *BoardPool
	b := pool.Get(5, 6)
	if b.Rows() != 5 || b.Columns() != 6 {
		t.Fatalf("unexpected board %dx%d", b.Rows(), b.Columns())
	}
	BoardToPool(b, pool)
}
