package life

import (
	"lifegrid/internal/core"

	"golang.org/x/sync/errgroup"
)

// CountLiveNeighbors returns how many of the eight cells surrounding (x, y)
// are alive. Neighbours wrap across both edges of the grid.
func CountLiveNeighbors(g *core.Grid, x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			if g.Alive(nx, ny) {
				neighbors++
			}
		}
	}
	return neighbors
}

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

type rowStats struct {
	live   int
	births int
	deaths int
}

func (s *rowStats) add(o rowStats) {
	s.live += o.live
	s.births += o.births
	s.deaths += o.deaths
}

// stepRows writes rows [y0, y1) of the next generation into nxt, reading
// only from cur.
func stepRows(cur, nxt *core.Grid, y0, y1 int) rowStats {
	var s rowStats
	for y := y0; y < y1; y++ {
		for x := 0; x < cur.W; x++ {
			alive := cur.Alive(x, y)
			next := NextState(alive, CountLiveNeighbors(cur, x, y))
			nxt.Put(x, y, next)
			switch {
			case next && !alive:
				s.births++
			case !next && alive:
				s.deaths++
			}
			if next {
				s.live++
			}
		}
	}
	return s
}

// advance computes the generation after cur into nxt. With more than one
// worker the rows are split into contiguous bands, each owned by a single
// goroutine; all of them finish before advance returns.
func advance(cur, nxt *core.Grid, workers int) rowStats {
	if workers <= 1 || cur.H < 2 {
		return stepRows(cur, nxt, 0, cur.H)
	}
	workers = min(workers, cur.H)
	rowsPerWorker := (cur.H + workers - 1) / workers
	parts := make([]rowStats, workers)

	var eg errgroup.Group
	for i := range workers {
		startRow := i * rowsPerWorker
		if startRow >= cur.H {
			break
		}
		endRow := min(startRow+rowsPerWorker, cur.H)
		eg.Go(func() error {
			parts[i] = stepRows(cur, nxt, startRow, endRow)
			return nil
		})
	}
	// Workers never fail; Wait is the join point.
	_ = eg.Wait()

	var total rowStats
	for _, p := range parts {
		total.add(p)
	}
	return total
}
