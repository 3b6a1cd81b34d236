package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/gridsolve/internal/candidates"
	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/ports"
	"svw.info/gridsolve/logger"
)

// ErrExhausted reports that the search ran out of branches without reaching a
// filled, rule-valid grid.
var ErrExhausted = errors.New("search exhausted: no consistent assignment found")

// Searcher combines fixed-point propagation with recursive backtracking over
// the most constrained cell. Every branch works on its own clone, so a failed
// branch never disturbs the grid of its parent frame.
type Searcher struct{}

func NewSearcher() *Searcher { return &Searcher{} }

// Solve solves g in place and returns it. On failure g keeps whatever
// propagation managed to fill in and ErrExhausted is returned.
func (s *Searcher) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	log := logger.Logger()
	nodes := 0
	s.search(g, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !g.IsFilled() || !g.IsValid() {
		return nil, st, ErrExhausted
	}
	log.Debug().Int("nodes", nodes).Dur("took", st.Duration).Msg("search done")
	return g, st, nil
}

// search runs one frame: propagate, then, if the grid is still open, branch
// over the candidates of the first row-major cell with the fewest options.
// Recursion depth is bounded by the number of empty cells.
func (s *Searcher) search(g *domain.Grid, nodes *int) {
	Propagate(g)
	if g.IsFilled() {
		return
	}

	t := candidates.Compute(g)
	min, ok := t.MinPositiveSize(g)
	if !ok {
		// every empty cell is out of options; the branch is dead
		return
	}
	cell, _ := t.FirstOfSize(min)

	for _, v := range t[cell.Row][cell.Col].Digits() {
		*nodes++
		clone := g.Clone()
		clone[cell.Row][cell.Col] = v
		s.search(&clone, nodes)
		if clone.IsFilled() && clone.IsValid() {
			*g = clone
			return
		}
	}
}
