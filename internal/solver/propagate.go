package solver

import (
	"svw.info/gridsolve/internal/candidates"
	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/logger"
)

// Propagate fills, in place, every cell whose candidate set has exactly one
// member, recomputing the table between passes, until a full pass changes
// nothing. Returns the number of digits placed.
//
// This is a naive fixed point over sole candidates, not full constraint
// propagation: it ends with the grid either solved or with every remaining
// empty cell holding zero or at least two candidates. Each pass that loops
// again has placed at least one digit, so at most 81 passes run.
func Propagate(g *domain.Grid) int {
	log := logger.Logger()
	committed := 0
	for round := 1; ; round++ {
		before := *g
		t := candidates.Compute(g)
		placed := 0
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if g[r][c] == 0 && t[r][c].Size() == 1 {
					g[r][c] = t[r][c].Sole()
					placed++
				}
			}
		}
		if *g == before {
			return committed
		}
		committed += placed
		log.Debug().Int("round", round).Int("placed", placed).Msg("propagation pass")
	}
}
