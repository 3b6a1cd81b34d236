package hint

import (
	"context"
	"fmt"

	"svw.info/gridsolve/internal/candidates"
	"svw.info/gridsolve/internal/domain"
)

// Singles implements a minimal Hinter that suggests sole candidates.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell (row-major) whose candidate set has
// exactly one member.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	t := candidates.Compute(g)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 || t[r][c].Size() != 1 {
				continue
			}
			v := t[r][c].Sole()
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", v),
				Cells:   []domain.CellCoord{{Row: r, Col: c}},
				Digit:   v,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
