package validator

import (
	"context"

	"svw.info/gridsolve/internal/domain"
)

// FastValidator scans the 27 groups with a bitmask per group and reports the
// coordinates of duplicated digits. Grid.IsValid answers yes/no; this exists
// so callers can say which cells are in conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		var seen domain.DigitSet
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			if seen.Has(val) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen = seen.Add(val)
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		var seen domain.DigitSet
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			if seen.Has(val) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen = seen.Add(val)
		}
	}
	// blocks
	for b := 0; b < 9; b++ {
		var seen domain.DigitSet
		for i := 0; i < 9; i++ {
			r, c := domain.BlockToCoord(b, i)
			val := g[r][c]
			if val == 0 {
				continue
			}
			if seen.Has(val) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen = seen.Add(val)
		}
	}
	return len(conf) == 0, conf, nil
}
