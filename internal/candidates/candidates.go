// Package candidates computes, for every empty cell, the digits still
// consistent with that cell's row, column and block.
package candidates

import "svw.info/gridsolve/internal/domain"

// Table holds one candidate set per cell. Filled cells carry the empty set.
type Table [9][9]domain.DigitSet

// Compute derives the candidate table for a grid snapshot. Each of the three
// group families is scanned independently and composed by intersection: a
// cell ends up with row-missing ∩ column-missing ∩ block-missing.
func Compute(g *domain.Grid) Table {
	var t Table
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			t[r][c] = domain.FullDigitSet
		}
	}

	rows := g.Rows()
	for r := 0; r < 9; r++ {
		missing := missingDigits(rows[r])
		for c := 0; c < 9; c++ {
			if rows[r][c] == 0 {
				t[r][c] = t[r][c].Intersect(missing)
			} else {
				t[r][c] = 0
			}
		}
	}

	cols := g.Columns()
	for c := 0; c < 9; c++ {
		missing := missingDigits(cols[c])
		for r := 0; r < 9; r++ {
			if cols[c][r] == 0 {
				t[r][c] = t[r][c].Intersect(missing)
			}
		}
	}

	blocks := g.Blocks()
	for b := 0; b < 9; b++ {
		missing := missingDigits(blocks[b])
		for i := 0; i < 9; i++ {
			if blocks[b][i] == 0 {
				r, c := domain.BlockToCoord(b, i)
				t[r][c] = t[r][c].Intersect(missing)
			}
		}
	}
	return t
}

func missingDigits(group [9]uint8) domain.DigitSet {
	missing := domain.FullDigitSet
	for _, v := range group {
		if v != 0 {
			missing = missing.Remove(v)
		}
	}
	return missing
}

// MinPositiveSize returns the smallest non-zero candidate count over all
// empty cells of g. ok is false when every empty cell has an empty set, i.e.
// the grid offers no move at all.
func (t *Table) MinPositiveSize(g *domain.Grid) (min int, ok bool) {
	min = 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			if n := t[r][c].Size(); n > 0 && n < min {
				min = n
			}
		}
	}
	return min, min < 10
}

// FirstOfSize returns the first cell in row-major order whose candidate set
// has exactly n digits.
func (t *Table) FirstOfSize(n int) (domain.CellCoord, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if t[r][c].Size() == n {
				return domain.CellCoord{Row: r, Col: c}, true
			}
		}
	}
	return domain.CellCoord{}, false
}
