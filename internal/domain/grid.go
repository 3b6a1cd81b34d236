package domain

// BlockToCoord maps a block index g (0-8, row-major over the 3x3 meta-grid)
// and a within-block index i (0-8, row-major) to grid coordinates. The
// mapping is a bijection over the 81 (g, i) pairs.
func BlockToCoord(g, i int) (row, col int) {
	return i/3 + 3*(g/3), i%3 + 3*(g%3)
}

// Rows returns the nine rows of the grid.
func (g *Grid) Rows() [9][9]uint8 {
	return [9][9]uint8(*g)
}

// Columns returns the transpose of the grid.
func (g *Grid) Columns() [9][9]uint8 {
	var out [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[c][r] = g[r][c]
		}
	}
	return out
}

// Blocks returns the nine 3x3 blocks, each flattened row-major, indexed
// row-major over the meta-grid.
func (g *Grid) Blocks() [9][9]uint8 {
	var out [9][9]uint8
	for b := 0; b < 9; b++ {
		for i := 0; i < 9; i++ {
			r, c := BlockToCoord(b, i)
			out[b][i] = g[r][c]
		}
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() Grid {
	return *g
}

// IsFilled reports whether every cell holds a digit. A filled grid is not
// necessarily valid.
func (g *Grid) IsFilled() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether no group breaks the rules: in every row, column and
// block the number of digits 1-9 absent from the group must equal the number
// of empty cells, which holds exactly when the placed digits are pairwise
// distinct.
func (g *Grid) IsValid() bool {
	for _, view := range [][9][9]uint8{g.Rows(), g.Columns(), g.Blocks()} {
		for _, group := range view {
			missing := FullDigitSet
			zeros := 0
			for _, v := range group {
				if v == 0 {
					zeros++
					continue
				}
				missing = missing.Remove(v)
			}
			if missing.Size() != zeros {
				return false
			}
		}
	}
	return true
}
