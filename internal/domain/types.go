package domain

// Grid is the 9x9 puzzle state. 0 marks an empty cell, 1-9 a placed digit.
// A Grid is a plain value: assignment copies all 81 cells, which is what the
// solver's clone-per-branch discipline relies on.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a forced next move.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Digit   uint8       `json:"digit,omitempty"`
}

// Puzzle is a persisted grid with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Grid      Grid   `json:"grid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
