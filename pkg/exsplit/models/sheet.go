package models

// Range is an inclusive, 0-based cell range.
type Range struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// EmptyRange is the bounding range of a sheet with no cells.
var EmptyRange = Range{MinRow: 0, MaxRow: -1, MinCol: 0, MaxCol: -1}

// Empty reports whether the range covers no cells.
func (r Range) Empty() bool {
	return r.MaxRow < r.MinRow || r.MaxCol < r.MinCol
}

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Range{
		MinRow: min(r.MinRow, o.MinRow),
		MaxRow: max(r.MaxRow, o.MaxRow),
		MinCol: min(r.MinCol, o.MinCol),
		MaxCol: max(r.MaxCol, o.MaxCol),
	}
}

// CellRef addresses a cell by 0-based row and column.
type CellRef struct {
	Row int
	Col int
}

// Sheet is a sparse grid of cells plus its declared bounding range.
type Sheet struct {
	// Name is the sheet name.
	Name string
	// Bounds is the declared bounding range of the sheet.
	Bounds Range
	// Cells holds present cells. Missing keys are empty cells.
	Cells map[CellRef]Cell
}

// NewSheet creates an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:   name,
		Bounds: EmptyRange,
		Cells:  make(map[CellRef]Cell),
	}
}

// Cell returns the cell at (row, col) and whether it exists.
func (s *Sheet) Cell(row, col int) (Cell, bool) {
	c, ok := s.Cells[CellRef{Row: row, Col: col}]
	return c, ok
}

// Set stores a cell and grows Bounds to cover it.
func (s *Sheet) Set(row, col int, c Cell) {
	s.Cells[CellRef{Row: row, Col: col}] = c
	s.Bounds = s.Bounds.Union(Range{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col})
}
