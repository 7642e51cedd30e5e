package parser

import (
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/numfmt"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/output"
)

// SheetToCSV renders the whole bounding range of a sheet as CSV.
// Cells show their display text when present, otherwise their raw value.
// Blank rows inside the range are kept.
func SheetToCSV(s *models.Sheet) string {
	if s == nil || s.Bounds.Empty() {
		return ""
	}

	b := s.Bounds
	grid := make([][]string, 0, b.MaxRow-b.MinRow+1)
	for row := b.MinRow; row <= b.MaxRow; row++ {
		fields := make([]string, 0, b.MaxCol-b.MinCol+1)
		for col := b.MinCol; col <= b.MaxCol; col++ {
			cell, ok := s.Cell(row, col)
			if !ok {
				fields = append(fields, "")
				continue
			}
			if text, ok := cell.DisplayText(); ok {
				fields = append(fields, text)
			} else {
				fields = append(fields, numfmt.Text(cell.Raw))
			}
		}
		grid = append(grid, fields)
	}

	return output.ToCSV(grid)
}
