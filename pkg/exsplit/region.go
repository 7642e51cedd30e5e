package exsplit

import (
	"strings"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/numfmt"
)

// LastDataRow returns the highest row at or after startRow whose refCol cell
// holds data, or startRow-1 when none does.
//
// Every row down to the sheet's last row is examined, so blank gaps in the
// reference column do not end the region. Rows past the last reference value
// are excluded even when other columns hold data there.
func LastDataRow(s *models.Sheet, startRow, refCol int) int {
	last := startRow - 1
	for row := startRow; row <= s.Bounds.MaxRow; row++ {
		cell, ok := s.Cell(row, refCol)
		if ok && hasData(cell) {
			last = row
		}
	}
	return last
}

func hasData(c models.Cell) bool {
	if c.Raw == nil || c.Raw == "" {
		return false
	}
	return strings.TrimSpace(numfmt.Text(c.Raw)) != ""
}

// ExtractRegion returns the described region as text. Every row has
// exactly spec.Width() fields; absent cells are empty strings.
func ExtractRegion(s *models.Sheet, spec ExtractionSpec) ([][]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	render := renderFormatted
	if spec.Mode == ModeRaw {
		render = renderRaw
	}

	last := LastDataRow(s, spec.StartRow, spec.ReferenceColumn)
	grid := make([][]string, 0, max(last-spec.StartRow+1, 0))
	for row := spec.StartRow; row <= last; row++ {
		fields := make([]string, 0, spec.Width())
		for col := spec.ColumnStart; col <= spec.ColumnEnd; col++ {
			cell, ok := s.Cell(row, col)
			if !ok {
				fields = append(fields, "")
				continue
			}
			fields = append(fields, render(cell))
		}
		grid = append(grid, fields)
	}

	return grid, nil
}

// renderFormatted prefers display text, falls back to the raw value, and
// normalizes numbers.
func renderFormatted(c models.Cell) string {
	if text, ok := c.DisplayText(); ok {
		return numfmt.Format(text)
	}
	return numfmt.Format(c.Raw)
}

func renderRaw(c models.Cell) string {
	return numfmt.Text(c.Raw)
}
