package exsplit

import (
	"math"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/numfmt"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/output"
)

// NetPositionCSV serializes the whole bounding range of s. No rows are
// dropped; zero always renders as "0".
func NetPositionCSV(s *models.Sheet) string {
	return output.ToCSV(netPositionGrid(s))
}

func netPositionGrid(s *models.Sheet) [][]string {
	b := s.Bounds
	if b.Empty() {
		return nil
	}

	grid := make([][]string, 0, b.MaxRow-b.MinRow+1)
	for row := b.MinRow; row <= b.MaxRow; row++ {
		fields := make([]string, 0, b.MaxCol-b.MinCol+1)
		for col := b.MinCol; col <= b.MaxCol; col++ {
			cell, ok := s.Cell(row, col)
			if !ok {
				fields = append(fields, "")
				continue
			}
			fields = append(fields, netPositionText(cell.Raw, col == b.MaxCol))
		}
		grid = append(grid, fields)
	}
	return grid
}

// netPositionText renders one NetPosition value. The last column skips the
// fixed-point rule for large magnitudes and only snaps near-integers.
func netPositionText(v any, lastColumn bool) string {
	f, ok := v.(float64)
	if !ok {
		return numfmt.Text(v)
	}
	if f == 0 {
		return "0"
	}
	if !lastColumn && math.Abs(f) >= numfmt.FixedThreshold {
		return numfmt.FixedZero(f)
	}
	if s, ok := numfmt.Snap(f); ok {
		return s
	}
	return numfmt.Text(f)
}
