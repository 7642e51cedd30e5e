package parser

import (
	"strings"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference like $A$1:$D$10, A1:D10 or A1 into a
// 0-based range. An optional sheet prefix (Sheet1!A1:B2) is ignored.
func ParseRange(ref string) (models.Range, bool) {
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.TrimSpace(strings.ReplaceAll(ref, "$", ""))
	if ref == "" {
		return models.EmptyRange, false
	}

	start, end, found := strings.Cut(ref, ":")
	if !found {
		end = start
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.EmptyRange, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.EmptyRange, false
	}

	return models.Range{
		MinRow: min(startRow, endRow) - 1,
		MaxRow: max(startRow, endRow) - 1,
		MinCol: min(startCol, endCol) - 1,
		MaxCol: max(startCol, endCol) - 1,
	}, true
}

// FormatRange renders a 0-based range as an A1-style reference.
func FormatRange(r models.Range) string {
	if r.Empty() {
		return ""
	}
	start, _ := excelize.CoordinatesToCellName(r.MinCol+1, r.MinRow+1)
	end, _ := excelize.CoordinatesToCellName(r.MaxCol+1, r.MaxRow+1)
	return start + ":" + end
}
