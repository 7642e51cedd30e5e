package parser

import (
	"strconv"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet loads a sheet into the workbook model.
//
// Each non-empty cell gets a typed raw value (float64, bool or string) and,
// when the spreadsheet renders it as non-empty text, a display value. The
// sheet bounds cover both the declared dimension and every loaded cell.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rawRows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	displayRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	sheet := models.NewSheet(sheetName)
	for rowIdx, row := range rawRows {
		for colIdx, rawValue := range row {
			if rawValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			cell := models.Cell{Raw: typedValue(cellType, rawValue)}
			if display := cellAt(displayRows, rowIdx, colIdx); display != "" {
				cell.Display = &display
			}
			sheet.Set(rowIdx, colIdx, cell)
		}
	}

	dim, err := f.GetSheetDimension(sheetName)
	if err == nil {
		if declared, ok := ParseRange(dim); ok {
			sheet.Bounds = sheet.Bounds.Union(declared)
		}
	}

	return sheet, nil
}

// typedValue converts a raw cell string according to its stored type.
func typedValue(cellType excelize.CellType, s string) any {
	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return s
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(s)
	default:
		return s
	}
}

// parseValue attempts to parse a string value as a number.
// Returns float64 for numbers or the original string.
func parseValue(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func cellAt(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
