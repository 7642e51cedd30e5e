// Package parser loads spreadsheet files into the workbook model.
package parser

import (
	"fmt"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads every sheet of f, in workbook order.
// A sheet that cannot be read fails the whole workbook.
func ReadWorkbook(f *excelize.File, name string) (*models.Workbook, error) {
	wb := models.NewWorkbook(name)
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		wb.AddSheet(sheet)
	}
	return wb, nil
}
