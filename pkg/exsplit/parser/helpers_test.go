package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// reopen saves f to memory and opens it again, so reads go through the
// same path as a file on disk.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	f2, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func setCells(t *testing.T, f *excelize.File, sheet string, values map[string]any) {
	t.Helper()
	for cell, v := range values {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			t.Fatalf("SetCellValue(%s, %s) failed: %v", sheet, cell, err)
		}
	}
}
