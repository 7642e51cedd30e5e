// Package models defines the in-memory workbook model consumed by the extractor.
package models

// Workbook is a loaded workbook. It is read-only once built.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string
	// SheetNames lists sheet names in workbook order.
	SheetNames []string
	// Sheets maps sheet name to sheet.
	Sheets map[string]*Sheet
}

// NewWorkbook creates an empty workbook with the given name.
func NewWorkbook(name string) *Workbook {
	return &Workbook{
		Name:   name,
		Sheets: make(map[string]*Sheet),
	}
}

// AddSheet appends a sheet, replacing any sheet with the same name.
func (wb *Workbook) AddSheet(s *Sheet) {
	if _, ok := wb.Sheets[s.Name]; !ok {
		wb.SheetNames = append(wb.SheetNames, s.Name)
	}
	wb.Sheets[s.Name] = s
}

// Sheet returns the named sheet. Names are case-sensitive.
func (wb *Workbook) Sheet(name string) (*Sheet, bool) {
	if wb == nil {
		return nil, false
	}
	s, ok := wb.Sheets[name]
	return s, ok
}
