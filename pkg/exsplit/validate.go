package exsplit

import "github.com/ukaji3/exsplit-go/pkg/exsplit/models"

// MissingSheets returns the names in required that wb does not contain,
// in the order given. Names are matched exactly.
func MissingSheets(wb *models.Workbook, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := wb.Sheet(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Validate returns a *MissingSheetError if any required sheet is absent.
func Validate(wb *models.Workbook, required []string) error {
	if missing := MissingSheets(wb, required); len(missing) > 0 {
		return &MissingSheetError{Sheets: missing}
	}
	return nil
}
