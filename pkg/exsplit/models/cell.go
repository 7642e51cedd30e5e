package models

// Cell pairs a cell's underlying value with its optional display text.
type Cell struct {
	// Raw is the underlying value: nil, float64, string or bool.
	Raw any
	// Display is the formatted text as shown by the spreadsheet, nil if absent.
	Display *string
}

// Value creates a cell with a raw value and no display text.
func Value(raw any) Cell {
	return Cell{Raw: raw}
}

// Displayed creates a cell with both a raw value and display text.
func Displayed(raw any, display string) Cell {
	return Cell{Raw: raw, Display: &display}
}

// DisplayText returns the display text when present and non-empty.
func (c Cell) DisplayText() (string, bool) {
	if c.Display == nil || *c.Display == "" {
		return "", false
	}
	return *c.Display, true
}
