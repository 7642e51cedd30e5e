package exsplit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is not an Open XML workbook.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrMalformedWorkbook indicates the input could not be loaded as a workbook.
var ErrMalformedWorkbook = errors.New("malformed workbook")

// ErrSheetNotFound indicates a sheet disappeared after validation.
var ErrSheetNotFound = errors.New("sheet not found")

// MissingSheetError reports required sheets absent from a workbook.
type MissingSheetError struct {
	Sheets []string
}

func (e *MissingSheetError) Error() string {
	return "missing required sheets: " + strings.Join(e.Sheets, ", ")
}

// ExtractionError represents an error while producing one artifact.
type ExtractionError struct {
	SheetName string
	Component string // artifact name: "netPosition", "sampleClientmaster", "mtd"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
