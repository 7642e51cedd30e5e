// Package exsplit splits a workbook into the netPosition, sampleClientmaster
// and MTD CSV outputs.
package exsplit

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
)

// ValueMode selects how cell values are rendered during region extraction.
type ValueMode string

const (
	// ModeFormatted prefers display text and normalizes numbers.
	ModeFormatted ValueMode = "formatted"
	// ModeRaw renders underlying values verbatim.
	ModeRaw ValueMode = "raw"
)

// ExtractionSpec describes one rectangular region of a sheet.
//
// All indexes are 0-based. Rows are read from StartRow down to the last row
// whose ReferenceColumn cell holds data.
type ExtractionSpec struct {
	ColumnStart     int       `yaml:"column_start"`
	ColumnEnd       int       `yaml:"column_end"`
	StartRow        int       `yaml:"start_row"`
	ReferenceColumn int       `yaml:"reference_column"`
	Mode            ValueMode `yaml:"mode"`
}

// Width returns the number of columns in the region.
func (s ExtractionSpec) Width() int {
	return s.ColumnEnd - s.ColumnStart + 1
}

// Validate checks the spec's index invariants.
func (s ExtractionSpec) Validate() error {
	if s.ColumnStart < 0 {
		return fmt.Errorf("column_start must be >= 0, got %d", s.ColumnStart)
	}
	if s.ColumnStart > s.ColumnEnd {
		return fmt.Errorf("column_start (%d) must not exceed column_end (%d)", s.ColumnStart, s.ColumnEnd)
	}
	if s.StartRow < 0 {
		return fmt.Errorf("start_row must be >= 0, got %d", s.StartRow)
	}
	if s.ReferenceColumn < 0 {
		return fmt.Errorf("reference_column must be >= 0, got %d", s.ReferenceColumn)
	}
	switch s.Mode {
	case ModeFormatted, ModeRaw:
	default:
		return fmt.Errorf("invalid mode: %q (must be formatted or raw)", s.Mode)
	}
	return nil
}

// Layout names the source sheet of every artifact and the regions that make
// up sampleClientmaster.
type Layout struct {
	NetPositionSheet  string           `yaml:"net_position_sheet"`
	ClientmasterSheet string           `yaml:"clientmaster_sheet"`
	MTDSheet          string           `yaml:"mtd_sheet"`
	ClientmasterParts []ExtractionSpec `yaml:"clientmaster_parts"`
}

// DefaultLayout returns the standard NetPosition/NerveFInal/CombineNerve layout.
func DefaultLayout() Layout {
	return Layout{
		NetPositionSheet:  "NetPosition",
		ClientmasterSheet: "NerveFInal",
		MTDSheet:          "CombineNerve",
		ClientmasterParts: []ExtractionSpec{
			{ColumnStart: 0, ColumnEnd: 13, StartRow: 0, ReferenceColumn: 0, Mode: ModeFormatted},
			{ColumnStart: 14, ColumnEnd: 27, StartRow: 1, ReferenceColumn: 14, Mode: ModeRaw},
			{ColumnStart: 28, ColumnEnd: 41, StartRow: 1, ReferenceColumn: 28, Mode: ModeRaw},
		},
	}
}

// RequiredSheets returns the distinct sheet names the layout reads, in
// artifact order.
func (l Layout) RequiredSheets() []string {
	var names []string
	seen := make(map[string]bool)
	for _, name := range []string{l.NetPositionSheet, l.ClientmasterSheet, l.MTDSheet} {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Validate checks that every sheet is named and every part is well formed.
func (l Layout) Validate() error {
	if l.NetPositionSheet == "" {
		return fmt.Errorf("net_position_sheet is required")
	}
	if l.ClientmasterSheet == "" {
		return fmt.Errorf("clientmaster_sheet is required")
	}
	if l.MTDSheet == "" {
		return fmt.Errorf("mtd_sheet is required")
	}
	if len(l.ClientmasterParts) == 0 {
		return fmt.Errorf("clientmaster_parts must not be empty")
	}
	for i, part := range l.ClientmasterParts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("clientmaster_parts[%d]: %w", i, err)
		}
	}
	return nil
}

// Options configures a processing pass.
type Options struct {
	// Layout selects sheets and regions. Empty fields take DefaultLayout values.
	Layout Layout
	// Logger receives stage events. Defaults to slog.Default().
	Logger *slog.Logger
	// Progress, if set, is called after each stage with the artifact name
	// and the overall completion percentage.
	Progress func(stage string, percent int)
	// SheetCSV converts a whole sheet to CSV for the MTD artifact.
	// Defaults to parser.SheetToCSV.
	SheetCSV func(*models.Sheet) string
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		Layout: DefaultLayout(),
	}
}
