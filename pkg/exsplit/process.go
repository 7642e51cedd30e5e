package exsplit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/output"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/parser"
)

// Result holds the three artifacts of one successful processing pass.
type Result struct {
	// RunID identifies the pass in logs.
	RunID              string
	NetPosition        models.Artifact
	SampleClientmaster models.Artifact
	MTD                models.Artifact
}

// Artifacts returns the artifacts in processing order.
func (r *Result) Artifacts() []models.Artifact {
	return []models.Artifact{r.NetPosition, r.SampleClientmaster, r.MTD}
}

// Artifact returns the artifact with the given name.
func (r *Result) Artifact(name string) (models.Artifact, bool) {
	for _, a := range r.Artifacts() {
		if a.Name == name {
			return a, true
		}
	}
	return models.Artifact{}, false
}

// stage produces one artifact from its source sheet.
type stage struct {
	name    string
	sheet   string
	percent int
	run     func(*models.Sheet) (string, error)
}

// Process validates wb and builds the netPosition, sampleClientmaster and
// MTD artifacts, in that order.
//
// The pass is all-or-nothing: on any error no Result is returned. Missing
// sheets fail with *MissingSheetError before any extraction; a failing stage
// returns *ExtractionError. ctx is checked between stages.
func Process(ctx context.Context, wb *models.Workbook, opts Options) (*Result, error) {
	if wb == nil {
		return nil, fmt.Errorf("%w: no workbook loaded", ErrMalformedWorkbook)
	}
	opts = opts.withDefaults()
	layout := opts.Layout
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if err := Validate(wb, layout.RequiredSheets()); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run_id", runID, "workbook", wb.Name)

	stages := []stage{
		{
			name:    models.NetPosition,
			sheet:   layout.NetPositionSheet,
			percent: 33,
			run: func(s *models.Sheet) (string, error) {
				return NetPositionCSV(s), nil
			},
		},
		{
			name:    models.SampleClientmaster,
			sheet:   layout.ClientmasterSheet,
			percent: 66,
			run: func(s *models.Sheet) (string, error) {
				return ClientmasterCSV(s, layout.ClientmasterParts)
			},
		},
		{
			name:    models.MTD,
			sheet:   layout.MTDSheet,
			percent: 100,
			run: func(s *models.Sheet) (string, error) {
				return MTDText(opts.SheetCSV(s)), nil
			},
		},
	}

	contents := make(map[string]string, len(stages))
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			logger.Warn("processing cancelled", "stage", st.name)
			return nil, err
		}

		sheet, ok := wb.Sheet(st.sheet)
		if !ok {
			return nil, NewExtractionError(st.sheet, st.name, ErrSheetNotFound)
		}

		logger.Debug("stage started", "stage", st.name, "sheet", st.sheet, "range", parser.FormatRange(sheet.Bounds))
		content, err := st.run(sheet)
		if err != nil {
			logger.Error("stage failed", "stage", st.name, "sheet", st.sheet, "error", err)
			return nil, NewExtractionError(st.sheet, st.name, err)
		}
		contents[st.name] = content
		logger.Info("stage completed", "stage", st.name, "sheet", st.sheet, "bytes", len(content))

		if opts.Progress != nil {
			opts.Progress(st.name, st.percent)
		}
	}

	return &Result{
		RunID:              runID,
		NetPosition:        models.NewArtifact(models.NetPosition, contents[models.NetPosition]),
		SampleClientmaster: models.NewArtifact(models.SampleClientmaster, contents[models.SampleClientmaster]),
		MTD:                models.NewArtifact(models.MTD, contents[models.MTD]),
	}, nil
}

// ClientmasterCSV extracts each part of s and appends the grids row-wise.
// Parts keep their own widths.
func ClientmasterCSV(s *models.Sheet, parts []ExtractionSpec) (string, error) {
	var combined [][]string
	for i, part := range parts {
		grid, err := ExtractRegion(s, part)
		if err != nil {
			return "", fmt.Errorf("part %d: %w", i, err)
		}
		combined = append(combined, grid...)
	}
	return output.ToCSV(combined), nil
}

// MTDText replaces every underscore in csv with two spaces.
func MTDText(csv string) string {
	return strings.ReplaceAll(csv, "_", "  ")
}

// withDefaults fills unset options from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions().Layout
	if o.Layout.NetPositionSheet == "" {
		o.Layout.NetPositionSheet = def.NetPositionSheet
	}
	if o.Layout.ClientmasterSheet == "" {
		o.Layout.ClientmasterSheet = def.ClientmasterSheet
	}
	if o.Layout.MTDSheet == "" {
		o.Layout.MTDSheet = def.MTDSheet
	}
	if o.Layout.ClientmasterParts == nil {
		o.Layout.ClientmasterParts = def.ClientmasterParts
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.SheetCSV == nil {
		o.SheetCSV = parser.SheetToCSV
	}
	return o
}
