package exsplit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
)

func TestProcess(t *testing.T) {
	result, err := Process(context.Background(), standardWorkbook(), Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.RunID == "" {
		t.Error("Expected a run ID")
	}

	if got := result.NetPosition.Content; got != "Client,Qty\nACME,0" {
		t.Errorf("netPosition = %q", got)
	}

	pad := strings.Repeat(",", 13)
	expected := "Code" + pad + "\nX1" + pad + "\nb" + pad + "\nc" + pad
	if got := result.SampleClientmaster.Content; got != expected {
		t.Errorf("sampleClientmaster = %q, expected %q", got, expected)
	}

	if got := result.MTD.Content; got != "A  B    C,x" {
		t.Errorf("mtd = %q, expected %q", got, "A  B    C,x")
	}

	names := []string{}
	files := []string{}
	for _, a := range result.Artifacts() {
		names = append(names, a.Name)
		files = append(files, a.FileName)
	}
	if !reflect.DeepEqual(names, models.ArtifactNames) {
		t.Errorf("Artifact order = %v", names)
	}
	if !reflect.DeepEqual(files, []string{"netposition.csv", "sampleClientmaster.csv", "MTD.csv"}) {
		t.Errorf("Artifact files = %v", files)
	}

	if a, ok := result.Artifact(models.MTD); !ok || a.Content != result.MTD.Content {
		t.Errorf("Artifact(mtd) = %+v, %v", a, ok)
	}
	if _, ok := result.Artifact("other"); ok {
		t.Error("Expected unknown artifact lookup to fail")
	}
}

func TestProcessClientmasterPartsConcatenate(t *testing.T) {
	nerve := models.NewSheet("NerveFInal")
	for row := 0; row < 5; row++ {
		nerve.Set(row, 0, models.Value(fmt.Sprintf("a%d", row)))
	}
	for row := 1; row <= 3; row++ {
		nerve.Set(row, 14, models.Value(fmt.Sprintf("b%d", row)))
	}
	for row := 1; row <= 7; row++ {
		nerve.Set(row, 28, models.Value(float64(row)))
	}
	wb := newWorkbook(models.NewSheet("NetPosition"), nerve, models.NewSheet("CombineNerve"))

	result, err := Process(context.Background(), wb, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	lines := strings.Split(result.SampleClientmaster.Content, "\n")
	if len(lines) != 15 {
		t.Fatalf("Expected 15 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len(strings.Split(line, ",")); n != 14 {
			t.Errorf("Row %d has %d fields, expected 14", i, n)
		}
	}
	if !strings.HasPrefix(lines[0], "a0,") || !strings.HasPrefix(lines[5], "b1,") || !strings.HasPrefix(lines[8], "1,") || !strings.HasPrefix(lines[14], "7,") {
		t.Errorf("Unexpected part order: %q", lines)
	}
}

func TestProcessVariableWidthParts(t *testing.T) {
	nerve := models.NewSheet("NerveFInal")
	nerve.Set(0, 0, models.Value("x"))
	nerve.Set(0, 5, models.Value("y"))
	wb := newWorkbook(models.NewSheet("NetPosition"), nerve, models.NewSheet("CombineNerve"))

	layout := DefaultLayout()
	layout.ClientmasterParts = []ExtractionSpec{
		{ColumnStart: 0, ColumnEnd: 1, ReferenceColumn: 0, Mode: ModeRaw},
		{ColumnStart: 5, ColumnEnd: 8, ReferenceColumn: 5, Mode: ModeRaw},
	}

	result, err := Process(context.Background(), wb, Options{Layout: layout, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if got := result.SampleClientmaster.Content; got != "x,\ny,,," {
		t.Errorf("sampleClientmaster = %q", got)
	}
}

func TestProcessMissingSheet(t *testing.T) {
	wb := newWorkbook(models.NewSheet("NetPosition"), models.NewSheet("NerveFInal"))

	result, err := Process(context.Background(), wb, Options{Logger: quietLogger()})
	if result != nil {
		t.Error("Expected no result")
	}
	var missing *MissingSheetError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingSheetError, got %v", err)
	}
	if !reflect.DeepEqual(missing.Sheets, []string{"CombineNerve"}) {
		t.Errorf("Expected [CombineNerve], got %v", missing.Sheets)
	}
}

func TestProcessNilWorkbook(t *testing.T) {
	_, err := Process(context.Background(), nil, Options{})
	if !errors.Is(err, ErrMalformedWorkbook) {
		t.Errorf("Expected ErrMalformedWorkbook, got %v", err)
	}
}

func TestProcessSheetVanishes(t *testing.T) {
	wb := standardWorkbook()
	opts := Options{
		Logger: quietLogger(),
		Progress: func(stage string, percent int) {
			if stage == models.NetPosition {
				delete(wb.Sheets, "CombineNerve")
			}
		},
	}

	result, err := Process(context.Background(), wb, opts)
	if result != nil {
		t.Error("Expected no partial result")
	}
	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("Expected *ExtractionError, got %v", err)
	}
	if extractErr.Component != models.MTD || extractErr.SheetName != "CombineNerve" {
		t.Errorf("Unexpected error location: %+v", extractErr)
	}
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound in chain, got %v", err)
	}
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Process(ctx, standardWorkbook(), Options{Logger: quietLogger()})
	if result != nil || !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled and no result, got %v, %v", result, err)
	}
}

func TestProcessProgress(t *testing.T) {
	type step struct {
		stage   string
		percent int
	}
	var steps []step
	opts := Options{
		Logger:   quietLogger(),
		Progress: func(stage string, percent int) { steps = append(steps, step{stage, percent}) },
	}

	if _, err := Process(context.Background(), standardWorkbook(), opts); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	expected := []step{{models.NetPosition, 33}, {models.SampleClientmaster, 66}, {models.MTD, 100}}
	if !reflect.DeepEqual(steps, expected) {
		t.Errorf("Progress = %v, expected %v", steps, expected)
	}
}

func TestProcessCustomSheetCSV(t *testing.T) {
	opts := Options{
		Logger:   quietLogger(),
		SheetCSV: func(s *models.Sheet) string { return "col_1,col_2\n" + s.Name },
	}

	result, err := Process(context.Background(), standardWorkbook(), opts)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if got := result.MTD.Content; got != "col  1,col  2\nCombineNerve" {
		t.Errorf("mtd = %q", got)
	}
}

func TestProcessLogsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	result, err := Process(context.Background(), standardWorkbook(), Options{Logger: logger})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	logs := buf.String()
	if got := strings.Count(logs, "stage completed"); got != 3 {
		t.Errorf("Expected 3 stage completions logged, got %d", got)
	}
	if !strings.Contains(logs, "run_id="+result.RunID) {
		t.Errorf("Expected logs to carry run_id %s", result.RunID)
	}
}

func TestProcessInvalidLayout(t *testing.T) {
	layout := DefaultLayout()
	layout.ClientmasterParts = []ExtractionSpec{{ColumnStart: 4, ColumnEnd: 1, Mode: ModeRaw}}

	_, err := Process(context.Background(), standardWorkbook(), Options{Layout: layout, Logger: quietLogger()})
	if err == nil || !strings.Contains(err.Error(), "clientmaster_parts[0]") {
		t.Errorf("Expected layout error, got %v", err)
	}
}

func TestMTDText(t *testing.T) {
	if got := MTDText("A_B__C"); got != "A  B    C" {
		t.Errorf("MTDText() = %q", got)
	}
}
