package exsplit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/parser"
	"github.com/xuri/excelize/v2"
)

// supportedExtensions are the Open XML workbook types excelize can read.
var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Open loads a workbook file into memory.
func Open(path string) (*models.Workbook, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWorkbook, err)
	}
	defer f.Close()

	return readWorkbook(f, filepath.Base(path))
}

// OpenReader loads a workbook from r. name is used for the workbook name and
// the file type check.
func OpenReader(r io.Reader, name string) (*models.Workbook, error) {
	if err := checkExtension(name); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWorkbook, err)
	}
	defer f.Close()

	return readWorkbook(f, name)
}

// ExtractFile loads the workbook at path and processes it.
func ExtractFile(ctx context.Context, path string, opts Options) (*Result, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Process(ctx, wb, opts)
}

func readWorkbook(f *excelize.File, name string) (*models.Workbook, error) {
	wb, err := parser.ReadWorkbook(f, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWorkbook, err)
	}
	return wb, nil
}

func checkExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if supportedExtensions[ext] {
		return nil
	}
	if ext == ".xls" {
		return fmt.Errorf("%w: legacy .xls workbooks must be saved as .xlsx", ErrUnsupportedFormat)
	}
	return fmt.Errorf("%w: %q (expected .xlsx or .xlsm)", ErrUnsupportedFormat, filepath.Base(name))
}

// FormatFileSize renders a byte count as Bytes, KB, MB or GB with at most
// two decimals.
func FormatFileSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	v = float64(int64(v*100+0.5)) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
