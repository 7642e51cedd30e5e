package exsplit

import (
	"io"
	"log/slog"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
)

func newWorkbook(sheets ...*models.Sheet) *models.Workbook {
	wb := models.NewWorkbook("test.xlsx")
	for _, s := range sheets {
		wb.AddSheet(s)
	}
	return wb
}

// standardWorkbook returns a workbook holding the three required sheets.
func standardWorkbook() *models.Workbook {
	net := models.NewSheet("NetPosition")
	net.Set(0, 0, models.Value("Client"))
	net.Set(0, 1, models.Value("Qty"))
	net.Set(1, 0, models.Value("ACME"))
	net.Set(1, 1, models.Value(0.0))

	nerve := models.NewSheet("NerveFInal")
	nerve.Set(0, 0, models.Value("Code"))
	nerve.Set(1, 0, models.Value("X1"))
	nerve.Set(1, 14, models.Value("b"))
	nerve.Set(1, 28, models.Value("c"))

	combine := models.NewSheet("CombineNerve")
	combine.Set(0, 0, models.Value("A_B__C"))
	combine.Set(0, 1, models.Value("x"))

	return newWorkbook(net, nerve, combine)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
