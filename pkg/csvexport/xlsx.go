package csvexport

import (
	"context"
	"errors"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sheet1"

// ErrWorkbookFailed wraps spreadsheet rendering failures.
var ErrWorkbookFailed = errors.New("csvexport: failed to build workbook")

// ExportXLSX writes the same rows/headers as Export into an .xlsx workbook.
// Empty input fails with ErrEmptyData before any side effect.
func (e *Exporter) ExportXLSX(ctx context.Context, rows []Row, filename string, headers []Header) error {
	if len(rows) == 0 {
		return ErrEmptyData
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Join(ErrWorkbookFailed, err)
		}
		if err := f.SetCellValue(xlsxSheet, cell, h.Label); err != nil {
			return errors.Join(ErrWorkbookFailed, err)
		}
	}

	for i, row := range rows {
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return errors.Join(ErrWorkbookFailed, err)
			}
			if err := f.SetCellValue(xlsxSheet, cell, cellValue(row[h.Key])); err != nil {
				return errors.Join(ErrWorkbookFailed, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return errors.Join(ErrWorkbookFailed, err)
	}

	return e.saver.Save(ctx, buf.Bytes(), EnsureExtension(filename, ".xlsx"))
}
