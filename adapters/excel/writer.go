package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"datareport/domain/core"
	"datareport/domain/table"
	apperrors "datareport/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name used when writing a workbook.
const DefaultSheet = "Sheet1"

// WriteCSV writes every row of t, header row included, to dst.
func WriteCSV(dst io.Writer, t table.Table) error {
	w := csv.NewWriter(dst)
	if err := w.WriteAll(t.Rows); err != nil {
		return apperrors.Wrap(err, "failed to write CSV")
	}
	return nil
}

// WriteFile stores t at path as CSV or xlsx, chosen by extension. A
// partially written file is removed on failure.
func WriteFile(path string, t table.Table) (err error) {
	kind := fileType(path)
	if kind == "" {
		return apperrors.WithCode(apperrors.CodeInvalidInput, fmt.Errorf("%w: %s", core.ErrUnsupportedFile, path))
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if kind == "xlsx" {
		return writeWorkbook(path, t)
	}
	file, err := os.Create(path)
	if err != nil {
		return apperrors.Wrapf(err, "failed to create %s", path)
	}
	if err = WriteCSV(file, t); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeWorkbook(path string, t table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return apperrors.Wrap(err, "failed to address row")
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(DefaultSheet, cell, &values); err != nil {
			return apperrors.Wrapf(err, "failed to write row %d", i+1)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return apperrors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
