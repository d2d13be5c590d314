// Package excel imports spreadsheet and CSV files into a table.Table.
package excel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datareport/domain/core"
	"datareport/domain/table"
	"datareport/internal"
	apperrors "datareport/internal/errors"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"
)

// Options control how a file is turned into a table.
type Options struct {
	Sheet      string // xlsx sheet; empty selects the first sheet
	HasHeaders bool
}

// DefaultOptions reads the first sheet and treats the first row as headers.
func DefaultOptions() Options {
	return Options{HasHeaders: true}
}

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	opts     Options
	log      *internal.Logger
}

// NewDataReader creates a reader for filePath. The file type is taken from
// the extension; anything other than .csv, .xlsx, .xlsm or .xltx is rejected
// by ReadTable.
func NewDataReader(filePath string, opts Options) *DataReader {
	return &DataReader{
		filePath: filePath,
		fileType: fileType(filePath),
		opts:     opts,
		log:      internal.DefaultLogger.With("excel"),
	}
}

func fileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".xlsx", ".xlsm", ".xltx":
		return "xlsx"
	}
	return ""
}

// ReadTable reads the file into a normalized table with trimmed cells and
// rows of equal width.
func (r *DataReader) ReadTable() (table.Table, error) {
	if r.fileType == "" {
		return table.Table{}, apperrors.ImportFailed(r.filePath, core.ErrUnsupportedFile)
	}
	info, err := os.Stat(r.filePath)
	if err != nil {
		return table.Table{}, apperrors.ImportFailed(r.filePath, err)
	}

	start := time.Now()
	var rows [][]string
	switch r.fileType {
	case "csv":
		rows, err = r.readCSV()
	case "xlsx":
		rows, err = r.readExcel()
	}
	if err != nil {
		return table.Table{}, apperrors.ImportFailed(r.filePath, err)
	}
	if len(rows) == 0 {
		return table.Table{}, apperrors.ImportFailed(r.filePath, fmt.Errorf("%w: file has no rows", core.ErrInsufficientData))
	}

	t := normalize(rows, r.opts.HasHeaders)
	r.log.Debug("%s (%s) read in %.2fms (%d columns, %s data rows)",
		filepath.Base(r.filePath), humanize.Bytes(uint64(info.Size())),
		float64(time.Since(start).Nanoseconds())/1e6, t.Width(), humanize.Comma(int64(t.NumDataRows())))
	return t, nil
}

func (r *DataReader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func (r *DataReader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()
	return readCSV(file)
}

// ReadCSV reads CSV from an arbitrary stream, such as standard input.
func ReadCSV(src io.Reader, hasHeaders bool) (table.Table, error) {
	rows, err := readCSV(src)
	if err != nil {
		return table.Table{}, apperrors.ImportFailed("csv stream", err)
	}
	if len(rows) == 0 {
		return table.Table{}, apperrors.ImportFailed("csv stream", fmt.Errorf("%w: stream has no rows", core.ErrInsufficientData))
	}
	return normalize(rows, hasHeaders), nil
}

func readCSV(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("malformed CSV at line %d: %w", perr.Line, perr.Err)
		}
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return rows, nil
}

// normalize trims cells and pads ragged rows. With a header row the table
// takes the header width; without one the widest row sets it, since
// spreadsheets drop trailing blank cells.
func normalize(rows [][]string, hasHeaders bool) table.Table {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		out[i] = cells
	}
	if hasHeaders {
		out[0] = out[0][:len(rows[0])]
		return table.New(out, true).Normalize()
	}
	return table.New(out, false)
}
