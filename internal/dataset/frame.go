// Package dataset implements the cleaning pipeline applied to an imported
// table before it is analysed.
//
// A DataFrame owns a private copy of its rows. Every operation mutates the
// frame in place and returns it so calls can be chained:
//
//	df.RemoveDuplicates().FillEmpty("Value", "0").Round("Value", 2)
//
// Operations never fail. A column label that does not exist turns the
// operation into a no-op. A DataFrame must not be mutated from more than one
// goroutine at a time.
package dataset

import (
	"encoding/binary"
	"io"
	"math"
	"slices"

	"datareport/adapters/datareadiness/coercer"
	"datareport/domain/stats"
	"datareport/domain/table"
	"datareport/internal"
	"datareport/internal/analysis/descriptive"

	"github.com/cespare/xxhash"
)

// ErrorCell is written where a statistic could not be computed.
const ErrorCell = "#ERROR"

// DataFrame is a mutable table of string cells with column labels.
type DataFrame struct {
	rows       [][]string
	labels     []string
	hasHeaders bool
}

// NewDataFrame copies rows and labels into a new frame. Rows shorter than
// labels are padded with empty cells.
func NewDataFrame(rows [][]string, labels []string) *DataFrame {
	df := &DataFrame{
		rows:       make([][]string, len(rows)),
		labels:     slices.Clone(labels),
		hasHeaders: true,
	}
	for i, row := range rows {
		width := max(len(row), len(labels))
		cp := make([]string, width)
		copy(cp, row)
		df.rows[i] = cp
	}
	return df
}

// FromTable builds a frame from a table's data rows. Labels come from the
// header row, or are the positional "col N" tokens for headerless tables.
func FromTable(t table.Table) *DataFrame {
	df := NewDataFrame(t.DataRows(), t.Labels())
	df.hasHeaders = t.HasHeaders
	return df
}

// Table converts the frame back into a table, restoring the header row when
// the frame has one.
func (df *DataFrame) Table() table.Table {
	rows := make([][]string, 0, len(df.rows)+1)
	if df.hasHeaders {
		rows = append(rows, slices.Clone(df.labels))
	}
	rows = append(rows, df.Rows()...)
	return table.New(rows, df.hasHeaders)
}

// Rows returns a copy of the current rows.
func (df *DataFrame) Rows() [][]string {
	out := make([][]string, len(df.rows))
	for i, row := range df.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Labels returns a copy of the column labels.
func (df *DataFrame) Labels() []string {
	return slices.Clone(df.labels)
}

// Len is the number of rows.
func (df *DataFrame) Len() int {
	return len(df.rows)
}

// Column returns a copy of the cells of one column, or nil for an unknown
// label.
func (df *DataFrame) Column(label string) []string {
	idx := df.columnIndex(label)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(df.rows))
	for i, row := range df.rows {
		out[i] = row[idx]
	}
	return out
}

// columnIndex returns the first column with the given label, or -1.
func (df *DataFrame) columnIndex(label string) int {
	idx := slices.Index(df.labels, label)
	if idx < 0 {
		internal.DefaultLogger.With("dataset").Trace("unknown column %q, skipping", label)
	}
	return idx
}

// RemoveDuplicates keeps the first occurrence of every distinct row.
func (df *DataFrame) RemoveDuplicates() *DataFrame {
	buckets := make(map[uint64][]int, len(df.rows))
	kept := make([][]string, 0, len(df.rows))
	for _, row := range df.rows {
		fp := fingerprint(row)
		dup := false
		for _, k := range buckets[fp] {
			if slices.Equal(kept[k], row) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		buckets[fp] = append(buckets[fp], len(kept))
		kept = append(kept, row)
	}
	df.rows = kept
	return df
}

// fingerprint hashes a row with every cell length-prefixed, so ["a", "b"]
// and ["ab", ""] hash differently.
func fingerprint(row []string) uint64 {
	h := xxhash.New()
	var n [binary.MaxVarintLen64]byte
	for _, cell := range row {
		h.Write(n[:binary.PutUvarint(n[:], uint64(len(cell)))])
		io.WriteString(h, cell)
	}
	return h.Sum64()
}

// RemoveRowsWithEmptyValues drops every row with an empty cell in any
// column.
func (df *DataFrame) RemoveRowsWithEmptyValues() *DataFrame {
	df.rows = slices.DeleteFunc(df.rows, func(row []string) bool {
		return slices.ContainsFunc(row, coercer.IsEmpty)
	})
	return df
}

// FillEmpty writes value into the empty cells of a column.
func (df *DataFrame) FillEmpty(column, value string) *DataFrame {
	idx := df.columnIndex(column)
	if idx < 0 {
		return df
	}
	for _, row := range df.rows {
		if coercer.IsEmpty(row[idx]) {
			row[idx] = value
		}
	}
	return df
}

// FillEmptyStat fills the empty cells of a column with a statistic of its
// numeric cells. The statistic is recomputed for each empty cell from the
// column as it stands, so earlier fills take part in later ones. Cells where
// the statistic is unavailable get ErrorCell.
func (df *DataFrame) FillEmptyStat(column string, s stats.Statistic) *DataFrame {
	idx := df.columnIndex(column)
	if idx < 0 {
		return df
	}
	for _, row := range df.rows {
		if coercer.IsEmpty(row[idx]) {
			row[idx] = df.statCell(idx, s)
		}
	}
	return df
}

// ReplaceWithValue replaces the cells of a column that compare true against
// value with replaceWith.
func (df *DataFrame) ReplaceWithValue(column string, op Operator, value, replaceWith string) *DataFrame {
	idx := df.columnIndex(column)
	if idx < 0 {
		return df
	}
	for _, row := range df.rows {
		if Compare(row[idx], value, op) {
			row[idx] = replaceWith
		}
	}
	return df
}

// ReplaceWithStat replaces the cells of a column that compare true against
// value with a statistic computed once, before any cell changes.
func (df *DataFrame) ReplaceWithStat(column string, op Operator, value string, s stats.Statistic) *DataFrame {
	idx := df.columnIndex(column)
	if idx < 0 {
		return df
	}
	replacement := df.statCell(idx, s)
	for _, row := range df.rows {
		if Compare(row[idx], value, op) {
			row[idx] = replacement
		}
	}
	return df
}

// RemoveRowsWhere drops the rows whose cell in column compares true against
// value.
func (df *DataFrame) RemoveRowsWhere(column string, op Operator, value string) *DataFrame {
	idx := df.columnIndex(column)
	if idx < 0 {
		return df
	}
	df.rows = slices.DeleteFunc(df.rows, func(row []string) bool {
		return Compare(row[idx], value, op)
	})
	return df
}

// Round rewrites a column with decimals digits after the point. Cells that
// do not parse become "NaN". Decimals outside [0, 100] leave the frame
// unchanged.
func (df *DataFrame) Round(column string, decimals int) *DataFrame {
	if decimals < 0 || decimals > 100 {
		return df
	}
	idx := df.columnIndex(column)
	if idx < 0 {
		return df
	}
	for _, row := range df.rows {
		row[idx] = descriptive.FormatFixed(coercer.ParseFloat(row[idx]), decimals)
	}
	return df
}

// statCell renders a statistic over the numeric cells of a column.
func (df *DataFrame) statCell(idx int, s stats.Statistic) string {
	values := make([]float64, 0, len(df.rows))
	for _, row := range df.rows {
		if v := coercer.ParseFloat(row[idx]); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	v, ok := descriptive.Apply(values, s)
	if !ok || math.IsNaN(v) {
		return ErrorCell
	}
	return descriptive.FormatNumber(v)
}
