// Package table defines the raw row/column grid every analysis starts from.
package table

import (
	"fmt"
	"strings"
)

// Table is an ordered grid of string cells. When HasHeaders is set the first
// row holds the column labels.
type Table struct {
	Rows       [][]string `json:"rows"`
	HasHeaders bool       `json:"hasHeaders"`
}

// New builds a table from rows.
func New(rows [][]string, hasHeaders bool) Table {
	return Table{Rows: rows, HasHeaders: hasHeaders}
}

// Headers returns the header row, or nil when the table has none.
func (t Table) Headers() []string {
	if !t.HasHeaders || len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns the rows after the header row.
func (t Table) DataRows() [][]string {
	if t.HasHeaders && len(t.Rows) > 0 {
		return t.Rows[1:]
	}
	return t.Rows
}

// NumDataRows is len(DataRows()).
func (t Table) NumDataRows() int {
	return len(t.DataRows())
}

// Width is the number of columns, taken from the first row.
func (t Table) Width() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// IsEmpty reports whether the table has no data rows.
func (t Table) IsEmpty() bool {
	return t.NumDataRows() == 0
}

// Labels returns the header labels, or positional "col N" tokens when the
// table has no header row.
func (t Table) Labels() []string {
	if h := t.Headers(); h != nil {
		out := make([]string, len(h))
		copy(out, h)
		return out
	}
	out := make([]string, t.Width())
	for i := range out {
		out[i] = PositionalLabel(i)
	}
	return out
}

// Normalize pads short rows with "" and truncates long rows so that every row
// matches the width of the first row.
func (t Table) Normalize() Table {
	w := t.Width()
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		fixed := make([]string, w)
		copy(fixed, row)
		rows[i] = fixed
	}
	return Table{Rows: rows, HasHeaders: t.HasHeaders}
}

// Clone deep-copies the table.
func (t Table) Clone() Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return Table{Rows: rows, HasHeaders: t.HasHeaders}
}

// PositionalLabel is the selector for column i of a headerless table.
func PositionalLabel(i int) string {
	return fmt.Sprintf("col %d", i)
}

// DeclaredType is the coercion applied to cells when a column is extracted.
type DeclaredType int

const (
	Categorical DeclaredType = iota
	Quantitative
	Binary
)

func (d DeclaredType) String() string {
	switch d {
	case Quantitative:
		return "Quantitative"
	case Binary:
		return "Binary"
	default:
		return "Categorical"
	}
}

// ParseDeclaredType maps a type name (case-insensitive) to a DeclaredType.
func ParseDeclaredType(s string) (DeclaredType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quantitative":
		return Quantitative, true
	case "binary":
		return Binary, true
	case "categorical":
		return Categorical, true
	}
	return Categorical, false
}

// IsNumeric reports whether extraction yields numbers rather than labels.
func (d DeclaredType) IsNumeric() bool {
	return d == Quantitative || d == Binary
}
