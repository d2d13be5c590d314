package coercer

import (
	"strings"

	"datareport/domain/table"
)

// Column is the typed content of one extracted column. Numbers is set for
// Quantitative and Binary columns, Labels for Categorical ones.
type Column struct {
	Type    table.DeclaredType
	Numbers []float64
	Labels  []string
}

// Len is the number of extracted cells.
func (c Column) Len() int {
	if c.Type.IsNumeric() {
		return len(c.Numbers)
	}
	return len(c.Labels)
}

// IsEmpty reports whether nothing was extracted.
func (c Column) IsEmpty() bool {
	return c.Len() == 0
}

// Values returns the cells as coerced values.
func (c Column) Values() []Value {
	out := make([]Value, c.Len())
	for i := range out {
		if c.Type.IsNumeric() {
			out[i] = Value{Number: c.Numbers[i], Type: c.Type}
		} else {
			out[i] = Value{Label: c.Labels[i], Type: c.Type}
		}
	}
	return out
}

func (c *Column) push(cell string) {
	v := Coerce(cell, c.Type)
	if c.Type.IsNumeric() {
		c.Numbers = append(c.Numbers, v.Number)
	} else {
		c.Labels = append(c.Labels, v.Label)
	}
}

func newColumn(typ table.DeclaredType, capacity int) Column {
	c := Column{Type: typ}
	if typ.IsNumeric() {
		c.Numbers = make([]float64, 0, capacity)
	} else {
		c.Labels = make([]string, 0, capacity)
	}
	return c
}

// ResolveColumn maps a selector to a zero-based column index, or -1.
//
// With headers the selector must equal a header exactly; when several headers
// match, the last one wins. Without headers the last space-separated token of
// the selector is read as the index ("col 2" -> 2).
func ResolveColumn(t table.Table, selector string) int {
	idx := -1
	if t.HasHeaders {
		for i, h := range t.Headers() {
			if h == selector {
				idx = i
			}
		}
	} else {
		tokens := strings.Split(selector, " ")
		n, ok := ParseInt(tokens[len(tokens)-1])
		if !ok {
			return -1
		}
		idx = n
	}
	if idx < 0 || idx >= t.Width() {
		return -1
	}
	return idx
}

// GetData extracts one column, skipping the header row, and coerces every
// cell. An unresolvable selector yields an empty column.
func GetData(t table.Table, selector string, typ table.DeclaredType) Column {
	idx := ResolveColumn(t, selector)
	if idx < 0 {
		return newColumn(typ, 0)
	}
	rows := t.DataRows()
	col := newColumn(typ, len(rows))
	for _, row := range rows {
		col.push(cellAt(row, idx))
	}
	return col
}

// GetFullData transposes the table into one column per header-row position,
// skipping the header row and coercing every cell.
func GetFullData(t table.Table, typ table.DeclaredType) []Column {
	width := t.Width()
	rows := t.DataRows()
	cols := make([]Column, width)
	for j := range cols {
		cols[j] = newColumn(typ, len(rows))
	}
	for _, row := range rows {
		for j := 0; j < width; j++ {
			cols[j].push(cellAt(row, j))
		}
	}
	return cols
}

// GetColumns extracts the named columns in order. Selectors that do not
// resolve are skipped.
func GetColumns(t table.Table, selectors []string, typ table.DeclaredType) []Column {
	out := make([]Column, 0, len(selectors))
	for _, s := range selectors {
		if ResolveColumn(t, s) < 0 {
			continue
		}
		out = append(out, GetData(t, s, typ))
	}
	return out
}

// RawColumn returns the uncoerced cells of a column, or nil.
func RawColumn(t table.Table, selector string) []string {
	return GetData(t, selector, table.Categorical).Labels
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
