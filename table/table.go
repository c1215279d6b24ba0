// Package table defines the in-memory tabular data shared by the reader,
// query and output packages.
//
// A Table keeps its column order separately from its rows so that output can
// follow header order even though each Row is a map. Tables are treated as
// immutable once built: operations produce new tables and never write to the
// rows of their input.
package table

import (
	"fmt"
	"strconv"
)

// Row maps a column name to a cell value.
//
// Rows produced by the reader hold strings only. Aggregation results may hold
// float64, string or nil.
type Row map[string]interface{}

// Table is an ordered sequence of rows with a shared column set.
type Table struct {
	columns []string
	rows    []Row
}

// New creates a table with the given columns and rows.
//
// The column slice is copied; rows are kept as given.
func New(columns []string, rows []Row) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	if rows == nil {
		rows = []Row{}
	}
	return &Table{columns: cols, rows: rows}
}

// Empty returns a table with the given columns and no rows.
func Empty(columns []string) *Table {
	return New(columns, nil)
}

// Columns returns a copy of the column names in header order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Rows returns the rows in order. Callers must not modify them.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.columns {
		if col == name {
			return true
		}
	}
	return false
}

// WithRows returns a new table with the same columns and the given rows.
func (t *Table) WithRows(rows []Row) *Table {
	return New(t.columns, rows)
}

// Lookup returns the string form of a cell and whether it holds a usable
// value. Missing columns, nil values and empty strings are all reported as
// absent.
func (r Row) Lookup(column string) (string, bool) {
	v, ok := r[column]
	if !ok || v == nil {
		return "", false
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		s = fmt.Sprintf("%v", val)
	}
	if s == "" {
		return "", false
	}
	return s, true
}
