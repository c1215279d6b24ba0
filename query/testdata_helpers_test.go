package query

import (
	"testing"

	"github.com/vegasq/csvcat/table"
)

// employeeColumns is the header of the employees fixture
var employeeColumns = []string{"id", "name", "age", "salary"}

// employeesTable returns the four-row employees fixture with string cells,
// exactly as the CSV reader would load it.
func employeesTable(t *testing.T) *table.Table {
	t.Helper()
	return table.New(employeeColumns, []table.Row{
		{"id": "1", "name": "Alice", "age": "30", "salary": "50000"},
		{"id": "2", "name": "Bob", "age": "25", "salary": "45000"},
		{"id": "3", "name": "Charlie", "age": "35", "salary": "55000"},
		{"id": "4", "name": "Diana", "age": "40", "salary": "60000"},
	})
}

// columnTable returns a single-column table holding values in order.
func columnTable(t *testing.T, column string, values ...string) *table.Table {
	t.Helper()
	rows := make([]table.Row, len(values))
	for i, v := range values {
		rows[i] = table.Row{column: v}
	}
	return table.New([]string{column}, rows)
}

// columnValues extracts column from every row of tbl.
func columnValues(t *testing.T, tbl *table.Table, column string) []interface{} {
	t.Helper()
	values := make([]interface{}, 0, tbl.Len())
	for _, row := range tbl.Rows() {
		values = append(values, row[column])
	}
	return values
}

func mustComparison(t *testing.T, expr string) *Comparison {
	t.Helper()
	c, err := ParseComparison(expr)
	if err != nil {
		t.Fatalf("ParseComparison(%q) error = %v", expr, err)
	}
	return c
}

func mustAggregation(t *testing.T, expr string) *Aggregation {
	t.Helper()
	a, err := ParseAggregation(expr)
	if err != nil {
		t.Fatalf("ParseAggregation(%q) error = %v", expr, err)
	}
	return a
}
