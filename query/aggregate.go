package query

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vegasq/csvcat/table"
)

const (
	// PlaceholderColumn is the column of the row returned when aggregating
	// an empty table.
	PlaceholderColumn = "result"
	// PlaceholderMessage is the value stored under PlaceholderColumn.
	PlaceholderMessage = "no data to aggregate"
)

// Apply aggregates the table into a single row.
func (a *Aggregation) Apply(t *table.Table) (*table.Table, error) {
	return ApplyAggregate(t, a)
}

// ApplyAggregate computes a over t and returns a one-row table keyed by the
// function name. An empty input yields the placeholder row instead.
func ApplyAggregate(t *table.Table, a *Aggregation) (*table.Table, error) {
	if t.IsEmpty() {
		return table.New([]string{PlaceholderColumn}, []table.Row{
			{PlaceholderColumn: PlaceholderMessage},
		}), nil
	}

	value, err := evaluateAggregate(a, collectValues(t, a.Column))
	if err != nil {
		return nil, err
	}

	name := a.Function.String()
	return table.New([]string{name}, []table.Row{{name: value}}), nil
}

// collectValues returns the non-empty values of column in row order.
func collectValues(t *table.Table, column string) []string {
	return lo.FilterMap(t.Rows(), func(row table.Row, _ int) (string, bool) {
		return row.Lookup(column)
	})
}

// evaluateAggregate dispatches to the function's evaluator. The result is
// float64, string or nil.
func evaluateAggregate(a *Aggregation, values []string) (interface{}, error) {
	switch a.Function {
	case AggAvg:
		return evaluateAvg(values), nil
	case AggMin:
		return evaluateExtreme(values, lo.Min[float64], lo.Min[string]), nil
	case AggMax:
		return evaluateExtreme(values, lo.Max[float64], lo.Max[string]), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAggregationFunction, a.Function)
	}
}

// evaluateAvg averages the values that parse as numbers and ignores the rest.
func evaluateAvg(values []string) interface{} {
	nums := lo.FilterMap(values, func(v string, _ int) (float64, bool) {
		return toFloat64(v)
	})
	if len(nums) == 0 {
		return nil // NULL if no values
	}
	return lo.Sum(nums) / float64(len(nums))
}

// evaluateExtreme picks the min or max of values. The comparison is numeric
// only if every value parses as a number; otherwise all raw strings are
// compared lexicographically.
func evaluateExtreme(values []string, numeric func([]float64) float64, text func([]string) string) interface{} {
	if len(values) == 0 {
		return nil // NULL if no values
	}

	nums, ok := parseAll(values)
	if !ok {
		return text(values)
	}
	return numeric(nums)
}

// parseAll parses every value as a number. It fails on the first value that
// does not parse.
func parseAll(values []string) ([]float64, bool) {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := toFloat64(v)
		if !ok {
			return nil, false
		}
		nums = append(nums, f)
	}
	return nums, true
}
