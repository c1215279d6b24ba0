package query

import (
	"strings"
)

// ParseComparison parses a filter expression such as "age>=30" or
// "name = Alice".
//
// Operators are searched for in precedence order (>=, <=, !=, >, <, =) and
// the expression is split at the first occurrence of the first operator
// found. Surrounding whitespace is trimmed from both sides. The returned
// error unwraps to ErrMalformedCondition.
func ParseComparison(expr string) (*Comparison, error) {
	op, idx := findOperator(expr)
	if op == OpInvalid {
		return nil, malformed(expr, "no comparison operator found")
	}

	column := strings.TrimSpace(expr[:idx])
	literal := strings.TrimSpace(expr[idx+len(op.Symbol()):])

	if column == "" {
		return nil, malformed(expr, "missing column name before %q", op.Symbol())
	}
	if literal == "" {
		return nil, malformed(expr, "missing value after %q", op.Symbol())
	}

	return &Comparison{
		Column:   column,
		Operator: op,
		Literal:  literal,
		expr:     expr,
	}, nil
}

// ParseAggregation parses an aggregate expression such as "age=avg".
//
// The expression must contain exactly one '='. An unsupported function name
// yields an error that unwraps to ErrUnknownAggregationFunction; every other
// failure unwraps to ErrMalformedCondition.
func ParseAggregation(expr string) (*Aggregation, error) {
	if op, _ := findOperator(expr); op != OpInvalid && op != OpEqual {
		return nil, malformed(expr, "unexpected operator %q, aggregate expressions use %q", op.Symbol(), OpEqual.Symbol())
	}
	if n := strings.Count(expr, OpEqual.Symbol()); n != 1 {
		return nil, malformed(expr, "expected exactly one %q, found %d", OpEqual.Symbol(), n)
	}

	column, name, _ := strings.Cut(expr, OpEqual.Symbol())
	column = strings.TrimSpace(column)
	name = strings.TrimSpace(name)

	if column == "" {
		return nil, malformed(expr, "missing column name")
	}
	if name == "" {
		return nil, malformed(expr, "missing aggregation function")
	}

	fn, ok := aggFuncNames[name]
	if !ok {
		return nil, unknownFunction(expr, name)
	}

	return &Aggregation{
		Column:   column,
		Function: fn,
		expr:     expr,
	}, nil
}

// findOperator returns the first operator, in precedence order, that occurs
// in expr together with its byte offset.
func findOperator(expr string) (Operator, int) {
	for _, op := range operatorPrecedence {
		if idx := strings.Index(expr, op.Symbol()); idx >= 0 {
			return op, idx
		}
	}
	return OpInvalid, -1
}
