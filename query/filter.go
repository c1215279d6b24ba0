package query

import (
	"cmp"
	"errors"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/vegasq/csvcat/table"
)

// CompareMode records which comparison path evaluated a row.
type CompareMode int

const (
	// ModeSkipped means the row had no usable value for the column.
	ModeSkipped CompareMode = iota
	// ModeNumeric means both sides parsed as numbers.
	ModeNumeric
	// ModeString means at least one side was not a number and the raw
	// strings were compared.
	ModeString
)

func (m CompareMode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeString:
		return "string"
	default:
		return "skipped"
	}
}

// Outcome is the result of evaluating a comparison against one row.
type Outcome struct {
	Match bool
	Mode  CompareMode
}

// Evaluate compares the row's cell against the literal.
func (c *Comparison) Evaluate(row table.Row) Outcome {
	value, ok := row.Lookup(c.Column)
	if !ok {
		return Outcome{Mode: ModeSkipped}
	}

	left, leftIsNum := toFloat64(value)
	right, rightIsNum := toFloat64(c.Literal)
	if leftIsNum && rightIsNum {
		return Outcome{Match: compareOrdered(left, c.Operator, right), Mode: ModeNumeric}
	}

	return Outcome{Match: compareOrdered(value, c.Operator, c.Literal), Mode: ModeString}
}

// Apply returns the rows matching the comparison, in their original order.
func (c *Comparison) Apply(t *table.Table) (*table.Table, error) {
	return ApplyFilter(t, c)
}

// ApplyFilter applies a comparison to every row of t.
func ApplyFilter(t *table.Table, c *Comparison) (*table.Table, error) {
	if c == nil {
		return t, nil
	}

	filtered := lo.Filter(t.Rows(), func(row table.Row, _ int) bool {
		return c.Evaluate(row).Match
	})

	return t.WithRows(filtered), nil
}

// toFloat64 parses s as a float64. Values too large for float64 parse as
// infinity rather than failing.
func toFloat64(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// compareOrdered applies operator to two values of the same ordered type.
// Strings are compared byte-wise, which for UTF-8 is code point order.
func compareOrdered[T cmp.Ordered](left T, operator Operator, right T) bool {
	switch operator {
	case OpEqual:
		return left == right
	case OpNotEqual:
		return left != right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}
