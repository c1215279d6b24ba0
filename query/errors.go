package query

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCondition is returned when an expression does not match
	// its grammar.
	ErrMalformedCondition = errors.New("malformed condition")

	// ErrUnknownAggregationFunction is returned when an aggregate expression
	// names a function other than avg, min or max.
	ErrUnknownAggregationFunction = errors.New("unknown aggregation function")
)

// Kind classifies a ConditionError.
type Kind uint8

const (
	KMalformed       Kind = iota + 1 // expression does not match the grammar
	KUnknownFunction                 // aggregate function is not supported
)

func (k Kind) String() string {
	switch k {
	case KMalformed:
		return "MalformedCondition"
	case KUnknownFunction:
		return "UnknownAggregationFunction"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ConditionError reports an expression that could not be parsed.
type ConditionError struct {
	Kind Kind
	// Expr is the expression exactly as given by the user.
	Expr   string
	Reason string
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.sentinel(), e.Expr, e.Reason)
}

// Unwrap lets errors.Is match the sentinel for the error's kind.
func (e *ConditionError) Unwrap() error {
	return e.sentinel()
}

func (e *ConditionError) sentinel() error {
	if e.Kind == KUnknownFunction {
		return ErrUnknownAggregationFunction
	}
	return ErrMalformedCondition
}

func malformed(expr, format string, args ...interface{}) error {
	return &ConditionError{Kind: KMalformed, Expr: expr, Reason: fmt.Sprintf(format, args...)}
}

func unknownFunction(expr, name string) error {
	return &ConditionError{
		Kind:   KUnknownFunction,
		Expr:   expr,
		Reason: fmt.Sprintf("%q is not one of avg, min, max", name),
	}
}
