package query

import (
	"fmt"

	"github.com/vegasq/csvcat/table"
)

// Operator is a comparison operator.
type Operator int

const (
	OpInvalid Operator = iota
	OpGreaterEqual // >=
	OpLessEqual    // <=
	OpNotEqual     // !=
	OpGreater      // >
	OpLess         // <
	OpEqual        // =
)

// operatorPrecedence is the order in which operator symbols are searched for.
// Two-character operators come before their one-character prefixes.
var operatorPrecedence = []Operator{
	OpGreaterEqual,
	OpLessEqual,
	OpNotEqual,
	OpGreater,
	OpLess,
	OpEqual,
}

// Symbol returns the operator as written in an expression.
func (o Operator) Symbol() string {
	switch o {
	case OpGreaterEqual:
		return ">="
	case OpLessEqual:
		return "<="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpEqual:
		return "="
	default:
		return ""
	}
}

func (o Operator) String() string {
	if s := o.Symbol(); s != "" {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// AggFunc is an aggregation function.
type AggFunc int

const (
	AggInvalid AggFunc = iota
	AggAvg
	AggMin
	AggMax
)

var aggFuncNames = map[string]AggFunc{
	"avg": AggAvg,
	"min": AggMin,
	"max": AggMax,
}

// String returns the function name, which is also the result column name.
func (f AggFunc) String() string {
	switch f {
	case AggAvg:
		return "avg"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	default:
		return fmt.Sprintf("AggFunc(%d)", int(f))
	}
}

// Operation transforms a table into a new table.
type Operation interface {
	Apply(t *table.Table) (*table.Table, error)
	String() string
}

// Condition is a parsed filter or aggregate expression.
type Condition interface {
	Operation
	// Expression returns the raw text the condition was parsed from.
	Expression() string
}

// Comparison represents column <op> literal
type Comparison struct {
	Column   string
	Operator Operator
	Literal  string

	expr string
}

// Aggregation represents column = func
type Aggregation struct {
	Column   string
	Function AggFunc

	expr string
}

// Expression returns the raw comparison text.
func (c *Comparison) Expression() string { return c.expr }

func (c *Comparison) String() string {
	return fmt.Sprintf("where %s %s %s", c.Column, c.Operator.Symbol(), c.Literal)
}

// Expression returns the raw aggregation text.
func (a *Aggregation) Expression() string { return a.expr }

func (a *Aggregation) String() string {
	return fmt.Sprintf("aggregate %s(%s)", a.Function, a.Column)
}

var (
	_ Condition = (*Comparison)(nil)
	_ Condition = (*Aggregation)(nil)
)
