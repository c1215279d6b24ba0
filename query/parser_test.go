package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComparison(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		wantColumn  string
		wantOp      Operator
		wantLiteral string
	}{
		{"greater equal", "qwe>=qwe", "qwe", OpGreaterEqual, "qwe"},
		{"less equal", "qwe<=qwe", "qwe", OpLessEqual, "qwe"},
		{"not equal", "qwe!=qwe", "qwe", OpNotEqual, "qwe"},
		{"greater", "qwe>qwe", "qwe", OpGreater, "qwe"},
		{"less", "qwe<qwe", "qwe", OpLess, "qwe"},
		{"equal", "qwe=qwe", "qwe", OpEqual, "qwe"},
		{"numeric literal", "age>30", "age", OpGreater, "30"},
		{"greater equal not split at greater", "age>=10", "age", OpGreaterEqual, "10"},
		{"less equal not split at equal", "age<=10", "age", OpLessEqual, "10"},
		{"not equal not split at equal", "id!=2", "id", OpNotEqual, "2"},
		{"spaces around operator", "name = Alice", "name", OpEqual, "Alice"},
		{"inner spaces kept", " first name = Mary Ann ", "first name", OpEqual, "Mary Ann"},
		{"tabs trimmed", "\tage\t>\t30\t", "age", OpGreater, "30"},
		{"split at first occurrence", "note=a=b", "note", OpEqual, "a=b"},
		{"higher precedence wins", "a=b>=c", "a=b", OpGreaterEqual, "c"},
		{"negative literal", "delta<-5", "delta", OpLess, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseComparison(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumn, got.Column)
			assert.Equal(t, tt.wantOp, got.Operator)
			assert.Equal(t, tt.wantLiteral, got.Literal)
			assert.Equal(t, tt.expr, got.Expression())
		})
	}
}

func TestParseComparison_WhitespaceInsensitive(t *testing.T) {
	for _, op := range operatorPrecedence {
		compact := "salary" + op.Symbol() + "50000"
		padded := "  salary \t" + op.Symbol() + "   50000 \n"

		a, err := ParseComparison(compact)
		require.NoError(t, err)
		b, err := ParseComparison(padded)
		require.NoError(t, err)

		assert.Equal(t, a.Column, b.Column, "operator %s", op)
		assert.Equal(t, a.Operator, b.Operator, "operator %s", op)
		assert.Equal(t, a.Literal, b.Literal, "operator %s", op)
		assert.Equal(t, op, a.Operator)
	}
}

func TestParseComparison_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"no operator", "agex100"},
		{"bare column", "name"},
		{"unknown operator", "age??100"},
		{"missing column", ">30"},
		{"missing literal", "age>"},
		{"whitespace column", "  <= 5"},
		{"whitespace literal", "age !=   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseComparison(tt.expr)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrMalformedCondition))
			assert.False(t, errors.Is(err, ErrUnknownAggregationFunction))

			var condErr *ConditionError
			require.True(t, errors.As(err, &condErr))
			assert.Equal(t, KMalformed, condErr.Kind)
			assert.Equal(t, tt.expr, condErr.Expr)
		})
	}
}

func TestParseAggregation(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		wantColumn string
		wantFunc   AggFunc
	}{
		{"avg", "age=avg", "age", AggAvg},
		{"min", "salary=min", "salary", AggMin},
		{"max", "salary=max", "salary", AggMax},
		{"spaces", "  age =  avg ", "age", AggAvg},
		{"spaced column", "net pay=max", "net pay", AggMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAggregation(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumn, got.Column)
			assert.Equal(t, tt.wantFunc, got.Function)
			assert.Equal(t, tt.expr, got.Expression())
		})
	}
}

func TestParseAggregation_Errors(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		wantErr  error
		wantKind Kind
		contains string
	}{
		{"no equals", "age", ErrMalformedCondition, KMalformed, "exactly one"},
		{"empty", "", ErrMalformedCondition, KMalformed, "exactly one"},
		{"missing column", "=avg", ErrMalformedCondition, KMalformed, "column"},
		{"missing function", "age=", ErrMalformedCondition, KMalformed, "function"},
		{"double equals", "age==", ErrMalformedCondition, KMalformed, "found 2"},
		{"two assignments", "age=avg=max", ErrMalformedCondition, KMalformed, "found 2"},
		{"greater equal", "age>=avg", ErrMalformedCondition, KMalformed, `">="`},
		{"not equal", "age!=max", ErrMalformedCondition, KMalformed, `"!="`},
		{"less", "age<min", ErrMalformedCondition, KMalformed, `"<"`},
		{"median", "age=median", ErrUnknownAggregationFunction, KUnknownFunction, "median"},
		{"invalid func", "age=invalid_func", ErrUnknownAggregationFunction, KUnknownFunction, "invalid_func"},
		{"case sensitive", "age=AVG", ErrUnknownAggregationFunction, KUnknownFunction, "AVG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAggregation(tt.expr)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "error %v should wrap %v", err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.contains)

			var condErr *ConditionError
			require.True(t, errors.As(err, &condErr))
			assert.Equal(t, tt.wantKind, condErr.Kind)
			assert.Equal(t, tt.expr, condErr.Expr)
		})
	}
}

func TestOperator_Symbol(t *testing.T) {
	want := map[Operator]string{
		OpGreaterEqual: ">=",
		OpLessEqual:    "<=",
		OpNotEqual:     "!=",
		OpGreater:      ">",
		OpLess:         "<",
		OpEqual:        "=",
	}
	for op, symbol := range want {
		assert.Equal(t, symbol, op.Symbol())
		assert.Equal(t, symbol, op.String())
	}
	assert.Equal(t, "", OpInvalid.Symbol())
	assert.Equal(t, "Operator(0)", OpInvalid.String())
}

func TestConditionError_Message(t *testing.T) {
	_, err := ParseComparison("agex100")
	require.Error(t, err)
	assert.Equal(t, `malformed condition: "agex100": no comparison operator found`, err.Error())

	_, err = ParseAggregation("age=median")
	require.Error(t, err)
	assert.Equal(t, `unknown aggregation function: "age=median": "median" is not one of avg, min, max`, err.Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "MalformedCondition", KMalformed.String())
	assert.Equal(t, "UnknownAggregationFunction", KUnknownFunction.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
