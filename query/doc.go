// Package query parses filter and aggregate expressions and evaluates them
// against in-memory tables.
//
// Two expression shapes are supported:
//   - comparisons of the form column<op>literal, where op is one of
//     >=, <=, !=, >, <, =
//   - aggregations of the form column=func, where func is one of avg, min, max
//
// Parsed conditions implement Operation and can be chained in a Pipeline.
//
// # Basic Usage
//
// Filter a table:
//
//	cond, err := query.ParseComparison("age > 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filtered, err := cond.Apply(tbl)
//
// Build and run the standard filter-then-aggregate pipeline:
//
//	p, err := query.BuildPipeline("salary>50000", "age=avg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := p.Run(ctx, tbl)
//
// # Comparison Semantics
//
// A comparison first tries to parse both the cell and the literal as
// float64. When both parse the comparison is numeric, otherwise the raw
// strings are compared (lexicographically for ordering operators). Rows
// where the column is missing or empty never match. Evaluate reports which
// path was taken:
//
//	out := cond.Evaluate(row)
//	if out.Mode == query.ModeString {
//	    // compared as text
//	}
//
// # Aggregation Semantics
//
// avg skips values that do not parse as numbers. min and max compare
// numerically only when every value parses; a single non-numeric value
// switches the whole column to string comparison. Aggregating a table with
// no rows yields a one-row placeholder under the "result" column.
//
// # Errors
//
// Parse failures return a *ConditionError that unwraps to
// ErrMalformedCondition or ErrUnknownAggregationFunction:
//
//	_, err := query.ParseAggregation("age=median")
//	if errors.Is(err, query.ErrUnknownAggregationFunction) {
//	    // ...
//	}
package query
