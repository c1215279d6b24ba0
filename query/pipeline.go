package query

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vegasq/csvcat/table"
)

// Pipeline is an ordered list of operations applied one after another.
type Pipeline struct {
	ops []Operation
}

// NewPipeline creates a pipeline running ops in the given order.
func NewPipeline(ops ...Operation) *Pipeline {
	p := &Pipeline{}
	for _, op := range ops {
		p.Add(op)
	}
	return p
}

// BuildPipeline parses the filter and aggregate expressions and returns the
// pipeline that filters first and aggregates second. Empty expressions are
// left out. Any parse error is returned before anything is evaluated.
func BuildPipeline(where, aggregate string) (*Pipeline, error) {
	p := NewPipeline()

	if where != "" {
		cond, err := ParseComparison(where)
		if err != nil {
			return nil, err
		}
		p.Add(cond)
	}

	if aggregate != "" {
		agg, err := ParseAggregation(aggregate)
		if err != nil {
			return nil, err
		}
		p.Add(agg)
	}

	return p, nil
}

// Add appends an operation. Nil operations are ignored.
func (p *Pipeline) Add(op Operation) {
	if op == nil {
		return
	}
	p.ops = append(p.ops, op)
}

// Len returns the number of operations.
func (p *Pipeline) Len() int {
	return len(p.ops)
}

// Operations returns a copy of the operations in run order.
func (p *Pipeline) Operations() []Operation {
	ops := make([]Operation, len(p.ops))
	copy(ops, p.ops)
	return ops
}

// Run applies every operation in order, feeding each one the previous
// result. An empty pipeline returns t unchanged.
func (p *Pipeline) Run(ctx context.Context, t *table.Table) (*table.Table, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("function", "Run").
		Int("operations", len(p.ops)).
		Logger()

	current := t
	for i, op := range p.ops {
		in := current.Len()
		next, err := op.Apply(current)
		if err != nil {
			logger.Error().Err(err).Int("stage", i).Str("operation", op.String()).Msg("operation failed")
			return nil, fmt.Errorf("stage %d (%s): %w", i, op, err)
		}
		logger.Debug().
			Int("stage", i).
			Str("operation", op.String()).
			Int("rows_in", in).
			Int("rows_out", next.Len()).
			Msg("operation applied")
		current = next
	}

	return current, nil
}
