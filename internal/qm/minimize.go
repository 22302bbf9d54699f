package qm

import (
	"slices"

	"go.uber.org/zap"
)

// Result is the outcome of one minimization.
type Result struct {
	Minterms        []int
	LiteralCount    int
	PrimeImplicants []Pattern
	// Essentials are the implicants fixed by the reducer, shared by every
	// solution.
	Essentials []Pattern
	// Solutions holds every minimum cover found, all of equal size.
	Solutions []Solution
	// Cyclic is set when the reduced chart was not empty and Petrick's
	// method resolved it.
	Cyclic bool
}

// Option configures a Minimize call.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes per-stage debug logging to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Minimize runs the full pipeline over values, which must be non-empty,
// non-negative, duplicate-free and sorted ascending.
func Minimize(values []int, opts ...Option) (*Result, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	set, err := NewMintermSet(values)
	if err != nil {
		return nil, err
	}
	return MinimizeSet(set, o.logger)
}

// MinimizeSet runs the pipeline over an already validated set.
func MinimizeSet(set *MintermSet, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	literals := set.LiteralCount()

	primes := GeneratePrimes(Partition(Encode(set), literals), literals, logger)
	logger.Debug("prime implicants",
		zap.Int("literals", literals),
		zap.Int("count", len(primes)),
	)

	chart, err := BuildChart(primes, set)
	if err != nil {
		return nil, err
	}

	reducer := NewReducer(chart, logger)
	partial := reducer.Reduce()
	cyclic := !chart.Empty()
	if cyclic {
		logger.Debug("cyclic chart left after reduction",
			zap.Int("rows", len(chart.LiveRows())),
			zap.Int("columns", len(chart.LiveColumns())),
		)
	}

	return &Result{
		Minterms:        set.Values(),
		LiteralCount:    literals,
		PrimeImplicants: primes,
		Essentials:      partial,
		Solutions:       Resolve(chart, partial),
		Cyclic:          cyclic,
	}, nil
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	out := *r
	out.Minterms = slices.Clone(r.Minterms)
	out.PrimeImplicants = slices.Clone(r.PrimeImplicants)
	out.Essentials = slices.Clone(r.Essentials)
	out.Solutions = slices.Clone(r.Solutions)
	for i, sol := range out.Solutions {
		out.Solutions[i] = slices.Clone(sol)
	}
	return &out
}

// Cost is the number of implicants of every solution in r.
func (r *Result) Cost() int {
	if len(r.Solutions) == 0 {
		return 0
	}
	return len(r.Solutions[0])
}
