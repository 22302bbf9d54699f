package verify

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/gnoswap-labs/qmc/internal/qm"
)

// SolutionReport holds the outcome of every check on one solution.
type SolutionReport struct {
	Solution qm.Solution
	Err      error
}

// Report summarises the verification of a result.
type Report struct {
	// Minimum is the least cover size over all prime implicants.
	Minimum   int
	Solutions []SolutionReport
}

// OK reports whether every solution passed.
func (r Report) OK() bool {
	return lo.EveryBy(r.Solutions, func(s SolutionReport) bool { return s.Err == nil })
}

// Err joins the failures of all solutions, or returns nil.
func (r Report) Err() error {
	errs := lo.FilterMap(r.Solutions, func(s SolutionReport, _ int) (error, bool) {
		return s.Err, s.Err != nil
	})
	return errors.Join(errs...)
}

// Check verifies each solution of res for coverage, irredundancy, minimum
// cardinality and functional equivalence.
func Check(res *qm.Result) (Report, error) {
	minimum, _, err := MinimumCoverSize(res.PrimeImplicants, res.Minterms)
	if err != nil {
		return Report{}, err
	}

	report := Report{Minimum: minimum}
	for _, sol := range res.Solutions {
		report.Solutions = append(report.Solutions, SolutionReport{
			Solution: sol,
			Err:      checkSolution(res, sol, minimum),
		})
	}
	return report, nil
}

func checkSolution(res *qm.Result, sol qm.Solution, minimum int) error {
	if err := Coverage(res.Minterms, sol); err != nil {
		return err
	}
	if err := Irredundant(res.Minterms, sol); err != nil {
		return err
	}
	if len(sol) != minimum {
		return fmt.Errorf("%w: %d implicants, minimum is %d", ErrNotMinimum, len(sol), minimum)
	}
	eq, err := Equivalent(res.LiteralCount, res.Minterms, sol)
	if err != nil {
		return err
	}
	if !eq {
		return ErrNotEqual
	}
	return nil
}
