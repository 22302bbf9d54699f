package verify

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/gnoswap-labs/qmc/internal/qm"
)

const satisfiable = 1

// MinimumCoverSize returns the least number of primes covering every value
// together with one cover of that size.
//
// Each prime is a solver variable and each minterm a clause over the primes
// covering it. A sorting network over the prime literals provides Leq(w),
// which is assumed for increasing w until the problem becomes satisfiable.
func MinimumCoverSize(primes []qm.Pattern, values []int) (int, []qm.Pattern, error) {
	c := logic.NewCCap(len(primes))
	lits := make([]z.Lit, len(primes))
	for i := range primes {
		lits[i] = c.Lit()
	}
	cs := c.CardSort(lits)

	g := gini.New()
	c.ToCnf(g)
	for _, v := range values {
		n := 0
		for i, p := range primes {
			if p.Covers(v) {
				g.Add(lits[i])
				n++
			}
		}
		if n == 0 {
			return 0, nil, fmt.Errorf("%w: %d", ErrUncovered, v)
		}
		g.Add(z.LitNull)
	}

	for w := 0; w <= cs.N(); w++ {
		g.Assume(cs.Leq(w))
		if g.Solve() != satisfiable {
			continue
		}
		var cover []qm.Pattern
		for i, m := range lits {
			if g.Value(m) {
				cover = append(cover, primes[i])
			}
		}
		return w, cover, nil
	}
	return 0, nil, fmt.Errorf("%w: no cover exists", ErrUncovered)
}
