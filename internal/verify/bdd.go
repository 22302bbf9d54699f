package verify

import (
	"fmt"

	"github.com/dalzilio/rudd"

	"github.com/gnoswap-labs/qmc/internal/qm"
)

// Equivalent reports whether the sum of products sol denotes exactly the
// function whose minterms are values. Variable i of the BDD is pattern
// position i, the most significant bit.
func Equivalent(literals int, values []int, sol qm.Solution) (bool, error) {
	if literals == 0 {
		// A single constant minterm: the expression must be non-empty.
		return len(sol) > 0 && Coverage(values, sol) == nil, nil
	}

	bdd, err := rudd.New(literals)
	if err != nil {
		return false, fmt.Errorf("creating bdd: %w", err)
	}

	function := bdd.Not(bdd.Makeset(nil))
	for _, v := range values {
		function = bdd.Or(function, cube(bdd, qm.EncodeMinterm(v, literals)))
	}

	expression := bdd.Not(bdd.Makeset(nil))
	for _, p := range sol {
		if len(p) != literals {
			return false, fmt.Errorf("implicant %q has %d positions, want %d", string(p), len(p), literals)
		}
		expression = bdd.Or(expression, cube(bdd, p))
	}

	diff := bdd.Apply(function, expression, rudd.OPxor)
	if diff == nil {
		return false, fmt.Errorf("comparing bdds over %d variables failed", literals)
	}
	return bdd.Satcount(diff).Sign() == 0, nil
}

// cube returns the conjunction of the literals fixed by p.
func cube(bdd *rudd.BDD, p qm.Pattern) rudd.Node {
	var positive []int
	node := rudd.Node(nil)
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case qm.One:
			positive = append(positive, i)
		case qm.Zero:
			if node == nil {
				node = bdd.NIthvar(i)
			} else {
				node = bdd.Apply(node, bdd.NIthvar(i), rudd.OPand)
			}
		}
	}
	set := bdd.Makeset(positive)
	if node == nil {
		return set
	}
	return bdd.Apply(set, node, rudd.OPand)
}
