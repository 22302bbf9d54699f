package formatter

import (
	"strings"

	"github.com/samber/lo"

	"github.com/gnoswap-labs/qmc/internal/qm"
)

// Notation controls how literals and products are rendered.
type Notation struct {
	// Complement is appended to a negated variable.
	Complement string `yaml:"complement" json:"complement"`
	// And separates the literals of a product.
	And string `yaml:"and" json:"and"`
	// Or separates the products of a sum.
	Or string `yaml:"or" json:"or"`
	// True renders a product without literals.
	True string `yaml:"true" json:"true"`
}

// DefaultNotation renders expressions like AB'C + D.
var DefaultNotation = Notation{
	Complement: "'",
	And:        "",
	Or:         " + ",
	True:       "1",
}

// withDefaults fills the unset separators that cannot be empty.
func (n Notation) withDefaults() Notation {
	if n.Or == "" {
		n.Or = DefaultNotation.Or
	}
	if n.True == "" {
		n.True = DefaultNotation.True
	}
	return n
}

// VariableName returns the name of the variable at position i, counting
// from the most significant bit: A..Z, then AA, AB, and so on.
func VariableName(i int) string {
	var b []byte
	for i >= 0 {
		b = append(b, byte('A'+i%26))
		i = i/26 - 1
	}
	return string(lo.Reverse(b))
}

// Term renders one implicant as a product of literals.
func Term(p qm.Pattern, n Notation) string {
	n = n.withDefaults()
	literals := make([]string, 0, len(p))
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case qm.One:
			literals = append(literals, VariableName(i))
		case qm.Zero:
			literals = append(literals, VariableName(i)+n.Complement)
		}
	}
	if len(literals) == 0 {
		return n.True
	}
	return strings.Join(literals, n.And)
}

// Expression renders a solution as a sum of products.
func Expression(sol qm.Solution, n Notation) string {
	terms := lo.Map(sol, func(p qm.Pattern, _ int) string {
		return Term(p, n)
	})
	return strings.Join(terms, n.withDefaults().Or)
}

// Expressions renders every alternative solution of res.
func Expressions(res *qm.Result, n Notation) []string {
	return lo.Map(res.Solutions, func(sol qm.Solution, _ int) string {
		return Expression(sol, n)
	})
}
