package formatter

import (
	"github.com/samber/lo"

	"github.com/gnoswap-labs/qmc/internal/qm"
	"github.com/gnoswap-labs/qmc/internal/verify"
)

// View is the JSON form of a minimization result.
type View struct {
	Name            string         `json:"name,omitempty"`
	Minterms        []int          `json:"minterms"`
	Variables       []string       `json:"variables"`
	PrimeImplicants []string       `json:"prime_implicants"`
	Essentials      []string       `json:"essentials"`
	Cyclic          bool           `json:"cyclic"`
	Solutions       []SolutionView `json:"solutions"`
	Minimum         int            `json:"minimum,omitempty"`
	Error           string         `json:"error,omitempty"`
}

type SolutionView struct {
	Implicants []string `json:"implicants"`
	Expression string   `json:"expression"`
	Error      string   `json:"error,omitempty"`
}

// NewView builds the JSON view of res. rep may be nil.
func NewView(name string, res *qm.Result, rep *verify.Report, n Notation) View {
	v := View{
		Name:     name,
		Minterms: res.Minterms,
		Variables: lo.Times(res.LiteralCount, func(i int) string {
			return VariableName(i)
		}),
		PrimeImplicants: patternStrings(res.PrimeImplicants),
		Essentials:      patternStrings(res.Essentials),
		Cyclic:          res.Cyclic,
	}
	for i, sol := range res.Solutions {
		sv := SolutionView{
			Implicants: patternStrings(sol),
			Expression: Expression(sol, n),
		}
		if rep != nil && i < len(rep.Solutions) && rep.Solutions[i].Err != nil {
			sv.Error = rep.Solutions[i].Err.Error()
		}
		v.Solutions = append(v.Solutions, sv)
	}
	if rep != nil {
		v.Minimum = rep.Minimum
	}
	return v
}

func patternStrings(ps []qm.Pattern) []string {
	return lo.Map(ps, func(p qm.Pattern, _ int) string { return string(p) })
}
