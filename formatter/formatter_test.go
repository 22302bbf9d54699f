package formatter

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/qmc/internal/qm"
	"github.com/gnoswap-labs/qmc/internal/verify"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestVariableName(t *testing.T) {
	t.Parallel()
	tests := map[int]string{
		0:   "A",
		3:   "D",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for i, want := range tests {
		assert.Equal(t, want, VariableName(i), "index %d", i)
	}
}

func TestTerm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		pattern  qm.Pattern
		notation Notation
		want     string
	}{
		{"mixed", "1X01", DefaultNotation, "AC'D"},
		{"all complemented", "00", DefaultNotation, "A'B'"},
		{"wildcard only", "XX", DefaultNotation, "1"},
		{"empty pattern", "", DefaultNotation, "1"},
		{"custom notation", "10X", Notation{Complement: "~", And: "&", Or: " | ", True: "T"}, "A&B~"},
		{"custom true", "X", Notation{True: "true"}, "true"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Term(tt.pattern, tt.notation))
		})
	}
}

func TestExpression(t *testing.T) {
	t.Parallel()
	sol := qm.Solution{"X0X0", "X1X1", "XX10"}
	assert.Equal(t, "B'D' + BD + CD'", Expression(sol, DefaultNotation))
	assert.Equal(t, "B!&D! | B&D | C&D!", Expression(sol, Notation{Complement: "!", And: "&", Or: " | "}))
}

func TestExpressions(t *testing.T) {
	t.Parallel()
	res, err := qm.Minimize([]int{0, 1, 2, 5, 6, 7})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"A'B' + BC' + AC",
		"A'C' + B'C + AB",
	}, Expressions(res, DefaultNotation))
}

func TestReport(t *testing.T) {
	t.Parallel()
	res, err := qm.Minimize([]int{0, 2, 5, 6, 7, 8, 10, 12, 13, 14, 15})
	require.NoError(t, err)

	expected := `f
 --> minterms: 0, 2, 5, 6, 7, 8, 10, 12, 13, 14, 15 (variables: A, B, C, D)
  |
  = prime implicants: B'D' (X0X0), CD' (XX10), AD' (1XX0), BD (X1X1), BC (X11X), AB (11XX)
  = essential: B'D', BD
  |
1 | B'D' + BD + CD' + AD'
2 | B'D' + BD + CD' + AB
3 | B'D' + BD + AD' + BC
4 | B'D' + BD + BC + AB
  |
`
	assert.Equal(t, expected, Report("f", res, nil, DefaultNotation))
}

func TestReportWithVerification(t *testing.T) {
	t.Parallel()
	res, err := qm.Minimize([]int{0, 1, 3})
	require.NoError(t, err)

	rep, err := verify.Check(res)
	require.NoError(t, err)

	expected := `function
 --> minterms: 0, 1, 3 (variables: A, B)
  |
  = prime implicants: A' (0X), B (X1)
  = essential: A', B
  |
1 | A' + B
  |
  = verified: 1 solution(s) of minimum size 2
`
	assert.Equal(t, expected, Report("", res, &rep, DefaultNotation))

	res.Solutions = append(res.Solutions, qm.Solution{"0X"})
	rep, err = verify.Check(res)
	require.NoError(t, err)

	out := Report("", res, &rep, DefaultNotation)
	assert.Contains(t, out, "2 | A'\n")
	assert.Contains(t, out, "= error: solution 2: minterm not covered: 3")
	assert.NotContains(t, out, "verified")
}

func TestNewView(t *testing.T) {
	t.Parallel()
	res, err := qm.Minimize([]int{5})
	require.NoError(t, err)

	data, err := json.Marshal(NewView("single", res, nil, DefaultNotation))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "single",
		"minterms": [5],
		"variables": ["A", "B", "C"],
		"prime_implicants": ["101"],
		"essentials": ["101"],
		"cyclic": false,
		"solutions": [{"implicants": ["101"], "expression": "AB'C"}]
	}`, string(data))
}

func TestNewViewReportsFailures(t *testing.T) {
	t.Parallel()
	res, err := qm.Minimize([]int{0, 1, 3})
	require.NoError(t, err)
	res.Solutions = append(res.Solutions, qm.Solution{"0X", "X1", "00"})

	rep, err := verify.Check(res)
	require.NoError(t, err)

	v := NewView("", res, &rep, DefaultNotation)
	require.Len(t, v.Solutions, 2)
	assert.Empty(t, v.Solutions[0].Error)
	assert.Contains(t, v.Solutions[1].Error, "redundant implicant")
	assert.Equal(t, 2, v.Minimum)
}
