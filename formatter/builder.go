package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/gnoswap-labs/qmc/internal/qm"
	"github.com/gnoswap-labs/qmc/internal/verify"
)

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	functionStyle   = color.New(color.FgYellow, color.Bold)
	inputStyle      = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
	noStyle         = color.New(color.FgWhite)
)

const reportTemplate = `{{header .Name .Minterms .Variables .Padding -}}
{{primes .Primes .Essentials .Padding -}}
{{solutions .Expressions .MaxLineNumWidth .Padding -}}
{{- if .Verified }}
{{verification .Verification .Padding}}
{{- end }}
`

// ReportData is the input of the report template.
type ReportData struct {
	Name            string
	Minterms        []int
	Variables       []string
	Primes          []string
	Essentials      []string
	Expressions     []string
	Padding         string
	MaxLineNumWidth int
	Verified        bool
	Verification    verify.Report
}

// Report renders res as a human-readable block. A nil rep omits the
// verification footer.
func Report(name string, res *qm.Result, rep *verify.Report, n Notation) string {
	maxLineNumWidth := calculateMaxLineNumWidth(len(res.Solutions))
	data := ReportData{
		Name:     name,
		Minterms: res.Minterms,
		Variables: lo.Times(res.LiteralCount, func(i int) string {
			return VariableName(i)
		}),
		Primes: lo.Map(res.PrimeImplicants, func(p qm.Pattern, _ int) string {
			return fmt.Sprintf("%s (%s)", Term(p, n), string(p))
		}),
		Essentials: lo.Map(res.Essentials, func(p qm.Pattern, _ int) string {
			return Term(p, n)
		}),
		Expressions:     Expressions(res, n),
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
		MaxLineNumWidth: maxLineNumWidth,
	}
	if rep != nil {
		data.Verified = true
		data.Verification = *rep
	}

	funcMap := template.FuncMap{
		"header":       header,
		"primes":       primes,
		"solutions":    solutions,
		"verification": verification,
	}
	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// utils functions used in the text template

func header(name string, minterms []int, variables []string, padding string) string {
	if name == "" {
		name = "function"
	}
	values := lo.Map(minterms, func(v int, _ int) string {
		return fmt.Sprint(v)
	})

	endString := functionStyle.Sprintf("%s\n", name)
	endString += lineStyle.Sprintf("%s--> ", padding[:len(padding)-1])
	endString += inputStyle.Sprintf("minterms: %s", strings.Join(values, ", "))
	if len(variables) > 0 {
		endString += noStyle.Sprintf(" (variables: %s)", strings.Join(variables, ", "))
	}
	endString += "\n"
	endString += lineStyle.Sprintf("%s|\n", padding)
	return endString
}

func primes(primes []string, essentials []string, padding string) string {
	endString := lineStyle.Sprintf("%s= ", padding)
	endString += noStyle.Sprintf("prime implicants: %s\n", strings.Join(primes, ", "))
	if len(essentials) > 0 {
		endString += lineStyle.Sprintf("%s= ", padding)
		endString += noStyle.Sprintf("essential: %s\n", strings.Join(essentials, ", "))
	}
	endString += lineStyle.Sprintf("%s|\n", padding)
	return endString
}

func solutions(expressions []string, maxLineNumWidth int, padding string) string {
	var endString string
	for i, expr := range expressions {
		lineNum := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		endString += lineStyle.Sprintf("%s | ", lineNum)
		endString += suggestionStyle.Sprintf("%s\n", expr)
	}
	endString += lineStyle.Sprintf("%s|", padding)
	return endString
}

func verification(rep verify.Report, padding string) string {
	if rep.OK() {
		endString := lineStyle.Sprintf("%s= ", padding)
		endString += suggestionStyle.Sprintf("verified: %d solution(s) of minimum size %d", len(rep.Solutions), rep.Minimum)
		return endString
	}

	var lines []string
	for i, s := range rep.Solutions {
		if s.Err == nil {
			continue
		}
		line := lineStyle.Sprintf("%s= ", padding)
		line += errorStyle.Sprintf("error: solution %d: %v", i+1, s.Err)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func calculateMaxLineNumWidth(n int) int {
	return len(fmt.Sprintf("%d", n))
}
