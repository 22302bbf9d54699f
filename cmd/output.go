package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/qmc/formatter"
	"github.com/gnoswap-labs/qmc/minimize"
)

type outputOptions struct {
	json     bool
	path     string
	notation formatter.Notation
}

// printOutcomes writes every outcome as a text report or as a JSON array,
// to the output path when set and to cmd's output otherwise.
func printOutcomes(cmd *cobra.Command, outcomes []minimize.Outcome, opts outputOptions) error {
	var w io.Writer = cmd.OutOrStdout()
	if opts.path != "" {
		f, err := os.Create(opts.path)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if opts.json {
		views := make([]formatter.View, 0, len(outcomes))
		for _, out := range outcomes {
			views = append(views, viewOf(out, opts.notation))
		}
		d, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling results to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(d))
		return err
	}

	var b strings.Builder
	for _, out := range outcomes {
		if out.Result == nil {
			fmt.Fprintf(&b, "error: %s: %v\n\n", displayName(out.Function), out.Err)
			continue
		}
		b.WriteString(formatter.Report(out.Function.Name, out.Result, out.Report, opts.notation))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func viewOf(out minimize.Outcome, n formatter.Notation) formatter.View {
	var v formatter.View
	if out.Result != nil {
		v = formatter.NewView(out.Function.Name, out.Result, out.Report, n)
	} else {
		v = formatter.View{Name: out.Function.Name, Minterms: out.Function.Minterms}
	}
	if out.Err != nil {
		v.Error = out.Err.Error()
	}
	return v
}

func displayName(fn minimize.Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "function"
}
