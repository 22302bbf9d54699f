package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/qmc/minimize"
)

var (
	functionName string
	jsonOutput   bool
	verifyResult bool
	outPath      string

	notationComplement string
	notationAnd        string
	notationOr         string
	notationTrue       string
)

var solveCmd = &cobra.Command{
	Use:   "solve [minterms...]",
	Short: "Minimize one function given by its minterms",
	Long: `Prints every minimum sum-of-products form of the function whose
true rows are the given minterms.
Example) qmc solve 0 2 5 6 7 8 10 12 13 14 15`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		values, err := minimize.ParseMinterms(strings.Join(args, " "))
		if err != nil {
			return err
		}

		opts := outputOptionsFrom(cmd)
		if cmd.Flags().Changed("verify") {
			config.Verify = verifyResult
		}
		return runSolve(ctx, logger, cmd, minimize.Function{Name: functionName, Minterms: values}, opts)
	},
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&functionName, "name", "", "Name printed in the report")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	cmd.Flags().BoolVar(&verifyResult, "verify", false, "Check coverage, minimality and equivalence of every solution")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the output to this path")
	cmd.Flags().StringVar(&notationComplement, "notation-complement", "", "Suffix of a negated variable")
	cmd.Flags().StringVar(&notationAnd, "notation-and", "", "Separator between literals")
	cmd.Flags().StringVar(&notationOr, "notation-or", "", "Separator between products")
	cmd.Flags().StringVar(&notationTrue, "notation-true", "", "Rendering of the constant true product")
}

func init() {
	addSolveFlags(solveCmd)
}

// outputOptionsFrom merges the notation flags that were set over the
// configured notation.
func outputOptionsFrom(cmd *cobra.Command) outputOptions {
	n := config.Notation
	flags := cmd.Flags()
	if flags.Changed("notation-complement") {
		n.Complement = notationComplement
	}
	if flags.Changed("notation-and") {
		n.And = notationAnd
	}
	if flags.Changed("notation-or") {
		n.Or = notationOr
	}
	if flags.Changed("notation-true") {
		n.True = notationTrue
	}
	return outputOptions{json: jsonOutput, path: outPath, notation: n}
}

func runSolve(ctx context.Context, logger *zap.Logger, cmd *cobra.Command, fn minimize.Function, opts outputOptions) error {
	engine, err := minimize.New(config, logger)
	if err != nil {
		logger.Error("Failed to initialize engine", zap.Error(err))
		return err
	}
	defer engine.Close()

	processor := minimize.SolveFunction
	if config.Verify {
		processor = minimize.VerifyFunction
	}

	outcomes, err := minimize.ProcessFunctions(ctx, logger, engine, []minimize.Function{fn}, processor,
		minimize.WithWorkers(1), minimize.WithProgress(nil))
	if err != nil {
		return err
	}

	if err := printOutcomes(cmd, outcomes, opts); err != nil {
		return err
	}
	// a single function reports its own error
	return outcomes[0].Err
}
