package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/qmc/minimize"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
	config minimize.Config
)

// errFailed is returned after the failures have already been reported.
var errFailed = errors.New("one or more functions failed")

var rootCmd = &cobra.Command{
	Use:              "qmc [minterms...]",
	Short:            "qmc - minimal sum-of-products forms with Quine-McCluskey and Petrick's method",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// no subcommand
		if len(args) == 0 {
			return cmd.Help()
		}
		// Format: qmc 0 2 5 => behaves like the solve subcommand
		return solveCmd.RunE(cmd, args)
	},
}

func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func setup() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction(zap.IncreaseLevel(zap.WarnLevel))
	}
	if err != nil {
		return err
	}

	config, err = minimize.LoadConfig(cfgFile)
	if err != nil {
		logger.Error("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", minimize.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the minimizer")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every pipeline stage")

	addSolveFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
}
