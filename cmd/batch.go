package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/qmc/minimize"
)

var (
	batchJSONOutput bool
	batchVerify     bool
	batchOutPath    string
	batchWorkers    int
	batchCacheDir   string
	clearCache      bool
	showProgress    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Minimize every function listed in the given files",
	Long: `Each non-empty line of a file holds one function as "[name:] minterms".
Lines starting with # are ignored.
Example) qmc batch --verify adders.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		flags := cmd.Flags()
		if flags.Changed("verify") {
			config.Verify = batchVerify
		}
		if flags.Changed("workers") {
			config.Workers = batchWorkers
		}
		if flags.Changed("cache-dir") {
			config.Cache.Dir = batchCacheDir
		}

		opts := outputOptions{json: batchJSONOutput, path: batchOutPath, notation: config.Notation}
		return runBatch(ctx, logger, cmd, args, opts)
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSONOutput, "json", false, "Output results in JSON format")
	batchCmd.Flags().BoolVar(&batchVerify, "verify", false, "Verify every solution")
	batchCmd.Flags().StringVarP(&batchOutPath, "output", "o", "", "Write the output to this path")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Number of concurrent workers (default: one per CPU)")
	batchCmd.Flags().StringVar(&batchCacheDir, "cache-dir", "", "Directory of the result cache")
	batchCmd.Flags().BoolVar(&clearCache, "clear-cache", false, "Drop every cached result before solving")
	batchCmd.Flags().BoolVar(&showProgress, "progress", true, "Show a progress bar")
}

func runBatch(ctx context.Context, logger *zap.Logger, cmd *cobra.Command, paths []string, opts outputOptions) error {
	engine, err := minimize.New(config, logger)
	if err != nil {
		logger.Error("Failed to initialize engine", zap.Error(err))
		return err
	}
	defer engine.Close()

	if clearCache {
		engine.ClearCache()
	}

	processor := minimize.SolveFunction
	if config.Verify {
		processor = minimize.VerifyFunction
	}

	processOpts := []minimize.ProcessOption{minimize.WithWorkers(config.Workers)}
	if showProgress {
		processOpts = append(processOpts, minimize.WithProgress(cmd.ErrOrStderr()))
	} else {
		processOpts = append(processOpts, minimize.WithProgress(nil))
	}

	var all []minimize.Outcome
	for _, path := range paths {
		outcomes, err := minimize.ProcessFile(ctx, logger, engine, path, processor, processOpts...)
		if err != nil {
			logger.Error("Error processing file", zap.String("path", path), zap.Error(err))
			return err
		}
		all = append(all, outcomes...)
	}

	if err := printOutcomes(cmd, all, opts); err != nil {
		return err
	}

	failed := 0
	for _, out := range all {
		if out.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailed, failed, len(all))
	}
	return nil
}
