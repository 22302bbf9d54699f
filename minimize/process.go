package minimize

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/qmc/internal/qm"
	"github.com/gnoswap-labs/qmc/internal/verify"
)

// Outcome is the result of processing one function.
type Outcome struct {
	Function Function
	Result   *qm.Result
	// Report is set when the function was verified.
	Report *verify.Report
	Err    error
}

// Processor turns one function into an outcome.
type Processor func(Engine, Function) (Outcome, error)

// SolveFunction minimizes fn.
func SolveFunction(engine Engine, fn Function) (Outcome, error) {
	res, err := engine.Solve(fn.Minterms)
	if err != nil {
		return Outcome{Function: fn}, err
	}
	return Outcome{Function: fn, Result: res}, nil
}

// VerifyFunction minimizes fn and checks every solution.
func VerifyFunction(engine Engine, fn Function) (Outcome, error) {
	out, err := SolveFunction(engine, fn)
	if err != nil {
		return out, err
	}
	rep, err := verify.Check(out.Result)
	if err != nil {
		return out, err
	}
	out.Report = &rep
	return out, rep.Err()
}

type processOptions struct {
	workers  int
	progress io.Writer
}

// ProcessOption configures ProcessFunctions.
type ProcessOption func(*processOptions)

// WithWorkers bounds the number of concurrent workers. Values below one
// select one worker per CPU.
func WithWorkers(n int) ProcessOption {
	return func(o *processOptions) { o.workers = n }
}

// WithProgress directs the progress bar to w. A nil writer disables it.
func WithProgress(w io.Writer) ProcessOption {
	return func(o *processOptions) { o.progress = w }
}

// ProcessFunctions runs processor over fns with a bounded worker pool.
// Outcomes are returned in input order; a failing function records its
// error in its outcome and does not stop the others. On cancellation the
// outcomes collected so far are returned with ctx.Err().
func ProcessFunctions(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	fns []Function,
	processor Processor,
	opts ...ProcessOption,
) ([]Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := processOptions{workers: runtime.NumCPU(), progress: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}

	var bar *progressbar.ProgressBar
	if o.progress != nil {
		bar = progressbar.NewOptions(len(fns),
			progressbar.OptionSetWriter(o.progress),
			progressbar.OptionSetDescription("minimizing"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	outcomes := make([]Outcome, len(fns))
	done := make([]bool, len(fns))
	var mu sync.Mutex
	var wg sync.WaitGroup

	// limit the number of workers
	sem := make(chan struct{}, o.workers)

	var cancelled error
loop:
	for i, fn := range fns {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, fn Function) {
			defer wg.Done()
			defer func() { <-sem }()

			out, err := processor(engine, fn)
			if err != nil {
				logger.Error("Error processing function",
					zap.String("name", fn.Name),
					zap.Int("line", fn.Line),
					zap.Error(err),
				)
				out.Err = err
			}
			out.Function = fn

			mu.Lock()
			outcomes[i] = out
			done[i] = true
			mu.Unlock()

			if bar != nil {
				_ = bar.Add(1)
			}
		}(i, fn)
	}
	wg.Wait()

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(o.progress)
	}

	if cancelled != nil {
		partial := make([]Outcome, 0, len(fns))
		for i := range outcomes {
			if done[i] {
				partial = append(partial, outcomes[i])
			}
		}
		return partial, cancelled
	}
	return outcomes, nil
}

// ReadFunctions parses r with one function per line. Blank lines and lines
// starting with # are skipped. Malformed lines fail with their line number.
func ReadFunctions(r io.Reader) ([]Function, error) {
	var fns []Function
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fn, err := ParseFunction(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		fn.Line = line
		if fn.Name == "" {
			fn.Name = fmt.Sprintf("f%d", len(fns)+1)
		}
		fns = append(fns, fn)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fns, nil
}

// ProcessFile reads the functions stored at path and processes them.
func ProcessFile(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	processor Processor,
	opts ...ProcessOption,
) ([]Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	defer f.Close()

	fns, err := ReadFunctions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ProcessFunctions(ctx, logger, engine, fns, processor, opts...)
}
