// Package orchestration runs batches of calculator requests concurrently and
// checks their outcomes against golden expectations.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/internal/cli"
	"github.com/agbru/int2023/internal/config"
	apperrors "github.com/agbru/int2023/internal/errors"
	"github.com/agbru/int2023/internal/golden"
	"github.com/agbru/int2023/internal/ui"
	"github.com/agbru/int2023/pkg/int2023"
)

// CalculationResult encapsulates the outcome of a single request.
type CalculationResult struct {
	// Request is the evaluated request.
	Request calculator.Request
	// Result is the computed value. It is the zero Int if an error occurred.
	Result int2023.Int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// ProgressBufferMultiplier bounds the progress channel at a fraction of the
// batch so workers rarely block on a slow display.
const ProgressBufferMultiplier = 4

// ExecuteBatch evaluates every request through svc, at most cfg.Concurrency
// at a time, and returns the results in request order. Unless cfg.Quiet is
// set, progress is rendered on out while the batch runs.
//
// Individual failures are recorded in the results; they never stop the rest
// of the batch. Cancelling ctx makes the remaining requests fail fast with
// the context error.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - svc: The calculation service.
//   - reqs: The requests to evaluate.
//   - cfg: The application configuration (concurrency, quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CalculationResult: One result per request, in order.
func ExecuteBatch(ctx context.Context, svc calculator.Service, reqs []calculator.Request, cfg config.AppConfig, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	results := make([]CalculationResult, len(reqs))

	var progressChan chan calculator.ProgressUpdate
	var displayWg sync.WaitGroup
	if !cfg.Quiet {
		progressChan = make(chan calculator.ProgressUpdate, len(reqs)/ProgressBufferMultiplier+1)
		displayWg.Add(1)
		go cli.DisplayProgress(&displayWg, progressChan, len(reqs), out)
	}

	for i, req := range reqs {
		idx, req := i, req
		g.Go(func() error {
			startTime := time.Now()
			res, err := svc.Calculate(ctx, req)
			results[idx] = CalculationResult{
				Request: req, Result: res, Duration: time.Since(startTime), Err: err,
			}
			if progressChan != nil {
				progressChan <- calculator.ProgressUpdate{Index: idx, Failed: err != nil}
			}
			return nil
		})
	}

	g.Wait()
	if progressChan != nil {
		close(progressChan)
		displayWg.Wait()
	}
	return results
}

// opSummary aggregates the verification outcome of one operation.
type opSummary struct {
	total    int
	passed   int
	duration time.Duration
}

// AnalyzeBatch compares results with the golden cases they were built from,
// prints a per-operation summary table and reports the global status.
//
// A result passes when its outcome label matches the case and, for values,
// both the decimal and the binary renderings agree. Errors other than
// overflow and division by zero, such as a timeout, fail the run.
//
// Parameters:
//   - results: The results of ExecuteBatch, in case order.
//   - cases: The golden cases.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeBatch(results []CalculationResult, cases []golden.Case, out io.Writer) int {
	if len(results) != len(cases) {
		fmt.Fprintf(out, "\nGlobal Status: Failure. %d results for %d cases.\n", len(results), len(cases))
		return apperrors.ExitErrorGeneric
	}

	summaries := make(map[calculator.Operation]*opSummary)
	var firstError error
	var firstMismatch string
	var elapsed time.Duration

	for i, res := range results {
		c := cases[i]
		s, ok := summaries[c.Op]
		if !ok {
			s = &opSummary{}
			summaries[c.Op] = s
		}
		s.total++
		s.duration += res.Duration
		elapsed += res.Duration

		outcome, err := golden.Classify(res.Err)
		if err != nil {
			if firstError == nil {
				firstError = err
			}
			continue
		}
		if mismatch := compare(res, c, outcome); mismatch != "" {
			if firstMismatch == "" {
				firstMismatch = mismatch
			}
			continue
		}
		s.passed++
	}

	ops := make([]calculator.Operation, 0, len(summaries))
	for op := range summaries {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	fmt.Fprintf(out, "\n--- Verification Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sOperation%s\t%sCases%s\t%sCPU time%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	for _, op := range ops {
		s := summaries[op]
		status := ui.PassBadge()
		if s.passed != s.total {
			status = fmt.Sprintf("%s %s%d failed%s", ui.FailBadge(), ui.ColorRed(), s.total-s.passed, ui.ColorReset())
		}
		fmt.Fprintf(tw, "%s%s%s\t%d\t%s%s%s\t%s\n",
			ui.ColorBlue(), op, ui.ColorReset(),
			s.total,
			ui.ColorYellow(), cli.FormatExecutionDuration(s.duration), ui.ColorReset(),
			status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. Some cases could not be evaluated.\n")
		return apperrors.HandleCalculationError(firstError, elapsed, out, cli.CLIColorProvider{})
	}
	if firstMismatch != "" {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The engine disagrees with the oracle: %s\n", firstMismatch)
		return apperrors.ExitErrorMismatch
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. %d cases agree with the oracle.\n", len(cases))
	return apperrors.ExitSuccess
}

// compare returns a description of the first difference between res and c,
// or the empty string when they agree.
func compare(res CalculationResult, c golden.Case, outcome string) string {
	if outcome != c.Error {
		return fmt.Sprintf("%s(%s, %s): outcome %q, want %q", c.Op, c.LHS, c.RHS, outcome, c.Error)
	}
	if outcome != "" {
		return ""
	}
	if got := res.Result.String(); got != c.Binary {
		return fmt.Sprintf("%s(%s, %s): binary %s, want %s", c.Op, c.LHS, c.RHS, got, c.Binary)
	}
	if got := res.Result.BigInt().String(); got != c.Result {
		return fmt.Sprintf("%s(%s, %s) = %s, want %s", c.Op, c.LHS, c.RHS, got, c.Result)
	}
	return ""
}
