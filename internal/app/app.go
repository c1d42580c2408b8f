// Package app provides the application structure of the golden-vector
// harness. It handles the run lifecycle, mode dispatching and version
// management.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/internal/cli"
	"github.com/agbru/int2023/internal/config"
	apperrors "github.com/agbru/int2023/internal/errors"
	"github.com/agbru/int2023/internal/golden"
	"github.com/agbru/int2023/internal/logging"
	"github.com/agbru/int2023/internal/orchestration"
	"github.com/agbru/int2023/internal/ui"
)

// DefaultProgramName is used when no program name is supplied.
const DefaultProgramName = "int2023-golden"

// Application represents one harness run.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Service evaluates the verification requests.
	Service calculator.Service
	// Logger receives structured run events.
	Logger logging.Logger
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
	// ProgramName is the command name used in completion scripts.
	ProgramName string
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error and log output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := DefaultProgramName
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(errWriter, "generate-golden", logging.ParseLevel(cfg.LogLevel))
	return &Application{
		Config:      cfg,
		Service:     calculator.NewCalculatorService(logger),
		Logger:      logger,
		ErrWriter:   errWriter,
		ProgramName: programName,
	}, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	return a.runGenerate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.ProgramName); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runGenerate writes the golden file and, when enabled, verifies the engine
// against it.
func (a *Application) runGenerate(ctx context.Context, out io.Writer) int {
	scope := newRunScope(ctx, a.Config.Timeout)
	defer scope.Close()
	ctx = scope.Context()

	cases, err := GenerateCases(ctx, a.Config)
	if err != nil {
		if apperrors.IsContextError(err) {
			a.Logger.Info("case generation stopped", logging.String("reason", scope.EndReason()))
		} else {
			a.Logger.Error("case generation failed", err)
		}
		return apperrors.HandleCalculationError(err, scope.Elapsed(), a.ErrWriter, cli.CLIColorProvider{})
	}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, len(cases), out)
	}

	path, err := cli.WriteGoldenFile(a.Config.OutDir, cases)
	if err != nil {
		a.Logger.Error("writing golden file failed", err, logging.String("dir", a.Config.OutDir))
		return apperrors.ExitErrorGeneric
	}
	a.Logger.Info("golden file written",
		logging.String("path", path),
		logging.Int("cases", len(cases)),
		logging.Duration("elapsed", scope.Elapsed()),
	)

	if !a.Config.Verify {
		return apperrors.ExitSuccess
	}
	code := a.verify(ctx, cases, out)
	if reason := scope.EndReason(); reason != "" {
		a.Logger.Info("run ended early", logging.String("reason", reason))
	}
	return code
}

// verify replays cases through the service and reports the comparison.
func (a *Application) verify(ctx context.Context, cases []golden.Case, out io.Writer) int {
	reqs := make([]calculator.Request, len(cases))
	for i, c := range cases {
		reqs[i] = c.Request()
	}
	results := orchestration.ExecuteBatch(ctx, a.Service, reqs, a.Config, out)

	summary := out
	if a.Config.Quiet {
		summary = io.Discard
	}
	code := orchestration.AnalyzeBatch(results, cases, summary)
	if code != apperrors.ExitSuccess {
		a.Logger.Error("verification failed", fmt.Errorf("exit code %d", code))
	}
	return code
}

// GenerateCases builds the cases of every operation concurrently, each from
// its own generator derived from the configured seed, and concatenates them
// in operation order.
func GenerateCases(ctx context.Context, cfg config.AppConfig) ([]golden.Case, error) {
	ops := calculator.Operations()
	perOp := make([][]golden.Case, len(ops))

	g, ctx := errgroup.WithContext(ctx)
	for i, op := range ops {
		i, op := i, op
		g.Go(func() error {
			cases, err := golden.GenerateOp(op, cfg.Seed+int64(i), cfg.Count)
			if err != nil {
				return err
			}
			perOp[i] = cases
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []golden.Case
	for _, cases := range perOp {
		all = append(all, cases...)
	}
	return all, nil
}

// IsHelpError checks if the error is a help flag error (-h was used).
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
