// Package config provides the configuration management for the golden-vector
// harness. It defines the data structure for the configuration, handles the
// parsing of command-line arguments, environment variables and an optional
// TOML file, and performs validation on the resulting values.
package config

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	apperrors "github.com/agbru/int2023/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables read by the harness.
	EnvPrefix = "INT2023_"
)

// Default configuration values.
// These can be overridden via a TOML file, environment variables or flags.
const (
	// DefaultCount is the default number of random cases per operation.
	DefaultCount = 50
	// DefaultSeed seeds the random case generator.
	DefaultSeed int64 = 2023
	// DefaultTimeout bounds the whole run.
	DefaultTimeout = 2 * time.Minute
	// DefaultLogLevel is the zerolog level used by the harness.
	DefaultLogLevel = "info"
)

// DefaultOutDir is the directory the golden file is written to.
var DefaultOutDir = filepath.Join("internal", "calculator", "testdata")

var (
	supportedShells = []string{"bash", "zsh", "fish"}
	logLevels       = []string{"trace", "debug", "info", "warn", "error", "disabled"}
)

// AppConfig aggregates the harness configuration.
type AppConfig struct {
	// OutDir is the directory receiving the golden file.
	OutDir string
	// Count is the number of random cases generated per operation, on top of
	// the fixed edge cases.
	Count int
	// Seed makes the generated cases reproducible.
	Seed int64
	// Timeout sets the maximum duration for the run.
	Timeout time.Duration
	// Concurrency limits the number of requests evaluated at once.
	Concurrency int
	// Verify, if true, replays the generated cases through the engine and
	// fails the run on any disagreement.
	Verify bool
	// Quiet suppresses the spinner and the summary table.
	Quiet bool
	// NoColor disables colored output. NO_COLOR is honoured as well.
	NoColor bool
	// ConfigFile is the optional TOML file read before environment overrides.
	ConfigFile string
	// LogLevel is the zerolog level name.
	LogLevel string
	// Completion, if set, prints a completion script for that shell and exits.
	Completion string
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Returns:
//   - error: A ConfigError describing the first invalid value, nil otherwise.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Count < 0 {
		return apperrors.NewConfigError("case count cannot be negative: %d", c.Count)
	}
	if c.Concurrency < 1 {
		return apperrors.NewConfigError("concurrency must be at least 1: %d", c.Concurrency)
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return apperrors.NewConfigError("output directory cannot be empty")
	}
	if !contains(logLevels, c.LogLevel) {
		return apperrors.NewConfigError("unrecognized log level: '%s'. Valid levels are: [%s]", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.Completion != "" && !contains(supportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell: '%s'. Valid shells are: [%s]", c.Completion, strings.Join(supportedShells, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Values are resolved with the priority flags > INT2023_* environment
// variables > TOML file > defaults, then validated.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: flag.ErrHelp, a flag parsing error, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.OutDir, "out", DefaultOutDir, "Directory the golden file is written to.")
	fs.IntVar(&config.Count, "count", DefaultCount, "Random cases generated per operation, in addition to the edge cases.")
	fs.Int64Var(&config.Seed, "seed", DefaultSeed, "Seed of the random case generator.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the run.")
	fs.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "Maximum number of requests evaluated concurrently.")
	fs.BoolVar(&config.Verify, "verify", true, "Replay the generated cases through the engine.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.ConfigFile, "config", "", "Path to a TOML configuration file.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: "+strings.Join(logLevels, ", ")+".")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script ("+strings.Join(supportedShells, ", ")+").")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if !isFlagSet(fs, "config") {
		config.ConfigFile = getEnvString("CONFIG", config.ConfigFile)
	}
	if config.ConfigFile != "" {
		if err := applyFile(&config, fs, config.ConfigFile); err != nil {
			return AppConfig{}, err
		}
	}
	applyEnvOverrides(&config, fs)

	config.LogLevel = strings.ToLower(config.LogLevel)
	config.Completion = strings.ToLower(config.Completion)
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// setCustomUsage prints a short synopsis followed by the flag defaults.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", fs.Name())
		fmt.Fprintf(out, "Generates int2023 golden vectors from a math/big oracle and\n")
		fmt.Fprintf(out, "optionally verifies the engine against them.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEvery flag can also be set through %s<NAME> (e.g. %sCOUNT=200)\n", EnvPrefix, EnvPrefix)
		fmt.Fprintf(out, "or in the file given by -config.\n")
	}
}
