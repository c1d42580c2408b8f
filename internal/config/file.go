package config

import (
	"flag"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/int2023/internal/errors"
)

// fileConfig mirrors AppConfig for TOML decoding. Pointer fields tell an
// absent key apart from a zero value.
type fileConfig struct {
	Out         *string `toml:"out"`
	Count       *int    `toml:"count"`
	Seed        *int64  `toml:"seed"`
	Timeout     *string `toml:"timeout"`
	Concurrency *int    `toml:"concurrency"`
	Verify      *bool   `toml:"verify"`
	Quiet       *bool   `toml:"quiet"`
	NoColor     *bool   `toml:"no_color"`
	LogLevel    *string `toml:"log_level"`
}

// applyFile loads path and copies every key it sets into config, unless the
// matching flag was given on the command line. Unknown keys are rejected.
func applyFile(config *AppConfig, fs *flag.FlagSet, path string) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return apperrors.NewConfigError("reading config file %s: %v", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return apperrors.NewConfigError("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	if fc.Out != nil && !isFlagSet(fs, "out") {
		config.OutDir = *fc.Out
	}
	if fc.Count != nil && !isFlagSet(fs, "count") {
		config.Count = *fc.Count
	}
	if fc.Seed != nil && !isFlagSet(fs, "seed") {
		config.Seed = *fc.Seed
	}
	if fc.Timeout != nil && !isFlagSet(fs, "timeout") {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return apperrors.NewConfigError("invalid timeout %q in config file %s", *fc.Timeout, path)
		}
		config.Timeout = d
	}
	if fc.Concurrency != nil && !isFlagSet(fs, "concurrency") {
		config.Concurrency = *fc.Concurrency
	}
	if fc.Verify != nil && !isFlagSet(fs, "verify") {
		config.Verify = *fc.Verify
	}
	if fc.Quiet != nil && !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = *fc.Quiet
	}
	if fc.NoColor != nil && !isFlagSet(fs, "no-color") {
		config.NoColor = *fc.NoColor
	}
	if fc.LogLevel != nil && !isFlagSet(fs, "log-level") {
		config.LogLevel = *fc.LogLevel
	}
	return nil
}
