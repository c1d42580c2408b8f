package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/internal/config"
	apperrors "github.com/agbru/int2023/internal/errors"
	"github.com/agbru/int2023/internal/golden"
	"github.com/agbru/int2023/pkg/int2023"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("Valid args create application", func(t *testing.T) {
		t.Parallel()
		app, err := New([]string{"gen", "-count", "4"}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("New() returned unexpected error: %v", err)
		}
		if app.Config.Count != 4 {
			t.Errorf("Expected Count=4, got %d", app.Config.Count)
		}
		if app.ProgramName != "gen" {
			t.Errorf("ProgramName = %q, want gen", app.ProgramName)
		}
		if app.Service == nil || app.Logger == nil {
			t.Error("Service and Logger should be set")
		}
	})

	t.Run("Invalid args return ConfigError", func(t *testing.T) {
		t.Parallel()
		_, err := New([]string{"gen", "-concurrency", "0"}, &bytes.Buffer{})
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("error = %v, want ConfigError", err)
		}
	})

	t.Run("Help", func(t *testing.T) {
		t.Parallel()
		_, err := New([]string{"gen", "-h"}, &bytes.Buffer{})
		if !IsHelpError(err) {
			t.Errorf("error = %v, want help error", err)
		}
	})

	t.Run("Empty args", func(t *testing.T) {
		t.Parallel()
		app, err := New(nil, &bytes.Buffer{})
		if err != nil {
			t.Fatal(err)
		}
		if app.ProgramName != DefaultProgramName {
			t.Errorf("ProgramName = %q, want %q", app.ProgramName, DefaultProgramName)
		}
	})
}

// Run touches the global theme, so these tests do not run in parallel.

func TestRunGeneratesAndVerifies(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	app, err := New([]string{"gen", "-out", dir, "-count", "3", "-seed", "9", "-no-color", "-concurrency", "2"}, &stderr)
	if err != nil {
		t.Fatal(err)
	}

	if code := app.Run(context.Background(), &stdout); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d\nstdout:\n%s\nstderr:\n%s", code, stdout.String(), stderr.String())
	}

	cases, err := golden.Load(filepath.Join(dir, golden.FileName))
	if err != nil {
		t.Fatalf("loading generated file: %v", err)
	}
	if want := len(calculator.Operations()) * 3; len(cases) < want {
		t.Errorf("got %d cases, want at least %d", len(cases), want)
	}
	for _, want := range []string{"Execution Configuration", "Verification Summary", "Global Status: Success"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout missing %q", want)
		}
	}
	if !strings.Contains(stderr.String(), `"message":"golden file written"`) {
		t.Errorf("stderr missing structured log line:\n%s", stderr.String())
	}
}

func TestRunQuietWithoutVerify(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app, err := New([]string{"gen", "-out", t.TempDir(), "-count", "0", "-verify=false", "-q", "-log-level", "disabled"}, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(context.Background(), &stdout); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("quiet run produced output:\nstdout: %q\nstderr: %q", stdout.String(), stderr.String())
	}
}

// brokenService disagrees with the oracle on every multiplication.
type brokenService struct {
	calculator.Service
}

func (b brokenService) Calculate(ctx context.Context, req calculator.Request) (int2023.Int, error) {
	if req.Op == calculator.OpMul {
		return int2023.One, nil
	}
	return b.Service.Calculate(ctx, req)
}

func TestRunDetectsMismatch(t *testing.T) {
	var stdout bytes.Buffer
	app, err := New([]string{"gen", "-out", t.TempDir(), "-count", "1", "-no-color", "-log-level", "disabled"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	app.Service = brokenService{app.Service}
	if code := app.Run(context.Background(), &stdout); code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(stdout.String(), "FAIL") {
		t.Errorf("summary missing FAIL badge:\n%s", stdout.String())
	}
}

func TestRunCompletion(t *testing.T) {
	app, err := New([]string{"gen", "-completion", "fish"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	if code := app.Run(context.Background(), &stdout); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "complete -c gen") {
		t.Errorf("unexpected completion output:\n%s", stdout.String())
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app, err := New([]string{"gen", "-out", t.TempDir(), "-count", "1", "-q", "-log-level", "disabled"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(ctx, &bytes.Buffer{}); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestGenerateCasesIsDeterministic(t *testing.T) {
	t.Parallel()
	cfg := config.AppConfig{Seed: 5, Count: 2}
	a, err := GenerateCases(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateCases(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("runs produced %d and %d cases", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("case %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	seen := make(map[calculator.Operation]bool)
	for _, c := range a {
		seen[c.Op] = true
	}
	if len(seen) != len(calculator.Operations()) {
		t.Errorf("cases cover %d operations, want %d", len(seen), len(calculator.Operations()))
	}
}
