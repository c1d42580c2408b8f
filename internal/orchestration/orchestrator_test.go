package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/internal/config"
	apperrors "github.com/agbru/int2023/internal/errors"
	"github.com/agbru/int2023/internal/golden"
	"github.com/agbru/int2023/internal/ui"
	"github.com/agbru/int2023/pkg/int2023"
)

// MockService is a calculator.Service used for testing the orchestration
// logic without invoking the engine.
type MockService struct {
	CalculateFunc func(ctx context.Context, req calculator.Request) (int2023.Int, error)
}

// Calculate invokes the mocked CalculateFunc.
func (m *MockService) Calculate(ctx context.Context, req calculator.Request) (int2023.Int, error) {
	return m.CalculateFunc(ctx, req)
}

func TestExecuteBatch(t *testing.T) {
	t.Parallel()
	reqs := []calculator.Request{
		{Op: calculator.OpAdd, LHS: "1", RHS: "2"},
		{Op: calculator.OpQuo, LHS: "1", RHS: "0"},
		{Op: calculator.OpMul, LHS: "-4", RHS: "5"},
	}
	cfg := config.AppConfig{Concurrency: 2, Quiet: true}
	results := ExecuteBatch(context.Background(), calculator.NewCalculatorService(nil), reqs, cfg, io.Discard)

	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	for i, res := range results {
		if res.Request != reqs[i] {
			t.Errorf("result %d is for %+v, want %+v", i, res.Request, reqs[i])
		}
	}
	if results[0].Err != nil || !results[0].Result.Equal(int2023.FromInt(3)) {
		t.Errorf("1+2 = %v, %v", results[0].Result, results[0].Err)
	}
	if !errors.Is(results[1].Err, int2023.ErrDivisionByZero) {
		t.Errorf("1/0 error = %v, want ErrDivisionByZero", results[1].Err)
	}
	if results[2].Err != nil || !results[2].Result.Equal(int2023.FromInt(-20)) {
		t.Errorf("-4*5 = %v, %v", results[2].Result, results[2].Err)
	}
}

func TestExecuteBatchRespectsConcurrency(t *testing.T) {
	t.Parallel()
	var running, peak atomic.Int32
	svc := &MockService{CalculateFunc: func(ctx context.Context, req calculator.Request) (int2023.Int, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return int2023.Zero, nil
	}}
	reqs := make([]calculator.Request, 20)
	ExecuteBatch(context.Background(), svc, reqs, config.AppConfig{Concurrency: 3, Quiet: true}, io.Discard)
	if p := peak.Load(); p > 3 {
		t.Errorf("peak concurrency = %d, want at most 3", p)
	}
}

func TestExecuteBatchCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reqs := []calculator.Request{{Op: calculator.OpAdd, LHS: "1", RHS: "1"}}
	results := ExecuteBatch(ctx, calculator.NewCalculatorService(nil), reqs, config.AppConfig{Concurrency: 1, Quiet: true}, io.Discard)
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", results[0].Err)
	}
}

func mustCase(t *testing.T, op calculator.Operation, x, y int64) golden.Case {
	t.Helper()
	c, err := golden.Oracle(op, big.NewInt(x), big.NewInt(y))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// TestAnalyzeBatch verifies the comparison of engine results with golden
// cases, including the detection of mismatches.
func TestAnalyzeBatch(t *testing.T) {
	ui.InitTheme(true)
	add := mustCase(t, calculator.OpAdd, 2, 3)
	quoZero := mustCase(t, calculator.OpQuo, 2, 0)

	tests := []struct {
		name           string
		results        []CalculationResult
		expectedStatus int
		expectedText   string
	}{
		{
			name: "All success",
			results: []CalculationResult{
				{Result: int2023.FromInt(5), Duration: time.Millisecond},
				{Err: apperrors.NewCalculationError("quo", int2023.ErrDivisionByZero)},
			},
			expectedStatus: apperrors.ExitSuccess,
			expectedText:   "Success. 2 cases agree",
		},
		{
			name: "Wrong value",
			results: []CalculationResult{
				{Result: int2023.FromInt(6)},
				{Err: int2023.ErrDivisionByZero},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
			expectedText:   "binary 110, want 101",
		},
		{
			name: "Wrong outcome",
			results: []CalculationResult{
				{Result: int2023.FromInt(5)},
				{Result: int2023.Zero},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
			expectedText:   `outcome "", want "division_by_zero"`,
		},
		{
			name: "Timeout",
			results: []CalculationResult{
				{Err: context.DeadlineExceeded},
				{Err: int2023.ErrDivisionByZero},
			},
			expectedStatus: apperrors.ExitErrorTimeout,
			expectedText:   "Timeout",
		},
		{
			name:           "Length mismatch",
			results:        []CalculationResult{{Result: int2023.FromInt(5)}},
			expectedStatus: apperrors.ExitErrorGeneric,
			expectedText:   "1 results for 2 cases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			status := AnalyzeBatch(tt.results, []golden.Case{add, quoZero}, &out)
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
			if !strings.Contains(out.String(), tt.expectedText) {
				t.Errorf("output %q missing %q", out.String(), tt.expectedText)
			}
		})
	}
}

// The whole pipeline agrees with the oracle on generated cases.
func TestExecuteAndAnalyzeGenerated(t *testing.T) {
	ui.InitTheme(true)
	cases, err := golden.GenerateOp(calculator.OpMul, 5, 20)
	if err != nil {
		t.Fatal(err)
	}
	reqs := make([]calculator.Request, len(cases))
	for i, c := range cases {
		reqs[i] = c.Request()
	}
	results := ExecuteBatch(context.Background(), calculator.NewCalculatorService(nil), reqs, config.AppConfig{Concurrency: 4, Quiet: true}, io.Discard)

	var out bytes.Buffer
	if status := AnalyzeBatch(results, cases, &out); status != apperrors.ExitSuccess {
		t.Errorf("status = %d, output:\n%s", status, out.String())
	}
	if !strings.Contains(out.String(), "PASS") {
		t.Errorf("summary missing PASS badge:\n%s", out.String())
	}
}
