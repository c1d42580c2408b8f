package golden

import (
	"bytes"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/pkg/int2023"
)

func TestOracle(t *testing.T) {
	t.Parallel()
	maxMag := new(big.Int).Sub(limit, big.NewInt(1))
	tests := []struct {
		name string
		op   calculator.Operation
		x, y *big.Int
		want Case
	}{
		{
			name: "add",
			op:   calculator.OpAdd, x: big.NewInt(2), y: big.NewInt(-7),
			want: Case{Op: calculator.OpAdd, LHS: "2", RHS: "-7", Result: "-5", Binary: "-101"},
		},
		{
			name: "zero result",
			op:   calculator.OpSub, x: big.NewInt(9), y: big.NewInt(9),
			want: Case{Op: calculator.OpSub, LHS: "9", RHS: "9", Result: "0", Binary: "0"},
		},
		{
			name: "truncated quotient",
			op:   calculator.OpQuo, x: big.NewInt(-7), y: big.NewInt(2),
			want: Case{Op: calculator.OpQuo, LHS: "-7", RHS: "2", Result: "-3", Binary: "-11"},
		},
		{
			name: "remainder follows dividend",
			op:   calculator.OpRem, x: big.NewInt(-7), y: big.NewInt(2),
			want: Case{Op: calculator.OpRem, LHS: "-7", RHS: "2", Result: "-1", Binary: "-1"},
		},
		{
			name: "division by zero",
			op:   calculator.OpRem, x: big.NewInt(1), y: big.NewInt(0),
			want: Case{Op: calculator.OpRem, LHS: "1", RHS: "0", Error: OutcomeDivisionByZero},
		},
		{
			name: "overflow",
			op:   calculator.OpAdd, x: maxMag, y: big.NewInt(1),
			want: Case{Op: calculator.OpAdd, LHS: maxMag.String(), RHS: "1", Error: OutcomeOverflow},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Oracle(tt.op, tt.x, tt.y)
			if err != nil {
				t.Fatalf("Oracle: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Oracle mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Oracle("pow", big.NewInt(1), big.NewInt(1)); err == nil {
		t.Error("expected error for unsupported operation")
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err     error
		want    string
		wantErr bool
	}{
		{nil, "", false},
		{int2023.ErrOverflow, OutcomeOverflow, false},
		{int2023.ErrDivisionByZero, OutcomeDivisionByZero, false},
		{int2023.ErrSyntax, "", true},
	}
	for _, tt := range tests {
		got, err := Classify(tt.err)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("Classify(%v) = %q, %v; want %q, error %v", tt.err, got, err, tt.want, tt.wantErr)
		}
	}
}

// The engine and the oracle must agree on every generated case.
func TestGeneratedCasesMatchEngine(t *testing.T) {
	t.Parallel()
	for i, op := range calculator.Operations() {
		op := op
		seed := int64(i + 1)
		t.Run(string(op), func(t *testing.T) {
			t.Parallel()
			cases, err := GenerateOp(op, seed, 40)
			if err != nil {
				t.Fatalf("GenerateOp: %v", err)
			}
			if want := len(edgeOperands())*len(edgeOperands()) + 40; len(cases) != want {
				t.Fatalf("got %d cases, want %d", len(cases), want)
			}
			for _, c := range cases {
				checkAgainstEngine(t, c)
			}
		})
	}
}

func checkAgainstEngine(t *testing.T, c Case) {
	t.Helper()
	x := int2023.MustFromString(c.LHS)
	y := int2023.MustFromString(c.RHS)
	var (
		z   int2023.Int
		err error
	)
	switch c.Op {
	case calculator.OpAdd:
		z, err = x.Add(y)
	case calculator.OpSub:
		z, err = x.Sub(y)
	case calculator.OpMul:
		z, err = x.Mul(y)
	case calculator.OpQuo:
		z, err = x.Quo(y)
	case calculator.OpRem:
		z, err = x.Rem(y)
	}
	outcome, err := Classify(err)
	if err != nil {
		t.Fatalf("%s %s %s: unexpected error %v", c.LHS, c.Op, c.RHS, err)
	}
	if outcome != c.Error {
		t.Errorf("%s %s %s: outcome %q, want %q", c.LHS, c.Op, c.RHS, outcome, c.Error)
		return
	}
	if c.Error != "" {
		return
	}
	if got := z.BigInt().String(); got != c.Result {
		t.Errorf("%s %s %s = %s, want %s", c.LHS, c.Op, c.RHS, got, c.Result)
	}
	if got := z.String(); got != c.Binary {
		t.Errorf("%s %s %s: binary %s, want %s", c.LHS, c.Op, c.RHS, got, c.Binary)
	}
}

func TestGenerateOpIsDeterministic(t *testing.T) {
	t.Parallel()
	a, err := GenerateOp(calculator.OpMul, 7, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateOp(calculator.OpMul, 7, 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different cases (-a +b):\n%s", diff)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	t.Parallel()
	cases, err := GenerateOp(calculator.OpAdd, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, cases); err != nil {
		t.Fatalf("Write: %v", err)
	}
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cases, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}
