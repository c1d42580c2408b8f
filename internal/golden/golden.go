// Package golden produces and reads the reference vectors used to check the
// int2023 engine. Expected values come from a math/big oracle that applies the
// same fixed-width rules as the engine: results of 2023 bits or more are
// overflows, division truncates toward zero and the remainder takes the sign
// of the dividend.
package golden

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/pkg/int2023"
)

// FileName is the conventional name of the golden file inside a testdata
// directory.
const FileName = "int2023_golden.json"

// Outcome labels for cases that do not produce a value.
const (
	OutcomeOverflow       = "overflow"
	OutcomeDivisionByZero = "division_by_zero"
)

// Case is one golden vector. Result is decimal, Binary is the engine's
// String() form; both are empty when Error is set.
type Case struct {
	Op     calculator.Operation `json:"op"`
	LHS    string               `json:"lhs"`
	RHS    string               `json:"rhs"`
	Result string               `json:"result,omitempty"`
	Binary string               `json:"binary,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Request converts the case into a calculator request.
func (c Case) Request() calculator.Request {
	return calculator.Request{Op: c.Op, LHS: c.LHS, RHS: c.RHS}
}

var limit = new(big.Int).Lsh(big.NewInt(1), int2023.Bits)

// Oracle computes the expected outcome of op on x and y with math/big.
func Oracle(op calculator.Operation, x, y *big.Int) (Case, error) {
	c := Case{Op: op, LHS: x.String(), RHS: y.String()}
	z := new(big.Int)
	switch op {
	case calculator.OpAdd:
		z.Add(x, y)
	case calculator.OpSub:
		z.Sub(x, y)
	case calculator.OpMul:
		z.Mul(x, y)
	case calculator.OpQuo, calculator.OpRem:
		if y.Sign() == 0 {
			c.Error = OutcomeDivisionByZero
			return c, nil
		}
		q, r := new(big.Int).QuoRem(x, y, new(big.Int))
		if op == calculator.OpQuo {
			z = q
		} else {
			z = r
		}
	default:
		return Case{}, fmt.Errorf("golden: unsupported operation %q", op)
	}
	if new(big.Int).Abs(z).Cmp(limit) >= 0 {
		c.Error = OutcomeOverflow
		return c, nil
	}
	c.Result = z.String()
	// big's base-2 text matches int2023.Int.String: sign, no leading zeros.
	c.Binary = z.Text(2)
	return c, nil
}

// Classify maps an engine error to the outcome label stored in golden files.
// It returns the empty string for nil and an error for anything that is not
// an arithmetic limit.
func Classify(err error) (string, error) {
	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, int2023.ErrOverflow):
		return OutcomeOverflow, nil
	case errors.Is(err, int2023.ErrDivisionByZero):
		return OutcomeDivisionByZero, nil
	default:
		return "", err
	}
}

// Write encodes cases as indented JSON.
func Write(w io.Writer, cases []Case) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cases); err != nil {
		return fmt.Errorf("encoding golden cases: %w", err)
	}
	return nil
}

// Load reads a golden file.
func Load(path string) ([]Case, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cases []Case
	if err := json.NewDecoder(file).Decode(&cases); err != nil {
		return nil, fmt.Errorf("decoding golden file %s: %w", path, err)
	}
	return cases, nil
}
