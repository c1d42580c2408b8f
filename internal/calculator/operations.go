package calculator

import (
	"sort"
	"strings"

	apperrors "github.com/agbru/int2023/internal/errors"
	"github.com/agbru/int2023/pkg/int2023"
)

// Operation names a binary int2023 operation.
type Operation string

// Supported operations.
const (
	OpAdd Operation = "add"
	OpSub Operation = "sub"
	OpMul Operation = "mul"
	OpQuo Operation = "quo"
	OpRem Operation = "rem"
)

var operations = map[Operation]func(x, y int2023.Int) (int2023.Int, error){
	OpAdd: int2023.Int.Add,
	OpSub: int2023.Int.Sub,
	OpMul: int2023.Int.Mul,
	OpQuo: int2023.Int.Quo,
	OpRem: int2023.Int.Rem,
}

// Operations returns the supported operations in a stable order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// ParseOperation resolves a case-insensitive operation name. The symbols
// + - * / % are accepted as aliases.
func ParseOperation(name string) (Operation, error) {
	switch s := strings.ToLower(strings.TrimSpace(name)); s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpQuo, nil
	case "%":
		return OpRem, nil
	default:
		if _, ok := operations[Operation(s)]; ok {
			return Operation(s), nil
		}
		return "", apperrors.NewValidationError("op", "unknown operation", name)
	}
}
