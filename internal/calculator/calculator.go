// Package calculator exposes the int2023 engine as a service: named binary
// operations over decimal operands, with input validation, structured
// logging, prometheus metrics and otel tracing around every calculation.
package calculator

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/int2023/internal/errors"
	"github.com/agbru/int2023/internal/logging"
	"github.com/agbru/int2023/pkg/int2023"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "int2023_calculations_total",
			Help: "The total number of int2023 calculations processed",
		},
		[]string{"op", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "int2023_calculation_duration_seconds",
			Help:    "The duration of int2023 calculations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"op"},
	)
)

// Request is a single binary operation on decimal operands.
type Request struct {
	Op  Operation
	LHS string
	RHS string
}

// ProgressUpdate reports that the request at Index of a batch has completed.
type ProgressUpdate struct {
	Index  int
	Failed bool
}

// Service defines the interface for int2023 calculation services.
// This abstraction enables dependency injection and easier testing.
type Service interface {
	// Calculate parses the operands of req, applies its operation and
	// returns the result.
	//
	// Returns:
	//   - int2023.Int: The result.
	//   - error: A ValidationError for bad input, a CalculationError wrapping
	//     ErrOverflow or ErrDivisionByZero, or the context error.
	Calculate(ctx context.Context, req Request) (int2023.Int, error)
}

// CalculatorService is the default Service implementation.
type CalculatorService struct {
	logger logging.Logger
}

// Ensure CalculatorService implements Service interface.
var _ Service = (*CalculatorService)(nil)

// NewCalculatorService creates a service logging through logger. A nil
// logger discards everything.
func NewCalculatorService(logger logging.Logger) *CalculatorService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &CalculatorService{logger: logger}
}

// Calculate implements Service.
func (s *CalculatorService) Calculate(ctx context.Context, req Request) (result int2023.Int, err error) {
	tracer := otel.Tracer("int2023")
	ctx, span := tracer.Start(ctx, "Calculate")
	defer span.End()
	span.SetAttributes(attribute.String("int2023.op", string(req.Op)))

	start := time.Now()
	defer func() {
		duration := time.Since(start)
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		calculationsTotal.WithLabelValues(string(req.Op), status).Inc()
		calculationDuration.WithLabelValues(string(req.Op)).Observe(duration.Seconds())

		s.logger.Debug("calculation completed",
			logging.String("op", string(req.Op)),
			logging.Int("lhs_len", len(req.LHS)),
			logging.Int("rhs_len", len(req.RHS)),
			logging.Duration("duration", duration),
			logging.String("status", status),
		)
	}()

	apply, ok := operations[req.Op]
	if !ok {
		return int2023.Int{}, apperrors.NewValidationError("op", "unknown operation", string(req.Op))
	}
	lhs, err := parseOperand("lhs", req.LHS)
	if err != nil {
		return int2023.Int{}, err
	}
	rhs, err := parseOperand("rhs", req.RHS)
	if err != nil {
		return int2023.Int{}, err
	}
	if err := ctx.Err(); err != nil {
		return int2023.Int{}, err
	}

	result, err = apply(lhs, rhs)
	if err != nil {
		return int2023.Int{}, apperrors.NewCalculationError(string(req.Op), err)
	}
	return result, nil
}

func parseOperand(field, s string) (int2023.Int, error) {
	x, err := int2023.FromString(s)
	if err != nil {
		return int2023.Int{}, apperrors.ValidationError{
			Field:   field,
			Message: "operand is not a representable decimal integer",
			Value:   s,
			Cause:   err,
		}
	}
	return x, nil
}
