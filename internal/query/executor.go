package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/itchyny/gojq"
)

const (
	// DefaultTimeout is the default evaluation time limit of an expression.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxInputSize is the default maximum JSON size of filtered data.
	DefaultMaxInputSize = 64 * 1024 * 1024 // 64 MB
)

// Static error definitions for better error handling.
var (
	// ErrInvalidExpression indicates that a jq expression does not parse or compile.
	ErrInvalidExpression = errors.New("invalid jq expression")
	// ErrInputTooLarge indicates that the data exceeds the maximum input size.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)

// Executor evaluates jq expressions with a time and input size limit.
type Executor struct {
	// timeout bounds a single evaluation.
	timeout time.Duration
	// maxInputSize bounds the JSON size of the input.
	maxInputSize int64
}

// NewExecutor creates an executor. Zero values select the defaults.
func NewExecutor(timeout time.Duration, maxInputSize int64) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if maxInputSize <= 0 {
		maxInputSize = DefaultMaxInputSize
	}

	return &Executor{
		timeout:      timeout,
		maxInputSize: maxInputSize,
	}
}

// Validate checks that expression parses and compiles.
func (e *Executor) Validate(expression string) error {
	_, err := compile(expression)

	return err
}

// Execute evaluates expression against data.
// An empty expression returns data unchanged; one result is returned as is, several as a slice.
func (e *Executor) Execute(ctx context.Context, expression string, data any) (any, error) {
	if expression == "" {
		return data, nil
	}

	code, err := compile(expression)
	if err != nil {
		return nil, err
	}

	input, err := e.normalize(data)
	if err != nil {
		return nil, err
	}

	execCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var results []any

	iter := code.RunWithContext(execCtx, input)

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := value.(error); isErr {
			var haltErr *gojq.HaltError
			if errors.As(err, &haltErr) && haltErr.Value() == nil {
				break
			}

			return nil, fmt.Errorf("failed to evaluate %q: %w", expression, err)
		}

		results = append(results, value)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// normalize converts data into the plain JSON values gojq accepts.
func (e *Executor) normalize(data any) (any, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode input: %w", err)
	}

	if int64(len(encoded)) > e.maxInputSize {
		return nil, fmt.Errorf("%w: %s > %s", ErrInputTooLarge,
			humanize.IBytes(uint64(len(encoded))), humanize.IBytes(uint64(e.maxInputSize)))
	}

	var input any
	if err = json.Unmarshal(encoded, &input); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	return input, nil
}

func compile(expression string) (*gojq.Code, error) {
	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	return code, nil
}
