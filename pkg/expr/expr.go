// Package expr provides numeric expression evaluation for the engine.
// The engine only needs a single attempt-and-report contract: either the
// text evaluates to a number, or the attempt fails and the caller falls
// back to treating the text as a plain string.
package expr

import (
	"fmt"

	"github.com/Knetic/govaluate"
)

// Evaluator attempts numeric evaluation of an expression string.
type Evaluator interface {
	// Eval returns the numeric value of the expression, or an error
	// if the text does not evaluate to a number.
	Eval(expression string) (float64, error)
}

// GovalEvaluator evaluates expressions with govaluate. Expressions are
// evaluated without parameters, so any free identifier fails the attempt.
type GovalEvaluator struct{}

// New creates a GovalEvaluator.
func New() *GovalEvaluator {
	return &GovalEvaluator{}
}

// Eval implements Evaluator.
func (*GovalEvaluator) Eval(expression string) (float64, error) {
	parsed, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return 0, err
	}

	// An empty parameter map makes free identifiers evaluation errors;
	// govaluate dereferences a nil map instead of reporting them.
	result, err := parsed.Evaluate(map[string]interface{}{})
	if err != nil {
		return 0, err
	}

	value, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("expression %q is not numeric", expression)
	}
	return value, nil
}
