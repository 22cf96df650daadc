// Package engine executes story scripts: a program-counter-driven loop
// that dispatches each line on its leading sigil.
package engine

import (
	"fmt"
)

// ErrorKind classifies a fatal script error.
type ErrorKind string

const (
	// ErrorMalformedDirective means a directive line did not split into
	// the expected number of parts.
	ErrorMalformedDirective ErrorKind = "MALFORMED_DIRECTIVE"
	// ErrorUndeclaredVariable means a variable was referenced without a
	// top-level declaration line.
	ErrorUndeclaredVariable ErrorKind = "UNDECLARED_VARIABLE"
	// ErrorMissingLabel means a jump target is not in the label table.
	ErrorMissingLabel ErrorKind = "MISSING_LABEL"
	// ErrorNonNumericComparison means an ordering operator was applied
	// to a non-numeric operand.
	ErrorNonNumericComparison ErrorKind = "NON_NUMERIC_COMPARISON"
	// ErrorBadInputMode means an input request used a mode other than
	// 'i' or 's'.
	ErrorBadInputMode ErrorKind = "BAD_INPUT_MODE"
)

// ScriptError is a fatal error raised during script execution, carrying
// the kind of failure and the 1-based line number it occurred on.
type ScriptError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] %s at line %d", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func newMalformedDirectiveError(line int, format string, args ...any) *ScriptError {
	return &ScriptError{
		Kind:    ErrorMalformedDirective,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func newUndeclaredVariableError(name string, line int) *ScriptError {
	return &ScriptError{
		Kind:    ErrorUndeclaredVariable,
		Line:    line,
		Message: fmt.Sprintf("variable %q must be declared before it is used", name),
	}
}

func newMissingLabelError(label string, line int) *ScriptError {
	return &ScriptError{
		Kind:    ErrorMissingLabel,
		Line:    line,
		Message: fmt.Sprintf("label %q not found", label),
	}
}

func newNonNumericComparisonError(operator string, line int) *ScriptError {
	return &ScriptError{
		Kind:    ErrorNonNumericComparison,
		Line:    line,
		Message: fmt.Sprintf("strings cannot be compared with %s", operator),
	}
}

func newBadInputModeError(mode byte, line int) *ScriptError {
	return &ScriptError{
		Kind:    ErrorBadInputMode,
		Line:    line,
		Message: fmt.Sprintf("input mode must be 'i' or 's', got %q", string(mode)),
	}
}
