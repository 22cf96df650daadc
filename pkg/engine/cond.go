package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// operatorPattern finds the first comparison operator in a condition.
// Two-character operators take priority over their one-character prefixes.
var operatorPattern = regexp.MustCompile(`!=|==|<=|>=|<|>`)

// execCond handles a conditional line: `!<expr>:<then>[:<else>]`.
func (e *Engine) execCond(line string) error {
	parts := strings.Split(line[1:], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return newMalformedDirectiveError(e.lineNo(),
			"conditional needs 2 or 3 colon-separated parts, got %d", len(parts))
	}

	condition, err := e.substitute(parts[0])
	if err != nil {
		return err
	}

	truth, err := e.compare(condition)
	if err != nil {
		return err
	}

	branch := strings.TrimSpace(parts[1])
	if !truth {
		if len(parts) == 2 {
			e.pc++
			return nil
		}
		branch = strings.TrimSpace(parts[2])
	}

	return e.execBranch(branch)
}

// compare splits a condition on its first comparison operator and applies
// it. Operands are evaluated numerically when possible; when either side
// fails, equality operators fall back to exact string comparison and
// ordering operators are fatal.
func (e *Engine) compare(condition string) (bool, error) {
	operator := operatorPattern.FindString(condition)
	if operator == "" {
		return false, newMalformedDirectiveError(e.lineNo(),
			"no comparison operator in %q", condition)
	}

	operands := strings.Split(condition, operator)
	if len(operands) != 2 {
		return false, newMalformedDirectiveError(e.lineNo(),
			"condition %q needs exactly a left and a right operand around %q",
			condition, operator)
	}
	left, right := operands[0], operands[1]

	leftNum, leftErr := e.eval.Eval(left)
	rightNum, rightErr := e.eval.Eval(right)
	numeric := leftErr == nil && rightErr == nil

	switch operator {
	case "==":
		if numeric {
			return leftNum == rightNum, nil
		}
		return left == right, nil
	case "!=":
		if numeric {
			return leftNum != rightNum, nil
		}
		return left != right, nil
	}

	if !numeric {
		return false, newNonNumericComparisonError(operator, e.lineNo())
	}
	switch operator {
	case "<=":
		return leftNum <= rightNum, nil
	case ">=":
		return leftNum >= rightNum, nil
	case "<":
		return leftNum < rightNum, nil
	default:
		return leftNum > rightNum, nil
	}
}

// execBranch runs the selected branch text: a goto, an assignment to an
// already-declared variable, or a literal print.
func (e *Engine) execBranch(branch string) error {
	switch {
	case strings.HasPrefix(branch, "#"):
		return e.jump(strings.ReplaceAll(branch, "#", ""))
	case strings.HasPrefix(branch, "@"):
		kv := strings.Split(branch, "=")
		if len(kv) != 2 {
			return newMalformedDirectiveError(e.lineNo(),
				"branch assignment %q needs exactly one '='", branch)
		}
		name := strings.TrimPrefix(kv[0], "@")
		if _, ok := e.vars[name]; !ok {
			return newUndeclaredVariableError(name, e.lineNo())
		}
		if err := e.assign(name, kv[1]); err != nil {
			return err
		}
		e.pc++
		return nil
	default:
		fmt.Fprintln(e.out, branch)
		e.pc++
		return nil
	}
}
