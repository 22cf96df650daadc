package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// execInput handles an input request line: `^<mode><prompt>:@<var>`.
// Mode 'i' loops until a line free of alphabetic characters arrives;
// mode 's' accepts one line of free text. The accepted line becomes the
// variable's value verbatim.
func (e *Engine) execInput(line string) error {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return newMalformedDirectiveError(e.lineNo(),
			"input line %q needs exactly one ':' between prompt and target variable", line)
	}
	head, target := parts[0], parts[1]

	if !strings.HasPrefix(target, "@") {
		return newMalformedDirectiveError(e.lineNo(),
			"input target %q must name a variable with a leading '@'", target)
	}
	name := target[1:]
	if _, ok := e.vars[name]; !ok {
		return newUndeclaredVariableError(name, e.lineNo())
	}

	if len(head) < 2 {
		return newMalformedDirectiveError(e.lineNo(), "input line %q is missing a mode character", line)
	}
	mode := head[1]
	prompt := head[2:]

	var value string
	switch mode {
	case 'i':
		for {
			fmt.Fprintf(e.out, "\n%s\n", prompt)

			input, err := e.readLine()
			if err != nil {
				return err
			}
			if containsAlpha(input) {
				fmt.Fprintln(e.out, "You may only enter a number. Please try again.")
				continue
			}
			value = input
			break
		}
	case 's':
		fmt.Fprintf(e.out, "\n%s\n", prompt)

		input, err := e.readLine()
		if err != nil {
			return err
		}
		value = input
	default:
		return newBadInputModeError(mode, e.lineNo())
	}

	e.vars[name] = value
	e.log.Debug("input accepted", "name", name, "value", value)
	e.pc++
	return nil
}

// readLine blocks for one line of input, with trailing CR/LF stripped.
func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
