package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// execMenu consumes a contiguous run of '?' lines, prints them as a
// numbered choice, and blocks on input until a valid choice number
// arrives. Invalid input re-prompts in place; the program counter only
// moves once the chosen label is taken.
func (e *Engine) execMenu() error {
	var targets []string

	for e.pc < len(e.lines) && strings.HasPrefix(e.lines[e.pc], "?") {
		line := e.lines[e.pc]
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			return newMalformedDirectiveError(e.lineNo(),
				"menu line %q needs exactly one ':' between prompt and target", line)
		}

		targets = append(targets, strings.ReplaceAll(parts[1], "#", ""))
		fmt.Fprintf(e.out, "%d. %s\n", len(targets), parts[0][1:])
		e.pc++
	}

	count := len(targets)
	choice := 0
	for choice < 1 || choice > count {
		input, err := e.readLine()
		if err != nil {
			return err
		}

		if containsAlpha(input) {
			fmt.Fprintf(e.out, "You must enter a NUMBER between 1 and %d\n", count)
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(e.out, "You must enter a number between 1 and %d\n", count)
			continue
		}

		if n < 1 || n > count {
			fmt.Fprintf(e.out, "You must enter a number between 1 and %d\n", count)
			continue
		}
		choice = n
	}

	return e.jump(targets[choice-1])
}
