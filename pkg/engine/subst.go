package engine

import (
	"regexp"
	"strings"
)

// varToken matches a variable reference: '@' followed by a maximal run of
// characters excluding space, NUL, and the delimiter set.
var varToken = regexp.MustCompile(`@[^ \x00+\-<>=().!#:;^/\\@]+`)

// substitute replaces every @name token in the text with the variable's
// current value, in discovery order. Referencing an undeclared variable
// is fatal.
func (e *Engine) substitute(text string) (string, error) {
	result := text
	for _, token := range varToken.FindAllString(text, -1) {
		name := token[1:]
		value, ok := e.vars[name]
		if !ok {
			return "", newUndeclaredVariableError(name, e.lineNo())
		}
		result = strings.ReplaceAll(result, token, value)
	}
	return result, nil
}
