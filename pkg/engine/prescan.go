package engine

import (
	"strings"
)

// prescan walks the script once before execution, recording label
// declarations and variable declarations so that forward references
// resolve. Labels overwrite on redeclaration (last wins); `@name=...`
// lines declare `name` with the initial value "0"; malformed variable
// declarations are skipped, not rejected.
func (e *Engine) prescan() {
	for index, line := range e.lines {
		if line == "" {
			continue
		}

		switch line[0] {
		case ':':
			name := line[1:]
			if previous, ok := e.labels[name]; ok {
				e.log.Warn("label redeclared, last declaration wins",
					"label", name, "previous", previous, "line", index)
			}
			e.labels[name] = index
		case '@':
			parts := strings.Split(line, "=")
			if len(parts) != 2 {
				e.log.Debug("skipping malformed variable declaration",
					"line", index, "text", line)
				continue
			}
			e.vars[strings.TrimPrefix(parts[0], "@")] = "0"
		}
	}

	e.log.Debug("pre-scan complete", "labels", len(e.labels), "variables", len(e.vars))
}
