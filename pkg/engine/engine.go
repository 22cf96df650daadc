package engine

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fablescript/fable/pkg/expr"
	"github.com/fablescript/fable/pkg/logger"
)

// Engine holds the execution state for one script run: the immutable
// script lines, the label and variable stores built by the pre-scan, and
// the program counter. A single Engine runs a single script to completion;
// there is no concurrency and no locking.
type Engine struct {
	lines  []string
	labels map[string]int
	vars   map[string]string
	pc     int

	in   *bufio.Reader
	out  io.Writer
	eval expr.Evaluator
	log  *slog.Logger
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithInput sets the reader for blocking menu/input prompts.
func WithInput(r io.Reader) Option {
	return func(e *Engine) {
		e.in = bufio.NewReader(r)
	}
}

// WithOutput sets the writer for story output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// WithEvaluator sets the numeric expression evaluator.
func WithEvaluator(ev expr.Evaluator) Option {
	return func(e *Engine) {
		e.eval = ev
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an Engine for the given script lines and runs the pre-scan
// pass, so labels and variables declared anywhere in the script resolve
// before execution starts.
func New(lines []string, opts ...Option) *Engine {
	e := &Engine{
		lines:  lines,
		labels: make(map[string]int),
		vars:   make(map[string]string),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		eval:   expr.New(),
		log:    logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.prescan()
	return e
}

// PC returns the current program counter.
func (e *Engine) PC() int {
	return e.pc
}

// Var returns the current value of a variable.
func (e *Engine) Var(name string) (string, bool) {
	value, ok := e.vars[name]
	return value, ok
}

// Run executes the script until the program counter reaches the end of
// the script or a fatal condition occurs. Each step classifies the
// current line by its sigil and dispatches; handlers either advance the
// program counter by one or set it to a jump target.
func (e *Engine) Run() error {
	for e.pc < len(e.lines) {
		line := e.lines[e.pc]

		var err error
		switch classify(line) {
		case kindBlank, kindLabel, kindComment:
			e.pc++
		case kindBreak:
			fmt.Fprintln(e.out)
			e.pc++
		case kindGoto:
			err = e.execGoto(line)
		case kindCond:
			err = e.execCond(line)
		case kindVar:
			err = e.execVarLine(line)
		case kindMenu:
			err = e.execMenu()
		case kindInput:
			err = e.execInput(line)
		case kindText:
			err = e.execText(line)
		}
		if err != nil {
			return err
		}
	}

	e.log.Debug("script finished", "lines", len(e.lines))
	return nil
}

// execGoto jumps to the label named after the '#' sigil.
func (e *Engine) execGoto(line string) error {
	return e.jump(strings.ReplaceAll(line, "#", ""))
}

// execText prints a literal line with variable substitution applied.
func (e *Engine) execText(line string) error {
	text, err := e.substitute(line)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, text)
	e.pc++
	return nil
}

// execVarLine handles a '@' line: an assignment when it splits into
// exactly two parts on '=', otherwise literal text containing variable
// references.
func (e *Engine) execVarLine(line string) error {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return e.execText(line)
	}

	name := strings.TrimPrefix(parts[0], "@")
	if _, ok := e.vars[name]; !ok {
		return newUndeclaredVariableError(name, e.lineNo())
	}
	if err := e.assign(name, parts[1]); err != nil {
		return err
	}
	e.pc++
	return nil
}

// assign substitutes variables into the right-hand side, attempts numeric
// evaluation, and stores either the numeric result or the substituted
// text verbatim. The caller advances the program counter.
func (e *Engine) assign(name, rhs string) error {
	value, err := e.substitute(rhs)
	if err != nil {
		return err
	}

	if n, err := e.eval.Eval(value); err == nil {
		value = strconv.FormatFloat(n, 'f', -1, 64)
	}

	e.vars[name] = value
	e.log.Debug("variable assigned", "name", name, "value", value)
	return nil
}

// jump sets the program counter to a label's declared line index.
func (e *Engine) jump(label string) error {
	index, ok := e.labels[label]
	if !ok {
		return newMissingLabelError(label, e.lineNo())
	}
	e.log.Debug("jump", "label", label, "to", index)
	e.pc = index
	return nil
}

// lineNo is the 1-based number of the line being executed, for errors.
func (e *Engine) lineNo() int {
	return e.pc + 1
}
