// Package cli parses command line arguments for the fable interpreter.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config holds the settings parsed from command line arguments.
type Config struct {
	ScriptPath string // path to the story script file
	Encoding   string // script file encoding (utf-8, shift-jis, latin-1)
	LogLevel   string // log level (debug, info, warn, error)
	ShowHelp   bool   // help display flag
}

// ParseArgs parses command line arguments and returns a Config.
// Flags may appear before or after the positional script path.
func ParseArgs(args []string) (*Config, error) {
	reorderedArgs := reorderArgs(args)

	fs := flag.NewFlagSet("fable", flag.ContinueOnError)

	config := &Config{}

	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.StringVar(&config.Encoding, "encoding", "utf-8", "script file encoding (utf-8, shift-jis, latin-1)")
	fs.StringVar(&config.Encoding, "e", "utf-8", "script file encoding (shorthand)")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(reorderedArgs); err != nil {
		return nil, err
	}

	// Environment variables apply when the flag was left at its default.
	if config.LogLevel == "info" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}
	if config.Encoding == "utf-8" {
		if encodingEnv := os.Getenv("SCRIPT_ENCODING"); encodingEnv != "" {
			config.Encoding = strings.ToLower(encodingEnv)
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	if config.ShowHelp {
		return config, nil
	}

	switch fs.NArg() {
	case 0:
		return nil, fmt.Errorf("script path is required")
	case 1:
		config.ScriptPath = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected exactly one script path, got %d arguments", fs.NArg())
	}

	return config, nil
}

// reorderArgs moves flags in front of positional arguments so that
// "fable story.fbl --log-level debug" parses the same as
// "fable --log-level debug story.fbl".
func reorderArgs(args []string) []string {
	var flags []string
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if len(arg) > 0 && arg[0] == '-' {
			flags = append(flags, arg)

			// Value-carrying flags consume the following argument.
			if i+1 < len(args) && len(args[i+1]) > 0 && args[i+1][0] != '-' {
				if arg != "-h" && arg != "--help" && arg != "-help" {
					i++
					flags = append(flags, args[i])
				}
			}
		} else {
			positional = append(positional, arg)
		}
	}

	return append(flags, positional...)
}

// PrintHelp prints the usage message.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `fable - branching story script interpreter

Usage:
  fable [options] <script-path>

Arguments:
  script-path   path to the story script file to run

Options:
  -e, --encoding <name>       script file encoding: utf-8, shift-jis, latin-1 (default: utf-8)
  -l, --log-level <level>     log level: debug, info, warn, error (default: info)
  -h, --help                  show this help

Environment Variables:
  LOG_LEVEL=<level>           log level
  SCRIPT_ENCODING=<name>      script file encoding

Examples:
  fable story.fbl                     run a story script
  fable --log-level debug story.fbl   run with debug logging
  fable -e shift-jis legacy.fbl       run a Shift-JIS encoded script
`)
}
