// Package app wires the interpreter together: argument parsing, logger
// setup, script loading, and the engine run.
package app

import (
	"fmt"
	"log/slog"

	"github.com/fablescript/fable/pkg/cli"
	"github.com/fablescript/fable/pkg/engine"
	"github.com/fablescript/fable/pkg/logger"
	"github.com/fablescript/fable/pkg/script"
)

// Application manages the main application logic.
type Application struct {
	config *cli.Config
	log    *slog.Logger
}

// New creates an Application.
func New() *Application {
	return &Application{}
}

// Run parses the arguments, loads the script, and runs it to completion.
func (app *Application) Run(args []string) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	app.config = config

	if app.config.ShowHelp {
		cli.PrintHelp()
		return nil
	}

	if err := logger.InitLogger(app.config.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = logger.GetLogger()

	loader := script.NewLoader(app.config.Encoding)
	s, err := loader.Load(app.config.ScriptPath)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	app.log.Info("script loaded", "name", s.FileName, "lines", len(s.Lines), "size", s.Size)

	eng := engine.New(s.Lines, engine.WithLogger(app.log))
	if err := eng.Run(); err != nil {
		return err
	}

	app.log.Info("script finished", "name", s.FileName)
	return nil
}
