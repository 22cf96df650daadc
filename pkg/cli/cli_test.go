package cli

import (
	"strings"
	"testing"
)

func TestParseArgs_ScriptPath(t *testing.T) {
	config, err := ParseArgs([]string{"story.fbl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.ScriptPath != "story.fbl" {
		t.Errorf("ScriptPath = %q, want %q", config.ScriptPath, "story.fbl")
	}
	if config.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", config.LogLevel, "info")
	}
	if config.Encoding != "utf-8" {
		t.Errorf("Encoding = %q, want %q", config.Encoding, "utf-8")
	}
}

func TestParseArgs_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"flags before path", []string{"--log-level", "debug", "--encoding", "shift-jis", "story.fbl"}},
		{"flags after path", []string{"story.fbl", "--log-level", "debug", "--encoding", "shift-jis"}},
		{"shorthand flags", []string{"-l", "debug", "-e", "shift-jis", "story.fbl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config.ScriptPath != "story.fbl" {
				t.Errorf("ScriptPath = %q, want %q", config.ScriptPath, "story.fbl")
			}
			if config.LogLevel != "debug" {
				t.Errorf("LogLevel = %q, want %q", config.LogLevel, "debug")
			}
			if config.Encoding != "shift-jis" {
				t.Errorf("Encoding = %q, want %q", config.Encoding, "shift-jis")
			}
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}} {
		config, err := ParseArgs(args)
		if err != nil {
			t.Fatalf("ParseArgs(%v) error: %v", args, err)
		}
		if !config.ShowHelp {
			t.Errorf("ParseArgs(%v) ShowHelp = false, want true", args)
		}
	}
}

func TestParseArgs_MissingScriptPath(t *testing.T) {
	_, err := ParseArgs([]string{})
	if err == nil {
		t.Fatal("expected error for missing script path, got nil")
	}
	if !strings.Contains(err.Error(), "script path") {
		t.Errorf("error %q should mention the script path", err)
	}
}

func TestParseArgs_TooManyArguments(t *testing.T) {
	_, err := ParseArgs([]string{"a.fbl", "b.fbl"})
	if err == nil {
		t.Fatal("expected error for extra positional argument, got nil")
	}
}

func TestParseArgs_InvalidLogLevel(t *testing.T) {
	_, err := ParseArgs([]string{"--log-level", "verbose", "story.fbl"})
	if err == nil {
		t.Fatal("expected error for invalid log level, got nil")
	}
}

func TestParseArgs_EnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SCRIPT_ENCODING", "latin-1")

	config, err := ParseArgs([]string{"story.fbl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q (from environment)", config.LogLevel, "warn")
	}
	if config.Encoding != "latin-1" {
		t.Errorf("Encoding = %q, want %q (from environment)", config.Encoding, "latin-1")
	}
}

func TestParseArgs_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	config, err := ParseArgs([]string{"--log-level", "debug", "story.fbl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q (flag overrides environment)", config.LogLevel, "debug")
	}
}
