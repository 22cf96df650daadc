package engine

import (
	"testing"
)

func substEngine(vars map[string]string) *Engine {
	e, _ := newTestEngine("", "")
	for name, value := range vars {
		e.vars[name] = value
	}
	return e
}

func TestSubstitute(t *testing.T) {
	vars := map[string]string{
		"hp":   "10",
		"mp":   "4",
		"name": "Ada",
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"no tokens", "plain text", "plain text"},
		{"single token", "hp is @hp", "hp is 10"},
		{"token at start", "@name waves", "Ada waves"},
		{"adjacent to delimiter plus", "@hp+@mp", "10+4"},
		{"adjacent to delimiter paren", "(@hp)", "(10)"},
		{"delimiter ends the name", "@hp.", "10."},
		{"same token twice", "@hp vs @hp", "10 vs 10"},
		{"empty text", "", ""},
	}

	e := substEngine(vars)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.substitute(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("substitute(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSubstitute_Undeclared(t *testing.T) {
	e := substEngine(nil)
	_, err := e.substitute("hello @missing")
	wantKind(t, err, ErrorUndeclaredVariable)
}

func TestSubstitute_IdempotentWithoutTokens(t *testing.T) {
	e := substEngine(map[string]string{"x": "1"})
	text := "no variable references here"
	once, err := e.substitute(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := e.substitute(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if once != text || twice != text {
		t.Errorf("substitution changed token-free text: %q -> %q -> %q", text, once, twice)
	}
}
