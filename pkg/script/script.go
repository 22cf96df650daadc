// Package script loads story script files and hands them to the engine
// as an ordered sequence of lines.
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Script is a loaded script file.
type Script struct {
	FileName string   // base name of the script file
	Lines    []string // UTF-8 lines, trailing CR/LF stripped
	Size     int64    // file size in bytes
}

// Loader reads script files and decodes them to UTF-8.
type Loader struct {
	encoding string
}

// NewLoader creates a Loader for the given encoding name.
func NewLoader(encoding string) *Loader {
	return &Loader{
		encoding: encoding,
	}
}

// Load reads and decodes a single script file.
func (l *Loader) Load(path string) (*Script, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	content, err := l.decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert encoding: %w", err)
	}

	return &Script{
		FileName: filepath.Base(path),
		Lines:    SplitLines(content),
		Size:     info.Size(),
	}, nil
}

// decode converts raw file bytes to a UTF-8 string.
func (l *Loader) decode(data []byte) (string, error) {
	var dec *encoding.Decoder

	switch strings.ToLower(l.encoding) {
	case "", "utf-8", "utf8":
		return string(data), nil
	case "shift-jis", "shift_jis", "sjis":
		dec = japanese.ShiftJIS.NewDecoder()
	case "latin-1", "iso-8859-1":
		dec = charmap.ISO8859_1.NewDecoder()
	default:
		return "", fmt.Errorf("unsupported encoding: %s", l.encoding)
	}

	reader := transform.NewReader(strings.NewReader(string(data)), dec)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", l.encoding, err)
	}

	return string(utf8Data), nil
}

// SplitLines splits script content into lines. Trailing carriage returns
// are stripped so CRLF sources behave like LF sources, and a final newline
// does not produce a phantom empty line.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
