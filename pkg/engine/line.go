package engine

// lineKind classifies a script line by its leading sigil. The kind is
// determined once per step and matched exhaustively in the run loop.
type lineKind int

const (
	kindBlank   lineKind = iota // empty line
	kindLabel                   // ":name" label declaration
	kindComment                 // "*..." ignored
	kindBreak                   // "|" emit one empty output line
	kindGoto                    // "#label" unconditional jump
	kindCond                    // "!expr:then[:else]" conditional
	kindVar                     // "@name=..." assignment or variable-bearing text
	kindMenu                    // "?prompt:label" menu option (consecutive lines group)
	kindInput                   // "^i.../^s..." blocking input request
	kindText                    // anything else: substitute and print
)

func classify(line string) lineKind {
	if line == "" {
		return kindBlank
	}
	switch line[0] {
	case ':':
		return kindLabel
	case '*':
		return kindComment
	case '|':
		return kindBreak
	case '#':
		return kindGoto
	case '!':
		return kindCond
	case '@':
		return kindVar
	case '?':
		return kindMenu
	case '^':
		return kindInput
	default:
		return kindText
	}
}
