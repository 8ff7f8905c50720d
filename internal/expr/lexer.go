package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokPercent:
		return "'%'"
	}
	return "unknown"
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits input into tokens. Keypad symbols (×, ÷, −) are accepted as
// operator aliases; any other non-space rune is an error.
func lex(input string) ([]token, error) {
	var toks []token
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			return nil, fmt.Errorf("invalid UTF-8 at offset %d", i)
		case unicode.IsSpace(r):
			i += size
		case r == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", pos: i})
			i += size
		case r == '-' || r == '−':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i += size
		case r == '*' || r == '×':
			toks = append(toks, token{kind: tokStar, text: "*", pos: i})
			i += size
		case r == '/' || r == '÷':
			toks = append(toks, token{kind: tokSlash, text: "/", pos: i})
			i += size
		case r == '%':
			toks = append(toks, token{kind: tokPercent, text: "%", pos: i})
			i += size
		case isDigit(r) || r == '.':
			start := i
			dotSeen := false
			for i < len(input) {
				c := input[i]
				if c == '.' {
					if dotSeen {
						return nil, fmt.Errorf("second decimal point at offset %d", i)
					}
					dotSeen = true
					i++
					continue
				}
				if !isDigit(rune(c)) {
					break
				}
				i++
			}
			text := input[start:i]
			if text == "." {
				return nil, fmt.Errorf("lone decimal point at offset %d", start)
			}
			toks = append(toks, token{kind: tokNumber, text: text, pos: start})
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", r, i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})
	return toks, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
