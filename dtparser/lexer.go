package dtparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokNumber tokenKind = iota + 1
	tokWord
	tokSpace
	tokPunct
)

type token struct {
	kind tokenKind
	val  string
	pos  int
}

func (t token) is(kind tokenKind, val string) bool {
	return t.kind == kind && t.val == val
}

type lexState uint8

const (
	stStart lexState = iota
	stDigit
	stAlpha
	stSpace
)

const punctuation = "-/.:,+()'"

// lex splits datestr into runs of digits, runs of letters (upper-cased),
// collapsed whitespace and single punctuation runes.
func lex(datestr string) ([]token, error) {
	var (
		toks  []token
		state = stStart
		start int
	)
	flush := func(end int) {
		switch state {
		case stDigit:
			toks = append(toks, token{kind: tokNumber, val: datestr[start:end], pos: start})
		case stAlpha:
			toks = append(toks, token{kind: tokWord, val: strings.ToUpper(datestr[start:end]), pos: start})
		case stSpace:
			toks = append(toks, token{kind: tokSpace, val: " ", pos: start})
		}
		state = stStart
	}

	for i := 0; i < len(datestr); {
		r, w := utf8.DecodeRuneInString(datestr[i:])
		if r == utf8.RuneError && w <= 1 {
			return nil, &ParseError{Input: datestr, Msg: "invalid utf-8"}
		}

		switch state {
		case stDigit:
			if isASCIIDigit(r) {
				i += w
				continue
			}
			flush(i)
		case stAlpha:
			if unicode.IsLetter(r) {
				i += w
				continue
			}
			flush(i)
		case stSpace:
			if unicode.IsSpace(r) {
				i += w
				continue
			}
			flush(i)
		}

		// stStart: begin a new token
		switch {
		case isASCIIDigit(r):
			state, start = stDigit, i
		case unicode.IsLetter(r):
			state, start = stAlpha, i
		case unicode.IsSpace(r):
			state, start = stSpace, i
		case strings.ContainsRune(punctuation, r):
			toks = append(toks, token{kind: tokPunct, val: string(r), pos: i})
		default:
			return nil, &ParseError{Input: datestr, Token: string(r), Msg: "unexpected character"}
		}
		i += w
	}
	flush(len(datestr))
	return toks, nil
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
