package jsscanner

import (
	"unicode"
)

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

// IsIdentStart checks if the given rune may begin an identifier
func IsIdentStart(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '$' || ch == '_' ||
		ch >= 0x80 && (unicode.IsLetter(ch) || unicode.Is(unicode.Nl, ch))
}

// IsIdentPart checks if the given rune may continue an identifier
func IsIdentPart(ch rune) bool {
	if IsIdentStart(ch) || '0' <= ch && ch <= '9' {
		return true
	}
	return ch >= 0x80 && (unicode.In(ch, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || ch == zwnj || ch == zwj)
}

// IsDigit checks if the given rune is a decimal digit
func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return IsDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029'
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', '\u00a0', '\ufeff':
		return true
	}
	return ch >= 0x80 && unicode.Is(unicode.Zs, ch)
}

// IsIdentifierName returns true in the case that the provided string is
// a syntactically valid identifier name (keywords included) with no
// escape sequences.
func IsIdentifierName(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsIdentStart(r) {
				return false
			}
			continue
		}
		if !IsIdentPart(r) {
			return false
		}
	}
	return true
}

// IsReservedWord returns true for keywords, future reserved words and the
// literals null, true and false; none of them can name a binding or follow
// a dot in every engine.
func IsReservedWord(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsValidIdent returns true if s can be used as a plain identifier reference
func IsValidIdent(s string) bool {
	return IsIdentifierName(s) && !IsReservedWord(s)
}
