package jsscanner

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Word represents a token together with its position and literal content
type Word struct {
	Token Token
	// Offset and End are byte offsets into the source.
	Offset int
	End    int
	// Line and Column are 1-based; Column counts runes.
	Line   int
	Column int
	// NewlineBefore is set when at least one line terminator was skipped
	// between the previous token and this one.
	NewlineBefore bool
	// Literal holds the exact source text of literal tokens.
	Literal string
}

// String gets a string representation of a lexical symbol
func (w Word) String() string {
	switch {
	case w.Token.IsLiteral():
		s := w.Token.String()
		if len(w.Literal) > 50 || strings.Contains(w.Literal, "\n") {
			return s + fmt.Sprintf("[%d chars]", len(w.Literal))
		}
		return s + "[" + w.Literal + "]"
	case w.Token.IsOperator(), w.Token.IsKeyword():
		return `"` + w.Token.String() + `"`
	default:
		return w.Token.String()
	}
}

// Text returns the source text of the word
func (w Word) Text() string {
	if w.Token.IsLiteral() || w.Token == Illegal {
		return w.Literal
	}
	return w.Token.String()
}

// A Scanner holds the scanner's internal state while processing
// a given text. It stops at the first lexical error, after which
// Scan returns only Illegal words and Err reports the failure.
type Scanner struct {
	// immutable state
	src []byte

	// scanning state
	ch         rune  // current character
	offset     int   // character offset
	rdOffset   int   // reading offset (position after current character)
	line       int   // current line, 1-based
	lineOffset int   // offset of the first character of the current line
	prevTok    Token // previous token, Illegal before the first
	newline    bool  // a line terminator was skipped since the last token

	err *Error
}

// NewScanner creates a scanner positioned at the beginning of src.
// NOTE: the scanner expects src to be UTF8 encoded
func NewScanner(src []byte) *Scanner {
	s := &Scanner{
		src:     src,
		ch:      ' ',
		line:    1,
		prevTok: Illegal,
	}
	s.next()
	if s.ch == bom {
		s.next() // ignore Bom at file beginning
		s.lineOffset = s.offset
	}
	return s
}

const bom = 0xFeff // byte order mark, only permitted as very first character

// Err returns the first lexical error encountered, or nil
func (s *Scanner) Err() *Error {
	return s.err
}

// Scan extracts all tokens from the buffer, using only the preceding
// token to tell regular expressions from divisions.
func Scan(buf []byte) ([]Word, error) {
	s := NewScanner(buf)
	var words []Word
	for {
		w := s.Next()
		words = append(words, w)
		if w.Token == EOF || w.Token == Illegal {
			break
		}
	}
	if s.err != nil {
		return words, s.err
	}
	return words, nil
}

// Read the next Unicode char into s.ch.
// s.ch < 0 means end-of-file.
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal character NUL")
		case r >= 0x80:
			// not ASCII
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		s.ch = -1 // eof
	}
}

func (s *Scanner) peek() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

// column returns the 1-based rune column of offs, which must be on the current line
func (s *Scanner) column(offs int) int {
	return utf8.RuneCount(s.src[s.lineOffset:offs]) + 1
}

func (s *Scanner) error(offs int, msg string) {
	s.errorAt(s.line, s.column(offs), msg)
}

func (s *Scanner) errorAt(line, col int, msg string) {
	if s.err != nil {
		return
	}
	s.err = &Error{
		Kind:   Lexical,
		Line:   line,
		Column: col,
		Msg:    msg,
	}
}

// skipNewline consumes the line terminator at s.ch, treating \r\n as one
func (s *Scanner) skipNewline() {
	if s.ch == '\r' && s.peek() == '\n' {
		s.next()
	}
	s.next()
	s.line++
	s.lineOffset = s.offset
	s.newline = true
}

func (s *Scanner) skipLineComment() {
	for s.ch >= 0 && !isLineTerminator(s.ch) {
		s.next()
	}
}

func (s *Scanner) skipBlockComment() {
	// initial "/*" already consumed
	line, col := s.line, s.column(s.offset-2)
	for s.ch >= 0 {
		switch {
		case s.ch == '*' && s.peek() == '/':
			s.next()
			s.next()
			return
		case isLineTerminator(s.ch):
			s.skipNewline()
		default:
			s.next()
		}
	}
	s.errorAt(line, col, "unterminated comment")
}

func (s *Scanner) hasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.src[s.offset:], []byte(prefix))
}

// skipWhitespace skips whitespace and comments, recording crossed line terminators
func (s *Scanner) skipWhitespace() {
	for s.err == nil {
		switch {
		case isWhitespace(s.ch):
			s.next()
		case isLineTerminator(s.ch):
			s.skipNewline()
		case s.ch == '/' && s.peek() == '/':
			s.skipLineComment()
		case s.ch == '/' && s.peek() == '*':
			s.next()
			s.next()
			s.skipBlockComment()
		case s.ch == '<' && s.hasPrefix("<!--"):
			s.skipLineComment()
		case s.ch == '-' && (s.newline || s.prevTok == Illegal) && s.hasPrefix("-->"):
			s.skipLineComment()
		default:
			return
		}
	}
}

// Next returns the next token. A slash is scanned as a regular
// expression unless the preceding token permits division.
func (s *Scanner) Next() Word {
	s.skipWhitespace()

	w := Word{
		Offset:        s.offset,
		Line:          s.line,
		Column:        s.column(s.offset),
		NewlineBefore: s.newline,
	}
	s.newline = false

	if s.err != nil {
		return s.illegal(w)
	}

	switch ch := s.ch; {
	case ch < 0:
		w.Token = EOF
	case IsIdentStart(ch) || ch == '\\':
		w.Literal = s.scanIdentifier()
		w.Token = Lookup(w.Literal)
		if strings.IndexByte(w.Literal, '\\') >= 0 {
			w.Token = Ident
		}
	case IsDigit(ch) || ch == '.' && IsDigit(rune(s.peek())):
		w.Token = Number
		w.Literal = s.scanNumber()
	default:
		s.next() // always make progress
		switch ch {
		case '"', '\'':
			w.Token = String
			w.Literal = s.scanString(ch)
		case '/':
			if s.prevTok.PermitsDivision() {
				w.Token = s.switch2(Div, DivAssign)
			} else {
				w.Token = Regex
				w.Literal = s.scanRegex(w.Offset)
			}
		case '(':
			w.Token = LParen
		case ')':
			w.Token = RParen
		case '[':
			w.Token = LBrack
		case ']':
			w.Token = RBrack
		case '{':
			w.Token = LBrace
		case '}':
			w.Token = RBrace
		case '.':
			w.Token = Period
		case ';':
			w.Token = Semicolon
		case ',':
			w.Token = Comma
		case '?':
			w.Token = Question
		case ':':
			w.Token = Colon
		case '~':
			w.Token = Tilde
		case '*':
			w.Token = s.switch2(Mul, MulAssign)
		case '%':
			w.Token = s.switch2(Mod, ModAssign)
		case '^':
			w.Token = s.switch2(Xor, XorAssign)
		case '+':
			w.Token = s.switch3(Add, AddAssign, '+', Inc)
		case '-':
			w.Token = s.switch3(Sub, SubAssign, '-', Dec)
		case '&':
			w.Token = s.switch3(And, AndAssign, '&', LogicalAnd)
		case '|':
			w.Token = s.switch3(Or, OrAssign, '|', LogicalOr)
		case '=':
			w.Token = Assign
			if s.ch == '=' {
				s.next()
				w.Token = Eq
				if s.ch == '=' {
					s.next()
					w.Token = StrictEq
				}
			}
		case '!':
			w.Token = Not
			if s.ch == '=' {
				s.next()
				w.Token = Ne
				if s.ch == '=' {
					s.next()
					w.Token = StrictNe
				}
			}
		case '<':
			w.Token = s.switch4(Lt, Le, '<', Shl, ShlAssign)
		case '>':
			w.Token = Gt
			switch s.ch {
			case '=':
				s.next()
				w.Token = Ge
			case '>':
				s.next()
				w.Token = s.switch4(Shr, ShrAssign, '>', UShr, UShrAssign)
			}
		default:
			s.error(w.Offset, fmt.Sprintf("illegal character %#U", ch))
			w.Literal = string(ch)
		}
	}

	if s.err != nil {
		return s.illegal(w)
	}
	w.End = s.offset
	if s.prevTok == Period && w.Token.IsKeyword() {
		// a keyword used as a property name ends an expression
		s.prevTok = Ident
	} else {
		s.prevTok = w.Token
	}
	return w
}

func (s *Scanner) illegal(w Word) Word {
	w.Token = Illegal
	w.End = s.offset
	s.prevTok = Illegal
	return w
}

// RescanRegex rescans a Div or DivAssign word, which must be the most
// recently returned word, as the start of a regular expression literal.
func (s *Scanner) RescanRegex(w Word) (Word, error) {
	if w.Token != Div && w.Token != DivAssign {
		return w, fmt.Errorf("cannot rescan %s as a regular expression", w)
	}
	s.rdOffset = w.Offset + 1
	s.next()

	w.Token = Regex
	w.Literal = s.scanRegex(w.Offset)
	if s.err != nil {
		return s.illegal(w), s.err
	}
	w.End = s.offset
	s.prevTok = Regex
	return w, nil
}

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for first := true; ; first = false {
		switch {
		case s.ch == '\\':
			s.scanIdentifierEscape()
			if s.err != nil {
				return string(s.src[offs:s.offset])
			}
		case first && IsIdentStart(s.ch), !first && IsIdentPart(s.ch):
			s.next()
		default:
			return string(s.src[offs:s.offset])
		}
	}
}

func (s *Scanner) scanIdentifierEscape() {
	offs := s.offset
	s.next() // '\\'
	if s.ch != 'u' {
		s.error(offs, "invalid escape sequence in identifier")
		return
	}
	s.next()
	for i := 0; i < 4; i++ {
		if !isHexDigit(s.ch) {
			s.error(offs, "invalid unicode escape sequence in identifier")
			return
		}
		s.next()
	}
}

func (s *Scanner) scanDigits(accept func(rune) bool) int {
	var n int
	for accept(s.ch) {
		s.next()
		n++
	}
	return n
}

func (s *Scanner) scanNumber() string {
	offs := s.offset

	if s.ch == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.next()
		s.next()
		if s.scanDigits(isHexDigit) == 0 {
			s.error(offs, "illegal hexadecimal number")
		}
	} else {
		s.scanDigits(IsDigit)
		if s.ch == '.' {
			s.next()
			s.scanDigits(IsDigit)
		}
		if s.ch == 'e' || s.ch == 'E' {
			s.next()
			if s.ch == '-' || s.ch == '+' {
				s.next()
			}
			if s.scanDigits(IsDigit) == 0 {
				s.error(offs, "illegal floating-point exponent")
			}
		}
	}

	if s.err == nil && (IsIdentStart(s.ch) || IsDigit(s.ch) || s.ch == '\\') {
		s.error(s.offset, "identifier starts immediately after numeric literal")
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanString(quote rune) string {
	// opening quote already consumed
	offs := s.offset - 1
	line, col := s.line, s.column(offs)
	for {
		switch {
		case s.ch == quote:
			s.next()
			return string(s.src[offs:s.offset])
		case s.ch < 0, isLineTerminator(s.ch):
			s.errorAt(line, col, "unterminated string literal")
			return string(s.src[offs:s.offset])
		case s.ch == '\\':
			s.next()
			if isLineTerminator(s.ch) {
				// line continuation
				s.skipNewline()
				s.newline = false
			} else if s.ch >= 0 {
				s.next()
			}
		default:
			s.next()
		}
	}
}

// scanRegex scans the body and flags of a regular expression; offs is
// the offset of the opening slash, which is already consumed.
func (s *Scanner) scanRegex(offs int) string {
	var inClass bool
	for {
		switch {
		case s.ch < 0 || isLineTerminator(s.ch):
			s.error(offs, "unterminated regular expression literal")
			return string(s.src[offs:s.offset])
		case s.ch == '\\':
			s.next()
			if s.ch < 0 || isLineTerminator(s.ch) {
				continue
			}
			s.next()
		case s.ch == '[':
			inClass = true
			s.next()
		case s.ch == ']':
			inClass = false
			s.next()
		case s.ch == '/' && !inClass:
			s.next()
			for IsIdentPart(s.ch) {
				s.next()
			}
			return string(s.src[offs:s.offset])
		default:
			s.next()
		}
	}
}

// Helper functions for scanning multi-byte tokens such as >> += >>= .
// Different routines recognize different length tok_i based on matches
// of ch_i. If a token ends in '=', the result is tok1 or tok3
// respectively. Otherwise, the result is tok0 if there was no other
// matching character, or tok2 if the matching character was ch2.

func (s *Scanner) switch2(tok0, tok1 Token) Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	return tok0
}

func (s *Scanner) switch3(tok0, tok1 Token, ch2 rune, tok2 Token) Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	if s.ch == ch2 {
		s.next()
		return tok2
	}
	return tok0
}

func (s *Scanner) switch4(tok0, tok1 Token, ch2 rune, tok2, tok3 Token) Token {
	if s.ch == '=' {
		s.next()
		return tok1
	}
	if s.ch == ch2 {
		s.next()
		if s.ch == '=' {
			s.next()
			return tok3
		}
		return tok2
	}
	return tok0
}
