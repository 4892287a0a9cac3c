// Package printer renders javascript syntax trees as source text, either
// as canonical pretty-printed code or as minified code.
package printer

import (
	"bytes"
	"io"
	"strings"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	"github.com/kr/pretty"
)

// Options for the printer
type Options struct {
	// Minify drops all whitespace, braces and parentheses that are not
	// needed to preserve the meaning of the program.
	Minify bool
	// Indent is the string used for one level of indentation when
	// pretty printing.
	Indent string
	// ElideSemicolons drops statement terminators that precede a closing
	// brace or the end of the program. Only used when minifying.
	ElideSemicolons bool
}

// DefaultOptions pretty print with two space indentation
var DefaultOptions = Options{
	Indent: "  ",
}

// MinifyOptions produce the most compact output that keeps every
// statement terminator
var MinifyOptions = Options{
	Minify: true,
}

// Print renders n as source text. n is usually an *ast.Program, but any
// statement or expression can be printed. The tree must be well formed,
// e.g the output of parser.Parse, otherwise Print panics.
func Print(n ast.Node, opts Options) string {
	p := newPrinter(opts)
	p.node(n)
	return p.String()
}

// Fprint writes the text of n to w
func Fprint(w io.Writer, n ast.Node, opts Options) error {
	_, err := io.WriteString(w, Print(n, opts))
	return err
}

type printer struct {
	opts  Options
	buf   bytes.Buffer
	level int // indentation

	last     byte // last byte written, 0 at the start of the output
	regexEnd bool // the last token written was a regular expression
	semi     bool // a statement terminator is pending
}

func newPrinter(opts Options) *printer {
	if opts.Indent == "" {
		opts.Indent = DefaultOptions.Indent
	}
	return &printer{opts: opts}
}

// node prints the root of a tree
func (p *printer) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Program:
		if p.opts.Minify {
			p.stmts(n.Body)
			if !p.opts.ElideSemicolons {
				p.flush()
			}
			return
		}
		for i, stmt := range n.Body {
			if i > 0 {
				p.newline()
			}
			p.stmt(stmt)
		}
		if len(n.Body) > 0 {
			p.raw("\n")
		}
	default:
		if ast.IsStatement(n) {
			p.stmt(n)
			p.flush()
			return
		}
		p.expr(n, levelLowest, 0)
	}
}

func (p *printer) String() string {
	return p.buf.String()
}

// print writes a token, separated from the previous one by a space if
// the two would otherwise be read as a single token.
func (p *printer) print(s string) {
	if s == "" {
		return
	}
	p.flush()
	if p.needsSpace(s) {
		p.raw(" ")
	}
	p.raw(s)
}

func (p *printer) raw(s string) {
	if s == "" {
		return
	}
	p.buf.WriteString(s)
	p.last = s[len(s)-1]
	p.regexEnd = false
}

func (p *printer) needsSpace(s string) bool {
	c := s[0]
	switch {
	case p.last == 0:
		return false
	case isWordByte(c) && (isWordByte(p.last) || p.regexEnd):
		return true
	case (c == '+' || c == '-') && p.last == c:
		return true
	case p.last == '/' && (c == '/' || c == '*'):
		return true
	case strings.HasPrefix(s, "--") && bytes.HasSuffix(p.buf.Bytes(), []byte("<!")):
		return true
	case c == '>' && bytes.HasSuffix(p.buf.Bytes(), []byte("--")):
		return true
	}
	return false
}

// isWordByte returns true for bytes that may continue an identifier,
// keyword or number
func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '$' || c == '_' || c == '\\' || c >= 0x80
}

// space separates tokens in pretty mode only
func (p *printer) space() {
	if !p.opts.Minify {
		p.raw(" ")
	}
}

// comma separates list items
func (p *printer) comma() {
	p.print(",")
	p.space()
}

// op prints a binary or assignment operator
func (p *printer) op(s string) {
	p.space()
	p.print(s)
	p.space()
}

func (p *printer) newline() {
	p.raw("\n")
	p.raw(strings.Repeat(p.opts.Indent, p.level))
}

// terminate ends a statement. When minifying the semicolon is written
// lazily so that it can be dropped before a closing brace.
func (p *printer) terminate() {
	if p.opts.Minify {
		p.semi = true
		return
	}
	p.print(";")
}

func (p *printer) flush() {
	if p.semi {
		p.semi = false
		p.raw(";")
	}
}

// closeBrace ends a statement list
func (p *printer) closeBrace() {
	if p.opts.Minify && p.opts.ElideSemicolons {
		p.semi = false
	}
	p.print("}")
}

// unexpected reports a node that cannot appear where it was found
func unexpected(n ast.Node) {
	panic(pretty.Sprintf("printer: unexpected node %s: %# v", ast.Kind(n), n))
}
