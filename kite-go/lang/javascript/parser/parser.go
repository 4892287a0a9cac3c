package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	jsscan "github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"
	"github.com/kiteco/jsmin/kite-golib/errors"
)

var errWrongToken = errors.New("unexpected token")

// A parser processes a token stream into a syntax tree
type parser struct {
	scanner *jsscan.Scanner
	word    jsscan.Word // current token
	prev    jsscan.Word // last consumed token
	opts    Options

	inFunction int
	depth      int

	// Tracing
	indent int

	err *jsscan.Error
}

func newParser(src []byte, opts Options) *parser {
	if opts.TraceWriter == nil {
		opts.TraceWriter = os.Stdout
	}
	return &parser{
		scanner: jsscan.NewScanner(src),
		opts:    opts,
	}
}

func (p *parser) printTrace(a ...interface{}) {
	p.printTraceSymbol("  ", a...)
}

func (p *parser) printTraceSymbol(symbol string, a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	fmt.Fprintf(p.opts.TraceWriter, "%s%5d:%3d: ", symbol, p.word.Line, p.word.Column)
	i := 2 * p.indent
	for i > len(dots) {
		fmt.Fprint(p.opts.TraceWriter, dots)
		i -= len(dots)
	}
	fmt.Fprint(p.opts.TraceWriter, dots[:i])
	fmt.Fprintln(p.opts.TraceWriter, a...)
}

func trace(p *parser, msg string) *parser {
	p.printTrace(msg, "(")
	p.indent++
	return p
}

// Usage pattern: defer un(trace(p, "..."))
func un(p *parser) {
	p.indent--
	p.printTrace(")")
}

func (p *parser) recoverParse(err *error) {
	if ex := recover(); ex != nil {
		if ex != errWrongToken {
			panic(ex)
		}
	}
	if p.err != nil {
		*err = p.err
	}
}

// enter guards recursion into nested statements and expressions
func (p *parser) enter() {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		p.error(p.word, "maximum nesting depth exceeded")
	}
}

func (p *parser) leave() {
	p.depth--
}

// error records a syntax error at w and aborts the parse
func (p *parser) error(w jsscan.Word, msg string) {
	if p.err == nil {
		p.err = &jsscan.Error{
			Kind:   jsscan.Syntax,
			Line:   w.Line,
			Column: w.Column,
			Msg:    msg,
		}
	}
	panic(errWrongToken)
}

func (p *parser) errorExpected(what string) {
	found := p.word.String()
	if p.word.Token == jsscan.EOF {
		found = "end of input"
	}
	p.error(p.word, fmt.Sprintf("expected %s, found %s", what, found))
}

// lexError aborts the parse with the scanner's error
func (p *parser) lexError(err *jsscan.Error) {
	if p.err == nil {
		p.err = err
	}
	panic(errWrongToken)
}

// next moves the scanner forward one token
func (p *parser) next() {
	// Because of one-token look-ahead, print the previous token
	// when tracing as it provides a more readable output.
	if p.opts.Trace && p.word.Token != jsscan.Illegal {
		s := p.word.Token.String()
		switch {
		case p.word.Token.IsLiteral():
			if len(p.word.Literal) > 50 || strings.Contains(p.word.Literal, "\n") {
				p.printTraceSymbol(" -", s, fmt.Sprintf("<%d chars not shown>", len(p.word.Literal)))
			} else {
				p.printTraceSymbol(" -", s, p.word.Literal)
			}
		case p.word.Token.IsOperator(), p.word.Token.IsKeyword():
			p.printTraceSymbol(" -", "\""+s+"\"")
		default:
			p.printTraceSymbol(" -", s)
		}
	}

	p.prev = p.word
	p.word = p.scanner.Next()
	if p.word.Token == jsscan.Illegal {
		p.lexError(p.scanner.Err())
	}
}

// rescanRegex turns a division token at an operand position into a
// regular expression literal
func (p *parser) rescanRegex() {
	w, err := p.scanner.RescanRegex(p.word)
	if err != nil {
		p.lexError(p.scanner.Err())
	}
	p.word = w
}

func (p *parser) at(tok jsscan.Token) bool {
	return p.word.Token == tok
}

// take consumes the current token if it is tok
func (p *parser) take(tok jsscan.Token) bool {
	if p.word.Token != tok {
		return false
	}
	p.next()
	return true
}

// expect consumes tok or fails the parse
func (p *parser) expect(tok jsscan.Token) jsscan.Word {
	if p.word.Token != tok {
		p.errorExpected(tok.String())
	}
	w := p.word
	p.next()
	return w
}

// semicolon consumes a statement terminator, inserting one where the
// next token is preceded by a line terminator, is a closing brace or
// ends the input.
func (p *parser) semicolon() {
	if p.take(jsscan.Semicolon) {
		return
	}
	if p.at(jsscan.RBrace) || p.at(jsscan.EOF) || p.word.NewlineBefore {
		return
	}
	p.errorExpected(";")
}

func pos(w jsscan.Word) ast.Pos {
	return ast.Pos{Line: w.Line, Column: w.Column}
}

func (p *parser) parseProgram() *ast.Program {
	if p.opts.Trace {
		defer un(trace(p, "Program"))
	}

	p.next()
	prog := &ast.Program{Pos: pos(p.word)}
	for !p.at(jsscan.EOF) {
		prog.Body = append(prog.Body, p.parseStatement())
	}
	return prog
}
