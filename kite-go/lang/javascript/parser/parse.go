package parser

import (
	"io"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
)

// DefaultOptions for a parser
var DefaultOptions = Options{
	MaxDepth: 1000,
}

// Options for a parser
type Options struct {
	Trace       bool      // Trace determines whether the parse tree is printed to TraceWriter
	TraceWriter io.Writer // TraceWriter receives tracing output, os.Stdout if nil
	MaxDepth    int       // MaxDepth bounds statement and expression nesting, 0 means no limit
}

// Parse the source into a Program. The first lexical or syntax error
// aborts the parse; it is returned as a *jsscanner.Error and no tree is
// returned with it.
func Parse(src []byte, opts Options) (prog *ast.Program, err error) {
	p := newParser(src, opts)
	defer p.recoverParse(&err)
	prog = p.parseProgram()
	return prog, nil
}
