// Package javascript parses, pretty prints and minifies ES5 source code.
package javascript

import (
	"bytes"
	"strings"
	"time"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/mangle"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/parser"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/printer"
	"github.com/kiteco/jsmin/kite-golib/errors"
	"github.com/kiteco/jsmin/kite-golib/kitelog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Options for a transformation
type Options struct {
	Minify          bool
	Mangle          bool   // rename local bindings, implies Minify
	MangleToplevel  bool   // also rename global bindings, implies Mangle
	ElideSemicolons bool   // drop semicolons before } and at the end, minified output only
	Indent          string // pretty printed output only, two spaces if empty
}

// DefaultOptions pretty print
var DefaultOptions = Options{}

// MinifyOptions minify and mangle local names
var MinifyOptions = Options{
	Minify: true,
	Mangle: true,
}

func (o Options) normalize() Options {
	if o.MangleToplevel {
		o.Mangle = true
	}
	if o.Mangle {
		o.Minify = true
	}
	return o
}

func (o Options) printer() printer.Options {
	if o.Minify {
		return printer.Options{Minify: true, ElideSemicolons: o.ElideSemicolons}
	}
	return printer.Options{Indent: o.Indent}
}

// Parse parses src with the default parser options. Failures are returned
// as a *jsscanner.Error.
func Parse(src []byte) (*ast.Program, error) {
	defer parseDuration.DeferRecord(time.Now())
	prog, err := parser.Parse(src, parser.DefaultOptions)
	parseFailures.Record(err != nil)
	return prog, err
}

// ToText renders n, minified if minify is set and pretty printed otherwise
func ToText(n ast.Node, minify bool) string {
	if minify {
		return printer.Print(n, printer.MinifyOptions)
	}
	return printer.Print(n, printer.DefaultOptions)
}

// Minify parses src and renders it minified, optionally mangling local
// names. Syntax errors are returned unchanged.
func Minify(src []byte, mangleNames bool) (string, error) {
	return Transform(src, Options{Minify: true, Mangle: mangleNames})
}

// Transform parses src and renders it according to opts
func Transform(src []byte, opts Options) (string, error) {
	out, _, err := TransformTimed(src, opts)
	return out, err
}

// TransformTimed is Transform, also returning the time spent in each phase
func TransformTimed(src []byte, opts Options) (string, kitelog.Durations, error) {
	opts = opts.normalize()
	defer minifyDuration.DeferRecord(time.Now())
	bytesIn.Record(int64(len(src)))

	var durations kitelog.Durations
	var prog *ast.Program
	var err error
	durations.Time("parse", func() {
		prog, err = Parse(src)
	})
	if err != nil {
		return "", durations, err
	}

	if opts.Mangle {
		durations.Time("mangle", func() {
			stats := mangle.Mangle(prog, mangle.Options{Toplevel: opts.MangleToplevel})
			renamed.Add(int64(stats.Renamed))
		})
	}

	var out string
	durations.Time("print", func() {
		out = printer.Print(prog, opts.printer())
	})
	bytesOut.Record(int64(len(out)))
	return out, durations, nil
}

// Check transforms src according to opts, parses the result again and
// verifies that it denotes the same program. Minified output may rewrite
// bracket accesses and drop braces, and mangled output may rename
// bindings but must reference the same globals.
func Check(src []byte, opts Options) error {
	opts = opts.normalize()
	prog, err := Parse(src)
	if err != nil {
		return err
	}

	globals := mangle.Globals(prog)
	if opts.Mangle {
		mangle.Mangle(prog, mangle.Options{Toplevel: opts.MangleToplevel})
	}
	out := printer.Print(prog, opts.printer())

	reparsed, err := Parse([]byte(out))
	if err != nil {
		return errors.Errorf("output does not parse: %v", err)
	}

	same := ast.Equal(prog, reparsed)
	if opts.Minify {
		same = ast.Equivalent(prog, reparsed)
	}
	if !same {
		return errors.Errorf("output differs from input:\n%s", diffTrees(prog, reparsed))
	}

	if after := mangle.Globals(reparsed); !equalStrings(globals, after) {
		return errors.Errorf("output references globals %v, input references %v", after, globals)
	}
	return nil
}

// diffTrees renders a line diff of the dumps of two trees
func diffTrees(a, b ast.Node) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(ast.Sprint(a), ast.Sprint(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var buf bytes.Buffer
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
