package javascript

import (
	"strings"
	"testing"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corpus covers every statement and expression form
var corpus = []string{
	`var a = 1, b;`,
	`function f(x, y) { return x * (y + 1); }`,
	`var o = { a: 1, 'b': 2, get c() { return 3; }, set c(v) { this._c = v; } };`,
	`for (var i = 0; i < 10; i++) { if (i % 2) continue; else break; }`,
	`for (var k in o) if (o.hasOwnProperty(k)) delete o[k];`,
	`while (a--) { b = a ? b : -a; }`,
	`do { a++; } while (a < 10)`,
	`switch (a) { case 1: b = 2; break; default: b = 3; }`,
	`try { throw new Error("x"); } catch (e) { log(e); } finally { done(); }`,
	`label: for (;;) { break label; }`,
	`with (o) { c = 1; }`,
	`var re = /ab+c/gi.test(s), d = a / b / c;`,
	`(function () { var s = "str"; return typeof s; })();`,
	`x = [1, , 3,];`,
	`a = b ? c : d, e = !f;`,
	`x = new Foo(1) + new (bar())();`,
	`if (a) { if (b) c(); } else d();`,
	`obj["key"] = obj["not valid"] + obj["if"];`,
	`for (var j = ("x" in o); j;) j = void 0;`,
	`debugger;`,
	`function outer(p) { var q = function inner(r) { return p + r; }; return q(p); }`,
}

func TestMinify_Seeds(t *testing.T) {
	cases := []struct {
		src      string
		expected string
	}{
		{"var a=1,b=2;", "var a=1,b=2;"},
		{"if(true){x=true;}else{x=false}", "if(true)x=true;else x=false;"},
		{`foo["bar"];`, "foo.bar;"},
		{`foo["bar bar"];`, `foo["bar bar"];`},
		{"do { x += 1; } while(true);", "do x+=1;while(true);"},
		{
			"if(obj){for(n in obj)if(v===false)break;}else for(;i<l;)if(nv===false)break;",
			"if(obj){for(n in obj)if(v===false)break;}else for(;i<l;)if(nv===false)break;",
		},
	}

	for _, c := range cases {
		out, err := Minify([]byte(c.src), false)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.expected, out, c.src)
	}
}

func TestMinify_Mangle(t *testing.T) {
	out, err := Minify([]byte(`function add(first, second) { var sum = first + second; return sum; }`), true)
	require.NoError(t, err)
	assert.Equal(t, "function add(a,b){var c=a+b;return c;}", out)
}

func TestMinify_SyntaxError(t *testing.T) {
	_, err := Minify([]byte("var a = ;"), false)
	require.Error(t, err)

	jsErr, ok := err.(*jsscanner.Error)
	require.True(t, ok, "expected *jsscanner.Error, got %T", err)
	assert.Equal(t, jsscanner.Syntax, jsErr.Kind)
	assert.Equal(t, 1, jsErr.Line)
	assert.Equal(t, 9, jsErr.Column)
}

func TestTransform_Options(t *testing.T) {
	src := []byte("var foo = 1; function bar(baz) { return foo + baz; }")

	out, err := Transform(src, Options{MangleToplevel: true})
	require.NoError(t, err)
	assert.Equal(t, "var a=1;function b(b){return a+b;}", out)

	out, err = Transform(src, Options{Minify: true, ElideSemicolons: true})
	require.NoError(t, err)
	assert.Equal(t, "var foo=1;function bar(baz){return foo+baz}", out)

	out, err = Transform(src, Options{Indent: "\t"})
	require.NoError(t, err)
	assert.Equal(t, "var foo = 1;\nfunction bar(baz) {\n\treturn foo + baz;\n}\n", out)
}

func TestTransformTimed(t *testing.T) {
	_, durations, err := TransformTimed([]byte("var a = 1;"), MinifyOptions)
	require.NoError(t, err)
	require.Len(t, durations, 3)
}

func TestToText(t *testing.T) {
	prog, err := Parse([]byte("if (a) { b(); }"))
	require.NoError(t, err)
	assert.Equal(t, "if(a)b();", ToText(prog, true))
	assert.Equal(t, "if (a) {\n  b();\n}\n", ToText(prog, false))
}

func TestCheck_Corpus(t *testing.T) {
	for _, opts := range []Options{
		DefaultOptions,
		{Minify: true},
		{Minify: true, ElideSemicolons: true},
		MinifyOptions,
		{MangleToplevel: true},
	} {
		for _, src := range corpus {
			assert.NoError(t, Check([]byte(src), opts), "%s with %+v", src, opts)
		}
	}
}

func TestCheck_PrettyIdempotent(t *testing.T) {
	for _, src := range corpus {
		first, err := Transform([]byte(src), DefaultOptions)
		require.NoError(t, err, src)
		second, err := Transform([]byte(first), DefaultOptions)
		require.NoError(t, err, first)
		assert.Equal(t, first, second)
	}
}

func TestCheck_SyntaxError(t *testing.T) {
	err := Check([]byte("a = (1;"), DefaultOptions)
	_, ok := err.(*jsscanner.Error)
	assert.True(t, ok)
}

func TestDiffTrees(t *testing.T) {
	a, err := Parse([]byte("a = 1; b = 2;"))
	require.NoError(t, err)
	b, err := Parse([]byte("a = 1; c = 2;"))
	require.NoError(t, err)
	require.False(t, ast.Equal(a, b))

	diff := diffTrees(a, b)
	assert.True(t, strings.Contains(diff, "- "), diff)
	assert.True(t, strings.Contains(diff, "+ "), diff)
}
