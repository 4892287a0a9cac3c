package mangle

import (
	"testing"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/parser"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMangle(t *testing.T, src string, opts Options) (string, *Stats) {
	prog, err := parser.Parse([]byte(src), parser.DefaultOptions)
	require.NoError(t, err)
	stats := Mangle(prog, opts)
	return printer.Print(prog, printer.MinifyOptions), stats
}

func assertMangle(t *testing.T, src, expected string, opts Options) {
	actual, _ := requireMangle(t, src, opts)
	assert.Equal(t, expected, actual, "mangling %s", src)
}

func TestNameAt(t *testing.T) {
	assert.Equal(t, "a", nameAt(0))
	assert.Equal(t, "z", nameAt(25))
	assert.Equal(t, "A", nameAt(26))
	assert.Equal(t, "_", nameAt(53))
	assert.Equal(t, "aa", nameAt(54))
	assert.Equal(t, "ba", nameAt(55))
	assert.Equal(t, "a0", nameAt(54+54*54))
}

func TestGenerator(t *testing.T) {
	g := generator{taken: func(name string) bool { return name == "b" }}

	seen := make(map[string]bool)
	for i := 0; i < 5000; i++ {
		name := g.name()
		require.False(t, seen[name], "%s generated twice", name)
		require.True(t, jsscanner.IsValidIdent(name), "%s is not a valid identifier", name)
		seen[name] = true
	}
	assert.False(t, seen["b"])
	assert.False(t, seen["do"])
	assert.False(t, seen["if"])
	assert.False(t, seen["in"])
	assert.True(t, seen["a"])
	assert.True(t, seen["c"])
}

func TestMangle_Locals(t *testing.T) {
	src := `function foo(bar, baz) { var qux = bar + baz; return qux; }`
	actual, stats := requireMangle(t, src, Options{})
	assert.Equal(t, "function foo(a,b){var c=a+b;return c;}", actual)
	assert.Equal(t, &Stats{Scopes: 2, Renamed: 3}, stats)
}

func TestMangle_Globals(t *testing.T) {
	// globals keep their names and locals do not shadow them
	assertMangle(t,
		`function f(longName) { return a + longName; }`,
		`function f(b){return a+b;}`, Options{})
	assertMangle(t,
		`var x = 1; function f(y) { return x + y; }`,
		`var x=1;function f(a){return x+a;}`, Options{})
}

func TestMangle_Toplevel(t *testing.T) {
	src := `var foo = 1; function bar() { return foo; }`
	actual, stats := requireMangle(t, src, Options{Toplevel: true})
	assert.Equal(t, "var a=1;function b(){return a;}", actual)
	assert.Equal(t, 2, stats.Renamed)
}

func TestMangle_Nested(t *testing.T) {
	assertMangle(t,
		`function outer(p) { function inner(q) { return p + q; } return inner(p); }`,
		`function outer(a){function b(b){return a+b;}return b(a);}`, Options{})
}

func TestMangle_Hoisting(t *testing.T) {
	assertMangle(t,
		`function f() { g(); function g() {} var h = 1; }`,
		`function f(){a();function a(){}var b=1;}`, Options{})
}

func TestMangle_FunctionExpressionName(t *testing.T) {
	assertMangle(t,
		`var v = function fact(n) { return n ? n * fact(n - 1) : 1; };`,
		`var v=function a(b){return b?b*a(b-1):1;};`, Options{})
}

func TestMangle_Catch(t *testing.T) {
	assertMangle(t,
		`function f(err) { try { g(); } catch (e) { return e + err; } }`,
		`function f(a){try{g();}catch(b){return b+a;}}`, Options{})

	// var declarations in a catch block belong to the function
	assertMangle(t,
		`function f() { try {} catch (e) { var e2 = e; } return e2; }`,
		`function f(){try{}catch(b){var a=b;}return a;}`, Options{})

	// a var redeclaring the parameter assigns the parameter but declares
	// the name in the function, so both keep one name
	assertMangle(t,
		`function f(p) { try {} catch (e) { var e = 1; } return [p, e]; }`,
		`function f(a){try{}catch(b){var b=1;}return[a,b];}`, Options{})
	assertMangle(t,
		`function f() { try {} catch (err) { try {} catch (err) { var err; } } return err; }`,
		`function f(){try{}catch(a){try{}catch(a){var a;}}return a;}`, Options{})

	// the global scope keeps its names, so the parameter does too
	assertMangle(t,
		`try {} catch (e) { var e = 1; } use(e);`,
		`try{}catch(e){var e=1;}use(e);`, Options{})
}

func TestMangle_Accessors(t *testing.T) {
	assertMangle(t,
		`var o = { get value() { var v = 1; return v; }, set value(val) { this.v = val; } };`,
		`var o={get value(){var a=1;return a;},set value(a){this.v=a;}};`, Options{})
}

func TestMangle_PropertiesAndLabels(t *testing.T) {
	assertMangle(t,
		`function f(obj) { loop: for (;;) { obj.prop = {key: obj}; break loop; } }`,
		`function f(a){loop:for(;;){a.prop={key:a};break loop;}}`, Options{})
}

func TestMangle_Eval(t *testing.T) {
	src := `function f(x) { eval("x"); function g(y) { return y; } }`
	actual, stats := requireMangle(t, src, Options{Toplevel: true})
	assert.Equal(t, `function f(x){eval("x");function g(a){return a;}}`, actual)
	assert.Equal(t, &Stats{Scopes: 3, Renamed: 1, Skipped: 2}, stats)
}

func TestMangle_With(t *testing.T) {
	assertMangle(t,
		`function f(o, v) { with (o) { v = 1; } }`,
		`function f(o,v){with(o)v=1;}`, Options{})
}

func TestMangle_Pinned(t *testing.T) {
	prog, err := parser.Parse([]byte(`function f(x) { function g(a) { return a + x; } }`), parser.DefaultOptions)
	require.NoError(t, err)

	ast.Inspect(prog, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok && id.Value == "a" {
			id.Mangle = false
		}
		return true
	})
	Mangle(prog, Options{})
	assert.Equal(t, "function f(b){function c(a){return a+b;}}", printer.Print(prog, printer.MinifyOptions))
}

func TestMangle_Deterministic(t *testing.T) {
	src := `
function a(one, two, three) {
	var four = one + two, five = function (six) { return six * three; };
	try { five(four); } catch (seven) { return seven; }
	return { get eight() { return four; } };
}`
	first, _ := requireMangle(t, src, Options{Toplevel: true})
	for i := 0; i < 10; i++ {
		actual, _ := requireMangle(t, src, Options{Toplevel: true})
		require.Equal(t, first, actual)
	}
}

func TestMangle_PreservesStructure(t *testing.T) {
	src := `function sum(list) { var total = 0; for (var i in list) { total += list[i]; } return total; }`
	prog, err := parser.Parse([]byte(src), parser.DefaultOptions)
	require.NoError(t, err)
	Mangle(prog, Options{})

	out := printer.Print(prog, printer.MinifyOptions)
	assert.Equal(t, "function sum(a){var b=0;for(var c in a)b+=a[c];return b;}", out)

	reparsed, err := parser.Parse([]byte(out), parser.DefaultOptions)
	require.NoError(t, err)
	assert.True(t, ast.Equivalent(prog, reparsed))
}

func TestGlobals(t *testing.T) {
	src := `var a = 1; function f(x) { return x + a + window.b + c; } try {} catch (e) { d(e); }`
	prog, err := parser.Parse([]byte(src), parser.DefaultOptions)
	require.NoError(t, err)

	expected := []string{"c", "d", "window"}
	assert.Equal(t, expected, Globals(prog))

	Mangle(prog, Options{Toplevel: true})
	assert.Equal(t, expected, Globals(prog))
}
