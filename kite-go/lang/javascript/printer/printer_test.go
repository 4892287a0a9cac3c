package printer

import (
	"strings"
	"testing"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	src      string
	expected string
}

func requireParse(t *testing.T, src string) *ast.Program {
	prog, err := parser.Parse([]byte(src), parser.DefaultOptions)
	require.NoError(t, err, src)
	return prog
}

// runTestCases prints each source with opts, checks the output and that
// it parses back to an equivalent program
func runTestCases(t *testing.T, opts Options, tcs []testCase) {
	for _, tc := range tcs {
		prog := requireParse(t, tc.src)
		out := Print(prog, opts)
		assert.Equal(t, tc.expected, out, tc.src)

		reparsed := requireParse(t, out)
		if opts.Minify {
			assert.True(t, ast.Equivalent(prog, reparsed), "%s\n%s", tc.src, out)
		} else {
			assert.True(t, ast.Equal(prog, reparsed), "%s\n%s", tc.src, out)
		}
	}
}

// prettyCases are printed back unchanged
var prettyCases = []string{
	`
{
  var a = 5;
}`,
	`
var a;
var b;
var a, b = 3;
var a = 1, b;
var a = 5, b = 7;`,
	`
;
;
;`,
	`if (true) var x = 100;`,
	`
if (true) {
  var x = 100;
  var y = 200;
}`,
	`if (true) if (true) var x = 100; else var y = 200;`,
	`
if (true) {
  var x = 100;
} else {
  var y = 200;
}`,
	`
for (i = 0; i < 10; i++) {
  x = 10 * i;
}`,
	`
for (var i = 0, j = 10; i < j && j < 15; i++, j++) {
  x = i * j;
}`,
	`
for (p in obj) {

}`,
	`
for (Q || (Q = []); d < b; ) {
  d = 1;
}`,
	`
for (new Foo(); d < b; ) {
  d = 1;
}`,
	`
for (2 >> (foo ? 32 : 43) && 54; 21; ) {
  a = c;
}`,
	`
for (/^.+/g; cond(); ++z) {
  ev();
}`,
	`
for (var p in obj) {
  p = 1;
}`,
	`
do {
  x += 1;
} while (true);`,
	`
while (false) {
  x = null;
}`,
	`
while (true) {
  continue label1;
  s = 'I am not reachable';
}`,
	`
while (true) {
  break;
  s = 'I am not reachable';
}`,
	`
with (x) {
  var y = x * 2;
}`,
	`
label: while (true) {
  x *= 3;
}`,
	`
switch (day_of_week) {
  case 6:
  case 7:
    x = 'Weekend';
    break;
  case 1:
    x = 'Monday';
    break;
  default:
    break;
}`,
	`throw 'exc';`,
	`debugger;`,
	`
5 + 7 - 20 * 10;
++x;
--x;
x++;
x--;
s = mot ? z : /x:3;x<5;y</g / i;`,
	`
try {
  x = 3;
} catch (exc) {
  x = exc;
}`,
	`
try {
  x = 5;
} catch (exc) {
  x = exc;
} finally {
  y = null;
}`,
	`
function foo(x, y) {
  z = 10;
  return x + y + z;
}`,
	`
var a = function() {
  return 10;
};`,
	`
var a = function foo(x, y) {
  return x + y;
};`,
	`
function foo() {
  function bar() {

  }
}`,
	`
var mult = function(x) {
  return x * 10;
}();`,
	`foo(x, 7);`,
	`foo()[10];`,
	`foo().foo;`,
	`var bar = new Foo.Bar()[7];`,
	`
var obj = {
  foo: 10,
  bar: 20
};`,
	`
var obj = {
  1: 'a',
  'b': 200
};`,
	`
var obj = {
};`,
	`
var a = [1,2,3,4,5];
var res = a[3];`,
	`var a = [,,,];`,
	`var a = [1,,,4];`,
	`var a = [1,,3,,5];`,
	`
String.prototype.foo = function(data) {
  var tmpl = this.toString();
  return tmpl.replace(/{{\s*(.*?)\s*}}/g, function(a, b) {
    var node = data;
    if (true) {
      var value = true;
    } else {
      var value = false;
    }
    $.each(n.split('.'), function(i, sym) {
      node = node[sym];
    });
    return node;
  });
};`,
	`(options = arguments[i]) != null;`,
	`e.b(d) ? (a = [c.f(j[1])], e.fn.attr.call(a, d, !0)) : a = [k.f(j[1])];`,
	`
(function() {
  x = 5;
}());`,
	`var el = (elem ? elem.ownerDocument || elem : 0).documentElement;`,
	`typeof second.length === "number";`,
	`
Name.prototype = {
  get fullName() {
    return this.first + " " + this.last;
  },
  set fullName(name) {
    var names = name.split(" ");
    this.first = names[0];
    this.last = names[1];
  }
};`,
}

func TestPrint_Pretty(t *testing.T) {
	var tcs []testCase
	for _, src := range prettyCases {
		src = strings.TrimPrefix(src, "\n")
		tcs = append(tcs, testCase{src, src + "\n"})
	}
	runTestCases(t, DefaultOptions, tcs)
}

func TestPrint_PrettyIndent(t *testing.T) {
	prog := requireParse(t, "function f() { if (a) { b(); } }")
	expected := "function f() {\n\tif (a) {\n\t\tb();\n\t}\n}\n"
	assert.Equal(t, expected, Print(prog, Options{Indent: "\t"}))

	assert.Equal(t, "", Print(requireParse(t, ""), DefaultOptions))
}

func TestPrint_Minify(t *testing.T) {
	tcs := []testCase{
		{"var a=1,b=2;", "var a=1,b=2;"},
		{`
jQuery.fn = jQuery.prototype = {
	// For internal use only.
	_data: function( elem, name, data ) {
		return jQuery.data( elem, name, data, true );
	}
};`, "jQuery.fn=jQuery.prototype={_data:function(elem,name,data){return jQuery.data(elem,name,data,true);}};"},
		{"context = context instanceof jQuery ? context[0] : context;", "context=context instanceof jQuery?context[0]:context;"},
		{`
/*
 * A number of helper functions used for managing events.
 */
if ( elem && elem.parentNode ) {
	// Handle the case where IE and Opera return items
	if ( elem.id !== match[2] ) {
		return rootjQuery.find( selector );
	}

	this.length = 1;
	this[0] = elem;
}`, "if(elem&&elem.parentNode){if(elem.id!==match[2])return rootjQuery.find(selector);this.length=1;this[0]=elem;}"},
		{`
var a = function( obj ) {
	for ( var name in obj ) {
		return false;
	}
	return true;
};`, "var a=function(obj){for(var name in obj)return false;return true;};"},
		{`
x = "string", y = 5;

(x = 5) ? true : false;

for (p in obj)
;

if (true)
  val = null;
else
  val = false;
`, `x="string",y=5;(x=5)?true:false;for(p in obj);if(true)val=null;else val=false;`},
		{`
for (x = 0; true; x++)
;
for (; true; x++)
;
for (x = 0, y = 5; true; x++)
;

y = (x + 5) * 20;
`, "for(x=0;true;x++);for(;true;x++);for(x=0,y=5;true;x++);y=(x+5)*20;"},
		{"delete x;\ntypeof x;\nvoid x;", "delete x;typeof x;void x;"},
		{`
label:
if ( i == 0 )
  continue label;
switch (day) {
case 5:
  break ;
default:
  break label;
}`, "label:if(i==0)continue label;switch(day){case 5:break;default:break label;}"},
		{`
while (i <= 7) {
  if ( i == 3 )
      continue;
  if ( i == 0 )
      break;
}`, "while(i<=7){if(i==3)continue;if(i==0)break;}"},
		{`
function a(x, y) {
 var re = /ab+c/;
 if (x == 1)
   return x + y;
 if (x == 3)
   return {x: 1};
 else
   return;
}`, "function a(x,y){var re=/ab+c/;if(x==1)return x+y;if(x==3)return{x:1};else return;}"},
		{"x = new jQuery.fn.init( selector, context, rootjQuery );", "x=new jQuery.fn.init(selector,context,rootjQuery);"},
		{`
if (true) {
  x = true;
  y = 3;
} else {
  x = false
  y = 5
}`, "if(true){x=true;y=3;}else{x=false;y=5;}"},
		{`
if (true) {
  x = true;
  y = 3;
} else
  (x + ' qw').split(' ');`, "if(true){x=true;y=3;}else(x+' qw').split(' ');"},
	}
	runTestCases(t, MinifyOptions, tcs)
}

func TestPrint_MinifyBraces(t *testing.T) {
	tcs := []testCase{
		{"do { x += 1; } while(true);", "do x+=1;while(true);"},
		{"do { x += 1; y += 1;} while(true);", "do{x+=1;y+=1;}while(true);"},
		{"var a = [1, 2, 3, ,,,5];", "var a=[1,2,3,,,,5];"},
		{"with (obj) {\n  a = b;\n}", "with(obj)a=b;"},
		{"with (obj) {\n  a = b;\n  c = d;\n}", "with(obj){a=b;c=d;}"},
		{"if(true){x=true;}else{x=false}", "if(true)x=true;else x=false;"},
		{"if (true) {\n  x = true;\n  y = false;\n} else {\n  x = false;\n  y = true;\n}", "if(true){x=true;y=false;}else{x=false;y=true;}"},
		{`
try {
  throw "my_exception"; // generates an exception
}
catch (e) {
  // statements to handle any exceptions
  log(e); // pass exception object to error handler
}
finally {
  closefiles(); // always close the resource
}`, `try{throw "my_exception";}catch(e){log(e);}finally{closefiles();}`},
		{"try {\n}\ncatch (e) {\n}\nfinally {\n}", "try{}catch(e){}finally{}"},
		{"if (a) { { b(); } }", "if(a)b();"},
		{"if (a) { function f() {} }", "if(a){function f(){}}"},
		{"while (a) {}", "while(a){}"},
		{"for(o(); i < 3; i++) {}", "for(o();i<3;i++){}"},
		{"for(i++; i < 3; i++) {}", "for(i++;i<3;i++){}"},
		{"for(i--; i < 3; i++) {}", "for(i--;i<3;i++){}"},
		{"for(i; i < 3; i++) {}", "for(i;i<3;i++){}"},
		{"for(a?b:c;d;)e=1;", "for(a?b:c;d;)e=1;"},
		{"label: { a(); }", "label:{a();}"},
	}
	runTestCases(t, MinifyOptions, tcs)
}

func TestPrint_DanglingElse(t *testing.T) {
	tcs := []testCase{
		{`
if ( obj ) {
	for ( n in obj ) {
		if ( v === false) {
			break;
		}
	}
} else {
	for ( ; i < l; ) {
		if ( nv === false ) {
			break;
		}
	}
}`, "if(obj){for(n in obj)if(v===false)break;}else for(;i<l;)if(nv===false)break;"},
		{`
if ( obj ) {
	for ( n in obj ) {
		if ( v === false) {
			break;
		}
	}
	x = 5;
} else {
	for ( ; i < l; ) {
		if ( nv === false ) {
			break;
		}
	}
}`, "if(obj){for(n in obj)if(v===false)break;x=5;}else for(;i<l;)if(nv===false)break;"},
		{`
if ( obj ) {
	for ( n in obj ) {
		if ( v === false) {
			break;
		} else {
			n = 3;
		}
	}
} else {
	for ( ; i < l; ) {
		if ( nv === false ) {
			break;
		}
	}
}`, "if(obj)for(n in obj)if(v===false)break;else n=3;else for(;i<l;)if(nv===false)break;"},
		{"if (a) { if (b) c(); else if (d) e(); } else f();", "if(a){if(b)c();else if(d)e();}else f();"},
		{"if (a) { if (b) c(); else d(); } else e();", "if(a)if(b)c();else d();else e();"},
		{"if (a) { l: while (b) if (c) d(); } else e();", "if(a){l:while(b)if(c)d();}else e();"},
	}
	runTestCases(t, MinifyOptions, tcs)
}

func TestPrint_DanglingElseConstructed(t *testing.T) {
	// the parser never produces this tree, the else belongs to the outer if
	prog := &ast.Program{Body: []ast.Node{
		&ast.If{
			Test: &ast.Identifier{Value: "a"},
			Cons: &ast.If{
				Test: &ast.Identifier{Value: "b"},
				Cons: &ast.ExprStatement{Expr: &ast.Identifier{Value: "x"}},
			},
			Alt: &ast.ExprStatement{Expr: &ast.Identifier{Value: "y"}},
		},
	}}

	min := Print(prog, MinifyOptions)
	assert.Equal(t, "if(a){if(b)x;}else y;", min)
	assert.True(t, ast.Equivalent(prog, requireParse(t, min)))

	pretty := Print(prog, DefaultOptions)
	assert.Equal(t, "if (a) {\n  if (b) x;\n} else y;\n", pretty)
	assert.True(t, ast.Equivalent(prog, requireParse(t, pretty)))
}

func TestPrint_DotAccess(t *testing.T) {
	tcs := []testCase{
		{`foo["bar"];`, "foo.bar;"},
		{`foo['bar'];`, "foo.bar;"},
		{`foo['bar"']=42;`, `foo['bar"']=42;`},
		{`foo["bar'"]=42;`, `foo["bar'"]=42;`},
		{`foo["bar bar"];`, `foo["bar bar"];`},
		{`foo["bar"+"bar"];`, `foo["bar"+"bar"];`},
		{`foo["for"];`, `foo["for"];`},
		{`foo["class"];`, `foo["class"];`},
		{`foo["$_1"]["a"];`, `foo.$_1.a;`},
		{"((25)).toString()", "(25).toString();"},
		{`((25))["toString"]()`, "(25).toString();"},
		{"((25)).attr", "(25).attr;"},
		{`((25))["attr"]`, "(25).attr;"},
	}
	for _, key := range []string{":", "::", "a:", ".", "{", "}", "[", "]", "(", ")", "=", "-", "+", "*", "/", `\\`, "%", "<", ">", "!", "?", ",", "@", "#", "&", "|", "~", "`"} {
		src := `testObj["` + key + `"] = undefined;`
		tcs = append(tcs, testCase{src, `testObj["` + key + `"]=undefined;`})
	}
	runTestCases(t, MinifyOptions, tcs)

	// pretty printing keeps the source form
	prog := requireParse(t, `foo["bar"];`)
	assert.Equal(t, "foo[\"bar\"];\n", Print(prog, DefaultOptions))
}

func TestPrint_Parentheses(t *testing.T) {
	tcs := []testCase{
		{"c||(c=393);", "c||(c=393);"},
		{"c||(c=393,a=323,b=2321);", "c||(c=393,a=323,b=2321);"},
		{"(a || b) && c", "(a||b)&&c;"},
		{"a || (b && c)", "a||b&&c;"},
		{"a - (b - c)", "a-(b-c);"},
		{"(a - b) - c", "a-b-c;"},
		{"a * (b + c)", "a*(b+c);"},
		{"a = (b, c)", "a=(b,c);"},
		{"a, (b, c)", "a,(b,c);"},
		{"(a ? b : c) ? d : e", "(a?b:c)?d:e;"},
		{"a ? (b, c) : d", "a?(b,c):d;"},
		{"a ? b : (c = d)", "a?b:c=d;"},
		{"typeof (a + b)", "typeof(a+b);"},
		{"(typeof a)()", "(typeof a)();"},
		{"(-a).b", "(-a).b;"},
		{"-(a.b)", "-a.b;"},
		{"(a, b).c", "(a,b).c;"},
		{"(a + b)[c]", "(a+b)[c];"},
		{"new X", "new X();"},
		{"new (f())()", "new(f())();"},
		{"new (a.b().c)", "new(a.b()).c();"},
		{"new (a.b.c)", "new a.b.c();"},
		{"new new X()()", "new new X()();"},
		{"(new X)()", "new X()();"},
		{"(new X).y", "new X().y;"},
		{"(function(){}).call(this)", "(function(){}.call(this));"},
		{"(function($) {\n  $.hello = 'world';\n}(jQuery));", "(function($){$.hello='world';}(jQuery));"},
		{"({}).toString()", "({}.toString());"},
		{"({a: 1})", "({a:1});"},
		{"a = function(){}", "a=function(){};"},
		{"for (var i = (a in b); i; ) ;", "for(var i=(a in b);i;);"},
		{"for (x = (a in b) ? 1 : 2;;) ;", "for(x=(a in b)?1:2;;);"},
		{"for (a(b in c);;) ;", "for(a(b in c);;);"},
		{"for (x = [a in b];;) ;", "for(x=[a in b];;);"},
		{"x = a in b", "x=a in b;"},
	}
	runTestCases(t, MinifyOptions, tcs)

	pretty := []testCase{
		{"new (f())()", "new (f())();\n"},
		{"new (a.b().c)", "new (a.b()).c();\n"},
		{"new X", "new X();\n"},
	}
	runTestCases(t, DefaultOptions, pretty)
}

func TestPrint_Spacing(t *testing.T) {
	tcs := []testCase{
		{`"begin"+ ++a+"end";`, `"begin"+ ++a+"end";`},
		{"a + +a;", "a+ +a;"},
		{"a - -a;", "a- -a;"},
		{"a - +a;", "a-+a;"},
		{"a + ++a;", "a+ ++a;"},
		{"a - --a;", "a- --a;"},
		{"a++ + b;", "a++ +b;"},
		{"-(-x);", "- -x;"},
		{"a / /re/.exec(b).length;", "a/ /re/.exec(b).length;"},
		{"x = /a/g instanceof RegExp;", "x=/a/g instanceof RegExp;"},
		{"x = /a/ in o;", "x=/a/ in o;"},
		{"x = 1 in o;", "x=1 in o;"},
		{"a < !--b;", "a<! --b;"},
		{"a-- > b;", "a-- >b;"},
		{"x = typeof y;", "x=typeof y;"},
		{"x = void 0;", "x=void 0;"},
		{"x = !y;", "x=!y;"},
		{"x = 'a' in o;", "x='a'in o;"},
		{"a = b.c;\nd()", "a=b.c;d();"},
	}
	runTestCases(t, MinifyOptions, tcs)
}

func TestPrint_Accessors(t *testing.T) {
	src := `
Name.prototype = {
  getPageProp: function Page_getPageProp(key) {
    return this.pageDict.get(key);
  },

  get fullName() {
    return this.first + " " + this.last;
  },

  set fullName(name) {
    var names = name.split(" ");
    this.first = names[0];
    this.last = names[1];
  }
};`
	expected := `Name.prototype={getPageProp:function Page_getPageProp(key){` +
		`return this.pageDict.get(key);},` +
		`get fullName(){return this.first+" "+this.last;},` +
		`set fullName(name){var names=name.split(" ");this.first=names[0];` +
		`this.last=names[1];}};`
	runTestCases(t, MinifyOptions, []testCase{
		{src, expected},
		{`x = {get "a b"() {}, set 1(v) {}}`, `x={get"a b"(){},set 1(v){}};`},
	})
}

func TestPrint_ElideSemicolons(t *testing.T) {
	opts := Options{Minify: true, ElideSemicolons: true}
	tcs := []testCase{
		{"var a=1,b=2;", "var a=1,b=2"},
		{"function f(){a();b()}", "function f(){a();b()}"},
		{"if(a){b();c()}d()", "if(a){b();c()}d()"},
		{"for(;;);", "for(;;);"},
		{"do x++; while (x); y()", "do x++;while(x);y()"},
		{"switch (a) { case 1: b(); }", "switch(a){case 1:b()}"},
		{"x = function() { return 1; };", "x=function(){return 1}"},
	}
	runTestCases(t, opts, tcs)
}

func TestPrint_Nodes(t *testing.T) {
	expr := &ast.BinOp{
		Op:    "*",
		Left:  &ast.BinOp{Op: "+", Left: &ast.Identifier{Value: "a"}, Right: &ast.Number{Value: "1"}},
		Right: &ast.Identifier{Value: "b"},
	}
	assert.Equal(t, "(a+1)*b", Print(expr, MinifyOptions))
	assert.Equal(t, "(a + 1) * b", Print(expr, DefaultOptions))

	stmt := &ast.Return{Expr: expr}
	assert.Equal(t, "return(a+1)*b;", Print(stmt, MinifyOptions))

	assert.Panics(t, func() {
		Print(&ast.Case{Expr: expr}, MinifyOptions)
	})
}
