package printer

import "github.com/kiteco/jsmin/kite-go/lang/javascript/ast"

// expr prints n in a context that requires at least level lvl,
// parenthesizing it if its own operator binds less tightly.
func (p *printer) expr(n ast.Node, lvl level, fl flags) {
	wrap := levelOf(n) < lvl
	switch x := n.(type) {
	case *ast.BinOp:
		wrap = wrap || x.Op == "in" && fl&forbidIn != 0
	case *ast.Call:
		wrap = wrap || fl&forbidCall != 0
	}
	if wrap {
		p.print("(")
		fl = 0
	}

	switch n := n.(type) {
	case *ast.Identifier:
		p.print(n.Value)
	case *ast.Number:
		p.print(n.Value)
	case *ast.String:
		p.print(n.Value)
	case *ast.Regex:
		p.print(n.Value)
		p.regexEnd = true
	case *ast.Boolean:
		if n.Value {
			p.print("true")
		} else {
			p.print("false")
		}
	case *ast.Null:
		p.print("null")
	case *ast.This:
		p.print("this")
	case *ast.Array:
		p.array(n)
	case *ast.Object:
		p.objectLiteral(n)
	case *ast.FuncExpr:
		p.function(n.Name, n.Params, n.Body)
	case *ast.NewExpr:
		p.print("new")
		p.space()
		p.expr(n.Callee, levelMember, forbidCall)
		p.args(n.Args)
	case *ast.Call:
		p.expr(n.Callee, levelCall, fl&forbidCall)
		p.args(n.Args)
	case *ast.DotAccessor:
		p.member(n.Node, fl)
		p.print(".")
		p.print(n.Ident.Value)
	case *ast.BracketAccessor:
		p.member(n.Node, fl)
		if name, ok := ast.DotName(n); ok && p.opts.Minify {
			p.print(".")
			p.print(name)
			break
		}
		p.print("[")
		p.expr(n.Expr, levelLowest, 0)
		p.print("]")
	case *ast.UnaryOp:
		if n.Postfix {
			p.expr(n.Value, levelPostfix, fl)
			p.print(n.Op)
			break
		}
		p.print(n.Op)
		p.expr(n.Value, levelPrefix, fl)
	case *ast.BinOp:
		own := levelOf(n)
		p.expr(n.Left, own, fl)
		p.op(n.Op)
		p.expr(n.Right, own+1, fl)
	case *ast.Conditional:
		p.expr(n.Test, levelLogicalOr, fl)
		p.op("?")
		p.expr(n.Cons, levelAssign, 0)
		p.op(":")
		p.expr(n.Alt, levelAssign, fl)
	case *ast.Assign:
		p.expr(n.Left, levelCall, fl)
		p.op(n.Op)
		p.expr(n.Right, levelAssign, fl)
	case *ast.Comma:
		p.expr(n.Left, levelComma, fl)
		p.comma()
		p.expr(n.Right, levelAssign, fl)
	default:
		unexpected(n)
	}

	if wrap {
		p.print(")")
	}
}

// member prints the object of a member access. A number literal is
// parenthesized so that the dot is not read as a decimal point.
func (p *printer) member(n ast.Node, fl flags) {
	if _, ok := n.(*ast.Number); ok {
		p.print("(")
		p.expr(n, levelLowest, 0)
		p.print(")")
		return
	}
	p.expr(n, levelCall, fl&forbidCall)
}

func (p *printer) args(args []ast.Node) {
	p.print("(")
	for i, arg := range args {
		if i > 0 {
			p.comma()
		}
		p.expr(arg, levelAssign, 0)
	}
	p.print(")")
}

// array prints an array literal; holes print as nothing between commas,
// and a trailing hole needs an extra comma since a single trailing comma
// is ignored.
func (p *printer) array(n *ast.Array) {
	p.print("[")
	for i, item := range n.Items {
		if i > 0 {
			p.print(",")
		}
		if _, ok := item.(*ast.Elision); ok {
			continue
		}
		p.expr(item, levelAssign, 0)
	}
	if len(n.Items) > 0 {
		if _, ok := n.Items[len(n.Items)-1].(*ast.Elision); ok {
			p.print(",")
		}
	}
	p.print("]")
}

func (p *printer) objectLiteral(n *ast.Object) {
	p.print("{")
	if !p.opts.Minify {
		p.level++
	}
	for i, prop := range n.Props {
		if i > 0 {
			p.print(",")
		}
		if !p.opts.Minify {
			p.newline()
		}
		p.property(prop)
	}
	if !p.opts.Minify {
		p.level--
		p.newline()
	}
	p.print("}")
}

func (p *printer) property(n ast.Node) {
	switch n := n.(type) {
	case *ast.PropAssign:
		p.expr(n.Key, levelPrimary, 0)
		p.print(":")
		p.space()
		p.expr(n.Value, levelAssign, 0)
	case *ast.GetPropAssign:
		p.print("get")
		p.space()
		p.expr(n.Key, levelPrimary, 0)
		p.params(nil)
		p.space()
		p.body(n.Body)
	case *ast.SetPropAssign:
		p.print("set")
		p.space()
		p.expr(n.Key, levelPrimary, 0)
		p.params([]*ast.Identifier{n.Param})
		p.space()
		p.body(n.Body)
	default:
		unexpected(n)
	}
}
