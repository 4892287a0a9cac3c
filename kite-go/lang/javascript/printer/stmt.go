package printer

import "github.com/kiteco/jsmin/kite-go/lang/javascript/ast"

// stmts prints a statement list, one statement per line when pretty
// printing. The caller is responsible for the surrounding braces.
func (p *printer) stmts(list []ast.Node) {
	for _, stmt := range list {
		if !p.opts.Minify {
			p.newline()
		}
		p.stmt(stmt)
	}
}

// body prints a braced statement list, e.g a block or a function body
func (p *printer) body(list []ast.Node) {
	p.print("{")
	if p.opts.Minify {
		p.stmts(list)
		p.closeBrace()
		return
	}

	if len(list) == 0 {
		p.raw("\n")
		p.newline()
		p.print("}")
		return
	}
	p.level++
	p.stmts(list)
	p.level--
	p.newline()
	p.print("}")
}

// unwrap returns the statement printed for the body of a compound
// statement: when minifying, a block holding a single statement loses
// its braces. Function declarations keep theirs, they are only allowed
// directly in a statement list.
func (p *printer) unwrap(n ast.Node) ast.Node {
	if !p.opts.Minify {
		return n
	}
	for {
		block, ok := n.(*ast.Block)
		if !ok || len(block.Body) != 1 {
			return n
		}
		if _, ok := block.Body[0].(*ast.FuncDecl); ok {
			return n
		}
		n = block.Body[0]
	}
}

// danglingIf returns true if the printed form of n ends with an if
// statement without an else branch, which would capture an else that
// follows n.
func (p *printer) danglingIf(n ast.Node) bool {
	switch n := p.unwrap(n).(type) {
	case *ast.If:
		if n.Alt == nil {
			return true
		}
		return p.danglingIf(n.Alt)
	case *ast.For:
		return p.danglingIf(n.Body)
	case *ast.ForIn:
		return p.danglingIf(n.Body)
	case *ast.While:
		return p.danglingIf(n.Body)
	case *ast.With:
		return p.danglingIf(n.Body)
	case *ast.Label:
		return p.danglingIf(n.Body)
	}
	return false
}

// clause prints the body of a compound statement. If braced is set the
// body is printed inside braces even if it is not a block.
func (p *printer) clause(n ast.Node, braced bool) {
	if !braced {
		p.space()
		p.stmt(p.unwrap(n))
		return
	}

	p.space()
	if block, ok := n.(*ast.Block); ok {
		p.body(block.Body)
		return
	}
	p.body([]ast.Node{n})
}

func (p *printer) stmt(n ast.Node) {
	switch n := n.(type) {
	case *ast.Block:
		p.body(n.Body)
	case *ast.VarStatement:
		p.varStatement(n, 0)
		p.terminate()
	case *ast.EmptyStatement:
		p.print(";")
	case *ast.ExprStatement:
		if startsAmbiguously(n.Expr) {
			p.print("(")
			p.expr(n.Expr, levelLowest, 0)
			p.print(")")
		} else {
			p.expr(n.Expr, levelLowest, 0)
		}
		p.terminate()
	case *ast.If:
		p.ifStatement(n)
	case *ast.DoWhile:
		p.print("do")
		p.clause(n.Body, false)
		p.space()
		p.print("while")
		p.space()
		p.parenExpr(n.Test)
		p.terminate()
	case *ast.While:
		p.print("while")
		p.space()
		p.parenExpr(n.Test)
		p.clause(n.Body, false)
	case *ast.For:
		p.forStatement(n)
	case *ast.ForIn:
		p.print("for")
		p.space()
		p.print("(")
		if decl, ok := n.Item.(*ast.VarDecl); ok {
			p.print("var")
			p.varDecl(decl, forbidIn)
		} else {
			p.expr(n.Item, levelLowest, forbidIn)
		}
		p.op("in")
		p.expr(n.Obj, levelLowest, 0)
		p.print(")")
		p.clause(n.Body, false)
	case *ast.Continue:
		p.jump("continue", n.Label)
	case *ast.Break:
		p.jump("break", n.Label)
	case *ast.Return:
		p.print("return")
		if n.Expr != nil {
			p.space()
			p.expr(n.Expr, levelLowest, 0)
		}
		p.terminate()
	case *ast.With:
		p.print("with")
		p.space()
		p.parenExpr(n.Expr)
		p.clause(n.Body, false)
	case *ast.Switch:
		p.switchStatement(n)
	case *ast.Label:
		p.print(n.Label.Value)
		p.print(":")
		p.space()
		p.stmt(n.Body)
	case *ast.Throw:
		p.print("throw")
		p.raw(" ")
		p.expr(n.Expr, levelLowest, 0)
		p.terminate()
	case *ast.Try:
		p.print("try")
		p.space()
		p.body(n.Block.Body)
		if n.Catch != nil {
			p.space()
			p.print("catch")
			p.space()
			p.print("(")
			p.print(n.Catch.Param.Value)
			p.print(")")
			p.space()
			p.body(n.Catch.Block.Body)
		}
		if n.Finally != nil {
			p.space()
			p.print("finally")
			p.space()
			p.body(n.Finally.Block.Body)
		}
	case *ast.Debugger:
		p.print("debugger")
		p.terminate()
	case *ast.FuncDecl:
		p.function(n.Name, n.Params, n.Body)
	default:
		unexpected(n)
	}
}

func (p *printer) parenExpr(n ast.Node) {
	p.print("(")
	p.expr(n, levelLowest, 0)
	p.print(")")
}

func (p *printer) jump(keyword string, label *ast.Identifier) {
	p.print(keyword)
	if label != nil {
		p.print(label.Value)
	}
	p.terminate()
}

func (p *printer) varStatement(n *ast.VarStatement, fl flags) {
	p.print("var")
	for i, decl := range n.Decls {
		if i > 0 {
			p.comma()
		}
		p.varDecl(decl, fl)
	}
}

func (p *printer) varDecl(n *ast.VarDecl, fl flags) {
	p.print(n.Name.Value)
	if n.Init != nil {
		p.op("=")
		p.expr(n.Init, levelAssign, fl)
	}
}

func (p *printer) ifStatement(n *ast.If) {
	p.print("if")
	p.space()
	p.parenExpr(n.Test)
	if n.Alt == nil {
		p.clause(n.Cons, false)
		return
	}

	// an if without else at the end of the consequent would take the
	// else branch
	braced := p.danglingIf(n.Cons)
	p.clause(n.Cons, braced)
	p.space()
	p.print("else")
	p.clause(n.Alt, false)
}

func (p *printer) forStatement(n *ast.For) {
	p.print("for")
	p.space()
	p.print("(")
	switch init := n.Init.(type) {
	case nil:
	case *ast.VarStatement:
		p.varStatement(init, forbidIn)
	default:
		p.expr(init, levelLowest, forbidIn)
	}
	p.print(";")
	if n.Test != nil {
		p.space()
		p.expr(n.Test, levelLowest, 0)
	}
	p.print(";")
	if n.Update != nil {
		p.space()
		p.expr(n.Update, levelLowest, 0)
	} else if n.Test != nil || n.Init != nil {
		p.space()
	}
	p.print(")")
	p.clause(n.Body, false)
}

func (p *printer) switchStatement(n *ast.Switch) {
	p.print("switch")
	p.space()
	p.parenExpr(n.Expr)
	p.space()
	p.print("{")
	p.level++
	for _, c := range n.Cases {
		if !p.opts.Minify {
			p.newline()
		}
		var body []ast.Node
		switch c := c.(type) {
		case *ast.Case:
			p.print("case")
			p.space()
			p.expr(c.Expr, levelLowest, 0)
			body = c.Body
		case *ast.Default:
			p.print("default")
			body = c.Body
		default:
			unexpected(c)
		}
		p.print(":")
		p.level++
		p.stmts(body)
		p.level--
	}
	p.level--
	if !p.opts.Minify {
		p.newline()
	}
	p.closeBrace()
}

// function prints a function declaration or expression
func (p *printer) function(name *ast.Identifier, params []*ast.Identifier, body []ast.Node) {
	p.print("function")
	if name != nil {
		p.print(name.Value)
	}
	p.params(params)
	p.space()
	p.body(body)
}

func (p *printer) params(params []*ast.Identifier) {
	p.print("(")
	for i, param := range params {
		if i > 0 {
			p.comma()
		}
		p.print(param.Value)
	}
	p.print(")")
}
