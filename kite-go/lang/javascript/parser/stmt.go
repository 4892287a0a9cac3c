package parser

import (
	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	jsscan "github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"
)

func (p *parser) parseStatement() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "Statement"))
	}
	p.enter()
	defer p.leave()

	switch p.word.Token {
	case jsscan.LBrace:
		return p.parseBlock()
	case jsscan.Var:
		begin := p.word
		p.next()
		stmt := &ast.VarStatement{Pos: pos(begin), Decls: p.parseVarDecls(false)}
		p.semicolon()
		return stmt
	case jsscan.Semicolon:
		begin := p.word
		p.next()
		return &ast.EmptyStatement{Pos: pos(begin)}
	case jsscan.If:
		return p.parseIf()
	case jsscan.Do:
		return p.parseDoWhile()
	case jsscan.While:
		begin := p.word
		p.next()
		test := p.parseParenExpr()
		return &ast.While{Pos: pos(begin), Test: test, Body: p.parseStatement()}
	case jsscan.For:
		return p.parseFor()
	case jsscan.Continue:
		begin := p.word
		p.next()
		stmt := &ast.Continue{Pos: pos(begin), Label: p.parseJumpLabel()}
		p.semicolon()
		return stmt
	case jsscan.Break:
		begin := p.word
		p.next()
		stmt := &ast.Break{Pos: pos(begin), Label: p.parseJumpLabel()}
		p.semicolon()
		return stmt
	case jsscan.Return:
		return p.parseReturn()
	case jsscan.With:
		begin := p.word
		p.next()
		expr := p.parseParenExpr()
		return &ast.With{Pos: pos(begin), Expr: expr, Body: p.parseStatement()}
	case jsscan.Switch:
		return p.parseSwitch()
	case jsscan.Throw:
		begin := p.word
		p.next()
		if p.word.NewlineBefore {
			p.error(p.word, "illegal newline after throw")
		}
		stmt := &ast.Throw{Pos: pos(begin), Expr: p.parseExpression(false)}
		p.semicolon()
		return stmt
	case jsscan.Try:
		return p.parseTry()
	case jsscan.Debugger:
		begin := p.word
		p.next()
		p.semicolon()
		return &ast.Debugger{Pos: pos(begin)}
	case jsscan.Function:
		return p.parseFuncDecl()
	default:
		return p.parseExprOrLabel()
	}
}

func (p *parser) parseBlock() *ast.Block {
	if p.opts.Trace {
		defer un(trace(p, "Block"))
	}

	begin := p.expect(jsscan.LBrace)
	block := &ast.Block{Pos: pos(begin)}
	for !p.at(jsscan.RBrace) && !p.at(jsscan.EOF) {
		block.Body = append(block.Body, p.parseStatement())
	}
	p.expect(jsscan.RBrace)
	return block
}

// parseVarDecls parses the comma separated bindings after `var`
func (p *parser) parseVarDecls(noIn bool) []*ast.VarDecl {
	var decls []*ast.VarDecl
	for {
		name := p.parseBindingIdent()
		decl := &ast.VarDecl{Pos: name.Pos, Name: name}
		if p.take(jsscan.Assign) {
			decl.Init = p.parseAssign(noIn)
		}
		decls = append(decls, decl)
		if !p.take(jsscan.Comma) {
			return decls
		}
	}
}

// parseBindingIdent parses a name introduced by a declaration; such
// names are eligible for mangling
func (p *parser) parseBindingIdent() *ast.Identifier {
	w := p.expect(jsscan.Ident)
	return &ast.Identifier{Pos: pos(w), Value: w.Literal, Mangle: true}
}

func (p *parser) parseParenExpr() ast.Node {
	p.expect(jsscan.LParen)
	x := p.parseExpression(false)
	p.expect(jsscan.RParen)
	return x
}

func (p *parser) parseIf() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "If"))
	}

	begin := p.expect(jsscan.If)
	stmt := &ast.If{Pos: pos(begin), Test: p.parseParenExpr()}
	stmt.Cons = p.parseStatement()
	// an else always binds to the nearest if
	if p.take(jsscan.Else) {
		stmt.Alt = p.parseStatement()
	}
	return stmt
}

func (p *parser) parseDoWhile() ast.Node {
	begin := p.expect(jsscan.Do)
	body := p.parseStatement()
	p.expect(jsscan.While)
	test := p.parseParenExpr()
	// the semicolon after a do-while is inserted even on the same line
	p.take(jsscan.Semicolon)
	return &ast.DoWhile{Pos: pos(begin), Body: body, Test: test}
}

func (p *parser) parseFor() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "For"))
	}

	begin := p.expect(jsscan.For)
	p.expect(jsscan.LParen)

	var init ast.Node
	switch {
	case p.at(jsscan.Semicolon):
	case p.at(jsscan.Var):
		varPos := pos(p.word)
		p.next()
		decls := p.parseVarDecls(true)
		if len(decls) == 1 && p.take(jsscan.In) {
			return p.parseForInRest(begin, decls[0])
		}
		init = &ast.VarStatement{Pos: varPos, Decls: decls}
	default:
		start := p.word
		x := p.parseExpression(true)
		if p.at(jsscan.In) {
			if !isLeftHandSide(x) {
				p.error(start, "invalid left-hand side in for-in")
			}
			p.next()
			return p.parseForInRest(begin, x)
		}
		init = x
	}

	stmt := &ast.For{Pos: pos(begin), Init: init}
	p.expect(jsscan.Semicolon)
	if !p.at(jsscan.Semicolon) {
		stmt.Test = p.parseExpression(false)
	}
	p.expect(jsscan.Semicolon)
	if !p.at(jsscan.RParen) {
		stmt.Update = p.parseExpression(false)
	}
	p.expect(jsscan.RParen)
	stmt.Body = p.parseStatement()
	return stmt
}

// parseForInRest parses what follows `in` of a for-in head
func (p *parser) parseForInRest(begin jsscan.Word, item ast.Node) ast.Node {
	obj := p.parseExpression(false)
	p.expect(jsscan.RParen)
	return &ast.ForIn{Pos: pos(begin), Item: item, Obj: obj, Body: p.parseStatement()}
}

// parseJumpLabel parses the optional label of break and continue, which
// must be on the same line
func (p *parser) parseJumpLabel() *ast.Identifier {
	if !p.at(jsscan.Ident) || p.word.NewlineBefore {
		return nil
	}
	w := p.word
	p.next()
	return &ast.Identifier{Pos: pos(w), Value: w.Literal}
}

func (p *parser) parseReturn() ast.Node {
	begin := p.expect(jsscan.Return)
	if p.inFunction == 0 {
		p.error(begin, "return outside function")
	}

	stmt := &ast.Return{Pos: pos(begin)}
	if !p.at(jsscan.Semicolon) && !p.at(jsscan.RBrace) && !p.at(jsscan.EOF) && !p.word.NewlineBefore {
		stmt.Expr = p.parseExpression(false)
	}
	p.semicolon()
	return stmt
}

func (p *parser) parseSwitch() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "Switch"))
	}

	begin := p.expect(jsscan.Switch)
	stmt := &ast.Switch{Pos: pos(begin), Expr: p.parseParenExpr()}
	p.expect(jsscan.LBrace)

	var seenDefault bool
	for !p.at(jsscan.RBrace) {
		clause := p.word
		switch {
		case p.take(jsscan.Case):
			c := &ast.Case{Pos: pos(clause), Expr: p.parseExpression(false)}
			p.expect(jsscan.Colon)
			c.Body = p.parseClauseBody()
			stmt.Cases = append(stmt.Cases, c)
		case p.take(jsscan.Default):
			if seenDefault {
				p.error(clause, "multiple default clauses in switch")
			}
			seenDefault = true
			p.expect(jsscan.Colon)
			stmt.Cases = append(stmt.Cases, &ast.Default{Pos: pos(clause), Body: p.parseClauseBody()})
		default:
			p.errorExpected("case or default")
		}
	}
	p.expect(jsscan.RBrace)
	return stmt
}

func (p *parser) parseClauseBody() []ast.Node {
	var body []ast.Node
	for !p.at(jsscan.Case) && !p.at(jsscan.Default) && !p.at(jsscan.RBrace) && !p.at(jsscan.EOF) {
		body = append(body, p.parseStatement())
	}
	return body
}

func (p *parser) parseTry() ast.Node {
	begin := p.expect(jsscan.Try)
	stmt := &ast.Try{Pos: pos(begin), Block: p.parseBlock()}

	if p.at(jsscan.Catch) {
		clause := p.word
		p.next()
		p.expect(jsscan.LParen)
		param := p.parseBindingIdent()
		p.expect(jsscan.RParen)
		stmt.Catch = &ast.Catch{Pos: pos(clause), Param: param, Block: p.parseBlock()}
	}
	if p.at(jsscan.Finally) {
		clause := p.word
		p.next()
		stmt.Finally = &ast.Finally{Pos: pos(clause), Block: p.parseBlock()}
	}
	if stmt.Catch == nil && stmt.Finally == nil {
		p.errorExpected("catch or finally")
	}
	return stmt
}

func (p *parser) parseFuncDecl() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "FuncDecl"))
	}

	begin := p.expect(jsscan.Function)
	name := p.parseBindingIdent()
	params, body := p.parseFunctionRest()
	return &ast.FuncDecl{Pos: pos(begin), Name: name, Params: params, Body: body}
}

// parseFunctionRest parses the parameter list and body of a function
func (p *parser) parseFunctionRest() ([]*ast.Identifier, []ast.Node) {
	p.expect(jsscan.LParen)
	var params []*ast.Identifier
	for !p.at(jsscan.RParen) {
		params = append(params, p.parseBindingIdent())
		if !p.take(jsscan.Comma) {
			break
		}
	}
	p.expect(jsscan.RParen)
	return params, p.parseFunctionBody()
}

func (p *parser) parseFunctionBody() []ast.Node {
	p.expect(jsscan.LBrace)
	p.inFunction++
	var body []ast.Node
	for !p.at(jsscan.RBrace) && !p.at(jsscan.EOF) {
		body = append(body, p.parseStatement())
	}
	p.inFunction--
	p.expect(jsscan.RBrace)
	return body
}

// parseExprOrLabel parses an expression statement, or a labelled
// statement if the expression is a lone identifier followed by a colon
func (p *parser) parseExprOrLabel() ast.Node {
	start := p.word
	x := p.parseExpression(false)

	if id, ok := x.(*ast.Identifier); ok && p.prev.Offset == start.Offset && p.at(jsscan.Colon) {
		p.next()
		return &ast.Label{Pos: id.Pos, Label: id, Body: p.parseStatement()}
	}

	p.semicolon()
	return &ast.ExprStatement{Pos: pos(start), Expr: x}
}
