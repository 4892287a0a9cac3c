package parser

import (
	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
	jsscan "github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"
)

// binaryPrec returns the precedence of a binary operator token, 0 if the
// token is not a binary operator. noIn excludes the `in` operator, as
// required in the head of a for statement.
func binaryPrec(t jsscan.Token, noIn bool) int {
	switch t {
	case jsscan.LogicalOr:
		return 1
	case jsscan.LogicalAnd:
		return 2
	case jsscan.Or:
		return 3
	case jsscan.Xor:
		return 4
	case jsscan.And:
		return 5
	case jsscan.Eq, jsscan.Ne, jsscan.StrictEq, jsscan.StrictNe:
		return 6
	case jsscan.Lt, jsscan.Gt, jsscan.Le, jsscan.Ge, jsscan.Instanceof:
		return 7
	case jsscan.In:
		if noIn {
			return 0
		}
		return 7
	case jsscan.Shl, jsscan.Shr, jsscan.UShr:
		return 8
	case jsscan.Add, jsscan.Sub:
		return 9
	case jsscan.Mul, jsscan.Div, jsscan.Mod:
		return 10
	}
	return 0
}

func isLeftHandSide(x ast.Node) bool {
	switch x.(type) {
	case *ast.Identifier, *ast.DotAccessor, *ast.BracketAccessor, *ast.Call, *ast.NewExpr:
		return true
	}
	return false
}

// parseExpression parses a comma separated expression
func (p *parser) parseExpression(noIn bool) ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "Expression"))
	}

	x := p.parseAssign(noIn)
	for p.take(jsscan.Comma) {
		x = &ast.Comma{Pos: x.Position(), Left: x, Right: p.parseAssign(noIn)}
	}
	return x
}

func (p *parser) parseAssign(noIn bool) ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "Assign"))
	}
	p.enter()
	defer p.leave()

	start := p.word
	x := p.parseConditional(noIn)
	if !p.word.Token.IsAssign() {
		return x
	}
	if !isLeftHandSide(x) {
		p.error(start, "invalid assignment target")
	}
	op := p.word.Token.String()
	p.next()
	return &ast.Assign{Pos: x.Position(), Op: op, Left: x, Right: p.parseAssign(noIn)}
}

func (p *parser) parseConditional(noIn bool) ast.Node {
	x := p.parseBinary(1, noIn)
	if !p.take(jsscan.Question) {
		return x
	}
	cons := p.parseAssign(false)
	p.expect(jsscan.Colon)
	alt := p.parseAssign(noIn)
	return &ast.Conditional{Pos: x.Position(), Test: x, Cons: cons, Alt: alt}
}

// parseBinary parses binary operations of precedence prec1 and higher;
// all binary operators are left associative
func (p *parser) parseBinary(prec1 int, noIn bool) ast.Node {
	x := p.parseUnary()
	for {
		prec := binaryPrec(p.word.Token, noIn)
		if prec == 0 || prec < prec1 {
			return x
		}
		op := p.word.Token.String()
		p.next()
		y := p.parseBinary(prec+1, noIn)
		x = &ast.BinOp{Pos: x.Position(), Op: op, Left: x, Right: y}
	}
}

func (p *parser) parseUnary() ast.Node {
	p.enter()
	defer p.leave()

	switch p.word.Token {
	case jsscan.Delete, jsscan.Void, jsscan.Typeof, jsscan.Add, jsscan.Sub, jsscan.Tilde, jsscan.Not:
		begin := p.word
		p.next()
		return &ast.UnaryOp{Pos: pos(begin), Op: begin.Token.String(), Value: p.parseUnary()}
	case jsscan.Inc, jsscan.Dec:
		begin := p.word
		p.next()
		start := p.word
		x := p.parseUnary()
		if !isLeftHandSide(x) {
			p.error(start, "invalid operand for "+begin.Token.String())
		}
		return &ast.UnaryOp{Pos: pos(begin), Op: begin.Token.String(), Value: x}
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() ast.Node {
	start := p.word
	x := p.parseLeftHandSide()
	// a postfix operator must be on the same line as its operand
	if (p.at(jsscan.Inc) || p.at(jsscan.Dec)) && !p.word.NewlineBefore {
		if !isLeftHandSide(x) {
			p.error(start, "invalid operand for "+p.word.Token.String())
		}
		op := p.word.Token.String()
		p.next()
		return &ast.UnaryOp{Pos: x.Position(), Op: op, Value: x, Postfix: true}
	}
	return x
}

// parseLeftHandSide parses member accesses and calls
func (p *parser) parseLeftHandSide() ast.Node {
	var x ast.Node
	if p.at(jsscan.New) {
		x = p.parseNew()
	} else {
		x = p.parsePrimary()
	}
	for {
		switch p.word.Token {
		case jsscan.Period, jsscan.LBrack:
			x = p.parseMember(x)
		case jsscan.LParen:
			x = &ast.Call{Pos: x.Position(), Callee: x, Args: p.parseArguments()}
		default:
			return x
		}
	}
}

// parseNew parses `new` with its callee and optional argument list; the
// callee may contain member accesses but no calls
func (p *parser) parseNew() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "New"))
	}

	begin := p.expect(jsscan.New)
	var callee ast.Node
	if p.at(jsscan.New) {
		callee = p.parseNew()
	} else {
		callee = p.parsePrimary()
	}
	for p.at(jsscan.Period) || p.at(jsscan.LBrack) {
		callee = p.parseMember(callee)
	}

	x := &ast.NewExpr{Pos: pos(begin), Callee: callee}
	if p.at(jsscan.LParen) {
		x.Args = p.parseArguments()
	}
	return x
}

func (p *parser) parseMember(x ast.Node) ast.Node {
	if p.take(jsscan.Period) {
		w := p.word
		if !w.Token.IsIdentifierName() {
			p.errorExpected("property name")
		}
		p.next()
		return &ast.DotAccessor{Pos: x.Position(), Node: x, Ident: &ast.Identifier{Pos: pos(w), Value: w.Text()}}
	}
	p.expect(jsscan.LBrack)
	key := p.parseExpression(false)
	p.expect(jsscan.RBrack)
	return &ast.BracketAccessor{Pos: x.Position(), Node: x, Expr: key}
}

func (p *parser) parseArguments() []ast.Node {
	p.expect(jsscan.LParen)
	var args []ast.Node
	for !p.at(jsscan.RParen) {
		args = append(args, p.parseAssign(false))
		if !p.take(jsscan.Comma) {
			break
		}
	}
	p.expect(jsscan.RParen)
	return args
}

func (p *parser) parsePrimary() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "Primary"))
	}

	if p.at(jsscan.Div) || p.at(jsscan.DivAssign) {
		p.rescanRegex()
	}

	w := p.word
	switch w.Token {
	case jsscan.This:
		p.next()
		return &ast.This{Pos: pos(w)}
	case jsscan.Null:
		p.next()
		return &ast.Null{Pos: pos(w)}
	case jsscan.True, jsscan.False:
		p.next()
		return &ast.Boolean{Pos: pos(w), Value: w.Token == jsscan.True}
	case jsscan.Ident:
		p.next()
		return &ast.Identifier{Pos: pos(w), Value: w.Literal}
	case jsscan.Number:
		p.next()
		return &ast.Number{Pos: pos(w), Value: w.Literal}
	case jsscan.String:
		p.next()
		return &ast.String{Pos: pos(w), Value: w.Literal}
	case jsscan.Regex:
		p.next()
		return &ast.Regex{Pos: pos(w), Value: w.Literal}
	case jsscan.LBrack:
		return p.parseArray()
	case jsscan.LBrace:
		return p.parseObject()
	case jsscan.LParen:
		p.next()
		x := p.parseExpression(false)
		p.expect(jsscan.RParen)
		return x
	case jsscan.Function:
		p.next()
		fn := &ast.FuncExpr{Pos: pos(w)}
		if p.at(jsscan.Ident) {
			fn.Name = p.parseBindingIdent()
		}
		fn.Params, fn.Body = p.parseFunctionRest()
		return fn
	}

	p.errorExpected("expression")
	return nil
}

func (p *parser) parseArray() ast.Node {
	begin := p.expect(jsscan.LBrack)
	arr := &ast.Array{Pos: pos(begin)}
	for !p.at(jsscan.RBrack) {
		if p.at(jsscan.Comma) {
			arr.Items = append(arr.Items, &ast.Elision{Pos: pos(p.word)})
			p.next()
			continue
		}
		arr.Items = append(arr.Items, p.parseAssign(false))
		if !p.at(jsscan.RBrack) {
			p.expect(jsscan.Comma)
		}
	}
	p.expect(jsscan.RBrack)
	return arr
}

func (p *parser) parseObject() ast.Node {
	if p.opts.Trace {
		defer un(trace(p, "Object"))
	}

	begin := p.expect(jsscan.LBrace)
	obj := &ast.Object{Pos: pos(begin)}
	for !p.at(jsscan.RBrace) {
		obj.Props = append(obj.Props, p.parseProperty())
		if !p.at(jsscan.RBrace) {
			p.expect(jsscan.Comma)
		}
	}
	p.expect(jsscan.RBrace)
	return obj
}

func (p *parser) parseProperty() ast.Node {
	w := p.word
	key := p.parsePropertyName()

	if w.Token == jsscan.Ident && (w.Literal == "get" || w.Literal == "set") && !p.at(jsscan.Colon) {
		name := p.parsePropertyName()
		p.expect(jsscan.LParen)
		if w.Literal == "get" {
			p.expect(jsscan.RParen)
			return &ast.GetPropAssign{Pos: pos(w), Key: name, Body: p.parseFunctionBody()}
		}
		param := p.parseBindingIdent()
		p.expect(jsscan.RParen)
		return &ast.SetPropAssign{Pos: pos(w), Key: name, Param: param, Body: p.parseFunctionBody()}
	}

	p.expect(jsscan.Colon)
	return &ast.PropAssign{Pos: pos(w), Key: key, Value: p.parseAssign(false)}
}

// parsePropertyName parses an object literal key: an identifier name,
// a string or a number
func (p *parser) parsePropertyName() ast.Node {
	w := p.word
	switch {
	case w.Token == jsscan.String:
		p.next()
		return &ast.String{Pos: pos(w), Value: w.Literal}
	case w.Token == jsscan.Number:
		p.next()
		return &ast.Number{Pos: pos(w), Value: w.Literal}
	case w.Token.IsIdentifierName():
		p.next()
		return &ast.Identifier{Pos: pos(w), Value: w.Text()}
	}
	p.errorExpected("property name")
	return nil
}
