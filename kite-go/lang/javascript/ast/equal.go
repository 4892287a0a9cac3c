package ast

import (
	"reflect"
	"strings"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"
)

// Equal reports whether a and b are structurally equal: same variant,
// same operator or literal text, and pairwise equal children. Positions
// and mangle flags are ignored.
func Equal(a, b Node) bool {
	return equal(a, b, false)
}

// Equivalent is Equal, except that it also considers a bracket accessor
// with a string key equal to the dot accessor it can be rewritten to,
// e.g `a["b"]` and `a.b`, and a block holding a single statement equal
// to that statement.
func Equivalent(a, b Node) bool {
	return equal(a, b, true)
}

// DotName returns the property name a bracket accessor can be rewritten
// to, and false if the accessor must keep its bracket form.
func DotName(n *BracketAccessor) (string, bool) {
	lit, ok := Literal(n.Expr)
	if !ok || strings.IndexByte(lit, '\\') >= 0 {
		return "", false
	}
	if !jsscanner.IsValidIdent(lit) {
		return "", false
	}
	return lit, true
}

func equal(a, b Node, loose bool) bool {
	a, b = opt(a), opt(b)
	if loose {
		a, b = unblock(a), unblock(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		if !loose {
			return false
		}
		switch a := a.(type) {
		case *BracketAccessor:
			if b, ok := b.(*DotAccessor); ok {
				return equalAccess(a, b)
			}
		case *DotAccessor:
			if b, ok := b.(*BracketAccessor); ok {
				return equalAccess(b, a)
			}
		}
		return false
	}

	switch a := a.(type) {
	case *Identifier:
		return a.Value == b.(*Identifier).Value
	case *Number:
		return a.Value == b.(*Number).Value
	case *String:
		return a.Value == b.(*String).Value
	case *Regex:
		return a.Value == b.(*Regex).Value
	case *Boolean:
		return a.Value == b.(*Boolean).Value
	case *Null, *This, *Debugger, *EmptyStatement, *Elision:
		return true
	case *UnaryOp:
		bb := b.(*UnaryOp)
		if a.Op != bb.Op || a.Postfix != bb.Postfix {
			return false
		}
	case *BinOp:
		if a.Op != b.(*BinOp).Op {
			return false
		}
	case *Assign:
		if a.Op != b.(*Assign).Op {
			return false
		}
	}

	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !equal(ac[i], bc[i], loose) {
			return false
		}
	}
	return true
}

func equalAccess(br *BracketAccessor, dot *DotAccessor) bool {
	name, ok := DotName(br)
	if !ok || name != dot.Ident.Value {
		return false
	}
	return equal(br.Node, dot.Node, true)
}

func unblock(n Node) Node {
	for {
		block, ok := n.(*Block)
		if !ok || len(block.Body) != 1 {
			return n
		}
		n = block.Body[0]
	}
}
