package printer

import "github.com/kiteco/jsmin/kite-go/lang/javascript/ast"

// level is the binding strength of an expression; an operand printed
// in a context that requires a higher level than its own is wrapped
// in parentheses.
type level int

const (
	levelLowest level = iota
	levelComma
	levelAssign
	levelConditional
	levelLogicalOr
	levelLogicalAnd
	levelBitwiseOr
	levelBitwiseXor
	levelBitwiseAnd
	levelEquals
	levelCompare
	levelShift
	levelAdd
	levelMultiply
	levelPrefix
	levelPostfix
	levelCall
	levelMember
	levelPrimary
)

var binaryLevels = map[string]level{
	"||":         levelLogicalOr,
	"&&":         levelLogicalAnd,
	"|":          levelBitwiseOr,
	"^":          levelBitwiseXor,
	"&":          levelBitwiseAnd,
	"==":         levelEquals,
	"!=":         levelEquals,
	"===":        levelEquals,
	"!==":        levelEquals,
	"<":          levelCompare,
	">":          levelCompare,
	"<=":         levelCompare,
	">=":         levelCompare,
	"instanceof": levelCompare,
	"in":         levelCompare,
	"<<":         levelShift,
	">>":         levelShift,
	">>>":        levelShift,
	"+":          levelAdd,
	"-":          levelAdd,
	"*":          levelMultiply,
	"/":          levelMultiply,
	"%":          levelMultiply,
}

// levelOf returns the level of the outermost operator of an expression
func levelOf(n ast.Node) level {
	switch n := n.(type) {
	case *ast.Comma:
		return levelComma
	case *ast.Assign:
		return levelAssign
	case *ast.Conditional:
		return levelConditional
	case *ast.BinOp:
		if l, ok := binaryLevels[n.Op]; ok {
			return l
		}
		return levelLowest
	case *ast.UnaryOp:
		if n.Postfix {
			return levelPostfix
		}
		return levelPrefix
	case *ast.Call:
		return levelCall
	case *ast.NewExpr, *ast.DotAccessor, *ast.BracketAccessor:
		return levelMember
	default:
		return levelPrimary
	}
}

// flags restrict what may appear unparenthesized in the current context
type flags uint8

const (
	// forbidIn is set in the head of a for statement, where a bare `in`
	// would turn the loop into a for-in loop
	forbidIn flags = 1 << iota
	// forbidCall is set in the callee of a new expression, where a call
	// would take the argument list of the new
	forbidCall
)

// leftmost returns the expression whose text starts the printed form of n
func leftmost(n ast.Node) ast.Node {
	for {
		switch x := n.(type) {
		case *ast.Call:
			n = x.Callee
		case *ast.DotAccessor:
			n = x.Node
		case *ast.BracketAccessor:
			n = x.Node
		case *ast.BinOp:
			n = x.Left
		case *ast.Assign:
			n = x.Left
		case *ast.Conditional:
			n = x.Test
		case *ast.Comma:
			n = x.Left
		case *ast.UnaryOp:
			if !x.Postfix {
				return n
			}
			n = x.Value
		default:
			return n
		}
	}
}

// startsAmbiguously returns true if an expression statement printing n
// would begin with `function` or `{` and be read as a declaration or a
// block.
func startsAmbiguously(n ast.Node) bool {
	switch leftmost(n).(type) {
	case *ast.FuncExpr, *ast.Object:
		return true
	}
	return false
}
