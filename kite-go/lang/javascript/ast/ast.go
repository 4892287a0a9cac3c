package ast

import (
	"fmt"
	"reflect"
)

// Pos is the source position of the first token of a node. Line and
// Column are 1-based; the zero Pos means no position is known.
type Pos struct {
	Line   int
	Column int
}

// Position returns the position; it is promoted into every node.
func (p Pos) Position() Pos { return p }

// IsValid returns true if the position was recorded.
func (p Pos) IsValid() bool { return p.Line > 0 }

// String implements fmt.Stringer
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (Pos) aNode() {}

// Node in a javascript AST. Children returns the ordered child list of
// the node; logically absent children are nil entries so that positional
// traversal is stable.
type Node interface {
	Position() Pos
	Children() []Node
	aNode()
}

// opt avoids storing typed nil pointers in a []Node
func opt(n Node) Node {
	if n == nil || reflect.ValueOf(n).IsNil() {
		return nil
	}
	return n
}

func nodes(list ...[]Node) []Node {
	var out []Node
	for _, l := range list {
		out = append(out, l...)
	}
	return out
}

func idents(ids []*Identifier) []Node {
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}

// -- Structure

// Program is the root of a parsed source.
type Program struct {
	Pos
	Body []Node
}

// Block groups a sequence of statements in braces.
type Block struct {
	Pos
	Body []Node
}

// -- Statements

// VarStatement represents `var a = 1, b;`.
type VarStatement struct {
	Pos
	Decls []*VarDecl
}

// VarDecl is one binding of a VarStatement or a `for (var x in ...)` head.
type VarDecl struct {
	Pos
	Name *Identifier
	Init Node
}

// EmptyStatement represents a lone `;`.
type EmptyStatement struct {
	Pos
}

// ExprStatement represents an expression used as a statement.
type ExprStatement struct {
	Pos
	Expr Node
}

// If represents an if statement, Alt is nil without an else branch.
type If struct {
	Pos
	Test Node
	Cons Node
	Alt  Node
}

// DoWhile represents a do-while loop.
type DoWhile struct {
	Pos
	Body Node
	Test Node
}

// While represents a while loop.
type While struct {
	Pos
	Test Node
	Body Node
}

// For represents a C-style for loop. Init is a *VarStatement, an
// expression or nil.
type For struct {
	Pos
	Init   Node
	Test   Node
	Update Node
	Body   Node
}

// ForIn represents a for-in loop. Item is a *VarDecl or a left-hand side
// expression.
type ForIn struct {
	Pos
	Item Node
	Obj  Node
	Body Node
}

// Continue represents a continue statement with an optional label.
type Continue struct {
	Pos
	Label *Identifier
}

// Break represents a break statement with an optional label.
type Break struct {
	Pos
	Label *Identifier
}

// Return represents a return statement with an optional value.
type Return struct {
	Pos
	Expr Node
}

// With represents a with statement.
type With struct {
	Pos
	Expr Node
	Body Node
}

// Switch represents a switch statement; Cases holds *Case and *Default nodes.
type Switch struct {
	Pos
	Expr  Node
	Cases []Node
}

// Case is a case clause of a switch statement.
type Case struct {
	Pos
	Expr Node
	Body []Node
}

// Default is the default clause of a switch statement.
type Default struct {
	Pos
	Body []Node
}

// Label represents a labelled statement.
type Label struct {
	Pos
	Label *Identifier
	Body  Node
}

// Throw represents a throw statement.
type Throw struct {
	Pos
	Expr Node
}

// Try represents a try statement; at least one of Catch and Finally is set.
type Try struct {
	Pos
	Block   *Block
	Catch   *Catch
	Finally *Finally
}

// Catch is the catch clause of a try statement.
type Catch struct {
	Pos
	Param *Identifier
	Block *Block
}

// Finally is the finally clause of a try statement.
type Finally struct {
	Pos
	Block *Block
}

// Debugger represents a debugger statement.
type Debugger struct {
	Pos
}

// FuncDecl represents a function declaration.
type FuncDecl struct {
	Pos
	Name   *Identifier
	Params []*Identifier
	Body   []Node
}

// -- Expressions

// FuncExpr represents a function expression, Name is optional.
type FuncExpr struct {
	Pos
	Name   *Identifier
	Params []*Identifier
	Body   []Node
}

// Identifier is a name; Mangle marks binding sites that may be renamed.
type Identifier struct {
	Pos
	Value  string
	Mangle bool
}

// Number is a numeric literal, stored as written.
type Number struct {
	Pos
	Value string
}

// String is a string literal, stored as written including its quotes.
type String struct {
	Pos
	Value string
}

// Regex is a regular expression literal, stored as written.
type Regex struct {
	Pos
	Value string
}

// Boolean is a true or false literal.
type Boolean struct {
	Pos
	Value bool
}

// Null is the null literal.
type Null struct {
	Pos
}

// This is the this keyword.
type This struct {
	Pos
}

// Array is an array literal; holes are *Elision items.
type Array struct {
	Pos
	Items []Node
}

// Elision is a hole in an array literal, e.g [a,,b].
type Elision struct {
	Pos
}

// Object is an object literal; Props holds *PropAssign, *GetPropAssign and
// *SetPropAssign nodes.
type Object struct {
	Pos
	Props []Node
}

// PropAssign is a `key: value` member of an object literal. Key is an
// *Identifier, *String or *Number.
type PropAssign struct {
	Pos
	Key   Node
	Value Node
}

// GetPropAssign is a `get key() {...}` member of an object literal.
type GetPropAssign struct {
	Pos
	Key  Node
	Body []Node
}

// SetPropAssign is a `set key(param) {...}` member of an object literal.
type SetPropAssign struct {
	Pos
	Key   Node
	Param *Identifier
	Body  []Node
}

// NewExpr represents `new Callee(Args)`; a missing argument list parses as
// an empty one.
type NewExpr struct {
	Pos
	Callee Node
	Args   []Node
}

// Call represents a function call.
type Call struct {
	Pos
	Callee Node
	Args   []Node
}

// BracketAccessor represents `Node[Expr]`.
type BracketAccessor struct {
	Pos
	Node Node
	Expr Node
}

// DotAccessor represents `Node.Ident`.
type DotAccessor struct {
	Pos
	Node  Node
	Ident *Identifier
}

// UnaryOp is a prefix or postfix unary operation.
type UnaryOp struct {
	Pos
	Op      string
	Value   Node
	Postfix bool
}

// BinOp is a binary operation, including the logical operators, `in` and
// `instanceof`.
type BinOp struct {
	Pos
	Op    string
	Left  Node
	Right Node
}

// Conditional represents `Test ? Cons : Alt`.
type Conditional struct {
	Pos
	Test Node
	Cons Node
	Alt  Node
}

// Assign is a simple or compound assignment.
type Assign struct {
	Pos
	Op    string
	Left  Node
	Right Node
}

// Comma represents `Left, Right`.
type Comma struct {
	Pos
	Left  Node
	Right Node
}

// Children implementations; the order of each list is part of the node's
// contract.

func (n *Program) Children() []Node         { return n.Body }
func (n *Block) Children() []Node           { return n.Body }
func (n *VarDecl) Children() []Node         { return []Node{n.Name, opt(n.Init)} }
func (n *EmptyStatement) Children() []Node  { return nil }
func (n *ExprStatement) Children() []Node   { return []Node{n.Expr} }
func (n *If) Children() []Node              { return []Node{n.Test, n.Cons, opt(n.Alt)} }
func (n *DoWhile) Children() []Node         { return []Node{n.Body, n.Test} }
func (n *While) Children() []Node           { return []Node{n.Test, n.Body} }
func (n *ForIn) Children() []Node           { return []Node{n.Item, n.Obj, n.Body} }
func (n *Continue) Children() []Node        { return []Node{opt(n.Label)} }
func (n *Break) Children() []Node           { return []Node{opt(n.Label)} }
func (n *Return) Children() []Node          { return []Node{opt(n.Expr)} }
func (n *With) Children() []Node            { return []Node{n.Expr, n.Body} }
func (n *Default) Children() []Node         { return n.Body }
func (n *Label) Children() []Node           { return []Node{n.Label, n.Body} }
func (n *Throw) Children() []Node           { return []Node{n.Expr} }
func (n *Catch) Children() []Node           { return []Node{n.Param, n.Block} }
func (n *Finally) Children() []Node         { return []Node{n.Block} }
func (n *Debugger) Children() []Node        { return nil }
func (n *Identifier) Children() []Node      { return nil }
func (n *Number) Children() []Node          { return nil }
func (n *String) Children() []Node          { return nil }
func (n *Regex) Children() []Node           { return nil }
func (n *Boolean) Children() []Node         { return nil }
func (n *Null) Children() []Node            { return nil }
func (n *This) Children() []Node            { return nil }
func (n *Array) Children() []Node           { return n.Items }
func (n *Elision) Children() []Node         { return nil }
func (n *Object) Children() []Node          { return n.Props }
func (n *PropAssign) Children() []Node      { return []Node{n.Key, n.Value} }
func (n *BracketAccessor) Children() []Node { return []Node{n.Node, n.Expr} }
func (n *DotAccessor) Children() []Node     { return []Node{n.Node, n.Ident} }
func (n *UnaryOp) Children() []Node         { return []Node{n.Value} }
func (n *BinOp) Children() []Node           { return []Node{n.Left, n.Right} }
func (n *Conditional) Children() []Node     { return []Node{n.Test, n.Cons, n.Alt} }
func (n *Assign) Children() []Node          { return []Node{n.Left, n.Right} }
func (n *Comma) Children() []Node           { return []Node{n.Left, n.Right} }
func (n *GetPropAssign) Children() []Node   { return nodes([]Node{n.Key}, n.Body) }

func (n *VarStatement) Children() []Node {
	out := make([]Node, 0, len(n.Decls))
	for _, d := range n.Decls {
		out = append(out, d)
	}
	return out
}

func (n *For) Children() []Node {
	return []Node{opt(n.Init), opt(n.Test), opt(n.Update), n.Body}
}

func (n *Switch) Children() []Node { return nodes([]Node{n.Expr}, n.Cases) }
func (n *Case) Children() []Node   { return nodes([]Node{n.Expr}, n.Body) }

func (n *Try) Children() []Node {
	return []Node{n.Block, opt(n.Catch), opt(n.Finally)}
}

func (n *FuncDecl) Children() []Node {
	return nodes([]Node{n.Name}, idents(n.Params), n.Body)
}

func (n *FuncExpr) Children() []Node {
	return nodes([]Node{opt(n.Name)}, idents(n.Params), n.Body)
}

func (n *SetPropAssign) Children() []Node {
	return nodes([]Node{n.Key, n.Param}, n.Body)
}

func (n *NewExpr) Children() []Node { return nodes([]Node{n.Callee}, n.Args) }
func (n *Call) Children() []Node    { return nodes([]Node{n.Callee}, n.Args) }

// Kind returns the name of the node's variant, e.g "BinOp".
func Kind(n Node) string {
	if opt(n) == nil {
		return "<nil>"
	}
	return reflect.TypeOf(n).Elem().Name()
}

// IsStatement returns true if the provided node is a statement.
func IsStatement(n Node) bool {
	switch n.(type) {
	case *Block, *VarStatement, *EmptyStatement, *ExprStatement, *If, *DoWhile,
		*While, *For, *ForIn, *Continue, *Break, *Return, *With, *Switch,
		*Label, *Throw, *Try, *Debugger, *FuncDecl:
		return true
	default:
		return false
	}
}

// NameFor returns the name of a function declaration or expression, or nil.
func NameFor(n Node) *Identifier {
	switch n := n.(type) {
	case *FuncDecl:
		return n.Name
	case *FuncExpr:
		return n.Name
	default:
		return nil
	}
}

// Literal returns the raw text between the quotes of a string literal,
// escapes included, and false for any other node.
func Literal(n Node) (string, bool) {
	s, ok := n.(*String)
	if !ok || len(s.Value) < 2 {
		return "", false
	}
	return s.Value[1 : len(s.Value)-1], true
}
