package mangle

import "github.com/kiteco/jsmin/kite-go/lang/javascript/ast"

type scopeKind int

const (
	globalScope scopeKind = iota
	functionScope
	catchScope
)

// binding is a name declared in a scope together with every identifier
// that refers to it
type binding struct {
	name    string
	newName string
	// pinned bindings were declared by an identifier that is not eligible
	// for renaming and keep their name
	pinned bool
	// link is set on a catch parameter whose name is also declared with
	// var in the enclosing function; both must keep the same name
	link   *binding
	idents []*ast.Identifier
}

type scope struct {
	kind     scopeKind
	parent   *scope
	children []*scope

	bindings map[string]*binding
	order    []*binding

	// refs holds the bindings of enclosing scopes referenced from this
	// scope or a scope nested in it
	refs map[*binding]bool
	// free holds the names referenced from this scope or a nested scope
	// that are not bound anywhere, i.e globals
	free map[string]bool

	// unsafe scopes contain a with statement or a direct call to eval,
	// either of which can observe names at runtime
	unsafe bool
}

func newScope(kind scopeKind, parent *scope) *scope {
	s := &scope{
		kind:     kind,
		parent:   parent,
		bindings: make(map[string]*binding),
		refs:     make(map[*binding]bool),
		free:     make(map[string]bool),
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// function returns the scope that var and function declarations made in s
// belong to. Catch scopes only bind their parameter.
func (s *scope) function() *scope {
	for s.kind == catchScope {
		s = s.parent
	}
	return s
}

func (s *scope) declare(id *ast.Identifier) {
	b := s.bindings[id.Value]
	if b == nil {
		b = &binding{name: id.Value, newName: id.Value}
		s.bindings[id.Value] = b
		s.order = append(s.order, b)
	}
	if !id.Mangle {
		s.pin(b)
	}
}

func (s *scope) pin(b *binding) {
	if b.pinned {
		return
	}
	b.pinned = true
	// enclosing scopes must not hand out the name either, it would be
	// shadowed here
	for x := s.parent; x != nil; x = x.parent {
		x.free[b.name] = true
	}
}

// linkCatch ties the parameter of catch scope s to a binding of the same
// name in the enclosing function. In `catch (e) { var e = 1; }` the var
// declares e in the function but its initializer assigns the parameter.
func (s *scope) linkCatch() {
	fn := s.function()
	for _, b := range s.order {
		fb := fn.bindings[b.name]
		if fb == nil {
			continue
		}
		b.link = fb
		if b.pinned || fb.pinned {
			s.pin(b)
			fn.pin(fb)
		}
	}
}

// resolve binds id to the innermost declaration of its name visible from s
func (s *scope) resolve(id *ast.Identifier) {
	for def := s; def != nil; def = def.parent {
		b := def.bindings[id.Value]
		if b == nil {
			continue
		}
		b.idents = append(b.idents, id)
		for x := s; x != def; x = x.parent {
			x.refs[b] = true
		}
		return
	}
	for x := s; x != nil; x = x.parent {
		x.free[id.Value] = true
	}
}

func (s *scope) markUnsafe() {
	for ; s != nil; s = s.parent {
		s.unsafe = true
	}
}

// analysis builds the scope tree of a program in two passes over the same
// traversal: the first pass declares every binding, which makes hoisted
// declarations visible to code preceding them, and the second resolves
// every identifier reference.
type analysis struct {
	root   *scope
	scopes map[ast.Node]*scope
}

func analyze(prog *ast.Program) *analysis {
	a := &analysis{
		root:   newScope(globalScope, nil),
		scopes: make(map[ast.Node]*scope),
	}
	a.scopes[prog] = a.root
	for _, resolving := range []bool{false, true} {
		v := &visitor{a: a, s: a.root, resolving: resolving}
		for _, stmt := range prog.Body {
			ast.Walk(v, stmt)
		}
		if !resolving {
			for _, s := range a.scopes {
				if s.kind == catchScope {
					s.linkCatch()
				}
			}
		}
	}
	return a
}

type visitor struct {
	a         *analysis
	s         *scope
	resolving bool
}

func (v *visitor) Visit(n ast.Node) ast.Visitor {
	switch n := n.(type) {
	case nil:
		return nil
	case *ast.Identifier:
		v.ident(n)
		return nil
	case *ast.VarDecl:
		if !v.resolving {
			v.s.function().declare(n.Name)
		}
	case *ast.FuncDecl:
		if !v.resolving {
			v.s.function().declare(n.Name)
		}
		v.ident(n.Name)
		v.function(n, nil, n.Params, n.Body)
		return nil
	case *ast.FuncExpr:
		v.function(n, n.Name, n.Params, n.Body)
		return nil
	case *ast.GetPropAssign:
		v.function(n, nil, nil, n.Body)
		return nil
	case *ast.SetPropAssign:
		v.function(n, nil, []*ast.Identifier{n.Param}, n.Body)
		return nil
	case *ast.Catch:
		inner := v.enter(n, catchScope)
		if !v.resolving {
			inner.s.declare(n.Param)
		}
		inner.ident(n.Param)
		ast.Walk(inner, n.Block)
		return nil
	case *ast.PropAssign:
		// keys are property names
		ast.Walk(v, n.Value)
		return nil
	case *ast.DotAccessor:
		ast.Walk(v, n.Node)
		return nil
	case *ast.Label:
		ast.Walk(v, n.Body)
		return nil
	case *ast.Break, *ast.Continue:
		return nil
	case *ast.With:
		if !v.resolving {
			v.s.markUnsafe()
		}
	case *ast.Call:
		if id, ok := n.Callee.(*ast.Identifier); ok && id.Value == "eval" && !v.resolving {
			v.s.markUnsafe()
		}
	}
	return v
}

func (v *visitor) ident(id *ast.Identifier) {
	if v.resolving {
		v.s.resolve(id)
	}
}

// enter returns the visitor for the scope introduced by n
func (v *visitor) enter(n ast.Node, kind scopeKind) *visitor {
	s := v.a.scopes[n]
	if s == nil {
		s = newScope(kind, v.s)
		v.a.scopes[n] = s
	}
	return &visitor{a: v.a, s: s, resolving: v.resolving}
}

// function visits a function body in its own scope. The name of a function
// expression is only visible inside the function.
func (v *visitor) function(n ast.Node, name *ast.Identifier, params []*ast.Identifier, body []ast.Node) {
	inner := v.enter(n, functionScope)
	if !v.resolving {
		if name != nil {
			inner.s.declare(name)
		}
		for _, param := range params {
			inner.s.declare(param)
		}
	}
	if name != nil {
		inner.ident(name)
	}
	for _, param := range params {
		inner.ident(param)
	}
	for _, stmt := range body {
		ast.Walk(inner, stmt)
	}
}
