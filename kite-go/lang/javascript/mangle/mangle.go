// Package mangle shortens the names of local variables, functions and
// parameters in a javascript syntax tree.
package mangle

import (
	"sort"

	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
)

// Options for the mangler
type Options struct {
	// Toplevel also renames names declared in the global scope. This is
	// only safe if the program is not combined with other scripts.
	Toplevel bool
}

// Stats describes a mangling run
type Stats struct {
	// Scopes is the number of scopes in the program, including the global
	// scope
	Scopes int
	// Renamed is the number of bindings that were given a new name
	Renamed int
	// Skipped is the number of scopes left untouched because they use
	// with or eval
	Skipped int
}

// Mangle renames the bindings of prog in place. A scope gets names
// a, b, c, ... in declaration order, skipping reserved words and any name
// that would capture or shadow a reference made from inside the scope.
// Scopes that contain a with statement or call eval are left as is, as
// are all the scopes enclosing them. Property names and labels are never
// renamed.
func Mangle(prog *ast.Program, opts Options) *Stats {
	a := analyze(prog)
	stats := &Stats{}
	a.root.rename(opts, stats)

	for _, s := range a.scopes {
		for _, b := range s.order {
			if b.newName == b.name {
				continue
			}
			stats.Renamed++
			for _, id := range b.idents {
				id.Value = b.newName
			}
		}
	}
	return stats
}

// rename picks the new names of the bindings of s, and then of the scopes
// nested in s. Enclosing scopes are named first so that the names given
// to the bindings s refers to are known.
func (s *scope) rename(opts Options, stats *Stats) {
	stats.Scopes++
	switch {
	case s.unsafe:
		stats.Skipped++
	case s.parent == nil && !opts.Toplevel:
	default:
		s.assign()
	}
	for _, child := range s.children {
		child.rename(opts, stats)
	}
}

func (s *scope) assign() {
	used := make(map[string]bool)
	for b := range s.refs {
		used[b.newName] = true
	}
	for _, b := range s.order {
		if b.pinned {
			used[b.name] = true
		}
	}

	g := generator{
		taken: func(name string) bool {
			return used[name] || s.free[name]
		},
	}
	for _, b := range s.order {
		if b.pinned {
			continue
		}
		if b.link != nil {
			// the enclosing function is named first
			b.newName = b.link.newName
			used[b.newName] = true
			continue
		}
		b.newName = g.name()
		used[b.newName] = true
	}
}

// Globals returns the sorted names referenced in prog that no declaration
// in prog binds. Mangling never changes this set.
func Globals(prog *ast.Program) []string {
	var names []string
	for name := range analyze(prog).root.free {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
