package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Describe returns the variant name of n followed by its operator or
// literal text, e.g `BinOp[+]` or `Identifier[foo]`.
func Describe(n Node) string {
	var lit string
	switch n := n.(type) {
	case *Identifier:
		lit = n.Value
	case *Number:
		lit = n.Value
	case *String:
		lit = n.Value
	case *Regex:
		lit = n.Value
	case *Boolean:
		lit = strconv.FormatBool(n.Value)
	case *UnaryOp:
		lit = n.Op
		if n.Postfix {
			lit = "postfix " + lit
		}
	case *BinOp:
		lit = n.Op
	case *Assign:
		lit = n.Op
	}
	if lit == "" {
		return Kind(n)
	}
	return fmt.Sprintf("%s[%s]", Kind(n), lit)
}

func print(node Node, w io.Writer, indent string, printPositions bool) {
	var rec func(n Node, depth int)
	rec = func(n Node, depth int) {
		prefix := strings.Repeat(indent, depth)
		if n == nil {
			fmt.Fprintf(w, "%s-\n", prefix)
			return
		}
		var pos string
		if printPositions {
			pos = "@" + n.Position().String()
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, Describe(n), pos)
		for _, child := range n.Children() {
			rec(child, depth+1)
		}
	}
	rec(opt(node), 0)
}

// Print the AST to the provided writer with the specified indent.
// Absent children are printed as "-" so that dumps of equal trees
// are identical.
func Print(node Node, w io.Writer, indent string) {
	print(node, w, indent, false)
}

// PrintPositions prints the AST to the provided writer with
// the specified index and node positions.
func PrintPositions(node Node, w io.Writer, indent string) {
	print(node, w, indent, true)
}

// Sprint returns the output of Print as a string.
func Sprint(node Node) string {
	var b strings.Builder
	Print(node, &b, "  ")
	return b.String()
}
