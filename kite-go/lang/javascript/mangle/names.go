package mangle

import "github.com/kiteco/jsmin/kite-go/lang/javascript/jsscanner"

const (
	leading  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ$_"
	trailing = leading + "0123456789"
)

// nameAt returns the i-th short name: a, b, ..., _, aa, ab, ... The
// sequence is bijective, every identifier made of the characters above is
// produced exactly once.
func nameAt(i int) string {
	buf := []byte{leading[i%len(leading)]}
	i /= len(leading)
	for i > 0 {
		i--
		buf = append(buf, trailing[i%len(trailing)])
		i /= len(trailing)
	}
	return string(buf)
}

// generator hands out short names in order, skipping reserved words and
// any name for which taken returns true
type generator struct {
	next  int
	taken func(string) bool
}

func (g *generator) name() string {
	for {
		name := nameAt(g.next)
		g.next++
		if jsscanner.IsReservedWord(name) || g.taken(name) {
			continue
		}
		return name
	}
}
