package javascript

import (
	"fmt"

	spooky "github.com/dgryski/go-spooky"
	lru "github.com/hashicorp/golang-lru"
	"github.com/kiteco/jsmin/kite-go/lang/javascript/ast"
)

// DefaultCacheSize is the number of results kept by a Minifier created by
// the commands
const DefaultCacheSize = 1000

// Minifier transforms source code and caches the results. It is safe for
// concurrent use.
type Minifier struct {
	cache *lru.Cache
}

type cacheEntry struct {
	out string
	err error
}

// NewMinifier creates a Minifier that keeps the results of the last
// cacheSize transformations
func NewMinifier(cacheSize int) (*Minifier, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Minifier{cache: cache}, nil
}

// Transform is the cached version of the package level Transform
func (m *Minifier) Transform(src []byte, opts Options) (string, error) {
	opts = opts.normalize()
	key := cacheKey(src, opts)
	if entry, ok := m.cache.Get(key); ok {
		cacheHits.Hit()
		entry := entry.(cacheEntry)
		return entry.out, entry.err
	}
	cacheHits.Miss()

	out, err := Transform(src, opts)
	m.cache.Add(key, cacheEntry{out: out, err: err})
	return out, err
}

// Minify is the cached version of the package level Minify
func (m *Minifier) Minify(src []byte, mangleNames bool) (string, error) {
	return m.Transform(src, Options{Minify: true, Mangle: mangleNames})
}

// Parse parses src, results are not cached
func (m *Minifier) Parse(src []byte) (*ast.Program, error) {
	return Parse(src)
}

// ToText renders n, see the package level ToText
func (m *Minifier) ToText(n ast.Node, minify bool) string {
	return ToText(n, minify)
}

// Check verifies the round trip of src, see the package level Check
func (m *Minifier) Check(src []byte, opts Options) error {
	return Check(src, opts)
}

// Len returns the number of cached results
func (m *Minifier) Len() int {
	return m.cache.Len()
}

func cacheKey(src []byte, opts Options) uint64 {
	buf := []byte(fmt.Sprintf("%+v\x00", opts))
	return spooky.Hash64(append(buf, src...))
}
