// Released under an MIT license. See LICENSE.

// Package sym provides tern's symbol cell type.
//
// Symbols are interned. Two symbols with the same name are the same value.
package sym

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

const name = "symbol"

// T (sym) is a name.
type T struct {
	name     string
	interned bool
}

type sym = T

// New returns the interned symbol named v.
func New(v string) *sym {
	if s, ok := lookup(v); ok {
		return s
	}

	cachel.Lock()
	defer cachel.Unlock()

	if s, ok := cache[v]; ok {
		return s
	}

	s := &sym{name: v, interned: true}
	cache[v] = s

	return s
}

// Generate returns a new symbol that is not interned.
func Generate(prefix string) *sym {
	n := atomic.AddUint64(&generated, 1)

	return &sym{name: prefix + strconv.FormatUint(n, 10)}
}

// Equal returns true if c is the same symbol.
func (s *sym) Equal(c cell.I) bool {
	return c == cell.I(s)
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	if s.name == "" || strings.ContainsAny(s.name, " \t\n\r()\"';`|") {
		return "|" + strings.ReplaceAll(s.name, "|", `\|`) + "|"
	}

	return s.name
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.name
}

// Functions specific to sym.

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// Named returns true if c is the interned symbol called n.
func Named(c cell.I, n string) bool {
	s, ok := c.(*sym)

	return ok && s.interned && s.name == n
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(condition.New(condition.WrongType, "not a symbol", c))
}

//nolint:gochecknoglobals
var (
	cache     = map[string]*sym{}
	cachel    = &sync.RWMutex{}
	generated uint64
)

func lookup(v string) (*sym, bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	s, ok := cache[v]

	return s, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = fmt.Stringer(&t)
}
