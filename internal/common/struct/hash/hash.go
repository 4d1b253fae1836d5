// Released under an MIT license. See LICENSE.

// Package hash provides tern's name to location mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/reference"
	"github.com/michaelmacinnis/tern/internal/common/struct/slot"
)

// T (hash) maps names to locations.
type T struct {
	sync.RWMutex
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	h.Lock()
	defer h.Unlock()

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the location associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Keys returns the names in h in sorted order.
func (h *hash) Keys() []string {
	h.RLock()
	defer h.RUnlock()

	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set associates the name k with the cell v in the hash h.
// An existing location for k is updated rather than replaced.
func (h *hash) Set(k string, v cell.I) {
	h.Lock()
	defer h.Unlock()

	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
