// Package subst implements the substitution maps consumed by package rewrite:
// exact-match mappings from type references to their replacements.
package subst

import (
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/retype/frontend/ast"
)

// Map is a read-only substitution map from type references to type references.
//
// Lookups are structural (ast.EqualTypePath): positions are ignored and
// generic arguments must match exactly. A Map never changes after Build, so a
// single Map may be shared by any number of concurrent rewrites.
type Map struct {
	entries *immutable.Map[*ast.TypePath, *ast.TypePath]
	// order remembers insertion order for deterministic iteration
	order    *immutable.List[*ast.TypePath]
	disjoint bool
}

var _ immutable.Hasher[*ast.TypePath] = typePathHasher{}

// typePathHasher makes immutable.Map key on the structure of a type path
type typePathHasher struct{}

func (typePathHasher) Hash(key *ast.TypePath) uint32 {
	h := key.Hash()
	return uint32(h) ^ uint32(h>>32)
}

func (typePathHasher) Equal(a, b *ast.TypePath) bool {
	return ast.EqualTypePath(a, b)
}

// Empty returns a Map with no substitutions.
func Empty() *Map {
	return &Map{
		entries:  immutable.NewMap[*ast.TypePath, *ast.TypePath](typePathHasher{}),
		order:    immutable.NewList[*ast.TypePath](),
		disjoint: true,
	}
}

// Lookup returns the substitute of t, if t is a key of the map.
//
// The returned type path belongs to the map and must not be modified;
// use ast.CopyTypePath before inserting it into a tree.
func (m *Map) Lookup(t *ast.TypePath) (*ast.TypePath, bool) {
	if m == nil || t == nil {
		return nil, false
	}
	return m.entries.Get(t)
}

// Len is the number of substitutions.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.entries.Len()
}

// Disjoint reports whether no substitute is also a key, in which case
// rewriting a tree is idempotent.
func (m *Map) Disjoint() bool {
	return m == nil || m.disjoint
}

// All iterates over the substitutions in the order they were added.
func (m *Map) All() iter.Seq2[*ast.TypePath, *ast.TypePath] {
	return func(yield func(*ast.TypePath, *ast.TypePath) bool) {
		if m == nil {
			return
		}
		itr := m.order.Iterator()
		for !itr.Done() {
			_, key := itr.Next()
			value, _ := m.entries.Get(key)
			if !yield(key, value) {
				return
			}
		}
	}
}
