package subst

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/frontend/rterr"
	"github.com/cottand/retype/internal/log"
	"github.com/hashicorp/go-set/v3"
)

// Builder validates substitutions one by one and produces a Map.
//
// Malformed entries are rejected here, when the map is built, so that
// rewriting with the resulting Map cannot fail.
type Builder struct {
	// RequireDisjoint rejects maps where a substitute is also a key
	RequireDisjoint bool

	entries *immutable.MapBuilder[*ast.TypePath, *ast.TypePath]
	order   []*ast.TypePath
	added   int
	errs    *rterr.Errors
}

// NewBuilder returns an empty Builder that accepts overlapping keys and values.
func NewBuilder() *Builder {
	return &Builder{
		entries: immutable.NewMapBuilder[*ast.TypePath, *ast.TypePath](typePathHasher{}),
	}
}

// Entry is one substitution: occurrences of From become To.
type Entry struct {
	From *ast.TypePath
	To   *ast.TypePath
}

// New builds a Map from entries, rejecting malformed ones.
func New(entries ...Entry) (*Map, *rterr.Errors) {
	b := NewBuilder()
	for _, entry := range entries {
		b.Add(entry.From, entry.To)
	}
	return b.Build()
}

// Add records the substitution from -> to. Both must be fully concrete type paths.
//
// Adding the same substitution twice is allowed, but adding a key with a
// different substitute is an error.
func (b *Builder) Add(from, to ast.Type) {
	entry := b.added
	b.added++

	key, keyOk := b.checkTypePath(entry, from)
	value, valueOk := b.checkTypePath(entry, to)
	if !keyOk || !valueOk {
		return
	}

	if existing, ok := b.entries.Get(key); ok {
		if !ast.EqualTypePath(existing, value) {
			b.errs = b.errs.With(rterr.New(rterr.NewConflictingKey{
				Positioner: ast.RangeOf(key),
				Entry:      entry,
				Key:        key,
				First:      existing,
				Second:     value,
			}))
		}
		return
	}
	// the map owns its own copies, so callers may keep mutating theirs
	key, value = ast.CopyTypePath(key), ast.CopyTypePath(value)
	b.entries.Set(key, value)
	b.order = append(b.order, key)
}

// Build returns the Map of all valid substitutions added so far, along with
// the errors of the invalid ones. The Map is nil if there were errors.
//
// Build must be called at most once per Builder.
func (b *Builder) Build() (*Map, *rterr.Errors) {
	logger := log.Section("subst")
	m := &Map{
		entries:  b.entries.Map(),
		order:    immutable.NewList(b.order...),
		disjoint: true,
	}

	keyHashes := set.NewHashSet[*ast.TypePath, uint64](len(b.order))
	for _, key := range b.order {
		keyHashes.Insert(key)
	}
	for _, key := range b.order {
		value, _ := m.entries.Get(key)
		// a hash hit may be a collision, the map lookup settles it
		if !keyHashes.Contains(value) {
			continue
		}
		if _, isKey := m.entries.Get(value); !isKey {
			continue
		}
		m.disjoint = false
		if b.RequireDisjoint {
			b.errs = b.errs.With(rterr.New(rterr.NewKeyValueOverlap{
				Positioner: ast.RangeOf(value),
				Value:      value,
			}))
		} else {
			logger.Debug("substitute is also a key, rewriting will not be idempotent", "value", value)
		}
	}

	if b.errs.HasError() {
		logger.Debug("rejected substitution map", "errors", b.errs)
		return nil, b.errs
	}
	logger.Debug("built substitution map", "len", m.Len(), "disjoint", m.disjoint)
	return m, nil
}

func (b *Builder) checkTypePath(entry int, t ast.Type) (*ast.TypePath, bool) {
	tp, ok := t.(*ast.TypePath)
	if t == nil || ok && tp == nil {
		b.errs = b.errs.With(rterr.New(rterr.Unclassified{
			From:       fmt.Errorf("entry %d: missing type", entry),
			Positioner: ast.Range{},
		}))
		return nil, false
	}
	if !ok {
		b.errs = b.errs.With(rterr.New(rterr.NewNotATypePath{
			Positioner: ast.RangeOf(t),
			Entry:      entry,
			Type:       t,
		}))
		return nil, false
	}
	if containsInfer(tp) {
		b.errs = b.errs.With(rterr.New(rterr.NewNotConcrete{
			Positioner: ast.RangeOf(tp),
			Entry:      entry,
			Type:       tp,
		}))
		return nil, false
	}
	return tp, true
}
