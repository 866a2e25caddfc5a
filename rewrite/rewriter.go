// Package rewrite replaces type references throughout a syntax tree.
//
// A Rewriter walks every grammar position that can hold a type reference
// (types, expressions, patterns, statements, items, generics and bounds) and
// overwrites each *ast.TypePath found in a substitution map with a copy of
// its substitute. Matching is exact: Vec<Old> is only replaced by a map that
// has Vec<Old> as a key, never by one that has Vec<T>.
//
// Macro bodies and verbatim tokens are opaque and are never rewritten.
package rewrite

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/internal/log"
	"github.com/cottand/retype/subst"
	"github.com/hashicorp/go-set/v3"
)

// Stats summarises a rewrite.
type Stats struct {
	// Replaced is the number of type references that were substituted
	Replaced int
	// Unhandled lists, sorted and without duplicates, the Go types of nodes
	// the Rewriter did not know how to descend into.
	Unhandled []string
}

// Merge returns the sum of s and other.
func (s Stats) Merge(other Stats) Stats {
	unhandled := set.From(s.Unhandled)
	unhandled.InsertSlice(other.Unhandled)
	return Stats{
		Replaced:  s.Replaced + other.Replaced,
		Unhandled: sortedSlice(unhandled),
	}
}

// LogValue groups the replaced count and the unhandled kinds for slog.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("replaced", s.Replaced),
		slog.Any("unhandled", s.Unhandled),
	)
}

// Rewriter substitutes type references in the trees it is given.
//
// A Rewriter is not safe for concurrent use, but any number of Rewriters may
// share the same subst.Map.
type Rewriter struct {
	subs      *subst.Map
	logger    *slog.Logger
	replaced  int
	unhandled *set.Set[string]
}

// New returns a Rewriter that substitutes according to subs. A nil subs
// rewrites nothing.
func New(subs *subst.Map) *Rewriter {
	return &Rewriter{
		subs:      subs,
		logger:    log.Section("rewrite"),
		unhandled: set.New[string](0),
	}
}

// Apply rewrites root in place and reports what it did.
func Apply(root ast.Node, subs *subst.Map) Stats {
	r := New(subs)
	r.Node(root)
	return r.Stats()
}

// Stats accumulated over all the trees this Rewriter visited.
func (r *Rewriter) Stats() Stats {
	return Stats{
		Replaced:  r.replaced,
		Unhandled: sortedSlice(r.unhandled),
	}
}

// Node rewrites n in place. n may be a whole *ast.File or a node of any
// grammar category.
func (r *Rewriter) Node(n ast.Node) {
	switch n := n.(type) {
	case nil:
	case *ast.File:
		r.items(n.Items)
	case ast.Type:
		r.typ(n)
	case ast.Expr:
		r.expr(n)
	case ast.Pat:
		r.pat(n)
	case ast.Stmt:
		r.stmt(n)
	case ast.Item:
		r.item(n)
	case ast.TraitItem:
		r.traitItem(n)
	case ast.ImplItem:
		r.implItem(n)
	case ast.FnArg:
		r.fnArg(n)
	case ast.GenericParam:
		r.genericParam(n)
	case ast.WherePredicate:
		r.wherePredicate(n)
	case ast.TypeParamBound:
		r.bound(n)
	case ast.GenericArgument:
		r.genericArgument(n)
	case ast.PathArguments:
		r.pathArguments(n)
	case *ast.Block:
		r.block(n)
	case *ast.Path:
		r.path(n)
	case *ast.WhereClause:
		r.whereClause(n)
	default:
		r.unknown(n)
	}
}

// unknown records a node that reached the default branch of a dispatch.
// Its children, if any, are left untouched.
func (r *Rewriter) unknown(n ast.Node) {
	kind := fmt.Sprintf("%T", n)
	r.unhandled.Insert(kind)
	r.logger.Warn("skipping node of unknown kind, type references inside it are not rewritten",
		"kind", kind,
		"node", n.Describe(),
		"at", ast.RangeOf(n),
	)
}

func sortedSlice(s *set.Set[string]) []string {
	if s.Size() == 0 {
		return nil
	}
	out := s.Slice()
	slices.Sort(out)
	return out
}
