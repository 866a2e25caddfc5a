package rewrite

import "github.com/cottand/retype/frontend/ast"

func (r *Rewriter) generics(g *ast.Generics) {
	for _, param := range g.Params {
		r.genericParam(param)
	}
	r.whereClause(g.Where)
}

func (r *Rewriter) genericParam(param ast.GenericParam) {
	switch param := param.(type) {
	case nil:
	case *ast.TypeParam:
		r.bounds(param.Bounds)
		r.typ(param.Default)
	case *ast.ConstParam:
		r.typ(param.Type)
		r.expr(param.Default)
	case *ast.LifetimeParam:
	default:
		r.unknown(param)
	}
}

func (r *Rewriter) whereClause(w *ast.WhereClause) {
	if w == nil {
		return
	}
	for _, pred := range w.Predicates {
		r.wherePredicate(pred)
	}
}

func (r *Rewriter) wherePredicate(pred ast.WherePredicate) {
	switch pred := pred.(type) {
	case nil:
	case *ast.PredicateType:
		r.typ(pred.BoundedTy)
		r.bounds(pred.Bounds)
	case *ast.PredicateLifetime:
	default:
		r.unknown(pred)
	}
}

func (r *Rewriter) bounds(bounds []ast.TypeParamBound) {
	for _, b := range bounds {
		r.bound(b)
	}
}

// bound rewrites the arguments of a trait bound. The bound's own path names
// a trait and is never substituted: in `impl Produces<Old>` only Old can be.
func (r *Rewriter) bound(b ast.TypeParamBound) {
	switch b := b.(type) {
	case nil:
	case *ast.TraitBound:
		r.path(&b.Path)
	case *ast.LifetimeBound:
	case *ast.VerbatimBound:
		// opaque
	default:
		r.unknown(b)
	}
}
