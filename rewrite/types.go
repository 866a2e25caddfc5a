package rewrite

import "github.com/cottand/retype/frontend/ast"

func (r *Rewriter) types(ts []ast.Type) {
	for _, t := range ts {
		r.typ(t)
	}
}

func (r *Rewriter) typ(t ast.Type) {
	switch t := t.(type) {
	case nil:
	case *ast.TypePath:
		r.typePath(t)
	case *ast.TypeArray:
		r.typ(t.Elem)
		r.expr(t.Len)
	case *ast.TypeSlice:
		r.typ(t.Elem)
	case *ast.TypeReference:
		r.typ(t.Elem)
	case *ast.TypePtr:
		r.typ(t.Elem)
	case *ast.TypeBareFn:
		for i := range t.Inputs {
			r.typ(t.Inputs[i].Type)
		}
		r.typ(t.Output)
	case *ast.TypeImplTrait:
		r.bounds(t.Bounds)
	case *ast.TypeTraitObject:
		r.bounds(t.Bounds)
	case *ast.TypeTuple:
		r.types(t.Elems)
	case *ast.TypeParen:
		r.typ(t.Elem)
	case *ast.TypeGroup:
		r.typ(t.Elem)
	case *ast.TypeInfer, *ast.TypeNever, *ast.TypeLit:
	case *ast.TypeMacro, *ast.TypeVerbatim:
		// opaque
	default:
		r.unknown(t)
	}
}

// typePath is where substitution happens. A matched reference is overwritten
// in place and not descended into, so a substitute that mentions its own key
// (Old -> Box<Old>) is inserted once rather than expanded forever.
func (r *Rewriter) typePath(t *ast.TypePath) {
	if t == nil {
		return
	}
	if to, ok := r.subs.Lookup(t); ok {
		r.logger.Debug("substituting type", "from", ast.Slog(t), "to", ast.Slog(to), "at", t.Range)
		at := t.Range
		*t = *ast.CopyTypePath(to)
		t.Range = at
		r.replaced++
		return
	}
	r.qself(t.QSelf)
	r.path(&t.Path)
}

func (r *Rewriter) qself(q *ast.QSelf) {
	if q != nil {
		r.typ(q.Type)
	}
}

// path rewrites the generic arguments of p. The path itself is not a type
// reference: in expression, pattern and bound position it names a value, a
// variant or a trait.
func (r *Rewriter) path(p *ast.Path) {
	for i := range p.Segments {
		r.pathArguments(p.Segments[i].Arguments)
	}
}

func (r *Rewriter) pathArguments(args ast.PathArguments) {
	switch args := args.(type) {
	case nil:
	case *ast.AngleBracketedArgs:
		r.angleBracketed(args)
	case *ast.ParenthesizedArgs:
		r.types(args.Inputs)
		r.typ(args.Output)
	default:
		r.unknown(args)
	}
}

func (r *Rewriter) angleBracketed(args *ast.AngleBracketedArgs) {
	if args == nil {
		return
	}
	for _, arg := range args.Args {
		r.genericArgument(arg)
	}
}

func (r *Rewriter) genericArgument(arg ast.GenericArgument) {
	switch arg := arg.(type) {
	case nil:
	case *ast.TypeArg:
		r.typ(arg.Type)
	case *ast.ConstArg:
		r.expr(arg.Value)
	case *ast.LifetimeArg:
	case *ast.AssocType:
		r.angleBracketed(arg.Generics)
		r.typ(arg.Type)
	case *ast.AssocConst:
		r.angleBracketed(arg.Generics)
		r.expr(arg.Value)
	case *ast.Constraint:
		r.angleBracketed(arg.Generics)
		r.bounds(arg.Bounds)
	default:
		r.unknown(arg)
	}
}
