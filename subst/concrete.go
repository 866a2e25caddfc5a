package subst

import "github.com/cottand/retype/frontend/ast"

// containsInfer reports whether the inferred placeholder _ appears anywhere
// in t. Such a type path would look like a wildcard but only ever match
// another literal _, so it is rejected as a key or value.
func containsInfer(t ast.Type) bool {
	switch t := t.(type) {
	case nil:
		return false
	case *ast.TypeInfer:
		return true
	case *ast.TypePath:
		if t.QSelf != nil && containsInfer(t.QSelf.Type) {
			return true
		}
		return pathContainsInfer(&t.Path)
	case *ast.TypeArray:
		return containsInfer(t.Elem)
	case *ast.TypeSlice:
		return containsInfer(t.Elem)
	case *ast.TypeReference:
		return containsInfer(t.Elem)
	case *ast.TypePtr:
		return containsInfer(t.Elem)
	case *ast.TypeBareFn:
		for _, in := range t.Inputs {
			if containsInfer(in.Type) {
				return true
			}
		}
		return containsInfer(t.Output)
	case *ast.TypeImplTrait:
		return boundsContainInfer(t.Bounds)
	case *ast.TypeTraitObject:
		return boundsContainInfer(t.Bounds)
	case *ast.TypeTuple:
		for _, elem := range t.Elems {
			if containsInfer(elem) {
				return true
			}
		}
		return false
	case *ast.TypeParen:
		return containsInfer(t.Elem)
	case *ast.TypeGroup:
		return containsInfer(t.Elem)
	default:
		// TypeNever, TypeLit, TypeMacro, TypeVerbatim
		return false
	}
}

func pathContainsInfer(p *ast.Path) bool {
	for _, seg := range p.Segments {
		switch args := seg.Arguments.(type) {
		case *ast.AngleBracketedArgs:
			if argsContainInfer(args) {
				return true
			}
		case *ast.ParenthesizedArgs:
			for _, in := range args.Inputs {
				if containsInfer(in) {
					return true
				}
			}
			if containsInfer(args.Output) {
				return true
			}
		}
	}
	return false
}

func argsContainInfer(args *ast.AngleBracketedArgs) bool {
	if args == nil {
		return false
	}
	for _, arg := range args.Args {
		switch arg := arg.(type) {
		case *ast.TypeArg:
			if containsInfer(arg.Type) {
				return true
			}
		case *ast.ConstArg:
			if _, isInfer := arg.Value.(*ast.ExprInfer); isInfer {
				return true
			}
		case *ast.AssocType:
			if argsContainInfer(arg.Generics) || containsInfer(arg.Type) {
				return true
			}
		case *ast.Constraint:
			if argsContainInfer(arg.Generics) || boundsContainInfer(arg.Bounds) {
				return true
			}
		}
	}
	return false
}

func boundsContainInfer(bounds []ast.TypeParamBound) bool {
	for _, bound := range bounds {
		if tb, ok := bound.(*ast.TraitBound); ok && pathContainsInfer(&tb.Path) {
			return true
		}
	}
	return false
}
