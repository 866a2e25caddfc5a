package ast

import "reflect"

// CopyTypePath deeply copies a type reference, so that the copy shares no
// nodes with t.
func CopyTypePath(t *TypePath) *TypePath {
	if t == nil {
		return nil
	}
	next := &TypePath{Range: t.Range, Path: copyPath(t.Path)}
	if t.QSelf != nil {
		next.QSelf = &QSelf{Range: t.QSelf.Range, Type: CopyType(t.QSelf.Type), Position: t.QSelf.Position}
	}
	return next
}

// CopyType deeply copies a type.
func CopyType(t Type) Type {
	switch t := t.(type) {
	case nil:
		return nil
	case *TypePath:
		return CopyTypePath(t)
	case *TypeArray:
		return &TypeArray{Range: t.Range, Elem: CopyType(t.Elem), Len: CopyExpr(t.Len)}
	case *TypeSlice:
		return &TypeSlice{Range: t.Range, Elem: CopyType(t.Elem)}
	case *TypeReference:
		next := *t
		next.Elem = CopyType(t.Elem)
		return &next
	case *TypePtr:
		return &TypePtr{Range: t.Range, Mutable: t.Mutable, Elem: CopyType(t.Elem)}
	case *TypeBareFn:
		next := *t
		next.Lifetimes = copyStrings(t.Lifetimes)
		next.Inputs = make([]BareFnArg, len(t.Inputs))
		for i, in := range t.Inputs {
			next.Inputs[i] = BareFnArg{Range: in.Range, Name: in.Name, Type: CopyType(in.Type)}
		}
		next.Output = CopyType(t.Output)
		return &next
	case *TypeImplTrait:
		return &TypeImplTrait{Range: t.Range, Bounds: CopyBounds(t.Bounds)}
	case *TypeTraitObject:
		return &TypeTraitObject{Range: t.Range, Dyn: t.Dyn, Bounds: CopyBounds(t.Bounds)}
	case *TypeTuple:
		return &TypeTuple{Range: t.Range, Elems: copyTypes(t.Elems)}
	case *TypeParen:
		return &TypeParen{Range: t.Range, Elem: CopyType(t.Elem)}
	case *TypeGroup:
		return &TypeGroup{Range: t.Range, Elem: CopyType(t.Elem)}
	case *TypeInfer:
		next := *t
		return &next
	case *TypeNever:
		next := *t
		return &next
	case *TypeLit:
		next := *t
		return &next
	case *TypeMacro:
		next := *t
		next.Mac.Path = copyPath(t.Mac.Path)
		return &next
	case *TypeVerbatim:
		next := *t
		return &next
	default:
		return deepCopy(t).(Type)
	}
}

// CopyBounds deeply copies a bound list.
func CopyBounds(bounds []TypeParamBound) []TypeParamBound {
	if bounds == nil {
		return nil
	}
	next := make([]TypeParamBound, len(bounds))
	for i, bound := range bounds {
		switch bound := bound.(type) {
		case *TraitBound:
			next[i] = &TraitBound{
				Range:     bound.Range,
				Paren:     bound.Paren,
				Modifier:  bound.Modifier,
				Lifetimes: copyStrings(bound.Lifetimes),
				Path:      copyPath(bound.Path),
			}
		case *LifetimeBound:
			b := *bound
			next[i] = &b
		case *VerbatimBound:
			b := *bound
			next[i] = &b
		default:
			next[i] = deepCopy(bound).(TypeParamBound)
		}
	}
	return next
}

// CopyExpr deeply copies an expression.
func CopyExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	return deepCopy(e).(Expr)
}

func copyPath(p Path) Path {
	next := Path{Range: p.Range, Global: p.Global}
	if p.Segments == nil {
		return next
	}
	next.Segments = make([]PathSegment, len(p.Segments))
	for i, seg := range p.Segments {
		next.Segments[i] = PathSegment{Range: seg.Range, Ident: seg.Ident}
		switch args := seg.Arguments.(type) {
		case *AngleBracketedArgs:
			next.Segments[i].Arguments = copyAngleBracketed(args)
		case *ParenthesizedArgs:
			next.Segments[i].Arguments = &ParenthesizedArgs{
				Range:  args.Range,
				Inputs: copyTypes(args.Inputs),
				Output: CopyType(args.Output),
			}
		}
	}
	return next
}

func copyAngleBracketed(args *AngleBracketedArgs) *AngleBracketedArgs {
	if args == nil {
		return nil
	}
	next := &AngleBracketedArgs{Range: args.Range, Turbofish: args.Turbofish, Args: make([]GenericArgument, len(args.Args))}
	for i, arg := range args.Args {
		switch arg := arg.(type) {
		case *TypeArg:
			next.Args[i] = &TypeArg{Range: arg.Range, Type: CopyType(arg.Type)}
		case *ConstArg:
			next.Args[i] = &ConstArg{Range: arg.Range, Value: CopyExpr(arg.Value)}
		case *LifetimeArg:
			a := *arg
			next.Args[i] = &a
		case *AssocType:
			next.Args[i] = &AssocType{Range: arg.Range, Ident: arg.Ident, Generics: copyAngleBracketed(arg.Generics), Type: CopyType(arg.Type)}
		case *AssocConst:
			next.Args[i] = &AssocConst{Range: arg.Range, Ident: arg.Ident, Generics: copyAngleBracketed(arg.Generics), Value: CopyExpr(arg.Value)}
		case *Constraint:
			next.Args[i] = &Constraint{Range: arg.Range, Ident: arg.Ident, Generics: copyAngleBracketed(arg.Generics), Bounds: CopyBounds(arg.Bounds)}
		default:
			next.Args[i] = deepCopy(arg).(GenericArgument)
		}
	}
	return next
}

func copyTypes(types []Type) []Type {
	if types == nil {
		return nil
	}
	next := make([]Type, len(types))
	for i, t := range types {
		next[i] = CopyType(t)
	}
	return next
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// deepCopy copies any tree of pointers, interfaces, slices and structs.
func deepCopy(v any) any {
	if v == nil {
		return nil
	}
	original := reflect.ValueOf(v)
	next := reflect.New(original.Type()).Elem()
	copyValue(next, original)
	return next.Interface()
}

func copyValue(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		dst.Set(reflect.New(src.Elem().Type()))
		copyValue(dst.Elem(), src.Elem())
	case reflect.Interface:
		if src.IsNil() {
			return
		}
		elem := reflect.New(src.Elem().Type()).Elem()
		copyValue(elem, src.Elem())
		dst.Set(elem)
	case reflect.Struct:
		for i := 0; i < src.NumField(); i++ {
			copyValue(dst.Field(i), src.Field(i))
		}
	case reflect.Slice:
		if src.IsNil() {
			return
		}
		dst.Set(reflect.MakeSlice(src.Type(), src.Len(), src.Len()))
		for i := 0; i < src.Len(); i++ {
			copyValue(dst.Index(i), src.Index(i))
		}
	default:
		dst.Set(src)
	}
}
