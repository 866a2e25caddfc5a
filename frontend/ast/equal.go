package ast

import "reflect"

// EqualTypePath reports whether a and b are the same type reference: every
// segment, generic argument and qualifier match structurally. Source
// positions are ignored.
func EqualTypePath(a, b *TypePath) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalQSelf(a.QSelf, b.QSelf) && equalPath(&a.Path, &b.Path)
}

// EqualType reports whether two types are structurally equal, ignoring positions.
func EqualType(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *TypePath:
		b, ok := b.(*TypePath)
		return ok && EqualTypePath(a, b)
	case *TypeArray:
		b, ok := b.(*TypeArray)
		return ok && EqualType(a.Elem, b.Elem) && EqualExpr(a.Len, b.Len)
	case *TypeSlice:
		b, ok := b.(*TypeSlice)
		return ok && EqualType(a.Elem, b.Elem)
	case *TypeReference:
		b, ok := b.(*TypeReference)
		return ok && a.Lifetime == b.Lifetime && a.Mutable == b.Mutable && EqualType(a.Elem, b.Elem)
	case *TypePtr:
		b, ok := b.(*TypePtr)
		return ok && a.Mutable == b.Mutable && EqualType(a.Elem, b.Elem)
	case *TypeBareFn:
		b, ok := b.(*TypeBareFn)
		if !ok || a.Unsafe != b.Unsafe || a.Abi != b.Abi || a.Variadic != b.Variadic ||
			!equalStrings(a.Lifetimes, b.Lifetimes) || len(a.Inputs) != len(b.Inputs) {
			return false
		}
		for i := range a.Inputs {
			if a.Inputs[i].Name != b.Inputs[i].Name || !EqualType(a.Inputs[i].Type, b.Inputs[i].Type) {
				return false
			}
		}
		return EqualType(a.Output, b.Output)
	case *TypeImplTrait:
		b, ok := b.(*TypeImplTrait)
		return ok && equalBounds(a.Bounds, b.Bounds)
	case *TypeTraitObject:
		b, ok := b.(*TypeTraitObject)
		return ok && a.Dyn == b.Dyn && equalBounds(a.Bounds, b.Bounds)
	case *TypeTuple:
		b, ok := b.(*TypeTuple)
		return ok && equalTypes(a.Elems, b.Elems)
	case *TypeParen:
		b, ok := b.(*TypeParen)
		return ok && EqualType(a.Elem, b.Elem)
	case *TypeGroup:
		b, ok := b.(*TypeGroup)
		return ok && EqualType(a.Elem, b.Elem)
	case *TypeInfer:
		_, ok := b.(*TypeInfer)
		return ok
	case *TypeNever:
		_, ok := b.(*TypeNever)
		return ok
	case *TypeLit:
		b, ok := b.(*TypeLit)
		return ok && a.Value == b.Value
	case *TypeMacro:
		b, ok := b.(*TypeMacro)
		return ok && equalMacro(&a.Mac, &b.Mac)
	case *TypeVerbatim:
		b, ok := b.(*TypeVerbatim)
		return ok && a.Tokens == b.Tokens
	default:
		return false
	}
}

// EqualExpr reports whether two expressions are structurally equal, ignoring positions.
//
// Expressions only show up inside type references as const arguments and
// array lengths, so this walks the tree reflectively rather than spelling
// out every expression form.
func EqualExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

var rangeType = reflect.TypeOf(Range{})

func equalValue(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Interface, reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Kind() == reflect.Interface && a.Elem().Type() != b.Elem().Type() {
			return false
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if a.Type().Field(i).Type == rangeType {
				continue
			}
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.String:
		return a.String() == b.String()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() == b.Uint()
	default:
		return reflect.DeepEqual(a.Interface(), b.Interface())
	}
}

func equalQSelf(a, b *QSelf) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Position == b.Position && EqualType(a.Type, b.Type)
}

func equalPath(a, b *Path) bool {
	if a.Global != b.Global || len(a.Segments) != len(b.Segments) {
		return false
	}
	for i := range a.Segments {
		if a.Segments[i].Ident != b.Segments[i].Ident {
			return false
		}
		if !equalPathArguments(a.Segments[i].Arguments, b.Segments[i].Arguments) {
			return false
		}
	}
	return true
}

func equalPathArguments(a, b PathArguments) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *AngleBracketedArgs:
		b, ok := b.(*AngleBracketedArgs)
		return ok && equalAngleBracketed(a, b)
	case *ParenthesizedArgs:
		b, ok := b.(*ParenthesizedArgs)
		return ok && equalTypes(a.Inputs, b.Inputs) && EqualType(a.Output, b.Output)
	default:
		return false
	}
}

// equalAngleBracketed ignores Turbofish: Vec::<T> and Vec<T> name the same type.
func equalAngleBracketed(a, b *AngleBracketedArgs) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !equalGenericArgument(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

func equalGenericArgument(a, b GenericArgument) bool {
	switch a := a.(type) {
	case *TypeArg:
		b, ok := b.(*TypeArg)
		return ok && EqualType(a.Type, b.Type)
	case *ConstArg:
		b, ok := b.(*ConstArg)
		return ok && EqualExpr(a.Value, b.Value)
	case *LifetimeArg:
		b, ok := b.(*LifetimeArg)
		return ok && a.Name == b.Name
	case *AssocType:
		b, ok := b.(*AssocType)
		return ok && a.Ident == b.Ident && equalAngleBracketed(a.Generics, b.Generics) && EqualType(a.Type, b.Type)
	case *AssocConst:
		b, ok := b.(*AssocConst)
		return ok && a.Ident == b.Ident && equalAngleBracketed(a.Generics, b.Generics) && EqualExpr(a.Value, b.Value)
	case *Constraint:
		b, ok := b.(*Constraint)
		return ok && a.Ident == b.Ident && equalAngleBracketed(a.Generics, b.Generics) && equalBounds(a.Bounds, b.Bounds)
	default:
		return false
	}
}

func equalBounds(a, b []TypeParamBound) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalBound(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalBound(a, b TypeParamBound) bool {
	switch a := a.(type) {
	case *TraitBound:
		b, ok := b.(*TraitBound)
		return ok && a.Paren == b.Paren && a.Modifier == b.Modifier &&
			equalStrings(a.Lifetimes, b.Lifetimes) && equalPath(&a.Path, &b.Path)
	case *LifetimeBound:
		b, ok := b.(*LifetimeBound)
		return ok && a.Name == b.Name
	case *VerbatimBound:
		b, ok := b.(*VerbatimBound)
		return ok && a.Tokens == b.Tokens
	default:
		return false
	}
}

func equalMacro(a, b *Macro) bool {
	return a.Delimiter == b.Delimiter && a.Tokens == b.Tokens && equalPath(&a.Path, &b.Path)
}

func equalTypes(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualType(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
