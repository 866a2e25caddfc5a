package ast

import (
	"encoding/binary"
	"hash/fnv"
)

// Hash returns a hash value for the TypePath, based on its structural
// characteristics. Type paths which are EqualTypePath have the same Hash.
func (t *TypePath) Hash() uint64 {
	return HashType(t)
}

// HashType returns a hash value for a Type consistent with EqualType.
func HashType(t Type) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(appendType(nil, t))
	return h.Sum64()
}

func appendType(arr []byte, t Type) []byte {
	if t == nil {
		return append(arr, "nil"...)
	}
	switch t := t.(type) {
	case *TypePath:
		arr = append(arr, "TypePath"...)
		if t.QSelf != nil {
			arr = append(arr, "QSelf"...)
			arr = binary.LittleEndian.AppendUint64(arr, uint64(t.QSelf.Position))
			arr = appendType(arr, t.QSelf.Type)
		}
		arr = appendPath(arr, &t.Path)
	case *TypeArray:
		arr = append(arr, "TypeArray"...)
		arr = appendType(arr, t.Elem)
		arr = appendExpr(arr, t.Len)
	case *TypeSlice:
		arr = append(arr, "TypeSlice"...)
		arr = appendType(arr, t.Elem)
	case *TypeReference:
		arr = append(arr, "TypeReference"...)
		arr = append(arr, t.Lifetime...)
		arr = appendBool(arr, t.Mutable)
		arr = appendType(arr, t.Elem)
	case *TypePtr:
		arr = append(arr, "TypePtr"...)
		arr = appendBool(arr, t.Mutable)
		arr = appendType(arr, t.Elem)
	case *TypeBareFn:
		arr = append(arr, "TypeBareFn"...)
		arr = appendStrings(arr, t.Lifetimes)
		arr = appendBool(arr, t.Unsafe)
		arr = append(arr, t.Abi...)
		for _, in := range t.Inputs {
			arr = append(arr, in.Name...)
			arr = appendType(arr, in.Type)
		}
		arr = appendBool(arr, t.Variadic)
		arr = appendType(arr, t.Output)
	case *TypeImplTrait:
		arr = append(arr, "TypeImplTrait"...)
		arr = appendBounds(arr, t.Bounds)
	case *TypeTraitObject:
		arr = append(arr, "TypeTraitObject"...)
		arr = appendBool(arr, t.Dyn)
		arr = appendBounds(arr, t.Bounds)
	case *TypeTuple:
		arr = append(arr, "TypeTuple"...)
		arr = binary.LittleEndian.AppendUint64(arr, uint64(len(t.Elems)))
		for _, elem := range t.Elems {
			arr = appendType(arr, elem)
		}
	case *TypeParen:
		arr = append(arr, "TypeParen"...)
		arr = appendType(arr, t.Elem)
	case *TypeGroup:
		arr = append(arr, "TypeGroup"...)
		arr = appendType(arr, t.Elem)
	case *TypeLit:
		arr = append(arr, "TypeLit"...)
		arr = append(arr, t.Value...)
	case *TypeMacro:
		arr = append(arr, "TypeMacro"...)
		arr = append(arr, t.Mac.Tokens...)
	case *TypeVerbatim:
		arr = append(arr, "TypeVerbatim"...)
		arr = append(arr, t.Tokens...)
	default:
		// TypeInfer, TypeNever
		arr = append(arr, t.Describe()...)
	}
	return arr
}

func appendPath(arr []byte, p *Path) []byte {
	arr = appendBool(arr, p.Global)
	for _, seg := range p.Segments {
		arr = append(arr, "::"...)
		arr = append(arr, seg.Ident...)
		switch args := seg.Arguments.(type) {
		case *AngleBracketedArgs:
			arr = appendAngleBracketed(arr, args)
		case *ParenthesizedArgs:
			arr = append(arr, '(')
			for _, in := range args.Inputs {
				arr = appendType(arr, in)
			}
			arr = append(arr, ')')
			arr = appendType(arr, args.Output)
		}
	}
	return arr
}

func appendAngleBracketed(arr []byte, args *AngleBracketedArgs) []byte {
	if args == nil {
		return arr
	}
	arr = append(arr, '<')
	for _, arg := range args.Args {
		switch arg := arg.(type) {
		case *TypeArg:
			arr = appendType(arr, arg.Type)
		case *ConstArg:
			arr = appendExpr(arr, arg.Value)
		case *LifetimeArg:
			arr = append(arr, arg.Name...)
		case *AssocType:
			arr = append(arr, arg.Ident...)
			arr = appendAngleBracketed(arr, arg.Generics)
			arr = append(arr, '=')
			arr = appendType(arr, arg.Type)
		case *AssocConst:
			arr = append(arr, arg.Ident...)
			arr = appendAngleBracketed(arr, arg.Generics)
			arr = append(arr, '=')
			arr = appendExpr(arr, arg.Value)
		case *Constraint:
			arr = append(arr, arg.Ident...)
			arr = appendAngleBracketed(arr, arg.Generics)
			arr = append(arr, ':')
			arr = appendBounds(arr, arg.Bounds)
		}
		arr = append(arr, ',')
	}
	return append(arr, '>')
}

func appendBounds(arr []byte, bounds []TypeParamBound) []byte {
	for _, bound := range bounds {
		switch bound := bound.(type) {
		case *TraitBound:
			arr = append(arr, "TraitBound"...)
			arr = appendBool(arr, bound.Paren)
			arr = appendBool(arr, bound.Modifier == ModifierMaybe)
			arr = appendStrings(arr, bound.Lifetimes)
			arr = appendPath(arr, &bound.Path)
		case *LifetimeBound:
			arr = append(arr, bound.Name...)
		case *VerbatimBound:
			arr = append(arr, bound.Tokens...)
		}
		arr = append(arr, '+')
	}
	return arr
}

// appendExpr uses the rendered expression, which carries no positions.
func appendExpr(arr []byte, e Expr) []byte {
	if e == nil {
		return append(arr, "nil"...)
	}
	return append(arr, ExprString(e)...)
}

func appendBool(arr []byte, b bool) []byte {
	if b {
		return append(arr, 1)
	}
	return append(arr, 0)
}

func appendStrings(arr []byte, ss []string) []byte {
	arr = binary.LittleEndian.AppendUint64(arr, uint64(len(ss)))
	for _, s := range ss {
		arr = append(arr, s...)
		arr = append(arr, 0)
	}
	return arr
}
