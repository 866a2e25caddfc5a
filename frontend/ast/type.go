package ast

var (
	_ Type = (*TypePath)(nil)
	_ Type = (*TypeArray)(nil)
	_ Type = (*TypeSlice)(nil)
	_ Type = (*TypeReference)(nil)
	_ Type = (*TypePtr)(nil)
	_ Type = (*TypeBareFn)(nil)
	_ Type = (*TypeImplTrait)(nil)
	_ Type = (*TypeTraitObject)(nil)
	_ Type = (*TypeTuple)(nil)
	_ Type = (*TypeParen)(nil)
	_ Type = (*TypeGroup)(nil)
	_ Type = (*TypeInfer)(nil)
	_ Type = (*TypeNever)(nil)
	_ Type = (*TypeLit)(nil)
	_ Type = (*TypeMacro)(nil)
	_ Type = (*TypeVerbatim)(nil)
)

// Type is the base for everything in type position.
//
// The following types are supported:
//
//	TypePath:        a type reference, possibly qualified: Vec<T>, <T as Trait>::Assoc
//	TypeArray:       fixed size array: [T; N]
//	TypeSlice:       dynamically sized slice: [T]
//	TypeReference:   reference: &'a mut T
//	TypePtr:         raw pointer: *const T
//	TypeBareFn:      function pointer: fn(A) -> B
//	TypeImplTrait:   impl Bound + Bound
//	TypeTraitObject: dyn Bound + Bound
//	TypeTuple:       (A, B) and the unit type ()
//	TypeParen:       (T)
//	TypeGroup:       an invisible group produced by macro expansion
//	TypeInfer:       the inferred placeholder _
//	TypeNever:       !
//	TypeLit:         a literal in type position
//	TypeMacro:       opaque macro invocation in type position
//	TypeVerbatim:    opaque tokens not understood by the parser

func (*TypePath) Describe() string        { return "type path" }
func (*TypeArray) Describe() string       { return "array type" }
func (*TypeSlice) Describe() string       { return "slice type" }
func (*TypeReference) Describe() string   { return "reference type" }
func (*TypePtr) Describe() string         { return "pointer type" }
func (*TypeBareFn) Describe() string      { return "function pointer type" }
func (*TypeImplTrait) Describe() string   { return "impl trait type" }
func (*TypeTraitObject) Describe() string { return "trait object type" }
func (*TypeTuple) Describe() string       { return "tuple type" }
func (*TypeParen) Describe() string       { return "parenthesized type" }
func (*TypeGroup) Describe() string       { return "group type" }
func (*TypeInfer) Describe() string       { return "inferred type" }
func (*TypeNever) Describe() string       { return "never type" }
func (*TypeLit) Describe() string         { return "literal type" }
func (*TypeMacro) Describe() string       { return "macro type" }
func (*TypeVerbatim) Describe() string    { return "verbatim type" }

func (*TypePath) typeNode()        {}
func (*TypeArray) typeNode()       {}
func (*TypeSlice) typeNode()       {}
func (*TypeReference) typeNode()   {}
func (*TypePtr) typeNode()         {}
func (*TypeBareFn) typeNode()      {}
func (*TypeImplTrait) typeNode()   {}
func (*TypeTraitObject) typeNode() {}
func (*TypeTuple) typeNode()       {}
func (*TypeParen) typeNode()       {}
func (*TypeGroup) typeNode()       {}
func (*TypeInfer) typeNode()       {}
func (*TypeNever) typeNode()       {}
func (*TypeLit) typeNode()         {}
func (*TypeMacro) typeNode()       {}
func (*TypeVerbatim) typeNode()    {}

type TypeArray struct {
	Range
	Elem Type
	Len  Expr
}

type TypeSlice struct {
	Range
	Elem Type
}

type TypeReference struct {
	Range
	// Lifetime may be ""
	Lifetime string
	Mutable  bool
	Elem     Type
}

type TypePtr struct {
	Range
	// Mutable distinguishes *mut T from *const T
	Mutable bool
	Elem    Type
}

// BareFnArg is a possibly named argument of a TypeBareFn.
type BareFnArg struct {
	Range
	// Name may be ""
	Name string
	Type Type
}

type TypeBareFn struct {
	Range
	// Lifetimes of a for<'a> binder
	Lifetimes []string
	Unsafe    bool
	// Abi may be "" (no extern), or the ABI string of an extern fn
	Abi      string
	Inputs   []BareFnArg
	Variadic bool
	// Output is nil for functions returning ()
	Output Type
}

type TypeImplTrait struct {
	Range
	Bounds []TypeParamBound
}

type TypeTraitObject struct {
	Range
	Dyn    bool
	Bounds []TypeParamBound
}

type TypeTuple struct {
	Range
	Elems []Type
}

type TypeParen struct {
	Range
	Elem Type
}

type TypeGroup struct {
	Range
	Elem Type
}

type TypeInfer struct{ Range }

type TypeNever struct{ Range }

type TypeLit struct {
	Range
	Value string
}

type TypeMacro struct {
	Range
	Mac Macro
}

type TypeVerbatim struct {
	Range
	Tokens string
}
