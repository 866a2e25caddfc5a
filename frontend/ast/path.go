package ast

// Path is a sequence of segments such as std::collections::HashMap<K, V>.
type Path struct {
	Range
	// Global is set for paths with a leading ::
	Global   bool
	Segments []PathSegment
}

func (*Path) Describe() string { return "path" }

// PathSegment is a single identifier of a Path with its optional arguments.
type PathSegment struct {
	Range
	Ident string
	// Arguments is nil, *AngleBracketedArgs or *ParenthesizedArgs
	Arguments PathArguments
}

// QSelf is the qualifying self type of a path such as <Vec<T> as IntoIterator>::Item.
//
// Position is the number of leading Path segments that belong to the trait:
// for <Vec<T> as a::Trait>::Item the path is a::Trait::Item and Position is 2.
// Position 0 means no trait, as in <Vec<T>>::new.
type QSelf struct {
	Range
	Type     Type
	Position int
}

// AngleBracketedArgs are the <...> arguments of a PathSegment.
//
// Turbofish is set when written as ::<...> in expression position.
type AngleBracketedArgs struct {
	Range
	Turbofish bool
	Args      []GenericArgument
}

func (*AngleBracketedArgs) Describe() string { return "generic arguments" }
func (*AngleBracketedArgs) pathArgsNode()    {}

// ParenthesizedArgs are the arguments of a Fn-like trait: Fn(A, B) -> C.
type ParenthesizedArgs struct {
	Range
	Inputs []Type
	// Output is nil when there is no return type
	Output Type
}

func (*ParenthesizedArgs) Describe() string { return "parenthesized arguments" }
func (*ParenthesizedArgs) pathArgsNode()    {}

var (
	_ GenericArgument = (*TypeArg)(nil)
	_ GenericArgument = (*ConstArg)(nil)
	_ GenericArgument = (*LifetimeArg)(nil)
	_ GenericArgument = (*AssocType)(nil)
	_ GenericArgument = (*AssocConst)(nil)
	_ GenericArgument = (*Constraint)(nil)
)

// TypeArg is a type argument: the T in Vec<T>.
type TypeArg struct {
	Range
	Type Type
}

// ConstArg is a const generic argument: the N in Array<N> or the {N + 1} in Array<{N + 1}>.
type ConstArg struct {
	Range
	Value Expr
}

// LifetimeArg is a lifetime argument: the 'a in Ref<'a, T>.
type LifetimeArg struct {
	Range
	Name string
}

// AssocType binds an associated type: the Item = T in Iterator<Item = T>.
type AssocType struct {
	Range
	Ident string
	// Generics is the optional <...> after Ident (generic associated types)
	Generics *AngleBracketedArgs
	Type     Type
}

// AssocConst binds an associated constant: the N = 3 in Shape<N = 3>.
type AssocConst struct {
	Range
	Ident    string
	Generics *AngleBracketedArgs
	Value    Expr
}

// Constraint bounds an associated type: the Item: Display in Iterator<Item: Display>.
type Constraint struct {
	Range
	Ident    string
	Generics *AngleBracketedArgs
	Bounds   []TypeParamBound
}

func (*TypeArg) Describe() string     { return "type argument" }
func (*ConstArg) Describe() string    { return "const argument" }
func (*LifetimeArg) Describe() string { return "lifetime argument" }
func (*AssocType) Describe() string   { return "associated type binding" }
func (*AssocConst) Describe() string  { return "associated const binding" }
func (*Constraint) Describe() string  { return "associated type constraint" }

func (*TypeArg) genericArgNode()     {}
func (*ConstArg) genericArgNode()    {}
func (*LifetimeArg) genericArgNode() {}
func (*AssocType) genericArgNode()   {}
func (*AssocConst) genericArgNode()  {}
func (*Constraint) genericArgNode()  {}

// TypePath is a Type Reference: a Path in type position, possibly qualified by a QSelf.
//
// It is the unit of substitution: the keys and values of a substitution map
// are TypePaths and matching is structural (see Equal).
type TypePath struct {
	Range
	QSelf *QSelf
	Path  Path
}

// NewTypePath builds an unqualified TypePath from plain identifiers, with no
// generic arguments: NewTypePath("std", "string", "String").
func NewTypePath(idents ...string) *TypePath {
	segs := make([]PathSegment, len(idents))
	for i, ident := range idents {
		segs[i] = PathSegment{Ident: ident}
	}
	return &TypePath{Path: Path{Segments: segs}}
}
