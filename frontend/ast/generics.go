package ast

var (
	_ GenericParam = (*TypeParam)(nil)
	_ GenericParam = (*ConstParam)(nil)
	_ GenericParam = (*LifetimeParam)(nil)

	_ WherePredicate = (*PredicateType)(nil)
	_ WherePredicate = (*PredicateLifetime)(nil)

	_ TypeParamBound = (*TraitBound)(nil)
	_ TypeParamBound = (*LifetimeBound)(nil)
	_ TypeParamBound = (*VerbatimBound)(nil)
)

func (*TypeParam) Describe() string         { return "type parameter" }
func (*ConstParam) Describe() string        { return "const parameter" }
func (*LifetimeParam) Describe() string     { return "lifetime parameter" }
func (*WhereClause) Describe() string       { return "where clause" }
func (*PredicateType) Describe() string     { return "type predicate" }
func (*PredicateLifetime) Describe() string { return "lifetime predicate" }
func (*TraitBound) Describe() string        { return "trait bound" }
func (*LifetimeBound) Describe() string     { return "lifetime bound" }
func (*VerbatimBound) Describe() string     { return "verbatim bound" }

func (*TypeParam) genericParamNode()     {}
func (*ConstParam) genericParamNode()    {}
func (*LifetimeParam) genericParamNode() {}

func (*PredicateType) wherePredicateNode()     {}
func (*PredicateLifetime) wherePredicateNode() {}

func (*TraitBound) boundNode()    {}
func (*LifetimeBound) boundNode() {}
func (*VerbatimBound) boundNode() {}

// Generics are the <...> parameters of a declaration with its where clause.
// The zero value means no generics.
type Generics struct {
	Range
	Params []GenericParam
	// Where is nil when there is no where clause
	Where *WhereClause
}

// TypeParam is a generic type parameter: T: Bound + Bound = Default.
type TypeParam struct {
	Range
	Name   string
	Bounds []TypeParamBound
	// Default may be nil
	Default Type
}

// ConstParam is a const generic parameter: const N: usize = 3.
type ConstParam struct {
	Range
	Name string
	Type Type
	// Default may be nil
	Default Expr
}

// LifetimeParam is a lifetime parameter: 'a: 'b + 'c. It holds no types.
type LifetimeParam struct {
	Range
	Name   string
	Bounds []string
}

type WhereClause struct {
	Range
	Predicates []WherePredicate
}

// PredicateType bounds a type: for<'a> T: Bound<'a> + 'static.
type PredicateType struct {
	Range
	Lifetimes []string
	BoundedTy Type
	Bounds    []TypeParamBound
}

// PredicateLifetime bounds a lifetime: 'a: 'b.
type PredicateLifetime struct {
	Range
	Lifetime string
	Bounds   []string
}

// TraitModifier is the optional ? of ?Sized
type TraitModifier uint8

const (
	ModifierNone TraitModifier = iota
	ModifierMaybe
)

// TraitBound is a capability bound: Iterator<Item = T>, ?Sized, for<'a> Fn(&'a T) -> U.
type TraitBound struct {
	Range
	Paren     bool
	Modifier  TraitModifier
	Lifetimes []string
	Path      Path
}

type LifetimeBound struct {
	Range
	Name string
}

// VerbatimBound is a bound the parser did not understand, kept as tokens.
type VerbatimBound struct {
	Range
	Tokens string
}
