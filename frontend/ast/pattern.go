package ast

var (
	_ Pat = (*PatIdent)(nil)
	_ Pat = (*PatLit)(nil)
	_ Pat = (*PatMacro)(nil)
	_ Pat = (*PatOr)(nil)
	_ Pat = (*PatParen)(nil)
	_ Pat = (*PatPath)(nil)
	_ Pat = (*PatRange)(nil)
	_ Pat = (*PatReference)(nil)
	_ Pat = (*PatRest)(nil)
	_ Pat = (*PatSlice)(nil)
	_ Pat = (*PatStruct)(nil)
	_ Pat = (*PatTuple)(nil)
	_ Pat = (*PatTupleStruct)(nil)
	_ Pat = (*PatType)(nil)
	_ Pat = (*PatVerbatim)(nil)
	_ Pat = (*PatWild)(nil)

	_ FnArg = (*PatType)(nil)
	_ FnArg = (*Receiver)(nil)
)

func (*PatIdent) Describe() string       { return "identifier pattern" }
func (*PatLit) Describe() string         { return "literal pattern" }
func (*PatMacro) Describe() string       { return "macro pattern" }
func (*PatOr) Describe() string          { return "or pattern" }
func (*PatParen) Describe() string       { return "parenthesized pattern" }
func (*PatPath) Describe() string        { return "path pattern" }
func (*PatRange) Describe() string       { return "range pattern" }
func (*PatReference) Describe() string   { return "reference pattern" }
func (*PatRest) Describe() string        { return "rest pattern" }
func (*PatSlice) Describe() string       { return "slice pattern" }
func (*PatStruct) Describe() string      { return "struct pattern" }
func (*PatTuple) Describe() string       { return "tuple pattern" }
func (*PatTupleStruct) Describe() string { return "tuple struct pattern" }
func (*PatType) Describe() string        { return "typed pattern" }
func (*PatVerbatim) Describe() string    { return "verbatim pattern" }
func (*PatWild) Describe() string        { return "wildcard pattern" }

func (*PatIdent) patNode()       {}
func (*PatLit) patNode()         {}
func (*PatMacro) patNode()       {}
func (*PatOr) patNode()          {}
func (*PatParen) patNode()       {}
func (*PatPath) patNode()        {}
func (*PatRange) patNode()       {}
func (*PatReference) patNode()   {}
func (*PatRest) patNode()        {}
func (*PatSlice) patNode()       {}
func (*PatStruct) patNode()      {}
func (*PatTuple) patNode()       {}
func (*PatTupleStruct) patNode() {}
func (*PatType) patNode()        {}
func (*PatVerbatim) patNode()    {}
func (*PatWild) patNode()        {}

func (*PatType) fnArgNode() {}

// PatIdent binds a name: x, ref mut x, x @ Some(_).
type PatIdent struct {
	Range
	ByRef   bool
	Mutable bool
	Name    string
	// Subpat is the optional pattern after @
	Subpat Pat
}

// PatLit matches a literal. Value is the literal as written, including a leading '-'.
type PatLit struct {
	Range
	Value string
}

type PatMacro struct {
	Range
	Mac Macro
}

type PatOr struct {
	Range
	Cases []Pat
}

type PatParen struct {
	Range
	Pat Pat
}

type PatPath struct {
	Range
	QSelf *QSelf
	Path  Path
}

// PatRange matches a range of literals: 0..=9, 'a'..='z'.
// Start and Limit are literal text and may be "" for half-open ranges.
type PatRange struct {
	Range
	Start     string
	Limit     string
	Inclusive bool
}

type PatReference struct {
	Range
	Mutable bool
	Pat     Pat
}

// PatRest is the .. inside tuple and slice patterns.
type PatRest struct{ Range }

type PatSlice struct {
	Range
	Elems []Pat
}

// FieldPat is one field of a PatStruct: a: p, or the shorthand a.
type FieldPat struct {
	Range
	Member string
	Pat    Pat
}

type PatStruct struct {
	Range
	QSelf  *QSelf
	Path   Path
	Fields []FieldPat
	// Rest is set when the pattern ends in ..
	Rest bool
}

type PatTuple struct {
	Range
	Elems []Pat
}

// PatTupleStruct matches a tuple struct or tuple enum variant: Some(x), Color::Rgb(r, g, b).
type PatTupleStruct struct {
	Range
	QSelf *QSelf
	Path  Path
	Elems []Pat
}

// PatType is a type-annotated pattern: x: T. It is also the typed
// argument of a function Signature.
type PatType struct {
	Range
	Pat  Pat
	Type Type
}

type PatVerbatim struct {
	Range
	Tokens string
}

type PatWild struct{ Range }

// Receiver is the self argument of a method: self, &'a mut self, self: Box<Self>.
type Receiver struct {
	Range
	Reference bool
	Lifetime  string
	Mutable   bool
	// Type is the explicit type of self: Box<Self>. It is nil for the shorthand forms
	Type Type
}

func (*Receiver) Describe() string { return "receiver" }
func (*Receiver) fnArgNode()       {}
