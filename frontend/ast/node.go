package ast

// Node is the base interface for all syntax tree nodes.
type Node interface {
	Positioner
	// Describe is what to call this node in diagnostics
	Describe() string
}

// Type is the interface for all nodes in type position.
type Type interface {
	Node
	typeNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Pat is the interface for all (destructuring) pattern nodes.
type Pat interface {
	Node
	patNode()
}

// Stmt is the interface for all statements inside a Block.
type Stmt interface {
	Node
	stmtNode()
}

// Item is the interface for all declarations, whether at the top level of a
// File, inside an inline module, or nested inside a Block.
type Item interface {
	Node
	itemNode()
}

// TraitItem is an associated item inside an ItemTrait.
type TraitItem interface {
	Node
	traitItemNode()
}

// ImplItem is an associated item inside an ItemImpl.
type ImplItem interface {
	Node
	implItemNode()
}

// FnArg is either a Receiver (self) or a PatType (name: Type) in a Signature.
type FnArg interface {
	Node
	fnArgNode()
}

// GenericParam is a TypeParam, ConstParam or LifetimeParam.
type GenericParam interface {
	Node
	genericParamNode()
}

// WherePredicate is a PredicateType or a PredicateLifetime.
type WherePredicate interface {
	Node
	wherePredicateNode()
}

// TypeParamBound is a TraitBound, a LifetimeBound or a VerbatimBound.
type TypeParamBound interface {
	Node
	boundNode()
}

// GenericArgument is one argument between the angle brackets of a PathSegment.
type GenericArgument interface {
	Node
	genericArgNode()
}

// PathArguments is either *AngleBracketedArgs (Vec<T>) or
// *ParenthesizedArgs (Fn(A) -> B).
type PathArguments interface {
	Node
	pathArgsNode()
}

// File is a parsed compilation unit.
type File struct {
	Range
	Items []Item
}

func (*File) Describe() string { return "file" }

// Delimiter of a macro invocation.
type Delimiter uint8

const (
	DelimParen Delimiter = iota
	DelimBrace
	DelimBracket
)

func (d Delimiter) Open() string {
	switch d {
	case DelimBrace:
		return "{"
	case DelimBracket:
		return "["
	default:
		return "("
	}
}

func (d Delimiter) Close() string {
	switch d {
	case DelimBrace:
		return "}"
	case DelimBracket:
		return "]"
	default:
		return ")"
	}
}

// Macro is a macro invocation such as vec![Old::default()].
//
// Tokens is the unparsed body. Neither the path nor the body is rewritten.
type Macro struct {
	Range
	Path      Path
	Delimiter Delimiter
	Tokens    string
}
