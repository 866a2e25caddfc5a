package ast

import "go/token"

var (
	_ Expr = (*ExprArray)(nil)
	_ Expr = (*ExprAssign)(nil)
	_ Expr = (*ExprAsync)(nil)
	_ Expr = (*ExprAwait)(nil)
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprBlock)(nil)
	_ Expr = (*ExprBreak)(nil)
	_ Expr = (*ExprCall)(nil)
	_ Expr = (*ExprCast)(nil)
	_ Expr = (*ExprClosure)(nil)
	_ Expr = (*ExprConst)(nil)
	_ Expr = (*ExprContinue)(nil)
	_ Expr = (*ExprField)(nil)
	_ Expr = (*ExprForLoop)(nil)
	_ Expr = (*ExprGroup)(nil)
	_ Expr = (*ExprIf)(nil)
	_ Expr = (*ExprIndex)(nil)
	_ Expr = (*ExprInfer)(nil)
	_ Expr = (*ExprLet)(nil)
	_ Expr = (*ExprLit)(nil)
	_ Expr = (*ExprLoop)(nil)
	_ Expr = (*ExprMacro)(nil)
	_ Expr = (*ExprMatch)(nil)
	_ Expr = (*ExprMethodCall)(nil)
	_ Expr = (*ExprParen)(nil)
	_ Expr = (*ExprPath)(nil)
	_ Expr = (*ExprRange)(nil)
	_ Expr = (*ExprReference)(nil)
	_ Expr = (*ExprRepeat)(nil)
	_ Expr = (*ExprReturn)(nil)
	_ Expr = (*ExprStruct)(nil)
	_ Expr = (*ExprTry)(nil)
	_ Expr = (*ExprTryBlock)(nil)
	_ Expr = (*ExprTuple)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Expr = (*ExprUnsafe)(nil)
	_ Expr = (*ExprVerbatim)(nil)
	_ Expr = (*ExprWhile)(nil)
	_ Expr = (*ExprYield)(nil)
)

func (*ExprArray) Describe() string      { return "array expression" }
func (*ExprAssign) Describe() string     { return "assignment" }
func (*ExprAsync) Describe() string      { return "async block" }
func (*ExprAwait) Describe() string      { return "await expression" }
func (*ExprBinary) Describe() string     { return "binary operation" }
func (*ExprBlock) Describe() string      { return "block expression" }
func (*ExprBreak) Describe() string      { return "break" }
func (*ExprCall) Describe() string       { return "function call" }
func (*ExprCast) Describe() string       { return "cast" }
func (*ExprClosure) Describe() string    { return "closure" }
func (*ExprConst) Describe() string      { return "const block" }
func (*ExprContinue) Describe() string   { return "continue" }
func (*ExprField) Describe() string      { return "field access" }
func (*ExprForLoop) Describe() string    { return "for loop" }
func (*ExprGroup) Describe() string      { return "group expression" }
func (*ExprIf) Describe() string         { return "if expression" }
func (*ExprIndex) Describe() string      { return "index expression" }
func (*ExprInfer) Describe() string      { return "inferred expression" }
func (*ExprLet) Describe() string        { return "let guard" }
func (*ExprLit) Describe() string        { return "literal" }
func (*ExprLoop) Describe() string       { return "loop" }
func (*ExprMacro) Describe() string      { return "macro invocation" }
func (*ExprMatch) Describe() string      { return "match expression" }
func (*ExprMethodCall) Describe() string { return "method call" }
func (*ExprParen) Describe() string      { return "parenthesized expression" }
func (*ExprPath) Describe() string       { return "path expression" }
func (*ExprRange) Describe() string      { return "range expression" }
func (*ExprReference) Describe() string  { return "reference expression" }
func (*ExprRepeat) Describe() string     { return "repeat expression" }
func (*ExprReturn) Describe() string     { return "return" }
func (*ExprStruct) Describe() string     { return "struct literal" }
func (*ExprTry) Describe() string        { return "try expression" }
func (*ExprTryBlock) Describe() string   { return "try block" }
func (*ExprTuple) Describe() string      { return "tuple expression" }
func (*ExprUnary) Describe() string      { return "unary operation" }
func (*ExprUnsafe) Describe() string     { return "unsafe block" }
func (*ExprVerbatim) Describe() string   { return "verbatim expression" }
func (*ExprWhile) Describe() string      { return "while loop" }
func (*ExprYield) Describe() string      { return "yield" }

func (*ExprArray) exprNode()      {}
func (*ExprAssign) exprNode()     {}
func (*ExprAsync) exprNode()      {}
func (*ExprAwait) exprNode()      {}
func (*ExprBinary) exprNode()     {}
func (*ExprBlock) exprNode()      {}
func (*ExprBreak) exprNode()      {}
func (*ExprCall) exprNode()       {}
func (*ExprCast) exprNode()       {}
func (*ExprClosure) exprNode()    {}
func (*ExprConst) exprNode()      {}
func (*ExprContinue) exprNode()   {}
func (*ExprField) exprNode()      {}
func (*ExprForLoop) exprNode()    {}
func (*ExprGroup) exprNode()      {}
func (*ExprIf) exprNode()         {}
func (*ExprIndex) exprNode()      {}
func (*ExprInfer) exprNode()      {}
func (*ExprLet) exprNode()        {}
func (*ExprLit) exprNode()        {}
func (*ExprLoop) exprNode()       {}
func (*ExprMacro) exprNode()      {}
func (*ExprMatch) exprNode()      {}
func (*ExprMethodCall) exprNode() {}
func (*ExprParen) exprNode()      {}
func (*ExprPath) exprNode()       {}
func (*ExprRange) exprNode()      {}
func (*ExprReference) exprNode()  {}
func (*ExprRepeat) exprNode()     {}
func (*ExprReturn) exprNode()     {}
func (*ExprStruct) exprNode()     {}
func (*ExprTry) exprNode()        {}
func (*ExprTryBlock) exprNode()   {}
func (*ExprTuple) exprNode()      {}
func (*ExprUnary) exprNode()      {}
func (*ExprUnsafe) exprNode()     {}
func (*ExprVerbatim) exprNode()   {}
func (*ExprWhile) exprNode()      {}
func (*ExprYield) exprNode()      {}

// Block is a brace-delimited sequence of statements. The value of the block
// is the trailing ExprStmt without a semicolon, if any.
type Block struct {
	Range
	Stmts []Stmt
}

func (*Block) Describe() string { return "block" }

type ExprArray struct {
	Range
	Elems []Expr
}

type ExprAssign struct {
	Range
	Left, Right Expr
}

type ExprAsync struct {
	Range
	Move  bool
	Block *Block
}

type ExprAwait struct {
	Range
	Base Expr
}

type ExprBinary struct {
	Range
	Left Expr
	// Op is a Go token standing in for the operator: token.ADD, token.LAND, token.ADD_ASSIGN...
	Op    token.Token
	Right Expr
}

type ExprBlock struct {
	Range
	// Label may be "" and is written without the leading '
	Label string
	Block *Block
}

type ExprBreak struct {
	Range
	Label string
	// Expr is the optional value the loop breaks with
	Expr Expr
}

type ExprCall struct {
	Range
	Func Expr
	Args []Expr
}

type ExprCast struct {
	Range
	Expr Expr
	Type Type
}

type ExprClosure struct {
	Range
	Const  bool
	Static bool
	Async  bool
	Move   bool
	Inputs []Pat
	// Output is the optional return type annotation: |x| -> T { ... }
	Output Type
	Body   Expr
}

type ExprConst struct {
	Range
	Block *Block
}

type ExprContinue struct {
	Range
	Label string
}

// ExprField accesses a named (a.b) or unnamed (a.0) field.
type ExprField struct {
	Range
	Base   Expr
	Member string
}

type ExprForLoop struct {
	Range
	Label string
	Pat   Pat
	Expr  Expr
	Body  *Block
}

// ExprGroup is an invisible group produced by macro expansion.
type ExprGroup struct {
	Range
	Expr Expr
}

type ExprIf struct {
	Range
	Cond Expr
	Then *Block
	// Else is nil, an *ExprIf (else if) or an *ExprBlock
	Else Expr
}

type ExprIndex struct {
	Range
	Expr  Expr
	Index Expr
}

// ExprInfer is the placeholder _ in expression position.
type ExprInfer struct{ Range }

// ExprLet is a let guard inside if and while conditions: if let Some(x) = y.
type ExprLet struct {
	Range
	Pat  Pat
	Expr Expr
}

type ExprLit struct {
	Range
	// Kind is one of token.INT, token.FLOAT, token.STRING, token.CHAR or token.IDENT for true/false
	Kind  token.Token
	Value string
}

type ExprLoop struct {
	Range
	Label string
	Body  *Block
}

type ExprMacro struct {
	Range
	Mac Macro
}

// Arm is one arm of an ExprMatch.
type Arm struct {
	Range
	Pat Pat
	// Guard is the optional if condition of the arm
	Guard Expr
	Body  Expr
}

type ExprMatch struct {
	Range
	Expr Expr
	Arms []Arm
}

type ExprMethodCall struct {
	Range
	Receiver Expr
	Method   string
	// Turbofish is the optional ::<...> after the method name
	Turbofish *AngleBracketedArgs
	Args      []Expr
}

type ExprParen struct {
	Range
	Expr Expr
}

// ExprPath is a path in expression position: x, Vec::<T>::new, <T as Default>::default.
type ExprPath struct {
	Range
	QSelf *QSelf
	Path  Path
}

type ExprRange struct {
	Range
	// Start and Limit may each be nil: .., a.., ..b
	Start     Expr
	Limit     Expr
	Inclusive bool
}

type ExprReference struct {
	Range
	Mutable bool
	Expr    Expr
}

type ExprRepeat struct {
	Range
	Expr Expr
	Len  Expr
}

type ExprReturn struct {
	Range
	Expr Expr
}

// FieldValue is one field: value of an ExprStruct.
type FieldValue struct {
	Range
	Member string
	Expr   Expr
}

type ExprStruct struct {
	Range
	QSelf  *QSelf
	Path   Path
	Fields []FieldValue
	// Rest is the optional base of functional update syntax: S { a, ..base }
	Rest Expr
}

type ExprTry struct {
	Range
	Expr Expr
}

type ExprTryBlock struct {
	Range
	Block *Block
}

type ExprTuple struct {
	Range
	Elems []Expr
}

// UnaryOp of an ExprUnary.
type UnaryOp uint8

const (
	UnaryDeref UnaryOp = iota
	UnaryNot
	UnaryNeg
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryDeref:
		return "*"
	case UnaryNot:
		return "!"
	case UnaryNeg:
		return "-"
	default:
		return "?"
	}
}

type ExprUnary struct {
	Range
	Op   UnaryOp
	Expr Expr
}

type ExprUnsafe struct {
	Range
	Block *Block
}

type ExprVerbatim struct {
	Range
	Tokens string
}

type ExprWhile struct {
	Range
	Label string
	Cond  Expr
	Body  *Block
}

type ExprYield struct {
	Range
	Expr Expr
}
