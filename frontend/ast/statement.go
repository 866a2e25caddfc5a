package ast

var (
	_ Stmt = (*Local)(nil)
	_ Stmt = (*ItemStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*MacroStmt)(nil)
)

func (*Local) Describe() string     { return "let statement" }
func (*ItemStmt) Describe() string  { return "item statement" }
func (*ExprStmt) Describe() string  { return "expression statement" }
func (*MacroStmt) Describe() string { return "macro statement" }

func (*Local) stmtNode()     {}
func (*ItemStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()  {}
func (*MacroStmt) stmtNode() {}

// Local is a let binding: let x: T = e else { ... };
type Local struct {
	Range
	Pat Pat
	// Init is nil for let x;
	Init *LocalInit
}

type LocalInit struct {
	Range
	Expr Expr
	// Diverge is the optional else block of a let-else
	Diverge Expr
}

// ItemStmt is a declaration nested inside a Block.
type ItemStmt struct {
	Range
	Item Item
}

// ExprStmt is an expression in statement position. Semi is unset
// for the trailing value of a block.
type ExprStmt struct {
	Range
	Expr Expr
	Semi bool
}

type MacroStmt struct {
	Range
	Mac Macro
}
