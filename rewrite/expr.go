package rewrite

import "github.com/cottand/retype/frontend/ast"

func (r *Rewriter) exprs(es []ast.Expr) {
	for _, e := range es {
		r.expr(e)
	}
}

func (r *Rewriter) expr(e ast.Expr) {
	switch e := e.(type) {
	case nil:
	case *ast.ExprArray:
		r.exprs(e.Elems)
	case *ast.ExprAssign:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.ExprAsync:
		r.block(e.Block)
	case *ast.ExprAwait:
		r.expr(e.Base)
	case *ast.ExprBinary:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.ExprBlock:
		r.block(e.Block)
	case *ast.ExprBreak:
		r.expr(e.Expr)
	case *ast.ExprCall:
		r.expr(e.Func)
		r.exprs(e.Args)
	case *ast.ExprCast:
		r.expr(e.Expr)
		r.typ(e.Type)
	case *ast.ExprClosure:
		r.pats(e.Inputs)
		r.typ(e.Output)
		r.expr(e.Body)
	case *ast.ExprConst:
		r.block(e.Block)
	case *ast.ExprField:
		r.expr(e.Base)
	case *ast.ExprForLoop:
		r.pat(e.Pat)
		r.expr(e.Expr)
		r.block(e.Body)
	case *ast.ExprGroup:
		r.expr(e.Expr)
	case *ast.ExprIf:
		r.expr(e.Cond)
		r.block(e.Then)
		r.expr(e.Else)
	case *ast.ExprIndex:
		r.expr(e.Expr)
		r.expr(e.Index)
	case *ast.ExprLet:
		r.pat(e.Pat)
		r.expr(e.Expr)
	case *ast.ExprLoop:
		r.block(e.Body)
	case *ast.ExprMatch:
		r.expr(e.Expr)
		for i := range e.Arms {
			arm := &e.Arms[i]
			r.pat(arm.Pat)
			r.expr(arm.Guard)
			r.expr(arm.Body)
		}
	case *ast.ExprMethodCall:
		r.expr(e.Receiver)
		r.angleBracketed(e.Turbofish)
		r.exprs(e.Args)
	case *ast.ExprParen:
		r.expr(e.Expr)
	case *ast.ExprPath:
		r.qself(e.QSelf)
		r.path(&e.Path)
	case *ast.ExprRange:
		r.expr(e.Start)
		r.expr(e.Limit)
	case *ast.ExprReference:
		r.expr(e.Expr)
	case *ast.ExprRepeat:
		r.expr(e.Expr)
		r.expr(e.Len)
	case *ast.ExprReturn:
		r.expr(e.Expr)
	case *ast.ExprStruct:
		r.qself(e.QSelf)
		r.path(&e.Path)
		for i := range e.Fields {
			r.expr(e.Fields[i].Expr)
		}
		r.expr(e.Rest)
	case *ast.ExprTry:
		r.expr(e.Expr)
	case *ast.ExprTryBlock:
		r.block(e.Block)
	case *ast.ExprTuple:
		r.exprs(e.Elems)
	case *ast.ExprUnary:
		r.expr(e.Expr)
	case *ast.ExprUnsafe:
		r.block(e.Block)
	case *ast.ExprWhile:
		r.expr(e.Cond)
		r.block(e.Body)
	case *ast.ExprYield:
		r.expr(e.Expr)
	case *ast.ExprLit, *ast.ExprContinue, *ast.ExprInfer:
	case *ast.ExprMacro, *ast.ExprVerbatim:
		// opaque
	default:
		r.unknown(e)
	}
}

func (r *Rewriter) block(b *ast.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		r.stmt(s)
	}
}

func (r *Rewriter) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case nil:
	case *ast.Local:
		r.pat(s.Pat)
		if s.Init != nil {
			r.expr(s.Init.Expr)
			r.expr(s.Init.Diverge)
		}
	case *ast.ItemStmt:
		r.item(s.Item)
	case *ast.ExprStmt:
		r.expr(s.Expr)
	case *ast.MacroStmt:
		// opaque
	default:
		r.unknown(s)
	}
}
