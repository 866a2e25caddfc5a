package rewrite

import "github.com/cottand/retype/frontend/ast"

func (r *Rewriter) pats(ps []ast.Pat) {
	for _, p := range ps {
		r.pat(p)
	}
}

func (r *Rewriter) pat(p ast.Pat) {
	switch p := p.(type) {
	case nil:
	case *ast.PatIdent:
		r.pat(p.Subpat)
	case *ast.PatOr:
		r.pats(p.Cases)
	case *ast.PatParen:
		r.pat(p.Pat)
	case *ast.PatPath:
		r.qself(p.QSelf)
		r.path(&p.Path)
	case *ast.PatReference:
		r.pat(p.Pat)
	case *ast.PatSlice:
		r.pats(p.Elems)
	case *ast.PatStruct:
		r.qself(p.QSelf)
		r.path(&p.Path)
		for i := range p.Fields {
			r.pat(p.Fields[i].Pat)
		}
	case *ast.PatTuple:
		r.pats(p.Elems)
	case *ast.PatTupleStruct:
		r.qself(p.QSelf)
		r.path(&p.Path)
		r.pats(p.Elems)
	case *ast.PatType:
		r.pat(p.Pat)
		r.typ(p.Type)
	case *ast.PatLit, *ast.PatRange, *ast.PatRest, *ast.PatWild:
	case *ast.PatMacro, *ast.PatVerbatim:
		// opaque
	default:
		r.unknown(p)
	}
}
