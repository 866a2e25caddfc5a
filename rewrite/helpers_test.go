package rewrite_test

import (
	"testing"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/parser"
	"github.com/cottand/retype/subst"
	"github.com/stretchr/testify/require"
)

func ty(src string) ast.Type {
	return parser.MustParseType(src)
}

func ex(src string) ast.Expr {
	e, err := parser.ParseExpr(src)
	if err != nil {
		panic(err)
	}
	return e
}

func path(src string) ast.Path {
	return ty(src).(*ast.TypePath).Path
}

func exprPath(src string) *ast.ExprPath {
	return ex(src).(*ast.ExprPath)
}

func bounds(src string) []ast.TypeParamBound {
	return ty("impl " + src).(*ast.TypeImplTrait).Bounds
}

func showBounds(bs []ast.TypeParamBound) string {
	return ast.Show(&ast.TypeTraitObject{Bounds: bs})
}

func ident(name string) *ast.PatIdent {
	return &ast.PatIdent{Name: name}
}

// substitutions builds a map from alternating from, to type sources
func substitutions(t *testing.T, pairs ...string) *subst.Map {
	t.Helper()
	require.Zero(t, len(pairs)%2, "substitutions takes from, to pairs")
	b := subst.NewBuilder()
	for i := 0; i < len(pairs); i += 2 {
		b.Add(ty(pairs[i]), ty(pairs[i+1]))
	}
	m, errs := b.Build()
	require.NoError(t, errs.Err())
	return m
}

// foreignType is a Type the rewriter does not know about
type foreignType struct {
	*ast.TypeInfer
}
