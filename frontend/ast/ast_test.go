package ast_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ty(src string) ast.Type {
	return parser.MustParseType(src)
}

func TestEqualTypeIgnoresPositions(t *testing.T) {
	a := ty("HashMap<String, Vec<[u8; 4]>>")
	b := ty("HashMap<String,Vec<[u8;4]>>")

	require.NotEqual(t, ast.RangeOf(a), ast.RangeOf(b))
	assert.True(t, ast.EqualType(a, b))
	assert.Equal(t, ast.HashType(a), ast.HashType(b))
}

func TestEqualType(t *testing.T) {
	cases := map[string]struct {
		a, b string
		want bool
	}{
		"same path":            {"a::B<C>", "a::B<C>", true},
		"turbofish":            {"Vec<u8>", "Vec::<u8>", true},
		"different ident":      {"Vec<u8>", "Vec<u16>", false},
		"global":               {"::a::B", "a::B", false},
		"argument count":       {"A<B>", "A<B, C>", false},
		"reference mutability": {"&mut T", "&T", false},
		"reference lifetime":   {"&'a T", "&'b T", false},
		"array length":         {"[u8; 4]", "[u8; 5]", false},
		"array length exprs":   {"[u8; N * 2]", "[u8; N * 2]", true},
		"pointer":              {"*const T", "*mut T", false},
		"qself trait":          {"<T as A>::X", "<T as B>::X", false},
		"qself type":           {"<T as A>::X", "<U as A>::X", false},
		"qself vs plain":       {"<T>::X", "T::X", false},
		"bare fn":              {"fn(u8) -> u8", "fn(u8)", false},
		"bare fn names":        {"fn(x: u8)", "fn(y: u8)", false},
		"parenthesized":        {"Fn(A) -> B", "Fn(A) -> B", true},
		"paren output":         {"Fn(A) -> B", "Fn(A)", false},
		"binding":              {"I<Item = A>", "I<Item = B>", false},
		"constraint":           {"I<Item: A>", "I<Item = A>", false},
		"lifetime args":        {"R<'a, T>", "R<'b, T>", false},
		"impl trait":           {"impl A + B", "impl A + B", true},
		"bound order":          {"impl A + B", "impl B + A", false},
		"dyn vs impl":          {"dyn A", "impl A", false},
		"tuple":                {"(A, B)", "(A, B)", true},
		"one tuple vs paren":   {"(A,)", "(A)", false},
		"never":                {"!", "!", true},
		"infer":                {"_", "_", true},
		"macro body":           {"m!(a)", "m!(b)", false},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			a, b := ty(c.a), ty(c.b)

			assert.Equal(t, c.want, ast.EqualType(a, b))
			assert.Equal(t, c.want, ast.EqualType(b, a))
			if c.want {
				assert.Equal(t, ast.HashType(a), ast.HashType(b))
			}
		})
	}
}

func TestEqualNil(t *testing.T) {
	assert.True(t, ast.EqualType(nil, nil))
	assert.False(t, ast.EqualType(ty("A"), nil))
	assert.True(t, ast.EqualTypePath(nil, nil))
	assert.False(t, ast.EqualTypePath(nil, ty("A").(*ast.TypePath)))
	assert.True(t, ast.EqualExpr(nil, nil))
}

func TestEqualExpr(t *testing.T) {
	expr := func(src string) ast.Expr {
		e, err := parser.ParseExpr(src)
		require.NoError(t, err)
		return e
	}

	assert.True(t, ast.EqualExpr(expr("N * 2 + 1"), expr("N*2+1")))
	assert.True(t, ast.EqualExpr(expr("size_of::<T>()"), expr("size_of::<T>( )")))
	assert.False(t, ast.EqualExpr(expr("N * 2"), expr("N * 3")))
	assert.False(t, ast.EqualExpr(expr("N * 2"), expr("N + 2")))
	assert.False(t, ast.EqualExpr(expr("{ N }"), expr("N")))
	assert.False(t, ast.EqualExpr(expr("-1"), expr("1")))
}

func TestCopyIsDeep(t *testing.T) {
	srcs := []string{
		"a::B<C, [D; N], &'a mut E>",
		"<Vec<T> as IntoIterator>::Item",
		"fn(x: Old) -> Old",
		"impl for<'a> Fn(&'a Old) -> Old + Send",
		"(A, dyn B<C = D>)",
		"Shape<{ N + 1 }>",
	}

	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			original := ty(src)
			copied := ast.CopyType(original)

			assert.True(t, ast.EqualType(original, copied))
			assert.Equal(t, ast.RangeOf(original), ast.RangeOf(copied))
			assert.Equal(t, src, ast.Show(copied))
			assert.NotSame(t, original, copied)
		})
	}
}

func TestCopyTypePathSharesNothing(t *testing.T) {
	original := ty("a::B<C<D>>").(*ast.TypePath)
	copied := ast.CopyTypePath(original)

	inner := copied.Path.Segments[1].Arguments.(*ast.AngleBracketedArgs).Args[0].(*ast.TypeArg).Type.(*ast.TypePath)
	inner.Path.Segments[0].Ident = "X"
	copied.Path.Segments[0].Ident = "z"

	assert.Equal(t, "a::B<C<D>>", ast.Show(original))
	assert.Equal(t, "z::B<X<D>>", ast.Show(copied))
	assert.Nil(t, ast.CopyTypePath(nil))
	assert.Nil(t, ast.CopyType(nil))
	assert.Nil(t, ast.CopyExpr(nil))
}

func TestCopyExpr(t *testing.T) {
	original, err := parser.ParseExpr("size_of::<Old>() * 2")
	require.NoError(t, err)

	copied := ast.CopyExpr(original)
	call := copied.(*ast.ExprBinary).Left.(*ast.ExprCall)
	call.Func.(*ast.ExprPath).Path.Segments[0].Ident = "align_of"

	assert.Equal(t, "size_of::<Old>() * 2", ast.Show(original))
	assert.Equal(t, "align_of::<Old>() * 2", ast.Show(copied))
}

func TestShowNodes(t *testing.T) {
	cases := map[string]struct {
		node ast.Node
		want string
	}{
		"nil":  {nil, "nil"},
		"item": {&ast.ItemStruct{Name: "S"}, "/* struct */"},
		"pattern": {&ast.PatType{
			Pat:  &ast.PatIdent{Name: "x"},
			Type: ty("Vec<u8>"),
		}, "x: Vec<u8>"},
		"path": {&ty("a::B<C>").(*ast.TypePath).Path, "a::B<C>"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, ast.Show(c.node))
		})
	}
}

func TestNodeHandlerRendersNodes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(ast.NodeHandler(slog.NewTextHandler(&buf, nil)))

	logger.With("key", ty("Old")).Info("replaced", "type", ty("Vec<New>"), "n", 1)

	assert.Contains(t, buf.String(), "key=Old")
	assert.Contains(t, buf.String(), "type=Vec<New>")
	assert.Contains(t, buf.String(), "n=1")
}

func TestSlog(t *testing.T) {
	assert.Equal(t, "&'a [u8]", ast.Slog(ty("&'a [u8]")).LogValue().String())
}

func TestRangeNodes(t *testing.T) {
	var e ast.Expr = &ast.ExprRange{
		Range:     ast.Range{PosStart: 3, PosEnd: 8},
		Start:     &ast.ExprLit{Value: "0"},
		Limit:     &ast.ExprPath{Path: ty("n").(*ast.TypePath).Path},
		Inclusive: true,
	}
	var p ast.Pat = &ast.PatRange{Range: ast.Range{PosStart: 1, PosEnd: 5}, Start: "1", Limit: "2"}

	assert.Equal(t, "0..=n", ast.Show(e))
	assert.EqualValues(t, 8, e.End())
	assert.Equal(t, "1..2", ast.Show(p))
	assert.EqualValues(t, 5, p.End())
	assert.Equal(t, "..", ast.Show(&ast.ExprRange{}))
}

func TestShowStatements(t *testing.T) {
	local := &ast.Local{
		Pat:  &ast.PatType{Pat: &ast.PatIdent{Name: "v"}, Type: ty("Vec<u8>")},
		Init: &ast.LocalInit{Expr: &ast.ExprLit{Value: "1"}},
	}

	assert.Equal(t, "let v: Vec<u8> = 1;", ast.Show(local))
	assert.Equal(t, "{ let v: Vec<u8> = 1; 2 }", ast.Show(&ast.Block{Stmts: []ast.Stmt{
		local,
		&ast.ExprStmt{Expr: &ast.ExprLit{Value: "2"}},
	}}))
	assert.Equal(t, "{}", ast.Show(&ast.Block{}))
}

func TestHashSeesEveryComparedField(t *testing.T) {
	cases := map[string][2]ast.Type{
		"bare fn binder":   {ty("for<'a> fn()"), ty("fn()")},
		"bare fn variadic": {ty(`extern "C" fn(i32, ...)`), ty(`extern "C" fn(i32)`)},
		"bound parens":     {ty("impl (A)"), ty("impl A")},
		"bound binder":     {ty("impl for<'a> A"), ty("impl A")},
		"dyn keyword": {
			&ast.TypeTraitObject{Dyn: true, Bounds: ty("impl A").(*ast.TypeImplTrait).Bounds},
			&ast.TypeTraitObject{Bounds: ty("impl A").(*ast.TypeImplTrait).Bounds},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.False(t, ast.EqualType(c[0], c[1]))
			assert.NotEqual(t, ast.HashType(c[0]), ast.HashType(c[1]))
		})
	}
}
