package parser_test

import (
	"go/token"
	"testing"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoPanics(t *testing.T) {
	inputs := map[string]string{
		"empty":              ``,
		"open generic":       `Vec<`,
		"dangling qself":     `<T as`,
		"lone ampersand":     `&`,
		"unclosed macro":     `m!(a, b`,
		"unterminated str":   `Lit<"abc`,
		"only punctuation":   `::<>`,
		"bare fn no parens":  `fn`,
		"array missing len":  `[u8;]`,
		"pointer no keyword": `*T`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, _ = parser.ParseType(input)
			})
		})
	}
}

func TestRoundTrip(t *testing.T) {
	types := []string{
		`Old`,
		`::std::string::String`,
		`HashMap<String, Vec<u8>>`,
		`&'a mut [u8]`,
		`&T`,
		`*const T`,
		`*mut Old`,
		`[u8; 4]`,
		`[u8; N]`,
		`[u8; size_of::<Old>()]`,
		`[u8; N * 2 + 1]`,
		`(A, B)`,
		`(A,)`,
		`()`,
		`(Old)`,
		`!`,
		`_`,
		`fn(i32, y: u8) -> bool`,
		`unsafe extern "C" fn(i32, ...)`,
		`impl Iterator<Item = Old> + Send`,
		`impl ?Sized + Trait`,
		`dyn Fn(Old) -> New + 'static`,
		`Box<dyn for<'a> Fn(&'a str)>`,
		`<Vec<T> as IntoIterator>::Item`,
		`<T>::Assoc`,
		`Iterator<Item: Display>`,
		`Shape<N = 3>`,
		`Lending<Item<'a> = &'a T>`,
		`Array<3>`,
		`Ref<'a, T>`,
		`Option<_>`,
		`vec![1, 2]`,
	}

	for _, src := range types {
		t.Run(src, func(t *testing.T) {
			parsed, err := parser.ParseType(src)
			require.NoError(t, err)
			assert.Equal(t, src, ast.Show(parsed))
		})
	}
}

func TestPositions(t *testing.T) {
	parsed, err := parser.ParseType(`Vec<Old>`)
	require.NoError(t, err)

	tp, ok := parsed.(*ast.TypePath)
	require.True(t, ok)
	assert.Equal(t, token.Pos(1), tp.Pos())
	assert.Equal(t, token.Pos(9), tp.End())

	args := tp.Path.Segments[0].Arguments.(*ast.AngleBracketedArgs)
	require.Len(t, args.Args, 1)
	arg := args.Args[0].(*ast.TypeArg)
	assert.Equal(t, token.Pos(5), arg.Pos())
	assert.Equal(t, token.Pos(8), arg.End())
}

func TestQualifiedSelf(t *testing.T) {
	parsed, err := parser.ParseType(`<Vec<T> as a::Trait>::Item`)
	require.NoError(t, err)

	tp := parsed.(*ast.TypePath)
	require.NotNil(t, tp.QSelf)
	assert.Equal(t, 2, tp.QSelf.Position)
	assert.Equal(t, "Vec<T>", ast.Show(tp.QSelf.Type))

	var idents []string
	for _, seg := range tp.Path.Segments {
		idents = append(idents, seg.Ident)
	}
	assert.Equal(t, []string{"a", "Trait", "Item"}, idents)
}

func TestGenericArgumentKinds(t *testing.T) {
	parsed, err := parser.ParseType(`Thing<'a, T, 3, Item = U, N = 4, Bound: Clone>`)
	require.NoError(t, err)

	args := parsed.(*ast.TypePath).Path.Segments[0].Arguments.(*ast.AngleBracketedArgs)
	require.Len(t, args.Args, 6)
	assert.IsType(t, &ast.LifetimeArg{}, args.Args[0])
	assert.IsType(t, &ast.TypeArg{}, args.Args[1])
	assert.IsType(t, &ast.ConstArg{}, args.Args[2])
	assert.IsType(t, &ast.AssocType{}, args.Args[3])
	assert.IsType(t, &ast.AssocConst{}, args.Args[4])
	assert.IsType(t, &ast.Constraint{}, args.Args[5])
}

func TestTurbofishInTypePosition(t *testing.T) {
	withFish := parser.MustParseType(`Vec::<T>`)
	without := parser.MustParseType(`Vec<T>`)

	args := withFish.(*ast.TypePath).Path.Segments[0].Arguments.(*ast.AngleBracketedArgs)
	assert.True(t, args.Turbofish)
	assert.True(t, ast.EqualType(withFish, without))
}

func TestParenthesizedArgs(t *testing.T) {
	parsed := parser.MustParseType(`FnMut(A, B) -> C`)

	seg := parsed.(*ast.TypePath).Path.Segments[0]
	args, ok := seg.Arguments.(*ast.ParenthesizedArgs)
	require.True(t, ok)
	assert.Len(t, args.Inputs, 2)
	assert.Equal(t, "C", ast.Show(args.Output))
}

func TestMacroBodyIsKept(t *testing.T) {
	parsed := parser.MustParseType(`ty!{ Old<u8> }`)

	mac, ok := parsed.(*ast.TypeMacro)
	require.True(t, ok)
	assert.Equal(t, ast.DelimBrace, mac.Mac.Delimiter)
	assert.Equal(t, "Old<u8>", mac.Mac.Tokens)
}

func TestErrors(t *testing.T) {
	cases := map[string]struct {
		input  string
		offset int
	}{
		"empty":            {``, 0},
		"unclosed generic": {`Vec<T`, 5},
		"trailing input":   {`Vec<T>>`, 6},
		"missing elem":     {`&mut`, 4},
		"bad pointer":      {`*T`, 1},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parser.ParseType(c.input)
			require.Error(t, err)
			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, c.offset, parseErr.Offset)
		})
	}
}

func TestMustParseTypePanics(t *testing.T) {
	assert.Panics(t, func() {
		parser.MustParseType(`Vec<`)
	})
}

func TestParseExpr(t *testing.T) {
	exprs := map[string]string{
		"literal":      `42`,
		"arithmetic":   `N * 2 + 1`,
		"negation":     `-1`,
		"turbofish":    `size_of::<Old>()`,
		"cast":         `N as usize`,
		"qualified":    `<Old as Default>::default()`,
		"paren":        `(N + 1) * 2`,
		"boolean":      `true`,
		"string":       `"abc"`,
		"generic path": `Vec::<Old>::new()`,
	}

	for name, src := range exprs {
		t.Run(name, func(t *testing.T) {
			parsed, err := parser.ParseExpr(src)
			require.NoError(t, err)
			assert.Equal(t, src, ast.Show(parsed))
		})
	}
}
