package rewrite_test

import (
	"go/token"
	"testing"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameInSignature(t *testing.T) {
	subs := substitutions(t, "OldName", "NewName")
	param := &ast.PatType{Pat: ident("x"), Type: ty("OldName")}
	fn := &ast.ItemFn{
		Sig: ast.Signature{
			Name:   "f",
			Inputs: []ast.FnArg{param},
			Output: ty("OldName"),
		},
		Block: &ast.Block{},
	}

	stats := rewrite.Apply(&ast.File{Items: []ast.Item{fn}}, subs)

	assert.Equal(t, "x: NewName", ast.Show(param))
	assert.Equal(t, "NewName", ast.Show(fn.Sig.Output))
	assert.Equal(t, 2, stats.Replaced)
	assert.Empty(t, stats.Unhandled)
}

func TestGenericArgumentsMustMatchExactly(t *testing.T) {
	subs := substitutions(t, "Old<Int>", "New<Int>")
	item := &ast.ItemStruct{
		Name: "S",
		Fields: ast.Fields{Kind: ast.FieldsNamed, List: []ast.Field{
			{Name: "a", Type: ty("Old<Int>")},
			{Name: "b", Type: ty("Old<Text>")},
			{Name: "c", Type: ty("Old")},
			{Name: "d", Type: ty("Vec<Old<Int>>")},
		}},
	}

	stats := rewrite.Apply(item, subs)

	var got []string
	for _, field := range item.Fields.List {
		got = append(got, ast.Show(field.Type))
	}
	assert.Equal(t, []string{"New<Int>", "Old<Text>", "Old", "Vec<New<Int>>"}, got)
	assert.Equal(t, 2, stats.Replaced)
}

func TestParenthesizedBoundOutput(t *testing.T) {
	subs := substitutions(t, "OldName", "NewName")
	fn := &ast.ItemFn{
		Sig: ast.Signature{
			Name:   "g",
			Output: ty("impl Produces() -> OldName"),
		},
		Block: &ast.Block{},
	}

	rewrite.Apply(fn, subs)

	assert.Equal(t, "impl Produces() -> NewName", ast.Show(fn.Sig.Output))
}

func TestExactMatchOnly(t *testing.T) {
	cases := map[string]struct {
		key   string
		input string
		want  string
	}{
		"generic key does not unify":      {"Vec<T>", "Vec<Old>", "Vec<Old>"},
		"bare key matches inside generic": {"Old", "Vec<Old>", "Vec<New>"},
		"prefix is significant":           {"Old", "a::Old", "a::Old"},
		"global prefix is significant":    {"a::Old", "::a::Old", "::a::Old"},
		"missing arguments do not match":  {"Old<u8>", "Old", "Old"},
		"extra arguments do not match":    {"Old", "Old<u8>", "Old<u8>"},
		"lifetimes are significant":       {"Ref<'a, Old>", "Ref<'b, Old>", "Ref<'b, Old>"},
		"turbofish is not significant":    {"Vec<Old>", "Vec::<Old>", "New"},
		"trait path of qself matters":     {"<Old as A>::X", "<Old as B>::X", "<Old as B>::X"},
		"qualified key":                   {"<Old as A>::X", "Vec<<Old as A>::X>", "Vec<New>"},
		"parenthesized output matters":    {"Fn(Old)", "Fn(Old) -> u8", "Fn(Old) -> u8"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			subs := substitutions(t, c.key, "New")
			input := ty(c.input)

			rewrite.Apply(input, subs)

			assert.Equal(t, c.want, ast.Show(input))
		})
	}
}

func TestSubstituteIsNotRevisited(t *testing.T) {
	t.Run("value mentions its own key", func(t *testing.T) {
		subs := substitutions(t, "Old", "Box<Old>")
		input := ty("Vec<Old>")

		stats := rewrite.Apply(input, subs)

		assert.Equal(t, "Vec<Box<Old>>", ast.Show(input))
		assert.Equal(t, 1, stats.Replaced)
	})

	t.Run("value contains another key", func(t *testing.T) {
		subs := substitutions(t, "A", "B<C>", "C", "D")
		first := ty("A")
		second := ty("Vec<C>")

		stats := rewrite.Apply(&ast.TypeTuple{Elems: []ast.Type{first, second}}, subs)

		assert.Equal(t, "B<C>", ast.Show(first))
		assert.Equal(t, "Vec<D>", ast.Show(second))
		assert.Equal(t, 2, stats.Replaced)
	})
}

func TestIdempotentWhenDisjoint(t *testing.T) {
	subs := substitutions(t, "Old", "New", "Other<u8>", "Another")
	require.True(t, subs.Disjoint())
	item := &ast.ItemType{
		Name: "Alias",
		Type: ty("HashMap<Old, Vec<Other<u8>>>"),
	}

	first := rewrite.Apply(item, subs)
	once := ast.Show(item.Type)
	second := rewrite.Apply(item, subs)

	assert.Equal(t, "HashMap<New, Vec<Another>>", once)
	assert.Equal(t, once, ast.Show(item.Type))
	assert.Equal(t, 2, first.Replaced)
	assert.Zero(t, second.Replaced)
}

func TestReplacedNodeKeepsItsRange(t *testing.T) {
	subs := substitutions(t, "Old", "SomethingLonger")
	input := ty("Vec<Old>")
	arg := input.(*ast.TypePath).Path.Segments[0].Arguments.(*ast.AngleBracketedArgs).Args[0].(*ast.TypeArg)
	before := ast.RangeOf(arg.Type)

	rewrite.Apply(input, subs)

	assert.Equal(t, "SomethingLonger", ast.Show(arg.Type))
	assert.Equal(t, before, ast.RangeOf(arg.Type))
	assert.Equal(t, token.Pos(5), arg.Type.Pos())
}

func TestSubstitutesAreCopies(t *testing.T) {
	subs := substitutions(t, "Old", "a::New")
	first, second := ty("Old").(*ast.TypePath), ty("Old").(*ast.TypePath)

	rewrite.Apply(&ast.TypeTuple{Elems: []ast.Type{first, second}}, subs)
	first.Path.Segments[0].Ident = "changed"

	assert.Equal(t, "changed::New", ast.Show(first))
	assert.Equal(t, "a::New", ast.Show(second))
	value, ok := subs.Lookup(ty("Old").(*ast.TypePath))
	require.True(t, ok)
	assert.Equal(t, "a::New", ast.Show(value))
}

func TestRootTypePathIsReplaced(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	root := ty("Old")

	stats := rewrite.Apply(root, subs)

	assert.Equal(t, "New", ast.Show(root))
	assert.Equal(t, 1, stats.Replaced)
}

func TestExpressionPathsAreNotTypes(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	call := ex("Old::default()")
	fish := ex("Vec::<Old>::new()")

	stats := rewrite.Apply(&ast.ExprTuple{Elems: []ast.Expr{call, fish}}, subs)

	assert.Equal(t, "Old::default()", ast.Show(call))
	assert.Equal(t, "Vec::<New>::new()", ast.Show(fish))
	assert.Equal(t, 1, stats.Replaced)
}

func TestTraitBoundPathsAreNotTypes(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	input := ty("impl Old + Into<Old>")

	rewrite.Apply(input, subs)

	assert.Equal(t, "impl Old + Into<New>", ast.Show(input))
}

func TestNilMapRewritesNothing(t *testing.T) {
	input := ty("Vec<Old>")

	stats := rewrite.Apply(input, nil)

	assert.Equal(t, "Vec<Old>", ast.Show(input))
	assert.Zero(t, stats.Replaced)
}

func TestNilChildrenAreSkipped(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	roots := []ast.Node{
		&ast.ItemFn{},
		&ast.ExprIf{},
		&ast.Local{Pat: &ast.PatWild{}},
		&ast.TypeParam{Name: "T"},
		&ast.ItemImpl{},
		&ast.ExprMatch{Arms: []ast.Arm{{}}},
		&ast.TypeBareFn{Inputs: []ast.BareFnArg{{}}},
		&ast.File{},
	}

	for _, root := range roots {
		assert.NotPanics(t, func() {
			stats := rewrite.Apply(root, subs)
			assert.Zero(t, stats.Replaced)
			assert.Empty(t, stats.Unhandled)
		}, root.Describe())
	}
}

func TestUnknownNodesAreReported(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	known := ty("Old")
	root := &ast.TypeTuple{Elems: []ast.Type{&foreignType{&ast.TypeInfer{}}, known, &foreignType{&ast.TypeInfer{}}}}

	stats := rewrite.Apply(root, subs)

	assert.Equal(t, []string{"*rewrite_test.foreignType"}, stats.Unhandled)
	assert.Equal(t, "New", ast.Show(known))
	assert.Equal(t, 1, stats.Replaced)
}

func TestRewriterAccumulatesAcrossRoots(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	r := rewrite.New(subs)

	r.Node(ty("Old"))
	r.Node(ty("(Old, Old)"))
	r.Node(&ast.TypeSlice{Elem: &foreignType{&ast.TypeInfer{}}})

	stats := r.Stats()
	assert.Equal(t, 3, stats.Replaced)
	assert.Len(t, stats.Unhandled, 1)
}

func TestStatsMerge(t *testing.T) {
	a := rewrite.Stats{Replaced: 2, Unhandled: []string{"b", "a"}}
	b := rewrite.Stats{Replaced: 3, Unhandled: []string{"c", "a"}}

	merged := a.Merge(b)

	assert.Equal(t, 5, merged.Replaced)
	assert.Equal(t, []string{"a", "b", "c"}, merged.Unhandled)
	assert.Nil(t, rewrite.Stats{}.Merge(rewrite.Stats{}).Unhandled)
}
