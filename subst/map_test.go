package subst_test

import (
	"testing"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/subst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, pairs ...string) *subst.Map {
	t.Helper()
	b := subst.NewBuilder()
	for i := 0; i+1 < len(pairs); i += 2 {
		b.Add(ty(pairs[i]), ty(pairs[i+1]))
	}
	m, errs := b.Build()
	require.NoError(t, errs.Err())
	return m
}

func TestLookupIsStructural(t *testing.T) {
	m := build(t, "std::collections::HashMap<String, Old>", "Index")

	cases := map[string]bool{
		"std::collections::HashMap<String, Old>":   true,
		"std::collections::HashMap::<String, Old>": true,
		"std::collections::HashMap<String,Old>":    true,
		"collections::HashMap<String, Old>":        false,
		"::std::collections::HashMap<String, Old>": false,
		"std::collections::HashMap<Old, String>":   false,
		"std::collections::HashMap<String>":        false,
	}

	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			value, ok := m.Lookup(tp(src))
			assert.Equal(t, want, ok)
			if want {
				assert.Equal(t, "Index", ast.Show(value))
			}
		})
	}
}

func TestLookupIgnoresPositions(t *testing.T) {
	m := build(t, "Old", "New")
	key := tp("Old")
	key.Range = ast.Range{PosStart: 40, PosEnd: 43}

	_, ok := m.Lookup(key)

	assert.True(t, ok)
}

func TestNilAndEmptyMaps(t *testing.T) {
	var nilMap *subst.Map
	for name, m := range map[string]*subst.Map{"nil": nilMap, "empty": subst.Empty()} {
		t.Run(name, func(t *testing.T) {
			_, ok := m.Lookup(tp("Old"))
			assert.False(t, ok)
			assert.Zero(t, m.Len())
			assert.True(t, m.Disjoint())
			for range m.All() {
				t.Fatal("no substitutions expected")
			}
		})
	}
	_, ok := build(t, "Old", "New").Lookup(nil)
	assert.False(t, ok)
}

func TestAllKeepsInsertionOrder(t *testing.T) {
	m := build(t, "C", "c", "A", "a", "B", "b", "A", "a")

	var got []string
	for key, value := range m.All() {
		got = append(got, ast.Show(key)+"="+ast.Show(value))
	}

	assert.Equal(t, []string{"C=c", "A=a", "B=b"}, got)
}

func TestAllStopsEarly(t *testing.T) {
	m := build(t, "A", "a", "B", "b", "C", "c")

	seen := 0
	for range m.All() {
		seen++
		break
	}

	assert.Equal(t, 1, seen)
}
