package rewrite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyTrees(n int) []ast.Node {
	roots := make([]ast.Node, n)
	for i := range roots {
		roots[i] = &ast.ItemType{
			Name: fmt.Sprint("A", i),
			Type: ty("HashMap<Old, Vec<Old>>"),
		}
	}
	return roots
}

func TestApplyAll(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	roots := manyTrees(50)

	stats, err := rewrite.ApplyAll(context.Background(), roots, subs, 4)

	require.NoError(t, err)
	assert.Equal(t, 100, stats.Replaced)
	for _, root := range roots {
		assert.Equal(t, "HashMap<New, Vec<New>>", ast.Show(root.(*ast.ItemType).Type))
	}
}

func TestApplyAllWithoutLimit(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	roots := manyTrees(10)

	stats, err := rewrite.ApplyAll(context.Background(), roots, subs, 0)

	require.NoError(t, err)
	assert.Equal(t, 20, stats.Replaced)
}

func TestApplyAllCancelled(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	roots := manyTrees(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := rewrite.ApplyAll(ctx, roots, subs, 2)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Replaced)
	for _, root := range roots {
		assert.Equal(t, "HashMap<Old, Vec<Old>>", ast.Show(root.(*ast.ItemType).Type))
	}
}

func TestApplyAllMergesUnhandled(t *testing.T) {
	subs := substitutions(t, "Old", "New")
	roots := []ast.Node{
		&ast.TypeSlice{Elem: &foreignType{&ast.TypeInfer{}}},
		&ast.TypeSlice{Elem: &foreignType{&ast.TypeInfer{}}},
		ty("Old"),
	}

	stats, err := rewrite.ApplyAll(context.Background(), roots, subs, 2)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Replaced)
	assert.Equal(t, []string{"*rewrite_test.foreignType"}, stats.Unhandled)
}
