package rewrite

import (
	"context"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/subst"
	"golang.org/x/sync/errgroup"
)

// ApplyAll rewrites every tree in roots, at most limit at a time (no limit if
// limit <= 0). The trees must be distinct: no node may be reachable from two
// roots. subs is shared read-only between goroutines.
//
// If ctx is cancelled, trees that were not started yet are left untouched
// and ctx.Err() is returned along with the Stats of the trees that were.
func ApplyAll(ctx context.Context, roots []ast.Node, subs *subst.Map, limit int) (Stats, error) {
	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([]Stats, len(roots))
	for i, root := range roots {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = Apply(root, subs)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	var total Stats
	for _, stats := range results {
		total = total.Merge(stats)
	}
	return total, err
}
