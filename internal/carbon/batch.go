package carbon

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds ComputeBatch when no limit is given.
const DefaultBatchConcurrency = 8

// Collection is a named group of plants, e.g. one room or one site.
type Collection struct {
	ID     string  `json:"id"`
	Plants []Plant `json:"plants"`
}

// CollectionResult is the sequestration total of one Collection.
type CollectionResult struct {
	ID     string              `json:"id"`
	Result SequestrationResult `json:"result"`
}

// ComputeBatch computes the totals of many collections concurrently, with at
// most limit collections in flight. Results keep the order of collections.
// It stops early and returns ctx.Err() when ctx is done.
func ComputeBatch(ctx context.Context, collections []Collection, limit int) ([]CollectionResult, error) {
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	results := make([]CollectionResult, len(collections))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, c := range collections {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = CollectionResult{
				ID:     c.ID,
				Result: ComputeTotalSequestration(c.Plants),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
