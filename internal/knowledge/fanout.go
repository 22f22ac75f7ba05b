package knowledge

import (
	"context"
	"sync"
)

// FanOutResult holds the outcome of one query in a fan-out batch
type FanOutResult struct {
	Results []SearchResult
	Err     error
}

// FanOut runs the queries against the searcher with at most workers in
// flight. The returned slice keeps query order, so callers can assemble
// results deterministically regardless of completion order.
func FanOut(ctx context.Context, searcher RequirementSearcher, queries []Query, workers int) []FanOutResult {
	if workers <= 0 {
		workers = 1
	}

	out := make([]FanOutResult, len(queries))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, query := range queries {
		wg.Add(1)
		go func(i int, query Query) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results, err := searcher.Search(ctx, query)
			out[i] = FanOutResult{Results: results, Err: err}
		}(i, query)
	}

	wg.Wait()
	return out
}
