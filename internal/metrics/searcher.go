package metrics

import (
	"context"

	"github.com/fairlead/compliance-engine/internal/knowledge"
)

// Lookup outcomes recorded by the instrumented searcher
const (
	LookupSuccess = "success"
	LookupFailure = "failure"
)

// InstrumentedSearcher counts lookup outcomes on the way through to the
// wrapped searcher.
type InstrumentedSearcher struct {
	inner     knowledge.RequirementSearcher
	collector *Collector
}

// NewInstrumentedSearcher wraps a searcher with lookup counters
func NewInstrumentedSearcher(inner knowledge.RequirementSearcher, collector *Collector) *InstrumentedSearcher {
	return &InstrumentedSearcher{inner: inner, collector: collector}
}

// Search delegates to the wrapped searcher and records the outcome.
func (s *InstrumentedSearcher) Search(ctx context.Context, query knowledge.Query) ([]knowledge.SearchResult, error) {
	results, err := s.inner.Search(ctx, query)
	if err != nil {
		s.collector.KnowledgeLookup(LookupFailure)
		return nil, err
	}
	s.collector.KnowledgeLookup(LookupSuccess)
	return results, nil
}
