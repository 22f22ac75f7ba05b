package knowledge

import "context"

// Collection names understood by the searchers
const (
	CollectionIMOConventions  = "imo_conventions"
	CollectionPortRegulations = "port_regulations"
	CollectionCustomsDocs     = "customs_documentation"
)

// Query describes one retrieval request against the regulatory corpus
type Query struct {
	Text        string   `json:"text"`
	Collections []string `json:"collections"`
	TopK        int      `json:"top_k"`
}

// SearchResult is a scored passage from the regulatory corpus
type SearchResult struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}

// RequirementSearcher finds regulatory passages relevant to a query.
// Implementations must return results in a deterministic order for a
// given query.
type RequirementSearcher interface {
	Search(ctx context.Context, query Query) ([]SearchResult, error)
}
