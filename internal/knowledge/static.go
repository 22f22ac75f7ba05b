package knowledge

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// Metadata keys used by the compiled-in corpus
const (
	MetaConvention      = "convention"
	MetaChapterTitle    = "chapter_title"
	MetaApplicability   = "applicability"
	MetaSource          = "source"
	MetaRequirementName = "requirement_name"
	MetaRequirementType = "requirement_type"
	MetaPort            = "port"
)

// corpusEntry is one passage of the compiled-in regulatory corpus
type corpusEntry struct {
	id         string
	collection string
	content    string
	metadata   map[string]string
}

// StaticSearcher retrieves from a compiled-in regulatory corpus. Scoring
// is plain keyword overlap, so identical queries always return identical
// results.
type StaticSearcher struct {
	corpus []corpusEntry
}

// NewStaticSearcher creates a searcher over the built-in corpus
func NewStaticSearcher() *StaticSearcher {
	s := &StaticSearcher{}
	s.loadDefaultCorpus()
	return s
}

// Search scores every entry in the requested collections against the
// query and returns the top K matches, best first. Ties keep corpus
// order.
func (s *StaticSearcher) Search(ctx context.Context, query Query) ([]SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := tokenize(query.Text)
	if len(tokens) == 0 {
		return []SearchResult{}, nil
	}

	type scored struct {
		index int
		score float64
	}
	var matches []scored

	for i, entry := range s.corpus {
		if !collectionRequested(query.Collections, entry.collection) {
			continue
		}
		score := scoreEntry(entry, tokens)
		if score > 0 {
			matches = append(matches, scored{index: i, score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	topK := query.TopK
	if topK <= 0 || topK > len(matches) {
		topK = len(matches)
	}

	results := make([]SearchResult, 0, topK)
	for _, m := range matches[:topK] {
		entry := s.corpus[m.index]
		metadata := make(map[string]string, len(entry.metadata))
		for k, v := range entry.metadata {
			metadata[k] = v
		}
		results = append(results, SearchResult{
			ID:       entry.id,
			Content:  entry.content,
			Score:    m.score,
			Metadata: metadata,
		})
	}
	return results, nil
}

// Private methods

func collectionRequested(requested []string, collection string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, c := range requested {
		if c == collection {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// scoreEntry counts distinct query tokens found in the entry. A token
// hit in metadata outweighs one in the passage text so that queries
// naming a port or convention rank its entries first.
func scoreEntry(entry corpusEntry, tokens []string) float64 {
	content := strings.ToLower(entry.content)
	var metaValues strings.Builder
	for _, v := range entry.metadata {
		metaValues.WriteString(strings.ToLower(v))
		metaValues.WriteByte(' ')
	}
	meta := metaValues.String()

	score := 0.0
	for _, token := range tokens {
		if strings.Contains(meta, token) {
			score += 3
			continue
		}
		if strings.Contains(content, token) {
			score++
		}
	}
	return score
}
