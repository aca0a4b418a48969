package news

import (
	"sort"
	"strings"
)

// Store exposes article retrieval for the answer pipeline.
type Store interface {
	Search(section Section, query string, limit int) []Article
	List(section Section) []Article
}

// MemoryStore implements Store with an in-memory slice and naive term-overlap
// ranking, suitable for running the stack without an external vector index.
type MemoryStore struct {
	items []Article
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied articles.
func NewMemoryStore(items []Article) *MemoryStore {
	return &MemoryStore{items: append([]Article(nil), items...)}
}

// List returns every article in the given section.
func (s *MemoryStore) List(section Section) []Article {
	out := make([]Article, 0, len(s.items))
	for _, item := range s.items {
		if item.Section == section {
			out = append(out, item)
		}
	}
	return out
}

// Search ranks the section's articles by how many query terms appear in their
// title, summary, or body, and returns up to limit matches. Articles with no
// overlapping terms are excluded.
func (s *MemoryStore) Search(section Section, query string, limit int) []Article {
	if limit <= 0 {
		limit = 3
	}

	terms := splitTerms(query)
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		article Article
		score   int
	}

	matches := make([]scored, 0, len(s.items))
	for _, item := range s.items {
		if item.Section != section {
			continue
		}
		text := strings.ToLower(item.Title + " " + item.Summary + " " + item.Body)
		score := 0
		for _, term := range terms {
			if strings.Contains(text, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{article: item, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Article, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.article)
	}
	return out
}

// splitTerms lowercases the query and drops short stop-ish tokens that would
// match almost everything.
func splitTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?\"'()[]")
		if len(f) < 3 {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}
