package router

import (
	"strings"

	"github.com/acmenews/newschat/internal/model/news"
)

// keywordBuckets backs the heuristic classifier used when no chat model is
// configured or the model call fails.
var keywordBuckets = map[news.Section][]string{
	news.SectionTech: {
		"technology", "tech", "software", "hardware", "chip", "semiconductor", "ai",
		"artificial intelligence", "model", "startup", "app", "cyber", "quantum",
		"robot", "computer", "internet", "cloud", "code", "programming", "phone",
	},
	news.SectionWorld: {
		"world", "international", "country", "president", "election", "government",
		"war", "treaty", "climate", "united nations", "diplomacy", "border",
		"sanction", "summit", "minister", "refugee", "europe", "asia", "africa",
	},
	news.SectionSports: {
		"sport", "sports", "game", "match", "team", "player", "league", "score",
		"champion", "tournament", "football", "soccer", "basketball", "tennis",
		"olympic", "marathon", "record", "coach", "playoff", "season",
	},
	news.SectionBusiness: {
		"business", "market", "stock", "economy", "economic", "inflation", "bank",
		"interest rate", "earnings", "revenue", "merger", "acquisition", "trade",
		"investor", "currency", "price", "company", "profit", "ipo", "finance",
	},
}

// classifyByKeywords scores the question against each section's keyword bucket
// and picks the highest scorer. Ties and zero scores fall back to world news,
// the broadest section.
func classifyByKeywords(question string) news.Section {
	text := strings.ToLower(question)

	best := news.SectionWorld
	bestScore := 0
	for _, section := range news.Sections() {
		score := 0
		for _, keyword := range keywordBuckets[section] {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = section
			bestScore = score
		}
	}

	return best
}
