package news

import "time"

// Section identifies the coverage area an article belongs to.
type Section string

const (
	SectionTech     Section = "tech"
	SectionWorld    Section = "world"
	SectionSports   Section = "sports"
	SectionBusiness Section = "business"
)

// Sections lists every known section.
func Sections() []Section {
	return []Section{SectionTech, SectionWorld, SectionSports, SectionBusiness}
}

// ValidSection reports whether s names a known section.
func ValidSection(s Section) bool {
	switch s {
	case SectionTech, SectionWorld, SectionSports, SectionBusiness:
		return true
	}
	return false
}

// Article is one ingested news item available for retrieval.
type Article struct {
	ID        string    `json:"id"`
	Section   Section   `json:"section"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updatedAt"`
}
