package news_test

import (
	"testing"

	"github.com/acmenews/newschat/internal/model/news"
)

func TestSearchMatchesWithinSection(t *testing.T) {
	store := news.NewMemoryStore(news.Seed())

	got := store.Search(news.SectionSports, "marathon record", 3)
	if len(got) == 0 {
		t.Fatal("expected at least one match")
	}
	if got[0].ID != "sports-marathon-record" {
		t.Fatalf("expected marathon article first, got %s", got[0].ID)
	}
	for _, article := range got {
		if article.Section != news.SectionSports {
			t.Fatalf("search leaked section %s", article.Section)
		}
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	store := news.NewMemoryStore(news.Seed())

	got := store.Search(news.SectionTech, "quantum chip model benchmark", 1)
	if len(got) > 1 {
		t.Fatalf("expected at most 1 result, got %d", len(got))
	}
}

func TestSearchNoOverlapReturnsNothing(t *testing.T) {
	store := news.NewMemoryStore(news.Seed())

	if got := store.Search(news.SectionWorld, "xylophone", 3); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestListFiltersBySection(t *testing.T) {
	store := news.NewMemoryStore(news.Seed())

	got := store.List(news.SectionBusiness)
	if len(got) == 0 {
		t.Fatal("expected seeded business articles")
	}
	for _, article := range got {
		if article.Section != news.SectionBusiness {
			t.Fatalf("list leaked section %s", article.Section)
		}
	}
}
