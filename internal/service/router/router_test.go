package router

import (
	"context"
	"testing"

	"github.com/acmenews/newschat/internal/model/news"
)

func TestClassifyByKeywords(t *testing.T) {
	cases := []struct {
		question string
		want     news.Section
	}{
		{"What's new with AI chips and semiconductors?", news.SectionTech},
		{"Who won the marathon this weekend?", news.SectionSports},
		{"Did the central bank change interest rates?", news.SectionBusiness},
		{"What happened at the climate summit?", news.SectionWorld},
	}

	svc, err := NewService(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}

	for _, tc := range cases {
		if got := svc.Classify(context.Background(), tc.question); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.question, got, tc.want)
		}
	}
}

func TestClassifyDefaultsToWorld(t *testing.T) {
	svc, err := NewService(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewService err: %v", err)
	}

	if got := svc.Classify(context.Background(), "zzz qqq"); got != news.SectionWorld {
		t.Fatalf("expected world fallback, got %s", got)
	}
}

func TestParseSection(t *testing.T) {
	cases := []struct {
		in   string
		want news.Section
		ok   bool
	}{
		{"tech", news.SectionTech, true},
		{" Sports. ", news.SectionSports, true},
		{"The section is business", news.SectionBusiness, true},
		{"entertainment", "", false},
	}

	for _, tc := range cases {
		got, ok := parseSection(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseSection(%q) = (%s, %v), want (%s, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
