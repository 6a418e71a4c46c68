package search

import "testing"

func TestNormalizeQuery(t *testing.T) {
	cases := map[string]string{
		"  Top   Gun ":    "top gun",
		"Sci-Fi":          "sci fi",
		"dune: part two!": "dune part two",
		"":                "",
		"!!!":             "",
	}
	for in, want := range cases {
		if got := NormalizeQuery(in); got != want {
			t.Fatalf("NormalizeQuery(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandQuery(t *testing.T) {
	got := ExpandQuery("sci fi")
	if len(got) < 3 || got[0] != "sci fi" || got[1] != "science fiction" {
		t.Fatalf("unexpected variants: %v", got)
	}
	if len(ExpandQuery("")) != 0 {
		t.Fatalf("empty query should have no variants")
	}
}

func TestRank(t *testing.T) {
	docs := []Document{
		{ID: "a", Title: "Quiet Story", Story: "a pilot goes home", AverageRating: 5},
		{ID: "b", Title: "Pilot", Genres: []string{"Action"}, AverageRating: 1},
		{ID: "c", Title: "Unrelated"},
	}

	got := Rank(docs, ProcessQuery("Pilot").Variants)
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected title match first, got %s then %s", got[0].ID, got[1].ID)
	}

	if len(Rank(docs, nil)) != 0 {
		t.Fatalf("no variants should match nothing")
	}
}
