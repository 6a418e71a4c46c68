package search

import (
	"sort"
	"strings"
)

// Document is the searchable view of a movie.
type Document struct {
	ID            string
	Title         string
	Story         string
	Director      string
	Stars         []string
	Genres        []string
	AverageRating float64
}

type Score struct {
	ID         string
	Relevance  float64
	Popularity float64
	FinalScore float64
}

const maxRelevance = 10

func ComputeRelevance(doc Document, variants []string) float64 {
	if len(variants) == 0 {
		return 0
	}

	// fields go through the same normalisation as queries
	title := NormalizeQuery(doc.Title)
	story := NormalizeQuery(doc.Story)
	people := NormalizeQuery(doc.Director + " " + strings.Join(doc.Stars, " "))
	genres := NormalizeQuery(strings.Join(doc.Genres, " "))

	score := 0.0
	for _, v := range variants {
		if strings.Contains(title, v) {
			score += 3
		}
		if strings.Contains(genres, v) {
			score += 2
		}
		if strings.Contains(people, v) {
			score += 2
		}
		if strings.Contains(story, v) {
			score += 1
		}
		if score >= maxRelevance {
			return maxRelevance
		}
	}
	return score
}

func ScoreDocument(doc Document, variants []string) Score {
	rel := ComputeRelevance(doc, variants)
	return Score{
		ID:         doc.ID,
		Relevance:  rel,
		Popularity: doc.AverageRating,
		FinalScore: rel*2.0 + doc.AverageRating*0.5,
	}
}

// Rank returns the documents that match at least one variant, best first.
// Ties keep catalogue order.
func Rank(docs []Document, variants []string) []Document {
	type scored struct {
		idx   int
		score Score
	}

	hits := make([]scored, 0, len(docs))
	for i := range docs {
		s := ScoreDocument(docs[i], variants)
		if s.Relevance == 0 {
			continue
		}
		hits = append(hits, scored{idx: i, score: s})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score.FinalScore > hits[j].score.FinalScore
	})

	out := make([]Document, 0, len(hits))
	for _, h := range hits {
		out = append(out, docs[h.idx])
	}
	return out
}
