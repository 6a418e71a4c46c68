package movie

import (
	"math"
	"time"

	"movies/internal/domain/review"
)

// Catalog is a read-only, hardcoded set of movies.
type Catalog struct {
	order []string
	byID  map[string]Movie
}

func NewCatalog(items []Movie) *Catalog {
	c := &Catalog{byID: make(map[string]Movie, len(items))}
	for _, m := range items {
		if _, dup := c.byID[m.ID]; dup {
			continue
		}
		c.order = append(c.order, m.ID)
		c.byID[m.ID] = m
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(seedMovies())
}

func (c *Catalog) List() []Movie {
	out := make([]Movie, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.byID[id]))
	}
	return out
}

func (c *Catalog) Get(id string) (Movie, error) {
	m, ok := c.byID[id]
	if !ok {
		return Movie{}, ErrNotFound
	}
	return clone(m), nil
}

func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// AverageRating is rounded to one decimal; reviews without a rating are
// skipped and an empty set yields 0.
func AverageRating(reviews []review.Review) float64 {
	sum, n := 0, 0
	for _, r := range reviews {
		if r.Rating <= 0 {
			continue
		}
		sum += r.Rating
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}

func clone(m Movie) Movie {
	m.Genres = append([]string(nil), m.Genres...)
	m.Stars = append([]string(nil), m.Stars...)
	m.Reviews = append([]review.Review(nil), m.Reviews...)
	return m
}

func seedMovies() []Movie {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.DateOnly, s)
		return t.UTC()
	}
	return []Movie{
		{
			ID:        "shawshank",
			Title:     "The Shawshank Redemption",
			Year:      1994,
			Runtime:   "2 hours 22 mins",
			Genres:    []string{"Drama"},
			AgeRating: "+15",
			Language:  "English",
			Story:     "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Director:  "Frank Darabont",
			Stars:     []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"},
			PosterRef: "shawshank",
			Reviews: []review.Review{
				{MovieID: "shawshank", Author: "Afnan Abdullah", Text: "This is an engagingly simple, good-hearted film, with just enough darkness around the edges to give contrast and relief to its glowingly benign view of human nature.", Rating: 5, SubmittedAt: at("2024-12-21")},
				{MovieID: "shawshank", Author: "Sarah Abdullah", Text: "A slow burn that earns every minute.", Rating: 4, SubmittedAt: at("2025-01-03")},
			},
		},
		{
			ID:        "a-star-is-born",
			Title:     "A Star Is Born",
			Year:      2018,
			Runtime:   "2 hours 16 mins",
			Genres:    []string{"Drama", "Romance", "Music"},
			AgeRating: "+15",
			Language:  "English",
			Story:     "A musician helps a young singer find fame as age and alcoholism send his own career into a downward spiral.",
			Director:  "Bradley Cooper",
			Stars:     []string{"Lady Gaga", "Bradley Cooper", "Sam Elliott"},
			PosterRef: "astarisborn",
			Reviews: []review.Review{
				{MovieID: "a-star-is-born", Author: "Reema Alkhelaiwi", Text: "The songs carry it.", Rating: 4, SubmittedAt: at("2025-02-11")},
			},
		},
		{
			ID:        "top-gun-maverick",
			Title:     "Top Gun: Maverick",
			Year:      2022,
			Runtime:   "2 hours 10 mins",
			Genres:    []string{"Action", "Drama"},
			AgeRating: "+12",
			Language:  "English",
			Story:     "After thirty years of service, Maverick trains a detachment of graduates for a specialized mission.",
			Director:  "Joseph Kosinski",
			Stars:     []string{"Tom Cruise", "Miles Teller", "Jennifer Connelly"},
			PosterRef: "topgun",
		},
		{
			ID:        "dune-part-two",
			Title:     "Dune: Part Two",
			Year:      2024,
			Runtime:   "2 hours 46 mins",
			Genres:    []string{"Sci-Fi", "Adventure"},
			AgeRating: "+13",
			Language:  "English",
			Story:     "Paul Atreides unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.",
			Director:  "Denis Villeneuve",
			Stars:     []string{"Timothée Chalamet", "Zendaya", "Rebecca Ferguson"},
			PosterRef: "dune2",
			Reviews: []review.Review{
				{MovieID: "dune-part-two", Author: "Rana Alngashy", Text: "Huge in every sense.", Rating: 5, SubmittedAt: at("2025-03-02")},
				{MovieID: "dune-part-two", Author: "Afnan Abdullah", Text: "Gorgeous but long.", Rating: 3, SubmittedAt: at("2025-03-09")},
			},
		},
	}
}
