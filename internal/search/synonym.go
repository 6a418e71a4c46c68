package search

// Synonyms maps a normalised term to alternatives that should match too.
var Synonyms = map[string][]string{
	"sci fi":  {"science fiction", "space"},
	"scifi":   {"science fiction", "space"},
	"romcom":  {"romance", "comedy"},
	"war":     {"military", "battle"},
	"prison":  {"jail", "inmate"},
	"music":   {"musical", "singer"},
	"pilot":   {"aviator", "navy"},
	"desert":  {"dune", "arrakis"},
	"classic": {"drama"},
}

func GetSynonyms(term string) []string {
	v, ok := Synonyms[term]
	if !ok {
		return []string{}
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
