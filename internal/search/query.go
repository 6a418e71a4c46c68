package search

import (
	"strings"
	"unicode"
)

const maxVariants = 10

type QueryContext struct {
	Original   string
	Normalized string
	Variants   []string
}

// NormalizeQuery lowercases input, keeps letters and digits and collapses
// everything else to single spaces.
func NormalizeQuery(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func ExpandQuery(normalized string) []string {
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	// each word on its own, plus its synonyms
	words := strings.Fields(normalized)
	if len(words) > 1 {
		for _, w := range words {
			add(w)
			for _, syn := range GetSynonyms(w) {
				add(syn)
			}
		}
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

func ProcessQuery(input string) QueryContext {
	ctx := QueryContext{Original: input, Normalized: NormalizeQuery(input)}
	ctx.Variants = ExpandQuery(ctx.Normalized)
	return ctx
}
