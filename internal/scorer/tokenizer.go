package scorer

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// tokenize lowercases text, strips non-word characters and drops tokens of
// two characters or fewer.
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) <= 2 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// keywords returns tokens with stop words removed, for overlap scoring.
func keywords(text string) []string {
	tokens := tokenize(text)
	out := tokens[:0]
	for _, t := range tokens {
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Common interrogative and filler words that carry no retrieval signal.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "and", "for", "are", "was", "were", "been", "being", "has",
		"have", "had", "does", "did", "doing", "will", "would", "could",
		"should", "can", "may", "might", "must", "shall", "this", "that",
		"these", "those", "with", "from", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "over", "under", "again", "further", "then", "once", "here",
		"there", "all", "any", "both", "each", "few", "more", "most",
		"other", "some", "such", "not", "only", "own", "same", "than",
		"too", "very", "just", "what", "who", "whom", "whose", "which",
		"where", "when", "why", "how", "tell", "show", "give", "know",
		"please", "you", "your", "yours", "his", "her", "hers", "their",
		"they", "them",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}
