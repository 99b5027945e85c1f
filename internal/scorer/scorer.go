// Package scorer ranks profile chunks against a free-text query using a
// blend of TF-IDF, fuzzy string similarity and keyword overlap, plus each
// chunk's static weight.
package scorer

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"resume-chat/internal/domain"
)

// Default blend parameters. Empirically chosen, tunable via Config.
const (
	DefaultTFIDFWeight      = 0.3
	DefaultFuzzyWeight      = 0.3
	DefaultKeywordWeight    = 0.2
	DefaultChunkWeight      = 0.2
	DefaultFuzzyMaxDistance = 0.4
	DefaultTopK             = 10
)

// Config tunes the scoring blend.
type Config struct {
	TFIDFWeight   float64
	FuzzyWeight   float64
	KeywordWeight float64
	ChunkWeight   float64
	// FuzzyMaxDistance is the normalized edit distance above which a fuzzy
	// match contributes nothing, in (0, 1].
	FuzzyMaxDistance float64
	TopK             int
}

func (c *Config) applyDefaults() {
	if c.TFIDFWeight == 0 && c.FuzzyWeight == 0 && c.KeywordWeight == 0 && c.ChunkWeight == 0 {
		c.TFIDFWeight = DefaultTFIDFWeight
		c.FuzzyWeight = DefaultFuzzyWeight
		c.KeywordWeight = DefaultKeywordWeight
		c.ChunkWeight = DefaultChunkWeight
	}
	if c.FuzzyMaxDistance <= 0 || c.FuzzyMaxDistance > 1 {
		c.FuzzyMaxDistance = DefaultFuzzyMaxDistance
	}
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
}

// Scorer computes blended relevance scores. Stateless across calls; document
// frequencies are recomputed per chunk set, which stays cheap at profile
// scale.
type Scorer struct {
	cfg Config
}

func New(cfg Config) *Scorer {
	cfg.applyDefaults()
	return &Scorer{cfg: cfg}
}

// Rank scores every chunk against the query and returns the top-K results in
// descending score order. Ties keep original chunk order. No score floor is
// applied here; callers decide what a too-weak Signal means.
func (s *Scorer) Rank(query string, chunks []domain.Chunk) []domain.SearchResult {
	if len(chunks) == 0 {
		return nil
	}

	queryTokens := tokenize(query)
	queryKeywords := keywords(query)

	df := documentFrequencies(chunks)
	total := float64(len(chunks))

	results := make([]domain.SearchResult, 0, len(chunks))
	for _, ch := range chunks {
		tfidf := s.tfidfScore(queryTokens, ch.Content, df, total)
		fuzzy := s.fuzzyScore(queryTokens, ch.Content)
		keyword := keywordOverlap(queryKeywords, keywords(ch.Content))

		signal := s.cfg.TFIDFWeight*tfidf + s.cfg.FuzzyWeight*fuzzy + s.cfg.KeywordWeight*keyword
		results = append(results, domain.SearchResult{
			Chunk:  ch,
			Score:  signal + s.cfg.ChunkWeight*ch.Weight,
			Signal: signal,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > s.cfg.TopK {
		results = results[:s.cfg.TopK]
	}
	return results
}

// documentFrequencies counts, per term, how many chunks contain it.
func documentFrequencies(chunks []domain.Chunk) map[string]int {
	df := make(map[string]int)
	for _, ch := range chunks {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(ch.Content) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	return df
}

// tfidfScore sums tf*idf over the query terms present in the chunk. Term
// frequency is max-normalized within the chunk; IDF is log(N/df). Terms with
// zero document frequency are skipped rather than producing infinite IDF,
// and a chunk with no tokens scores zero rather than dividing by zero.
func (s *Scorer) tfidfScore(queryTokens []string, content string, df map[string]int, totalChunks float64) float64 {
	counts := make(map[string]int)
	maxCount := 0
	for _, tok := range tokenize(content) {
		counts[tok]++
		if counts[tok] > maxCount {
			maxCount = counts[tok]
		}
	}
	if maxCount == 0 {
		return 0
	}

	score := 0.0
	seen := make(map[string]struct{}, len(queryTokens))
	for _, term := range queryTokens {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		count, ok := counts[term]
		if !ok {
			continue
		}
		freq, ok := df[term]
		if !ok || freq == 0 {
			continue
		}
		tf := float64(count) / float64(maxCount)
		idf := math.Log(totalChunks / float64(freq))
		score += tf * idf
	}
	return score
}

// fuzzyScore slides a query-sized token window over the chunk content and
// returns 1 - normalizedDistance for the best window, 0 when no window comes
// within the configured threshold. Tolerates typos and partial matches.
func (s *Scorer) fuzzyScore(queryTokens []string, content string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	contentTokens := tokenize(content)
	if len(contentTokens) == 0 {
		return 0
	}

	q := strings.Join(queryTokens, " ")
	window := len(queryTokens)
	if window > len(contentTokens) {
		window = len(contentTokens)
	}

	best := math.Inf(1)
	for i := 0; i+window <= len(contentTokens); i++ {
		candidate := strings.Join(contentTokens[i:i+window], " ")
		dist := levenshtein.ComputeDistance(q, candidate)
		longest := utf8.RuneCountInString(q)
		if n := utf8.RuneCountInString(candidate); n > longest {
			longest = n
		}
		if longest == 0 {
			continue
		}
		norm := float64(dist) / float64(longest)
		if norm < best {
			best = norm
		}
	}
	if best > s.cfg.FuzzyMaxDistance {
		return 0
	}
	return 1 - best
}

// keywordOverlap is the fraction of query keywords present in the chunk's
// keyword set, matching by substring containment in either direction so that
// "engineering" still matches "engineer".
func keywordOverlap(queryKeywords, chunkKeywords []string) float64 {
	if len(queryKeywords) == 0 || len(chunkKeywords) == 0 {
		return 0
	}
	matched := 0
	for _, qk := range queryKeywords {
		for _, ck := range chunkKeywords {
			if strings.Contains(ck, qk) || strings.Contains(qk, ck) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryKeywords))
}
