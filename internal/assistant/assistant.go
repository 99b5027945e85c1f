// Package assistant is the question-answering facade over the profile:
// intent dispatch first, ranked chunk retrieval as fallback. Every query
// resolves to a markdown string; nothing is raised across this boundary.
package assistant

import (
	"strings"
	"time"

	"resume-chat/internal/chunker"
	"resume-chat/internal/config"
	"resume-chat/internal/domain"
	"resume-chat/internal/intent"
	"resume-chat/internal/scorer"
)

// EmptyQueryMessage is returned for blank input instead of running retrieval
// over zero tokens.
const EmptyQueryMessage = "Please ask a question about experience, projects, skills, or education."

// FallbackMessage is the terminal answer when neither an intent rule nor
// ranked retrieval produced a meaningful match. A no-match is a normal
// outcome, not an error.
const FallbackMessage = "I couldn't find information about that. Try asking about experience, projects, skills, or education."

// Assistant answers free-text questions about one loaded profile. The profile
// is read-only after construction, so concurrent Search calls are safe.
type Assistant struct {
	profile    *domain.Profile
	chunker    *chunker.ProfileChunker
	scorer     *scorer.Scorer
	dispatcher *intent.Dispatcher
	retrieval  config.RetrievalConfig
	typing     config.TypingConfig
	history    config.HistoryConfig
}

// New wires the retrieval pipeline for the given profile and configuration.
func New(p *domain.Profile, cfg *config.AppConfig) *Assistant {
	return &Assistant{
		profile: p,
		chunker: chunker.New(),
		scorer: scorer.New(scorer.Config{
			TFIDFWeight:      cfg.Retrieval.TFIDFWeight,
			FuzzyWeight:      cfg.Retrieval.FuzzyWeight,
			KeywordWeight:    cfg.Retrieval.KeywordWeight,
			ChunkWeight:      cfg.Retrieval.ChunkWeight,
			FuzzyMaxDistance: cfg.Retrieval.FuzzyMaxDistance,
			TopK:             cfg.Retrieval.TopK,
		}),
		dispatcher: intent.New(p),
		retrieval:  cfg.Retrieval,
		typing:     cfg.Typing,
		history:    cfg.History,
	}
}

// NewSession creates a conversation log sized from the assistant's config.
func (a *Assistant) NewSession() *Session {
	return NewSession(a.history.MaxEntries)
}

// Search answers a single query. Deterministic for a fixed profile and
// configuration; no session state is consulted.
func (a *Assistant) Search(query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return EmptyQueryMessage
	}

	if answer, ok := a.dispatcher.Dispatch(q); ok {
		return answer
	}

	chunks := a.chunker.Chunk(a.profile)
	results := a.scorer.Rank(q, chunks)
	// The static weight component guarantees a nonzero score for every chunk,
	// so the no-match decision looks at the content-derived signal only.
	bestSignal := 0.0
	for _, res := range results {
		if res.Signal > bestSignal {
			bestSignal = res.Signal
		}
	}
	if len(results) == 0 || bestSignal < a.retrieval.MinSignal {
		return FallbackMessage
	}
	return formatResults(results, a.retrieval.TopRender)
}

// ProcessQuery answers the query and appends the exchange to the session.
func (a *Assistant) ProcessQuery(sess *Session, query string) string {
	answer := a.Search(query)
	if sess != nil {
		sess.append(query, answer)
	}
	return answer
}

// TypingDelay returns the cosmetic delay a UI should wait before showing the
// response, simulating typing: a base delay plus a per-character delay,
// capped at the configured maximum.
func (a *Assistant) TypingDelay(response string) time.Duration {
	ms := a.typing.BaseMillis + a.typing.PerCharMillis*len(response)
	if ms > a.typing.MaxMillis {
		ms = a.typing.MaxMillis
	}
	return time.Duration(ms) * time.Millisecond
}
