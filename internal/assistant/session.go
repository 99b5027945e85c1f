package assistant

import "sync"

// Entry is one logged (query, response) pair.
type Entry struct {
	Query    string
	Response string
}

// Session is a caller-owned conversation log. It is append-only between
// resets, capped to the most recent entries, and never consulted by
// retrieval. The mutex makes appends safe if the host runs queries from
// multiple goroutines.
type Session struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

// NewSession creates an empty session keeping at most max entries; max <= 0
// falls back to 10.
func NewSession(max int) *Session {
	if max <= 0 {
		max = 10
	}
	return &Session{max: max}
}

func (s *Session) append(q, resp string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Query: q, Response: resp})
	if len(s.entries) > s.max {
		s.entries = s.entries[len(s.entries)-s.max:]
	}
}

// Len reports the number of logged entries.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns a copy of the logged entries, oldest first.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear resets the log to empty.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
