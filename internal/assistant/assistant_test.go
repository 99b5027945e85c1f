package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-chat/internal/config"
	"resume-chat/internal/domain"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		Personal: domain.Personal{
			Name:     "Bruce Tran",
			Title:    "Software Engineer",
			Email:    "bruce.tran.dev@gmail.com",
			Phone:    "(512) 555-0143",
			Location: "Austin, TX",
		},
		Links: domain.Links{
			LinkedIn: "https://linkedin.com/in/brucetran-dev",
			GitHub:   "https://github.com/brucetran-dev",
		},
		Summary: "Software engineer focused on backend services.",
		Education: []domain.Education{
			{Degree: "B.S. in Computer Science", Institution: "University of Texas at Austin", GraduationDate: "May 2026", GPA: "3.85"},
		},
		Experience: []domain.Experience{
			{
				Title:        "Software Engineering Intern",
				Company:      "Google",
				Duration:     "May 2025 - Aug 2025",
				Description:  "Cloud Storage metadata consistency tooling.",
				Achievements: []string{"Cut audit pipeline runtime by 60%"},
				Technologies: []string{"Go", "C++", "Spanner"},
			},
			{
				Title:       "Software Engineering Intern",
				Company:     "Stripe",
				Duration:    "Summer 2026",
				Upcoming:    true,
				Description: "Incoming intern on Payments Infrastructure.",
			},
		},
		TechnicalProjects: []domain.Project{
			{
				Name:         "Shelfwise",
				Description:  "Self-hosted library manager with barcode lookup.",
				Technologies: []string{"Go", "PostgreSQL", "React"},
				Highlights:   []string{"Offline-first sync protocol"},
			},
		},
		Skills: domain.Skills{
			ProgrammingLanguages: []domain.Skill{{Name: "Go", Proficiency: "Expert"}},
			DatabasesAndStorage:  []string{"PostgreSQL", "Redis"},
		},
	}
}

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()
	cfg, err := config.Load("does-not-exist.yaml") // defaults
	require.NoError(t, err)
	return New(testProfile(), cfg)
}

func TestSearch(t *testing.T) {
	a := newTestAssistant(t)

	t.Run("empty query gets the dedicated prompt", func(t *testing.T) {
		assert.Equal(t, EmptyQueryMessage, a.Search(""))
		assert.Equal(t, EmptyQueryMessage, a.Search("   \t  "))
	})

	t.Run("contact intent keeps exact field values", func(t *testing.T) {
		out := a.Search("How can I contact Bruce?")
		assert.Contains(t, out, "## Contact Information")
		assert.Contains(t, out, "bruce.tran.dev@gmail.com")
		assert.Contains(t, out, "(512) 555-0143")
	})

	t.Run("gpa comes through verbatim", func(t *testing.T) {
		assert.Contains(t, a.Search("What is Bruce's GPA?"), "3.85")
	})

	t.Run("company query mentions only that employer", func(t *testing.T) {
		out := a.Search("Tell me what he did at Google")
		assert.Contains(t, out, "Google")
		assert.NotContains(t, out, "Stripe")
	})

	t.Run("garbage query returns the fallback verbatim", func(t *testing.T) {
		assert.Equal(t, FallbackMessage, a.Search("asdkjqwe091lkj"))
	})

	t.Run("no intent falls back to ranked retrieval", func(t *testing.T) {
		out := a.Search("metadata consistency tooling")
		assert.Contains(t, out, "Here's what I found:")
		assert.Contains(t, out, "Google")
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, q := range []string{"metadata consistency tooling", "projects", "asdkjqwe091lkj"} {
			assert.Equal(t, a.Search(q), a.Search(q), "query %q", q)
		}
	})

	t.Run("case-insensitive routing", func(t *testing.T) {
		lower := a.Search("google")
		assert.Equal(t, lower, a.Search("GOOGLE"))
		assert.Equal(t, lower, a.Search("Google"))
	})

	t.Run("always returns clean non-empty markdown", func(t *testing.T) {
		queries := []string{
			"",
			"?!...",
			"experience",
			"what frameworks does he know",
			"barcode lookup",
			strings.Repeat("very long query ", 500),
		}
		for _, q := range queries {
			out := a.Search(q)
			assert.NotEmpty(t, strings.TrimSpace(out), "query %q", q)
			assert.NotContains(t, out, "undefined", "query %q", q)
			assert.NotContains(t, out, "null", "query %q", q)
		}
	})
}

func TestProcessQuery_History(t *testing.T) {
	a := newTestAssistant(t)
	sess := a.NewSession()

	t.Run("grows to the cap and no further", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			a.ProcessQuery(sess, fmt.Sprintf("question %d", i))
			assert.Equal(t, i+1, sess.Len())
		}
		for i := 4; i < 25; i++ {
			a.ProcessQuery(sess, fmt.Sprintf("question %d", i))
		}
		assert.Equal(t, 10, sess.Len())
	})

	t.Run("keeps the most recent entries", func(t *testing.T) {
		entries := sess.Entries()
		require.Len(t, entries, 10)
		assert.Equal(t, "question 24", entries[9].Query)
		assert.Equal(t, "question 15", entries[0].Query)
	})

	t.Run("clear resets to zero", func(t *testing.T) {
		sess.Clear()
		assert.Zero(t, sess.Len())
	})

	t.Run("history never changes answers", func(t *testing.T) {
		fresh := a.NewSession()
		first := a.ProcessQuery(fresh, "experience")
		for i := 0; i < 5; i++ {
			a.ProcessQuery(fresh, "projects")
		}
		assert.Equal(t, first, a.ProcessQuery(fresh, "experience"))
	})

	t.Run("nil session is tolerated", func(t *testing.T) {
		assert.NotEmpty(t, a.ProcessQuery(nil, "experience"))
	})
}

func TestTypingDelay(t *testing.T) {
	a := newTestAssistant(t)

	t.Run("monotonically non-decreasing in length", func(t *testing.T) {
		prev := time.Duration(0)
		for _, n := range []int{0, 1, 10, 100, 500, 5000} {
			d := a.TypingDelay(strings.Repeat("x", n))
			assert.GreaterOrEqual(t, d, prev, "length %d", n)
			prev = d
		}
	})

	t.Run("never exceeds the cap", func(t *testing.T) {
		assert.LessOrEqual(t, a.TypingDelay(strings.Repeat("x", 100000)), 1500*time.Millisecond)
	})

	t.Run("base delay for empty response", func(t *testing.T) {
		assert.Equal(t, 500*time.Millisecond, a.TypingDelay(""))
	})
}
