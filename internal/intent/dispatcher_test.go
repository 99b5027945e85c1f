package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-chat/internal/domain"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		Personal: domain.Personal{
			Name:  "Bruce Tran",
			Email: "bruce.tran.dev@gmail.com",
			Phone: "(512) 555-0143",
		},
		Links: domain.Links{
			LinkedIn: "https://linkedin.com/in/brucetran-dev",
			GitHub:   "https://github.com/brucetran-dev",
		},
		Education: []domain.Education{
			{Degree: "B.S. in Computer Science", Institution: "University of Texas at Austin", GraduationDate: "May 2026", GPA: "3.85"},
		},
		Experience: []domain.Experience{
			{
				Title:        "Software Engineering Intern",
				Company:      "Google",
				Duration:     "May 2025 - Aug 2025",
				Description:  "Cloud Storage metadata tooling.",
				Achievements: []string{"Cut audit pipeline runtime by 60%"},
				Technologies: []string{"Go", "C++"},
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
			{Name: "Shelfwise", Description: "Self-hosted library manager.", Technologies: []string{"Go", "PostgreSQL", "React", "Docker"}},
		},
		Skills: domain.Skills{
			ProgrammingLanguages: []domain.Skill{
				{Name: "Go", Proficiency: "Expert"},
				{Name: "Rust", Proficiency: "Familiar"},
			},
			FrameworksAndLibraries: []domain.Skill{
				{Name: "React", Proficiency: "Proficient"},
				{Name: "gRPC", Proficiency: "Proficient"},
			},
			DatabasesAndStorage: []string{"PostgreSQL", "Redis"},
		},
	}
}

func TestDispatch(t *testing.T) {
	d := New(testProfile())

	t.Run("contact renders exact fields", func(t *testing.T) {
		out, ok := d.Dispatch("How can I contact Bruce?")
		require.True(t, ok)
		assert.Contains(t, out, "## Contact Information")
		assert.Contains(t, out, "bruce.tran.dev@gmail.com")
		assert.Contains(t, out, "(512) 555-0143")
		assert.Contains(t, out, "linkedin.com/in/brucetran-dev")
	})

	t.Run("education renders exact gpa", func(t *testing.T) {
		out, ok := d.Dispatch("What is Bruce's GPA?")
		require.True(t, ok)
		assert.Contains(t, out, "3.85")
		assert.Contains(t, out, "University of Texas at Austin")
	})

	t.Run("institution name routes to education", func(t *testing.T) {
		out, ok := d.Dispatch("Did he attend the University of Texas at Austin?")
		require.True(t, ok)
		assert.Contains(t, out, "B.S. in Computer Science")
	})

	t.Run("skills filters by proficiency", func(t *testing.T) {
		out, ok := d.Dispatch("What programming skills does he have?")
		require.True(t, ok)
		assert.Contains(t, out, "Go (Expert)")
		assert.NotContains(t, out, "Rust")
		assert.Contains(t, out, "React")
		assert.Contains(t, out, "PostgreSQL")
	})

	t.Run("projects limits technologies to three", func(t *testing.T) {
		out, ok := d.Dispatch("Tell me about the portfolio projects")
		require.True(t, ok)
		assert.Contains(t, out, "Shelfwise")
		assert.Contains(t, out, "Go, PostgreSQL, React")
		assert.NotContains(t, out, "Docker")
	})

	t.Run("company query isolates that employer", func(t *testing.T) {
		out, ok := d.Dispatch("What did Bruce do at Google?")
		require.True(t, ok)
		assert.Contains(t, out, "Google")
		assert.Contains(t, out, "Cut audit pipeline runtime by 60%")
		assert.NotContains(t, out, "Stripe")
	})

	t.Run("company matching is case-insensitive", func(t *testing.T) {
		for _, q := range []string{"GOOGLE", "Google", "google"} {
			out, ok := d.Dispatch(q)
			require.True(t, ok, "query %q", q)
			assert.Contains(t, out, "Experience at Google", "query %q", q)
		}
	})

	t.Run("experience marks upcoming roles", func(t *testing.T) {
		out, ok := d.Dispatch("Walk me through his experience")
		require.True(t, ok)
		assert.Contains(t, out, "Google")
		assert.Contains(t, out, "Stripe")
		assert.Contains(t, out, "Upcoming")
	})

	t.Run("no rule matches", func(t *testing.T) {
		_, ok := d.Dispatch("asdkjqwe091lkj")
		assert.False(t, ok)
	})
}

func TestDispatch_Precedence(t *testing.T) {
	d := New(testProfile())

	t.Run("education beats experience vocabulary", func(t *testing.T) {
		// "school" and "intern" could both match; the education rule is
		// checked first.
		out, ok := d.Dispatch("Which school did the intern go to?")
		require.True(t, ok)
		assert.Contains(t, out, "## Education")
	})

	t.Run("projects beat experience on developed", func(t *testing.T) {
		out, ok := d.Dispatch("What has he developed?")
		require.True(t, ok)
		assert.Contains(t, out, "## Technical Projects")
	})

	t.Run("rule order is fixed", func(t *testing.T) {
		assert.Equal(t,
			[]string{"contact", "education", "skills", "projects", "company", "experience"},
			d.Rules())
	})
}

func TestDispatch_NoLeakedPlaceholders(t *testing.T) {
	d := New(testProfile())
	for _, q := range []string{"contact", "education", "skills", "projects", "google", "experience"} {
		out, ok := d.Dispatch(q)
		require.True(t, ok, "query %q", q)
		assert.NotEmpty(t, strings.TrimSpace(out))
		assert.NotContains(t, out, "undefined")
		assert.NotContains(t, out, "null")
	}
}
