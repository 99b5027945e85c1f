package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-chat/internal/domain"
)

func TestFormatResults(t *testing.T) {
	exp := &domain.Experience{
		Title:        "Engineer",
		Company:      "Acme",
		Duration:     "2022 - 2024",
		Achievements: []string{"Halved invoice latency"},
	}
	proj := &domain.Project{
		Name:         "Birdwatch",
		Description:  "Bird sighting tracker.",
		Technologies: []string{"Go", "SQLite", "React", "Docker"},
	}

	t.Run("deduplicates chunks sharing a parent", func(t *testing.T) {
		results := []domain.SearchResult{
			{Chunk: domain.Chunk{Kind: domain.KindExperience, Content: "x", Experience: exp}},
			{Chunk: domain.Chunk{Kind: domain.KindAchievement, Content: "y", Experience: exp}},
			{Chunk: domain.Chunk{Kind: domain.KindProject, Content: "z", Project: proj}},
		}
		out := formatResults(results, 3)
		assert.Equal(t, 1, strings.Count(out, "Acme"))
		assert.Contains(t, out, "Birdwatch")
	})

	t.Run("renders by kind tag", func(t *testing.T) {
		edu := &domain.Education{Degree: "B.S.", Institution: "TU Berlin", GPA: "3.7"}
		group := &domain.SkillGroup{Category: "Languages", Items: []string{"Go (Expert)"}}
		results := []domain.SearchResult{
			{Chunk: domain.Chunk{Kind: domain.KindEducation, Content: "x", Education: edu}},
			{Chunk: domain.Chunk{Kind: domain.KindSkills, Content: "y", SkillGroup: group}},
		}
		out := formatResults(results, 3)
		assert.Contains(t, out, "**B.S.**, TU Berlin, GPA: 3.7")
		assert.Contains(t, out, "**Languages:** Go (Expert)")
	})

	t.Run("project technologies capped at three", func(t *testing.T) {
		results := []domain.SearchResult{
			{Chunk: domain.Chunk{Kind: domain.KindProject, Content: "z", Project: proj}},
		}
		out := formatResults(results, 3)
		assert.Contains(t, out, "Go, SQLite, React")
		assert.NotContains(t, out, "Docker")
	})

	t.Run("unknown kind degrades to chunk text", func(t *testing.T) {
		results := []domain.SearchResult{
			{Chunk: domain.Chunk{Kind: domain.ChunkKind("mystery"), Content: "raw fragment"}},
		}
		out := formatResults(results, 3)
		assert.Contains(t, out, "raw fragment")
	})

	t.Run("nothing renderable falls back", func(t *testing.T) {
		assert.Equal(t, FallbackMessage, formatResults(nil, 3))
	})

	t.Run("respects the render limit", func(t *testing.T) {
		var results []domain.SearchResult
		for i := 0; i < 6; i++ {
			p := &domain.Project{Name: "P", Description: "D"}
			results = append(results, domain.SearchResult{
				Chunk: domain.Chunk{Kind: domain.KindProject, Content: "c", Project: p},
			})
		}
		out := formatResults(results, 3)
		require.Equal(t, 3, strings.Count(out, "- "))
	})
}
