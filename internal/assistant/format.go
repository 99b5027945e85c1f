package assistant

import (
	"fmt"
	"strings"

	"resume-chat/internal/domain"
)

// formatResults renders the fallback answer from ranked chunks: the top
// results are deduplicated by parent record, then each record is rendered by
// a template selected on the chunk's kind tag.
func formatResults(results []domain.SearchResult, topRender int) string {
	if topRender <= 0 {
		topRender = 3
	}

	var b strings.Builder
	b.WriteString("Here's what I found:\n\n")

	seen := make(map[any]struct{}, topRender)
	rendered := 0
	for _, res := range results {
		if rendered == topRender {
			break
		}
		parent := res.Chunk.Parent()
		if parent != nil {
			if _, dup := seen[parent]; dup {
				continue
			}
			seen[parent] = struct{}{}
		}
		line := renderChunk(res.Chunk)
		if line == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", line)
		rendered++
	}
	if rendered == 0 {
		return FallbackMessage
	}
	return b.String()
}

func renderChunk(ch domain.Chunk) string {
	switch ch.Kind {
	case domain.KindExperience, domain.KindResponsibility, domain.KindAchievement:
		exp := ch.Experience
		return fmt.Sprintf("**%s**, %s (%s): %s", exp.Title, exp.Company, expDuration(exp), expHighlight(exp))
	case domain.KindTechnology, domain.KindHighlight:
		if ch.Project != nil {
			return renderProject(ch.Project)
		}
		if ch.Experience != nil {
			exp := ch.Experience
			return fmt.Sprintf("**%s**, %s (%s): %s", exp.Title, exp.Company, expDuration(exp), expHighlight(exp))
		}
	case domain.KindProject:
		return renderProject(ch.Project)
	case domain.KindSkills:
		g := ch.SkillGroup
		return fmt.Sprintf("**%s:** %s", g.Category, strings.Join(g.Items, ", "))
	case domain.KindEducation:
		edu := ch.Education
		line := fmt.Sprintf("**%s**, %s", edu.Degree, edu.Institution)
		if edu.GraduationDate != "" {
			line += fmt.Sprintf(" (%s)", edu.GraduationDate)
		}
		if edu.GPA != "" {
			line += ", GPA: " + edu.GPA
		}
		return line
	case domain.KindAccomplishment:
		acc := ch.Accomplishment
		return fmt.Sprintf("**%s**: %s", acc.Title, acc.Description)
	case domain.KindPersonal:
		return ch.Content
	}
	// Unknown kinds degrade to the chunk's own text rather than failing.
	return ch.Content
}

func renderProject(proj *domain.Project) string {
	techs := proj.Technologies
	if len(techs) > 3 {
		techs = techs[:3]
	}
	line := fmt.Sprintf("**%s**: %s", proj.Name, proj.Description)
	if len(techs) > 0 {
		line += fmt.Sprintf(" (*%s*)", strings.Join(techs, ", "))
	}
	return line
}

func expDuration(exp *domain.Experience) string {
	if exp.Upcoming {
		if exp.Duration != "" {
			return "Upcoming, " + exp.Duration
		}
		return "Upcoming"
	}
	return exp.Duration
}

func expHighlight(exp *domain.Experience) string {
	if len(exp.Achievements) > 0 {
		return exp.Achievements[0]
	}
	if len(exp.Responsibilities) > 0 {
		return exp.Responsibilities[0]
	}
	return exp.Description
}
