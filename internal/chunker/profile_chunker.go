// Package chunker decomposes a profile document into retrievable chunks.
package chunker

import (
	"fmt"
	"strings"

	"resume-chat/internal/domain"
)

// Static weights per chunk kind. A record's core description ranks above its
// enumerations; technology lists rank lowest since they match many queries
// incidentally.
const (
	weightPersonal       = 1.5
	weightExperience     = 2.0
	weightResponsibility = 1.6
	weightAchievement    = 1.8
	weightProject        = 1.7
	weightHighlight      = 1.5
	weightTechnology     = 1.2
	weightSkills         = 1.4
	weightEducation      = 1.6
	weightAccomplishment = 1.2
)

// ProfileChunker turns a Profile into chunks: one umbrella chunk per record,
// one chunk per enumerable list item, one per skills sub-category. Pure and
// deterministic; absent or empty sections produce no chunks.
type ProfileChunker struct{}

func New() *ProfileChunker { return &ProfileChunker{} }

// Chunk builds the chunk set for the given profile. Every returned chunk has
// non-empty content and a parent reference back into the profile.
func (c *ProfileChunker) Chunk(p *domain.Profile) []domain.Chunk {
	var chunks []domain.Chunk
	add := func(ch domain.Chunk) {
		if strings.TrimSpace(ch.Content) == "" {
			return
		}
		chunks = append(chunks, ch)
	}

	add(domain.Chunk{
		ID:       "personal:0",
		Kind:     domain.KindPersonal,
		Content:  joinNonEmpty(" ", p.Personal.Name, p.Personal.Title, p.Personal.Location, p.Summary),
		Weight:   weightPersonal,
		Personal: &p.Personal,
	})

	for i := range p.Experience {
		exp := &p.Experience[i]
		add(domain.Chunk{
			ID:         fmt.Sprintf("experience:%d", i),
			Kind:       domain.KindExperience,
			Content:    joinNonEmpty(" ", exp.Title+" at "+exp.Company+".", exp.Duration, exp.Description),
			Weight:     weightExperience,
			Experience: exp,
		})
		for j, r := range exp.Responsibilities {
			add(domain.Chunk{
				ID:         fmt.Sprintf("experience:%d:responsibility:%d", i, j),
				Kind:       domain.KindResponsibility,
				Content:    r,
				Weight:     weightResponsibility,
				Experience: exp,
			})
		}
		for j, a := range exp.Achievements {
			add(domain.Chunk{
				ID:         fmt.Sprintf("experience:%d:achievement:%d", i, j),
				Kind:       domain.KindAchievement,
				Content:    a,
				Weight:     weightAchievement,
				Experience: exp,
			})
		}
		if len(exp.Technologies) > 0 {
			add(domain.Chunk{
				ID:         fmt.Sprintf("experience:%d:technology", i),
				Kind:       domain.KindTechnology,
				Content:    exp.Title + " at " + exp.Company + " used " + strings.Join(exp.Technologies, ", "),
				Weight:     weightTechnology,
				Experience: exp,
			})
		}
	}

	for i := range p.TechnicalProjects {
		proj := &p.TechnicalProjects[i]
		add(domain.Chunk{
			ID:      fmt.Sprintf("project:%d", i),
			Kind:    domain.KindProject,
			Content: joinNonEmpty(" ", proj.Name+".", proj.Description),
			Weight:  weightProject,
			Project: proj,
		})
		for j, h := range proj.Highlights {
			add(domain.Chunk{
				ID:      fmt.Sprintf("project:%d:highlight:%d", i, j),
				Kind:    domain.KindHighlight,
				Content: h,
				Weight:  weightHighlight,
				Project: proj,
			})
		}
		if len(proj.Technologies) > 0 {
			add(domain.Chunk{
				ID:      fmt.Sprintf("project:%d:technology", i),
				Kind:    domain.KindTechnology,
				Content: proj.Name + " built with " + strings.Join(proj.Technologies, ", "),
				Weight:  weightTechnology,
				Project: proj,
			})
		}
	}

	for i, group := range skillGroups(&p.Skills) {
		add(domain.Chunk{
			ID:         fmt.Sprintf("skills:%d", i),
			Kind:       domain.KindSkills,
			Content:    group.Category + ": " + strings.Join(group.Items, ", "),
			Weight:     weightSkills,
			SkillGroup: &group,
		})
	}

	for i := range p.Education {
		edu := &p.Education[i]
		parts := []string{edu.Degree, edu.Institution, edu.GraduationDate}
		if edu.GPA != "" {
			parts = append(parts, "GPA "+edu.GPA)
		}
		if len(edu.Coursework) > 0 {
			parts = append(parts, "Coursework: "+strings.Join(edu.Coursework, ", "))
		}
		add(domain.Chunk{
			ID:        fmt.Sprintf("education:%d", i),
			Kind:      domain.KindEducation,
			Content:   joinNonEmpty(". ", parts...),
			Weight:    weightEducation,
			Education: edu,
		})
	}

	for i := range p.TeamsAndAccomplishments {
		acc := &p.TeamsAndAccomplishments[i]
		add(domain.Chunk{
			ID:             fmt.Sprintf("accomplishment:%d", i),
			Kind:           domain.KindAccomplishment,
			Content:        joinNonEmpty(" ", acc.Title+".", acc.Description),
			Weight:         weightAccomplishment,
			Accomplishment: acc,
		})
	}

	return chunks
}

// skillGroups renders the non-empty skills sub-categories in document order.
func skillGroups(s *domain.Skills) []domain.SkillGroup {
	var groups []domain.SkillGroup
	if len(s.ProgrammingLanguages) > 0 {
		groups = append(groups, domain.SkillGroup{
			Category: "Programming Languages",
			Items:    renderSkills(s.ProgrammingLanguages),
		})
	}
	if len(s.FrameworksAndLibraries) > 0 {
		groups = append(groups, domain.SkillGroup{
			Category: "Frameworks & Libraries",
			Items:    renderSkills(s.FrameworksAndLibraries),
		})
	}
	if len(s.DatabasesAndStorage) > 0 {
		groups = append(groups, domain.SkillGroup{Category: "Databases & Storage", Items: s.DatabasesAndStorage})
	}
	if len(s.ToolsAndPlatforms) > 0 {
		groups = append(groups, domain.SkillGroup{Category: "Tools & Platforms", Items: s.ToolsAndPlatforms})
	}
	if len(s.Methodologies) > 0 {
		groups = append(groups, domain.SkillGroup{Category: "Methodologies", Items: s.Methodologies})
	}
	return groups
}

func renderSkills(skills []domain.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		if sk.Proficiency != "" {
			out = append(out, sk.Name+" ("+sk.Proficiency+")")
		} else {
			out = append(out, sk.Name)
		}
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
