// Package intent recognizes coarse recruiter question categories and renders
// dedicated markdown answers straight from the profile, bypassing ranked
// retrieval for precision on common questions.
package intent

import (
	"strings"

	"resume-chat/internal/domain"
	"resume-chat/internal/profile"
)

// rule pairs a predicate with a renderer. Rules are evaluated in order,
// first match wins, so precedence is auditable in one place.
type rule struct {
	name   string
	match  func(query string) bool
	render func(query string) string
}

// Dispatcher holds the ordered rule table for one loaded profile.
type Dispatcher struct {
	profile *domain.Profile
	rules   []rule
}

// New builds the rule table. The company rule's predicate is derived from the
// employer names present in the profile. Education, skills and projects are
// checked before the generic experience rule on purpose: their vocabularies
// overlap with experience-adjacent wording ("developed" appears in both
// project and job descriptions) and the more specific intent must win.
func New(p *domain.Profile) *Dispatcher {
	d := &Dispatcher{profile: p}

	companies := make([]string, 0)
	for _, c := range profile.Companies(p) {
		companies = append(companies, strings.ToLower(c))
	}
	institutions := make([]string, 0, len(p.Education))
	for _, edu := range p.Education {
		if edu.Institution != "" {
			institutions = append(institutions, strings.ToLower(edu.Institution))
		}
	}

	d.rules = []rule{
		{
			name:   "contact",
			match:  anyOf("contact", "email", "phone", "linkedin", "github", "reach"),
			render: func(string) string { return renderContact(p) },
		},
		{
			name: "education",
			match: func(q string) bool {
				if anyOf("education", "degree", "university", "school", "college", "gpa")(q) {
					return true
				}
				return containsAny(q, institutions)
			},
			render: func(string) string { return renderEducation(p) },
		},
		{
			name:   "skills",
			match:  anyOf("skill", "technolog", "language", "framework", "programming", "database"),
			render: func(string) string { return renderSkills(p) },
		},
		{
			name:   "projects",
			match:  anyOf("project", "built", "created", "developed", "portfolio"),
			render: func(string) string { return renderProjects(p) },
		},
		{
			name:  "company",
			match: func(q string) bool { return containsAny(q, companies) },
			render: func(q string) string {
				for _, c := range companies {
					if strings.Contains(q, c) {
						return renderCompany(p, c)
					}
				}
				return ""
			},
		},
		{
			name:   "experience",
			match:  anyOf("experience", "work", "job", "intern", "career", "employ"),
			render: func(string) string { return renderExperience(p) },
		},
	}
	return d
}

// Dispatch runs the rule table against the query. The boolean reports whether
// any rule matched; when false, the caller falls back to ranked retrieval.
func (d *Dispatcher) Dispatch(query string) (string, bool) {
	q := strings.ToLower(query)
	for _, r := range d.rules {
		if !r.match(q) {
			continue
		}
		if out := r.render(q); out != "" {
			return out, true
		}
	}
	return "", false
}

// Rules returns the rule names in evaluation order.
func (d *Dispatcher) Rules() []string {
	names := make([]string, len(d.rules))
	for i, r := range d.rules {
		names[i] = r.name
	}
	return names
}

func anyOf(words ...string) func(string) bool {
	return func(q string) bool { return containsAny(q, words) }
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(q, w) {
			return true
		}
	}
	return false
}
