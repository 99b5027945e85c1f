package intent

import (
	"fmt"
	"strings"

	"resume-chat/internal/domain"
)

// Renderers pull fields directly from the profile, never from chunk text, so
// values like email addresses and GPAs come through exact and untruncated.

func renderContact(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("## Contact Information\n\n")
	fmt.Fprintf(&b, "You can reach **%s** through:\n\n", p.Personal.Name)
	if p.Personal.Email != "" {
		fmt.Fprintf(&b, "- **Email:** %s\n", p.Personal.Email)
	}
	if p.Personal.Phone != "" {
		fmt.Fprintf(&b, "- **Phone:** %s\n", p.Personal.Phone)
	}
	if p.Links.LinkedIn != "" {
		fmt.Fprintf(&b, "- **LinkedIn:** [%s](%s)\n", p.Links.LinkedIn, p.Links.LinkedIn)
	}
	if p.Links.GitHub != "" {
		fmt.Fprintf(&b, "- **GitHub:** [%s](%s)\n", p.Links.GitHub, p.Links.GitHub)
	}
	if p.Links.Portfolio != "" {
		fmt.Fprintf(&b, "- **Portfolio:** [%s](%s)\n", p.Links.Portfolio, p.Links.Portfolio)
	}
	return b.String()
}

func renderEducation(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("## Education\n\n")
	for _, edu := range p.Education {
		fmt.Fprintf(&b, "- **%s**, %s", edu.Degree, edu.Institution)
		if edu.GraduationDate != "" {
			fmt.Fprintf(&b, " (%s)", edu.GraduationDate)
		}
		if edu.GPA != "" {
			fmt.Fprintf(&b, ", GPA: %s", edu.GPA)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSkills(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("## Technical Skills\n\n")

	var langs []string
	for _, sk := range p.Skills.ProgrammingLanguages {
		if sk.Proficiency == "Expert" || sk.Proficiency == "Proficient" {
			langs = append(langs, fmt.Sprintf("%s (%s)", sk.Name, sk.Proficiency))
		}
	}
	if len(langs) > 0 {
		fmt.Fprintf(&b, "- **Languages:** %s\n", strings.Join(langs, ", "))
	}

	var frameworks []string
	for _, sk := range p.Skills.FrameworksAndLibraries {
		frameworks = append(frameworks, sk.Name)
		if len(frameworks) == 8 {
			break
		}
	}
	if len(frameworks) > 0 {
		fmt.Fprintf(&b, "- **Frameworks & Libraries:** %s\n", strings.Join(frameworks, ", "))
	}

	if len(p.Skills.DatabasesAndStorage) > 0 {
		fmt.Fprintf(&b, "- **Databases & Storage:** %s\n", strings.Join(p.Skills.DatabasesAndStorage, ", "))
	}
	return b.String()
}

func renderProjects(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("## Technical Projects\n\n")
	for _, proj := range p.TechnicalProjects {
		fmt.Fprintf(&b, "**%s**\n%s\n", proj.Name, proj.Description)
		techs := proj.Technologies
		if len(techs) > 3 {
			techs = techs[:3]
		}
		if len(techs) > 0 {
			fmt.Fprintf(&b, "*Built with %s*\n", strings.Join(techs, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderCompany(p *domain.Profile, company string) string {
	var b strings.Builder
	wrote := false
	for _, exp := range p.Experience {
		if !strings.EqualFold(exp.Company, company) {
			continue
		}
		if !wrote {
			fmt.Fprintf(&b, "## Experience at %s\n\n", exp.Company)
			wrote = true
		}
		fmt.Fprintf(&b, "**%s** (%s)\n", exp.Title, duration(exp))
		if h := firstHighlight(exp); h != "" {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}
	if !wrote {
		return ""
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderExperience(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("## Experience\n\n")
	for _, exp := range p.Experience {
		fmt.Fprintf(&b, "**%s**, %s (%s)\n", exp.Title, exp.Company, duration(exp))
		if h := firstHighlight(exp); h != "" {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func duration(exp domain.Experience) string {
	if exp.Upcoming {
		if exp.Duration != "" {
			return "Upcoming, " + exp.Duration
		}
		return "Upcoming"
	}
	return exp.Duration
}

// firstHighlight prefers an achievement over a responsibility, falling back
// to the role description.
func firstHighlight(exp domain.Experience) string {
	if len(exp.Achievements) > 0 {
		return exp.Achievements[0]
	}
	if len(exp.Responsibilities) > 0 {
		return exp.Responsibilities[0]
	}
	return exp.Description
}
