// Package profile loads and validates the résumé document backing retrieval.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"resume-chat/internal/domain"
)

// Load reads the profile JSON from path and validates it. A malformed or
// incomplete document is a fatal startup condition for callers; search never
// runs against a partially loaded profile.
func Load(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a profile document.
func Parse(data []byte) (*domain.Profile, error) {
	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

func validate(p *domain.Profile) error {
	if strings.TrimSpace(p.Personal.Name) == "" {
		return fmt.Errorf("personal.name is required")
	}
	if strings.TrimSpace(p.Personal.Email) == "" {
		return fmt.Errorf("personal.email is required")
	}
	if len(p.Experience) == 0 && len(p.TechnicalProjects) == 0 && len(p.Education) == 0 {
		return fmt.Errorf("profile has no experience, projects or education sections")
	}
	return nil
}

// Companies returns the distinct employer names present in the profile, in
// document order. Used to build the company-specific intent rule.
func Companies(p *domain.Profile) []string {
	seen := make(map[string]struct{}, len(p.Experience))
	var out []string
	for _, exp := range p.Experience {
		name := strings.TrimSpace(exp.Company)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
