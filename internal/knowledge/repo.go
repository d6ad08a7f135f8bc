// Package knowledge holds the static facts the portfolio agent answers
// from: the owner's profile, projects, work history, and skills. The
// tables are loaded once at startup and never mutated; every lookup is
// a pure read. Absence is reported as a zero value plus ok=false, never
// as an error, since "no match" is a normal outcome for the agent.
package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed seed.json
var seedJSON []byte

// Repository is a read-only view over a loaded knowledge base.
// Construct one with New, Default, or Load and share it freely:
// all methods are safe for concurrent use.
type Repository struct {
	data Data
}

// New wraps the given data in a Repository. Tests use this to fabricate
// small knowledge bases.
func New(data Data) *Repository {
	return &Repository{data: data}
}

// Default loads the knowledge base embedded in the binary.
func Default() (*Repository, error) {
	return parse(seedJSON)
}

// Load reads a knowledge base from a JSON file, for deployments that
// override the embedded seed.
func Load(path string) (*Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge file: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Repository, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing knowledge base: %w", err)
	}
	if data.Profile.Name == "" {
		return nil, fmt.Errorf("knowledge base has no profile")
	}
	return &Repository{data: data}, nil
}

// Profile returns the owner's profile.
func (r *Repository) Profile() Profile {
	return r.data.Profile
}

// Projects returns all projects in table order.
func (r *Repository) Projects() []Project {
	out := make([]Project, len(r.data.Projects))
	copy(out, r.data.Projects)
	return out
}

// Skills returns all skills in table order.
func (r *Repository) Skills() []Skill {
	out := make([]Skill, len(r.data.Skills))
	copy(out, r.data.Skills)
	return out
}

// Experience returns the full work history in table order.
func (r *Repository) Experience() []Experience {
	out := make([]Experience, len(r.data.Experience))
	copy(out, r.data.Experience)
	return out
}

// FindProject matches query case-insensitively as a substring of a
// project's id, name, or any tech-stack entry. The first project in
// table order wins; there is no ranking among multiple matches.
func (r *Repository) FindProject(query string) (Project, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Project{}, false
	}
	for _, p := range r.data.Projects {
		if strings.Contains(strings.ToLower(p.ID), q) || strings.Contains(strings.ToLower(p.Name), q) {
			return p, true
		}
		for _, tech := range p.TechStack {
			if strings.Contains(strings.ToLower(tech), q) {
				return p, true
			}
		}
	}
	return Project{}, false
}

// FindSkill matches name case-insensitively as a substring of a skill
// name. First match in table order wins.
func (r *Repository) FindSkill(name string) (Skill, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return Skill{}, false
	}
	for _, s := range r.data.Skills {
		if strings.Contains(strings.ToLower(s.Name), q) {
			return s, true
		}
	}
	return Skill{}, false
}

// SkillsByCategory returns every skill whose category equals category,
// compared case-insensitively. The result may be empty.
func (r *Repository) SkillsByCategory(category string) []Skill {
	var out []Skill
	for _, s := range r.data.Skills {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// CurrentExperience returns the entries marked current.
func (r *Repository) CurrentExperience() []Experience {
	var out []Experience
	for _, e := range r.data.Experience {
		if e.Current {
			out = append(out, e)
		}
	}
	return out
}

// AllTechnologies returns the deduplicated union of skill names and
// project tech-stack entries, in first-seen order.
func (r *Repository) AllTechnologies() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	for _, s := range r.data.Skills {
		add(s.Name)
	}
	for _, p := range r.data.Projects {
		for _, tech := range p.TechStack {
			add(tech)
		}
	}
	return out
}
