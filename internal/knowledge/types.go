package knowledge

// Profile holds the portfolio owner's headline facts. There is exactly
// one profile per knowledge base.
type Profile struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	YearsExperience int    `json:"years_experience"`
	Education       string `json:"education"`
	Availability    string `json:"availability"`
	Startup         string `json:"startup"`
}

// Project is a portfolio entry the agent can talk about.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Features    []string `json:"features"`
	Role        string   `json:"role"`
	TargetUsers string   `json:"target_users,omitempty"`
}

// Experience is one entry in the owner's work history.
type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
	Current      bool     `json:"current"`
}

// Skill describes one technology the owner works with.
// Level is one of "expert", "advanced", "intermediate".
type Skill struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Level           string   `json:"level"`
	Description     string   `json:"description"`
	RelatedProjects []string `json:"related_projects,omitempty"`
}

// Data is the full knowledge base payload as stored in the seed file.
type Data struct {
	Profile    Profile      `json:"profile"`
	Projects   []Project    `json:"projects"`
	Experience []Experience `json:"experience"`
	Skills     []Skill      `json:"skills"`
}
