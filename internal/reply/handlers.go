package reply

import (
	"fmt"
	"strings"

	"github.com/mkarev/askfolio/internal/intent"
	"github.com/mkarev/askfolio/internal/knowledge"
)

func (g *Generator) greeting() Response {
	name := g.kb.Profile().Name
	return Response{
		Text: g.choose(
			"Hey! I'm the assistant on "+name+"'s portfolio. Ask me about his skills, projects, or experience.",
			"Hi there! Happy to tell you anything about "+name+"'s work. What would you like to know?",
			"Hello! I know "+name+"'s portfolio inside out — skills, projects, background. Fire away.",
		),
		Suggestions: []string{"What are his skills?", "Show me his projects", "Is he available for hire?"},
	}
}

func (g *Generator) farewell() Response {
	return Response{
		Text: g.choose(
			"Thanks for stopping by! Come back any time.",
			"Bye! If anything else comes to mind, I'm right here.",
			"Take care! Feel free to reach out through the contact form too.",
		),
	}
}

// thanksVariants is exported for tests that assert membership in the
// variant set rather than an exact string.
var thanksVariants = []string{
	"You're welcome! Anything else you'd like to know?",
	"Happy to help! Ask away if you have more questions.",
	"Any time! I'm here if you want to dig into anything else.",
}

func (g *Generator) thanks() Response {
	return Response{
		Text:        g.choose(thanksVariants...),
		Suggestions: []string{"Tell me about his projects", "How can I contact him?"},
	}
}

func (g *Generator) capabilities() Response {
	return Response{
		Text: "I can answer questions about skills and technologies, walk you through projects, " +
			"cover work experience and education, and help you get in touch. I'm a simple rule-based " +
			"assistant, so keep questions about the portfolio and we'll get along great.",
		Suggestions: []string{"What's his strongest skill?", "What has he built?", "What's his background?"},
	}
}

func (g *Generator) about() Response {
	p := g.kb.Profile()
	text := fmt.Sprintf("%s is a %s with %d years of experience. %s",
		p.Name, strings.ToLower(p.Title), p.YearsExperience, p.Startup+".")
	return Response{
		Text: text,
		Actions: []Action{{
			Type:    ActionScrollToSection,
			Payload: map[string]string{"section": "about"},
			Label:   "About section",
		}},
		Suggestions: []string{"What are his skills?", "Tell me about InvoTrek"},
	}
}

func (g *Generator) skills(res intent.Result) Response {
	if res.Entities.Category != "" {
		if skills := g.kb.SkillsByCategory(res.Entities.Category); len(skills) > 0 {
			names := make([]string, len(skills))
			for i, s := range skills {
				names[i] = fmt.Sprintf("%s (%s)", s.Name, s.Level)
			}
			return Response{
				Text: fmt.Sprintf("On the %s side: %s.", res.Entities.Category, strings.Join(names, ", ")),
				Actions: []Action{{
					Type:    ActionScrollToSection,
					Payload: map[string]string{"section": "skills"},
					Label:   "All skills",
				}},
				Suggestions: []string{"How good is he at " + skills[0].Name + "?", "Show me his projects"},
			}
		}
	}

	byCategory := make(map[string][]string)
	var order []string
	for _, s := range g.kb.Skills() {
		if _, ok := byCategory[s.Category]; !ok {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], s.Name)
	}
	var parts []string
	for _, cat := range order {
		parts = append(parts, fmt.Sprintf("%s: %s", cat, strings.Join(byCategory[cat], ", ")))
	}
	return Response{
		Text: "Here's the stack — " + strings.Join(parts, ". ") + ".",
		Actions: []Action{{
			Type:    ActionScrollToSection,
			Payload: map[string]string{"section": "skills"},
			Label:   "Skills section",
		}},
		Suggestions: []string{"How experienced is he with React?", "What backend work has he done?"},
	}
}

func (g *Generator) specificSkill(res intent.Result) Response {
	if res.Entities.Technology == "" {
		return g.skills(res)
	}
	skill, ok := g.kb.FindSkill(res.Entities.Technology)
	if !ok {
		return Response{
			Text: fmt.Sprintf("%s isn't on the skill list, but the stack is broad — adjacent tools usually transfer quickly.",
				res.Entities.Technology),
			Suggestions: []string{"What technologies does he know?"},
		}
	}
	return g.skillAnswer(skill)
}

// skillAnswer renders a single skill with proficiency commentary and,
// when the skill lists related projects, a pointer to the first one.
func (g *Generator) skillAnswer(skill knowledge.Skill) Response {
	var commentary string
	switch skill.Level {
	case "expert":
		commentary = "It's one of his strongest skills."
	case "advanced":
		commentary = "He's very comfortable with it in production."
	default:
		commentary = "He's used it on real projects and keeps improving."
	}

	text := fmt.Sprintf("%s — %s level. %s %s", skill.Name, skill.Level, skill.Description, commentary)

	resp := Response{
		Text:        text,
		Suggestions: []string{"What other skills does he have?"},
	}
	if len(skill.RelatedProjects) > 0 {
		if project, ok := g.kb.FindProject(skill.RelatedProjects[0]); ok {
			resp.Text += fmt.Sprintf(" You can see it in action in %s.", project.Name)
			resp.Actions = append(resp.Actions, Action{
				Type:    ActionShowProject,
				Payload: map[string]string{"projectId": project.ID},
				Label:   "View " + project.Name,
			})
			resp.Suggestions = append(resp.Suggestions, "Tell me about "+project.Name)
		}
	}
	return resp
}

func (g *Generator) projects() Response {
	projects := g.kb.Projects()
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return Response{
		Text: g.choose(
			"There's a lot to show: "+strings.Join(names, ", ")+". Ask about any of them and I'll give you the details.",
			"The portfolio covers "+strings.Join(names, ", ")+". Which one should I walk you through?",
		),
		Actions: []Action{{
			Type:    ActionScrollToSection,
			Payload: map[string]string{"section": "projects"},
			Label:   "Projects section",
		}},
		Suggestions: []string{"What is InvoTrek?", "Tell me about DevBoard"},
	}
}

func (g *Generator) specificProject(res intent.Result) Response {
	if res.Entities.Project == "" {
		return g.projects()
	}
	project, ok := g.kb.FindProject(res.Entities.Project)
	if !ok {
		return g.projects()
	}
	text := fmt.Sprintf("%s — %s Built with %s. Role: %s.",
		project.Name, project.Description, strings.Join(project.TechStack, ", "), strings.ToLower(project.Role))
	if project.TargetUsers != "" {
		text += " Made for " + strings.ToLower(project.TargetUsers) + "."
	}
	return Response{
		Text: text,
		Actions: []Action{{
			Type:    ActionShowProject,
			Payload: map[string]string{"projectId": project.ID},
			Label:   "View " + project.Name,
		}},
		Suggestions: []string{"What else has he built?", "What's his tech stack?"},
	}
}

func (g *Generator) experience() Response {
	p := g.kb.Profile()
	current := g.kb.CurrentExperience()
	text := fmt.Sprintf("%d years in the industry.", p.YearsExperience)
	if len(current) > 0 {
		c := current[0]
		text = fmt.Sprintf("%d years in the industry, currently %s at %s (%s).",
			p.YearsExperience, strings.ToLower(c.Role), c.Company, c.Period)
		if len(c.Achievements) > 0 {
			text += " " + c.Achievements[0] + "."
		}
	}
	return Response{
		Text: text,
		Actions: []Action{{
			Type:    ActionScrollToSection,
			Payload: map[string]string{"section": "experience"},
			Label:   "Experience section",
		}},
		Suggestions: []string{"Where did he study?", "What are his skills?"},
	}
}

func (g *Generator) education() Response {
	return Response{
		Text:        g.kb.Profile().Education + ".",
		Suggestions: []string{"What's his work experience?", "What has he built?"},
	}
}

func (g *Generator) startup() Response {
	resp := Response{
		Text:        g.kb.Profile().Startup + ".",
		Suggestions: []string{"Tell me more about InvoTrek", "Is he available for hire?"},
	}
	if project, ok := g.kb.FindProject("invotrek"); ok {
		resp.Actions = append(resp.Actions, Action{
			Type:    ActionShowProject,
			Payload: map[string]string{"projectId": project.ID},
			Label:   "View " + project.Name,
		})
	}
	return resp
}

func (g *Generator) availability() Response {
	return Response{
		Text: g.kb.Profile().Availability + ". The fastest way to find out is to ask directly.",
		Actions: []Action{{
			Type:  ActionOpenContact,
			Label: "Get in touch",
		}},
		Suggestions: []string{"How can I contact him?", "What does he charge?"},
	}
}

func (g *Generator) contact() Response {
	return Response{
		Text: g.choose(
			"The contact form is the best way — messages land straight in his inbox.",
			"Easiest route: the contact form on this page. He usually replies within a day.",
		),
		Actions: []Action{{
			Type:  ActionOpenContact,
			Label: "Open contact form",
		}},
	}
}

func (g *Generator) pricing() Response {
	return Response{
		Text: g.choose(
			"Rates depend on scope and duration, so there's no flat price list. Send a short project description and you'll get a concrete quote.",
			"That's a conversation rather than a price tag — scope matters. The contact form is the way to start it.",
		),
		Actions: []Action{{
			Type:  ActionOpenContact,
			Label: "Request a quote",
		}},
		Suggestions: []string{"Is he available right now?"},
	}
}
