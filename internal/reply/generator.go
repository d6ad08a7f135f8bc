// Package reply turns a resolved intent into a natural-language answer
// plus optional UI actions and follow-up suggestions. Wording is drawn
// from small variant sets picked at random so the assistant does not
// repeat itself verbatim; the picker is injectable so tests can pin the
// choice. Generation never fails; every unresolved case lands in the
// generic fallback.
package reply

import (
	"math/rand/v2"
	"regexp"

	"github.com/mkarev/askfolio/internal/intent"
	"github.com/mkarev/askfolio/internal/knowledge"
)

// Action types the generator can emit. The site's action dispatcher
// understands more, but these three are the only ones produced here.
const (
	ActionScrollToSection = "scroll_to_section"
	ActionShowProject     = "show_project"
	ActionOpenContact     = "open_contact"
)

// Action is a typed reference the UI resolves to behavior.
type Action struct {
	Type    string            `json:"type"`
	Payload map[string]string `json:"payload,omitempty"`
	Label   string            `json:"label"`
}

// Response is one generated reply. Ephemeral, one per turn.
type Response struct {
	Text        string   `json:"text"`
	Actions     []Action `json:"actions,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Picker selects an index in [0,n). The default implementation is
// uniform random; tests supply a deterministic stub.
type Picker func(n int) int

// Generator maps resolved intents to replies using the knowledge base.
type Generator struct {
	kb   *knowledge.Repository
	pick Picker
}

// NewGenerator creates a Generator with a uniform random variant picker.
func NewGenerator(kb *knowledge.Repository) *Generator {
	return &Generator{kb: kb, pick: rand.IntN}
}

// NewGeneratorWithPicker creates a Generator with a custom picker.
func NewGeneratorWithPicker(kb *knowledge.Repository, pick Picker) *Generator {
	return &Generator{kb: kb, pick: pick}
}

func (g *Generator) choose(variants ...string) string {
	return variants[g.pick(len(variants))]
}

// preCheckThreshold gates the generic-question shortcut: a confident
// classification always beats it.
const preCheckThreshold = 50

var (
	canBuildRe      = regexp.MustCompile(`(?i)can (you|he) (build|create|make|develop)\b`)
	experienceAskRe = regexp.MustCompile(`(?i)(do you have|does he have|have you got) (any )?experience (with|in)\b`)
)

// Generate produces the reply for a resolved intent and the raw message
// it came from. Two hand-written question shapes ("can you build X",
// "do you have experience with X") take precedence over weak
// classifications (confidence below 50) but never over confident ones.
func (g *Generator) Generate(res intent.Result, message string) Response {
	if res.Confidence < preCheckThreshold {
		if canBuildRe.MatchString(message) {
			return g.canBuildAnswer()
		}
		if experienceAskRe.MatchString(message) {
			return g.experienceAskAnswer(res)
		}
	}

	switch res.Intent {
	case intent.IntentGreeting:
		return g.greeting()
	case intent.IntentFarewell:
		return g.farewell()
	case intent.IntentThanks:
		return g.thanks()
	case intent.IntentCapabilities:
		return g.capabilities()
	case intent.IntentAbout:
		return g.about()
	case intent.IntentSkills:
		return g.skills(res)
	case intent.IntentSpecificSkill:
		return g.specificSkill(res)
	case intent.IntentProjects:
		return g.projects()
	case intent.IntentSpecificProject:
		return g.specificProject(res)
	case intent.IntentExperience:
		return g.experience()
	case intent.IntentEducation:
		return g.education()
	case intent.IntentStartup:
		return g.startup()
	case intent.IntentAvailability:
		return g.availability()
	case intent.IntentContact:
		return g.contact()
	case intent.IntentPricing:
		return g.pricing()
	default:
		// unknown and off_topic share the sniffing fallback path.
		return g.fallback(message)
	}
}

func (g *Generator) canBuildAnswer() Response {
	profile := g.kb.Profile()
	return Response{
		Text: g.choose(
			"Almost certainly, yes. "+profile.Name+" has shipped web apps, mobile apps, and backend services end to end — ask about a specific technology and I can go deeper.",
			"Yes — building things like that is the day job. "+profile.Name+" covers the full stack, from UI to database. Want to see related projects?",
		),
		Actions: []Action{{
			Type:  ActionScrollToSection,
			Payload: map[string]string{"section": "projects"},
			Label: "See projects",
		}},
		Suggestions: []string{"What projects has he built?", "What's his tech stack?"},
	}
}

func (g *Generator) experienceAskAnswer(res intent.Result) Response {
	if res.Entities.Technology != "" {
		if skill, ok := g.kb.FindSkill(res.Entities.Technology); ok {
			return g.skillAnswer(skill)
		}
	}
	return Response{
		Text: g.choose(
			"Quite possibly — the stack is broad. Name the technology and I'll tell you exactly where it's been used.",
			"Good question. I track a long list of technologies; which one are you curious about?",
		),
		Suggestions: []string{"What technologies does he know?", "How good is he at React?"},
	}
}
