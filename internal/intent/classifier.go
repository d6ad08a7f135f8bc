// Package intent classifies visitor messages into a closed set of
// intents by scoring them against a table of weighted patterns, and
// resolves weak classifications with one step of conversation history.
//
// Classification never fails: gibberish, empty input, and unrecognized
// languages all resolve to IntentUnknown. "I don't know" is a normal
// outcome here, not an error.
package intent

import (
	"strings"

	"github.com/mkarev/askfolio/internal/entity"
)

// Intent names. The set is closed and defined at build time.
const (
	IntentGreeting        = "greeting"
	IntentFarewell        = "farewell"
	IntentThanks          = "thanks"
	IntentCapabilities    = "capabilities"
	IntentAbout           = "about"
	IntentSkills          = "skills"
	IntentSpecificSkill   = "specific_skill"
	IntentProjects        = "projects"
	IntentSpecificProject = "specific_project"
	IntentExperience      = "experience"
	IntentEducation       = "education"
	IntentStartup         = "startup"
	IntentAvailability    = "availability"
	IntentContact         = "contact"
	IntentPricing         = "pricing"
	IntentOffTopic        = "off_topic"
	IntentUnknown         = "unknown"
)

// Scoring weights. A single regex hit outweighs a keyword hit; keyword
// hits accumulate; priority is a static tie-breaker added regardless
// of hits.
const (
	regexBonus   = 50
	keywordBonus = 30

	// maxConfidence clamps the reported confidence.
	maxConfidence = 100

	// unknownThreshold forces the label (not the confidence) to
	// IntentUnknown when the winning score is this low.
	unknownThreshold = 20
)

// Result is the output of one classification. Created fresh per
// message, never persisted.
type Result struct {
	Intent     string          `json:"intent"`
	Confidence int             `json:"confidence"`
	Entities   entity.Entities `json:"entities"`
}

// Classifier scores messages against its pattern table.
type Classifier struct {
	patterns []Pattern
}

// NewClassifier returns a classifier with the default pattern table.
func NewClassifier() *Classifier {
	return &Classifier{patterns: defaultPatterns()}
}

// NewClassifierWithPatterns returns a classifier using a custom table,
// for tests that need a controlled pattern set.
func NewClassifierWithPatterns(patterns []Pattern) *Classifier {
	return &Classifier{patterns: patterns}
}

// Recognize scores message against every pattern and returns the best
// intent, a confidence in [0,100], and any extracted entities.
//
// Per pattern: +50 if any regex matches the raw message (first match
// short-circuits the rest), +30 for each keyword whose lower-cased
// form is a substring of the lower-cased message, plus the pattern's
// priority unconditionally. The earliest-declared pattern wins score
// ties (strict > comparison).
//
// If the winning score is <= 20 the label is forced to IntentUnknown
// but the confidence is still reported as the clamped score. Callers
// branch on confidence downstream, so the score must survive the
// forced label.
func (c *Classifier) Recognize(message string) Result {
	ents := entity.Extract(message)

	if strings.TrimSpace(message) == "" {
		return Result{Intent: IntentUnknown, Confidence: 0, Entities: ents}
	}

	lower := strings.ToLower(message)

	best := ""
	bestScore := 0
	for _, p := range c.patterns {
		score := p.score(message, lower)
		if score > bestScore {
			bestScore = score
			best = p.Intent
		}
	}

	confidence := bestScore
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	if bestScore <= unknownThreshold {
		best = IntentUnknown
	}
	if best == "" {
		best = IntentUnknown
	}

	return Result{Intent: best, Confidence: confidence, Entities: ents}
}

func (p *Pattern) score(raw, lower string) int {
	score := 0
	for _, re := range p.Regexes {
		if re.MatchString(raw) {
			score += regexBonus
			break
		}
	}
	for _, kw := range p.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += keywordBonus
		}
	}
	return score + p.Priority
}
