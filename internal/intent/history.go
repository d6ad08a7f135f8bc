package intent

import (
	"regexp"
	"strings"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a conversation. The caller owns the history
// slice, ordered oldest to newest; this package only reads it.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// followUpThreshold: history is only consulted when the fresh
// classification is weaker than this.
const followUpThreshold = 30

// followUpConfidence is the fixed confidence assigned to a history
// override.
const followUpConfidence = 60

var (
	affirmativeRe       = regexp.MustCompile(`(?i)\b(yes|yeah|yep|sure|ok(ay)?|please|tell me|more|details|go (on|ahead))\b`)
	skillsAffirmativeRe = regexp.MustCompile(`(?i)\b(yes|yeah|yep|sure|ok(ay)?|please|tell me|more|details|show|list)\b`)
)

// EnhanceWithHistory resolves a weak classification using the last turn
// of conversation. It applies only when history is non-empty and
// res.Confidence is below 30. If the most recent assistant message
// mentioned projects and the most recent user message is affirmative,
// the intent becomes IntentProjects with confidence 60; likewise for
// skills. Exactly one override can fire; anything else passes res
// through unchanged.
func (c *Classifier) EnhanceWithHistory(res Result, history []Turn) Result {
	if len(history) == 0 || res.Confidence >= followUpThreshold {
		return res
	}

	assistant, okA := LastByRole(history, RoleAssistant)
	user, okU := LastByRole(history, RoleUser)
	if !okA || !okU {
		return res
	}

	assistantLower := strings.ToLower(assistant.Content)
	switch {
	case strings.Contains(assistantLower, "project") && affirmativeRe.MatchString(user.Content):
		res.Intent = IntentProjects
		res.Confidence = followUpConfidence
	case strings.Contains(assistantLower, "skill") && skillsAffirmativeRe.MatchString(user.Content):
		res.Intent = IntentSkills
		res.Confidence = followUpConfidence
	}
	return res
}

// LastByRole scans history newest-first and returns the most recent
// turn with the given role.
func LastByRole(history []Turn, role string) (Turn, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == role {
			return history[i], true
		}
	}
	return Turn{}, false
}
