// Package moderation implements the approval gate applied to raw topic text
// before any generation happens.
package moderation

import "regexp"

// Decision is the outcome of moderating one piece of text. Reason is empty
// when the text was rejected only for lacking a recognizable educational
// intent.
type Decision struct {
	Approved bool
	Reason   string
}

// Moderator approves or rejects raw input text. Implementations must be pure
// functions of the text with no side effects, so stricter classifiers can be
// substituted without touching the orchestrator.
type Moderator interface {
	Moderate(text string) Decision
}

const flaggedReason = "Content flagged as inappropriate"

// Whole-word, case-insensitive. A deliberately high-recall gate, not a
// precise classifier.
var (
	educationalPattern   = regexp.MustCompile(`(?i)\b(explain|learn|understand|teach|how|what|why|concept|theory|formula|solve)\b`)
	inappropriatePattern = regexp.MustCompile(`(?i)\b(violence|hate|explicit)\b`)
)

// RegexModerator is the default dual-pattern gate: text passes iff it carries
// an educational-intent signal and no disallowed-content signal.
type RegexModerator struct{}

// NewRegexModerator creates the default moderator.
func NewRegexModerator() *RegexModerator {
	return &RegexModerator{}
}

// Moderate applies both patterns. A disallowed match dominates the
// educational signal and always produces a stated reason.
func (m *RegexModerator) Moderate(text string) Decision {
	isEducational := educationalPattern.MatchString(text)
	isInappropriate := inappropriatePattern.MatchString(text)

	decision := Decision{Approved: isEducational && !isInappropriate}
	if isInappropriate {
		decision.Reason = flaggedReason
	}
	return decision
}

var _ Moderator = (*RegexModerator)(nil)
