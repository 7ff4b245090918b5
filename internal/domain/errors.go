package domain

import (
	"errors"
	"fmt"
)

// Application-wide standard errors
var (
	// Validation errors
	ErrTopicTooShort     = errors.New("topic must be at least 10 characters")
	ErrInvalidDifficulty = errors.New("unknown difficulty level")
	ErrInvalidInput      = errors.New("invalid input data")

	// Moderation
	ErrContentRejected = errors.New("content rejected by moderation")

	// Generation & Persistence
	ErrGenerationFailed = errors.New("content generation failed")
	ErrNotFound         = errors.New("resource not found")

	// General
	ErrInternalServer = errors.New("internal server error")
)

// ModerationRejectionError carries the moderator's stated reason. Reason is
// empty for ambiguous-intent rejections.
type ModerationRejectionError struct {
	Reason string
}

func (e *ModerationRejectionError) Error() string {
	if e.Reason == "" {
		return ErrContentRejected.Error()
	}
	return fmt.Sprintf("%s: %s", ErrContentRejected.Error(), e.Reason)
}

// Is lets errors.Is(err, ErrContentRejected) match a rejection regardless of reason.
func (e *ModerationRejectionError) Is(target error) bool {
	return target == ErrContentRejected
}
