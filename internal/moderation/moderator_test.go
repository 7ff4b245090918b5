package moderation_test

import (
	"testing"

	"teaching-server/internal/moderation"

	"github.com/stretchr/testify/assert"
)

func TestRegexModerator_Moderate(t *testing.T) {
	m := moderation.NewRegexModerator()

	tests := []struct {
		name         string
		text         string
		wantApproved bool
		wantReason   string
	}{
		{
			name:         "educational topic approved",
			text:         "Explain how photosynthesis works",
			wantApproved: true,
		},
		{
			name:         "educational signal is case-insensitive",
			text:         "TEACH me about gravity",
			wantApproved: true,
		},
		{
			name:         "disallowed content rejected with reason",
			text:         "violence and hate explained",
			wantApproved: false,
			wantReason:   "Content flagged as inappropriate",
		},
		{
			name:         "disallowed signal dominates educational signal",
			text:         "explain the theory behind hate speech",
			wantApproved: false,
			wantReason:   "Content flagged as inappropriate",
		},
		{
			name:         "ambiguous intent rejected without reason",
			text:         "bananas are yellow",
			wantApproved: false,
			wantReason:   "",
		},
		{
			name:         "whole-word matching only",
			text:         "the chow recipe collection", // "how" inside "chow" must not count
			wantApproved: false,
			wantReason:   "",
		},
		{
			name:         "empty input rejected",
			text:         "",
			wantApproved: false,
			wantReason:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := m.Moderate(tt.text)
			assert.Equal(t, tt.wantApproved, decision.Approved)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}
