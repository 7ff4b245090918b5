package handler

import (
	"github.com/google/uuid"

	"teaching-server/internal/domain"
)

type processTopicRequest struct {
	Topic          string `json:"topic" binding:"required"`
	Difficulty     string `json:"difficulty"`
	OutputLanguage string `json:"outputLanguage"`
}

type processTopicResponse struct {
	RequestID        uuid.UUID              `json:"requestId"`
	Explanation      *domain.Explanation    `json:"explanation"`
	Script           *domain.TeachingScript `json:"script"`
	DetectedLanguage string                 `json:"detectedLanguage"`
}

type languagesResponse struct {
	Languages []domain.Language `json:"languages"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
