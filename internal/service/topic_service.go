// Package service orchestrates the topic-processing pipeline: moderation,
// language detection, content generation and persistence.
package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teaching-server/internal/domain"
	"teaching-server/internal/moderation"
	"teaching-server/internal/repository"
)

// minTopicLength is the minimum accepted topic length in characters.
const minTopicLength = 10

// LanguageDetector identifies the language of raw text and exposes the
// supported-language catalogue.
type LanguageDetector interface {
	Detect(text string) domain.Detection
	SupportedLanguages() []domain.Language
}

// ContentGenerator runs the four-stage generation pipeline for one request.
type ContentGenerator interface {
	ProcessTopicRequest(ctx context.Context, req *domain.InputRequest) (*domain.GeneratedContent, error)
}

// ProcessInput is one incoming topic query.
type ProcessInput struct {
	Topic          string
	Difficulty     string
	OutputLanguage string
}

// ProcessResult is the assembled outcome of a fully processed request.
type ProcessResult struct {
	RequestID        uuid.UUID
	Explanation      *domain.Explanation
	Script           *domain.TeachingScript
	DetectedLanguage string
}

// TopicService sequences moderation, detection, generation and persistence
// for topic requests. Safe for concurrent use; all state lives in the
// request-scoped values passed through it.
type TopicService struct {
	moderator moderation.Moderator
	detector  LanguageDetector
	generator ContentGenerator
	repo      repository.TeachingRepository
	logger    *zap.Logger
}

// NewTopicService wires the orchestrator's dependencies.
func NewTopicService(
	moderator moderation.Moderator,
	detector LanguageDetector,
	generator ContentGenerator,
	repo repository.TeachingRepository,
	logger *zap.Logger,
) *TopicService {
	return &TopicService{
		moderator: moderator,
		detector:  detector,
		generator: generator,
		repo:      repo,
		logger:    logger,
	}
}

// Process runs the full pipeline for one topic. Rejections (validation,
// moderation) happen before any persistence; once the request row exists,
// any downstream failure marks it failed and surfaces as a generic internal
// error.
func (s *TopicService) Process(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	start := time.Now()

	if utf8.RuneCountInString(in.Topic) < minTopicLength {
		topicsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrTopicTooShort
	}

	difficulty := domain.DifficultyLevel(in.Difficulty)
	if in.Difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}
	if !difficulty.Valid() {
		topicsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, in.Difficulty)
	}

	decision := s.moderator.Moderate(in.Topic)
	if !decision.Approved {
		topicsTotal.WithLabelValues("rejected").Inc()
		s.logger.Info("Topic rejected by moderation",
			zap.Bool("flagged", decision.Reason != ""))
		return nil, &domain.ModerationRejectionError{Reason: decision.Reason}
	}

	detection := s.detector.Detect(in.Topic)

	outputLanguage := in.OutputLanguage
	if outputLanguage == "" {
		outputLanguage = detection.Language
	}

	req := &domain.InputRequest{
		InputText:          in.Topic,
		InputLanguage:      detection.Language,
		DetectedLanguage:   detection.Language,
		LanguageConfidence: detection.Confidence,
		InputType:          domain.InputTypeTopic,
		DifficultyLevel:    difficulty,
		OutputLanguage:     outputLanguage,
		Status:             domain.StatusProcessing,
	}
	if err := s.repo.CreateRequest(ctx, req); err != nil {
		topicsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("Failed to persist input request", zap.Error(err))
		return nil, domain.ErrInternalServer
	}

	s.logger.Info("Processing topic request",
		zap.Stringer("requestID", req.ID),
		zap.String("detectedLanguage", detection.Language),
		zap.String("outputLanguage", outputLanguage),
		zap.String("difficulty", string(difficulty)))

	content, err := s.generator.ProcessTopicRequest(ctx, req)
	if err != nil {
		s.failRequest(ctx, req.ID)
		topicsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("Content generation failed", zap.Stringer("requestID", req.ID), zap.Error(err))
		return nil, domain.ErrInternalServer
	}

	explanation, script, err := s.repo.SaveGenerationResult(ctx, req, content)
	if err != nil {
		s.failRequest(ctx, req.ID)
		topicsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("Failed to persist generation result", zap.Stringer("requestID", req.ID), zap.Error(err))
		return nil, domain.ErrInternalServer
	}

	topicsTotal.WithLabelValues("completed").Inc()
	processingDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("Topic request completed",
		zap.Stringer("requestID", req.ID),
		zap.Int("scenes", script.TotalScenes),
		zap.Int("durationSeconds", script.EstimatedDuration))

	return &ProcessResult{
		RequestID:        req.ID,
		Explanation:      explanation,
		Script:           script,
		DetectedLanguage: detection.Language,
	}, nil
}

// failRequest best-effort moves a request to failed after a downstream
// error. Its own failure is only logged; the caller already returns an
// internal error.
func (s *TopicService) failRequest(ctx context.Context, id uuid.UUID) {
	if err := s.repo.UpdateRequestStatus(ctx, id, domain.StatusFailed); err != nil {
		s.logger.Error("Failed to mark request as failed", zap.Stringer("requestID", id), zap.Error(err))
	}
}

// Languages returns the supported-language catalogue.
func (s *TopicService) Languages() []domain.Language {
	return s.detector.SupportedLanguages()
}
