// Package engine implements the four-stage teaching content pipeline
// (analyze, explain, exemplify, script) on top of a pluggable generation
// backend.
package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"teaching-server/internal/config"
	"teaching-server/internal/domain"
)

// Backend is the abstract generation capability behind the pipeline. Every
// stage is a pure function of its inputs; determinism is a backend property,
// not guaranteed by the interface.
type Backend interface {
	// Analyze breaks a topic down for teaching. Every list in the returned
	// analysis is expected to be non-empty for well-formed input.
	Analyze(ctx context.Context, topic, language string, level domain.DifficultyLevel) (domain.Analysis, error)
	// Explain renders teaching prose for the topic, grounded in the analysis.
	Explain(ctx context.Context, topic string, analysis domain.Analysis, language string, level domain.DifficultyLevel) (string, error)
	// Exemplify produces worked examples. The three canonical types
	// (everyday, numerical, application) must form a strict prefix of the
	// returned list.
	Exemplify(ctx context.Context, topic string, concepts []string, language string) ([]domain.Example, error)
	// Script turns the explanation and examples into an ordered scene
	// sequence. Scene 1 introduces the topic.
	Script(ctx context.Context, explanation string, examples []domain.Example, language string) ([]domain.Scene, error)
}

// NewBackend selects a backend implementation from the configuration.
func NewBackend(cfg *config.Config, logger *zap.Logger) (Backend, error) {
	switch strings.ToLower(cfg.AIClientType) {
	case "openai":
		logger.Info("Using OpenAI generation backend",
			zap.String("baseURL", cfg.AIBaseURL),
			zap.String("model", cfg.AIModel),
			zap.Duration("timeout", cfg.AITimeout))
		return newOpenAIBackend(cfg, logger.Named("OpenAIBackend")), nil
	case "ollama":
		logger.Info("Using Ollama generation backend",
			zap.String("host", cfg.OllamaHost),
			zap.String("model", cfg.AIModel))
		return newOllamaBackend(cfg, logger.Named("OllamaBackend"))
	case "static":
		logger.Info("Using static generation backend")
		return NewStaticBackend(), nil
	default:
		return nil, fmt.Errorf("unknown AI client type: %q", cfg.AIClientType)
	}
}
