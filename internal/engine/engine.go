package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"teaching-server/internal/domain"
)

// Engine composes the four generation stages in order and validates each
// stage's output against the pipeline invariants. A stage failure aborts the
// remaining stages; no partial content is ever returned.
type Engine struct {
	backend Backend
	logger  *zap.Logger
}

// New creates an Engine over the given backend.
func New(backend Backend, logger *zap.Logger) *Engine {
	return &Engine{backend: backend, logger: logger}
}

// ProcessTopicRequest runs analyze -> explain -> exemplify -> script for one
// request, threading the analysis into the explanation, the core concepts
// into the examples, and the explanation plus examples into the script.
func (e *Engine) ProcessTopicRequest(ctx context.Context, req *domain.InputRequest) (*domain.GeneratedContent, error) {
	analysis, err := e.backend.Analyze(ctx, req.InputText, req.InputLanguage, req.DifficultyLevel)
	if err != nil {
		return nil, err
	}
	if err := validateAnalysis(analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	explanation, err := e.backend.Explain(ctx, req.InputText, analysis, req.OutputLanguage, req.DifficultyLevel)
	if err != nil {
		return nil, err
	}
	if explanation == "" {
		return nil, fmt.Errorf("%w: empty explanation", domain.ErrGenerationFailed)
	}

	examples, err := e.backend.Exemplify(ctx, req.InputText, analysis.CoreConcepts, req.OutputLanguage)
	if err != nil {
		return nil, err
	}
	if err := validateExamples(examples); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	scenes, err := e.backend.Script(ctx, explanation, examples, req.OutputLanguage)
	if err != nil {
		return nil, err
	}
	if err := validateScenes(scenes); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	e.logger.Debug("Generation pipeline completed",
		zap.Stringer("requestID", req.ID),
		zap.Int("concepts", len(analysis.CoreConcepts)),
		zap.Int("examples", len(examples)),
		zap.Int("scenes", len(scenes)))

	return &domain.GeneratedContent{
		Analysis:    analysis,
		Explanation: explanation,
		Examples:    examples,
		Scenes:      scenes,
	}, nil
}

func validateAnalysis(a domain.Analysis) error {
	switch {
	case len(a.CoreConcepts) == 0:
		return fmt.Errorf("analysis has no core concepts")
	case len(a.Prerequisites) == 0:
		return fmt.Errorf("analysis has no prerequisites")
	case len(a.KeyTerms) == 0:
		return fmt.Errorf("analysis has no key terms")
	case len(a.Misconceptions) == 0:
		return fmt.Errorf("analysis has no misconceptions")
	case len(a.Applications) == 0:
		return fmt.Errorf("analysis has no applications")
	}
	return nil
}

// validateExamples enforces the canonical-prefix contract: the first three
// examples are always everyday, numerical, application, in that order.
func validateExamples(examples []domain.Example) error {
	canonical := []domain.ExampleType{domain.ExampleEveryday, domain.ExampleNumerical, domain.ExampleApplication}
	if len(examples) < len(canonical) {
		return fmt.Errorf("expected at least %d examples, got %d", len(canonical), len(examples))
	}
	for i, want := range canonical {
		if examples[i].Type != want {
			return fmt.Errorf("example %d has type %q, want %q", i+1, examples[i].Type, want)
		}
	}
	for i, ex := range examples {
		if ex.Content == "" {
			return fmt.Errorf("example %d has empty content", i+1)
		}
	}
	return nil
}

// validateScenes enforces 1-based, gap-free scene numbering and positive
// integer durations.
func validateScenes(scenes []domain.Scene) error {
	if len(scenes) == 0 {
		return fmt.Errorf("script has no scenes")
	}
	for i, scene := range scenes {
		if scene.SceneNumber != i+1 {
			return fmt.Errorf("scene at position %d is numbered %d", i+1, scene.SceneNumber)
		}
		if scene.Duration <= 0 {
			return fmt.Errorf("scene %d has non-positive duration %d", scene.SceneNumber, scene.Duration)
		}
		if scene.Narration == "" {
			return fmt.Errorf("scene %d has empty narration", scene.SceneNumber)
		}
	}
	return nil
}
