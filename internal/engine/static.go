package engine

import (
	"context"
	"fmt"
	"strings"

	"teaching-server/internal/domain"
)

// StaticBackend produces deterministic teaching content without any external
// model. It is the default backend for local development and the basis for
// deterministic tests.
type StaticBackend struct{}

// NewStaticBackend creates the offline backend.
func NewStaticBackend() *StaticBackend {
	return &StaticBackend{}
}

func (b *StaticBackend) Analyze(_ context.Context, topic, _ string, _ domain.DifficultyLevel) (domain.Analysis, error) {
	return domain.Analysis{
		CoreConcepts: []string{
			fmt.Sprintf("The core idea of %s", topic),
			fmt.Sprintf("How %s works step by step", topic),
		},
		Prerequisites: []string{"General familiarity with the subject area"},
		KeyTerms: []domain.KeyTerm{
			{Term: topic, Definition: fmt.Sprintf("The subject of this lesson: %s", topic)},
		},
		Misconceptions: []string{fmt.Sprintf("Assuming %s is harder than it looks", topic)},
		Applications:   []string{fmt.Sprintf("Everyday situations that rely on %s", topic)},
	}, nil
}

func (b *StaticBackend) Explain(_ context.Context, topic string, analysis domain.Analysis, language string, level domain.DifficultyLevel) (string, error) {
	return fmt.Sprintf("Explanation of %s in %s at %s level. %s. Key ideas: %s.",
		topic, language, level, levelGuides[level], strings.Join(analysis.CoreConcepts, "; ")), nil
}

func (b *StaticBackend) Exemplify(_ context.Context, topic string, _ []string, _ string) ([]domain.Example, error) {
	return []domain.Example{
		{Type: domain.ExampleEveryday, Content: fmt.Sprintf("A simple daily-life example of %s", topic)},
		{Type: domain.ExampleNumerical, Content: fmt.Sprintf("A step-by-step calculation involving %s", topic)},
		{Type: domain.ExampleApplication, Content: fmt.Sprintf("A real-world technology built on %s", topic)},
	}, nil
}

func (b *StaticBackend) Script(_ context.Context, explanation string, examples []domain.Example, _ string) ([]domain.Scene, error) {
	scenes := []domain.Scene{
		{
			SceneNumber:       1,
			Duration:          45,
			VisualDescription: "Animated classroom with the day's topic written on the board",
			Narration:         explanation,
			OnScreenText:      []string{"Today's topic"},
			CharacterAction:   "Student looks curious",
		},
	}
	for i, ex := range examples {
		scenes = append(scenes, domain.Scene{
			SceneNumber:       i + 2,
			Duration:          30,
			VisualDescription: fmt.Sprintf("Whiteboard walkthrough of the %s example", ex.Type),
			Narration:         ex.Content,
			OnScreenText:      []string{fmt.Sprintf("Example %d", i+1)},
			CharacterAction:   "Teacher points at the board",
		})
	}
	return scenes, nil
}

var _ Backend = (*StaticBackend)(nil)
