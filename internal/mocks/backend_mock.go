package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"teaching-server/internal/domain"
	"teaching-server/internal/engine"
)

// MockBackend is a testify mock for engine.Backend.
type MockBackend struct {
	mock.Mock
}

func NewMockBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBackend {
	m := &MockBackend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBackend) Analyze(ctx context.Context, topic, language string, level domain.DifficultyLevel) (domain.Analysis, error) {
	args := m.Called(ctx, topic, language, level)
	return args.Get(0).(domain.Analysis), args.Error(1)
}

func (m *MockBackend) Explain(ctx context.Context, topic string, analysis domain.Analysis, language string, level domain.DifficultyLevel) (string, error) {
	args := m.Called(ctx, topic, analysis, language, level)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) Exemplify(ctx context.Context, topic string, concepts []string, language string) ([]domain.Example, error) {
	args := m.Called(ctx, topic, concepts, language)
	if examples, ok := args.Get(0).([]domain.Example); ok {
		return examples, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBackend) Script(ctx context.Context, explanation string, examples []domain.Example, language string) ([]domain.Scene, error) {
	args := m.Called(ctx, explanation, examples, language)
	if scenes, ok := args.Get(0).([]domain.Scene); ok {
		return scenes, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ engine.Backend = (*MockBackend)(nil)
