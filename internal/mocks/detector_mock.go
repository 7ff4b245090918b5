package mocks

import (
	"github.com/stretchr/testify/mock"

	"teaching-server/internal/domain"
	"teaching-server/internal/service"
)

// MockLanguageDetector is a testify mock for service.LanguageDetector.
type MockLanguageDetector struct {
	mock.Mock
}

func NewMockLanguageDetector(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLanguageDetector {
	m := &MockLanguageDetector{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLanguageDetector) Detect(text string) domain.Detection {
	args := m.Called(text)
	return args.Get(0).(domain.Detection)
}

func (m *MockLanguageDetector) SupportedLanguages() []domain.Language {
	args := m.Called()
	if langs, ok := args.Get(0).([]domain.Language); ok {
		return langs
	}
	return nil
}

var _ service.LanguageDetector = (*MockLanguageDetector)(nil)
