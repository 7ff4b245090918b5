package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"teaching-server/internal/domain"
	"teaching-server/internal/service"
)

// MockContentGenerator is a testify mock for service.ContentGenerator.
type MockContentGenerator struct {
	mock.Mock
}

func NewMockContentGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContentGenerator {
	m := &MockContentGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockContentGenerator) ProcessTopicRequest(ctx context.Context, req *domain.InputRequest) (*domain.GeneratedContent, error) {
	args := m.Called(ctx, req)
	if content, ok := args.Get(0).(*domain.GeneratedContent); ok {
		return content, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ service.ContentGenerator = (*MockContentGenerator)(nil)
