package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"teaching-server/internal/domain"
	"teaching-server/internal/repository"
)

// MockTeachingRepository is a testify mock for repository.TeachingRepository.
type MockTeachingRepository struct {
	mock.Mock
}

func NewMockTeachingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTeachingRepository {
	m := &MockTeachingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTeachingRepository) CreateRequest(ctx context.Context, req *domain.InputRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockTeachingRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTeachingRepository) GetRequest(ctx context.Context, id uuid.UUID) (*domain.InputRequest, error) {
	args := m.Called(ctx, id)
	if req, ok := args.Get(0).(*domain.InputRequest); ok {
		return req, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTeachingRepository) SaveGenerationResult(ctx context.Context, req *domain.InputRequest, content *domain.GeneratedContent) (*domain.Explanation, *domain.TeachingScript, error) {
	args := m.Called(ctx, req, content)
	var (
		explanation *domain.Explanation
		script      *domain.TeachingScript
	)
	if e, ok := args.Get(0).(*domain.Explanation); ok {
		explanation = e
	}
	if s, ok := args.Get(1).(*domain.TeachingScript); ok {
		script = s
	}
	return explanation, script, args.Error(2)
}

var _ repository.TeachingRepository = (*MockTeachingRepository)(nil)
