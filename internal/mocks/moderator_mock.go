package mocks

import (
	"github.com/stretchr/testify/mock"

	"teaching-server/internal/moderation"
)

// MockModerator is a testify mock for moderation.Moderator.
type MockModerator struct {
	mock.Mock
}

func NewMockModerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModerator {
	m := &MockModerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockModerator) Moderate(text string) moderation.Decision {
	args := m.Called(text)
	return args.Get(0).(moderation.Decision)
}

var _ moderation.Moderator = (*MockModerator)(nil)
