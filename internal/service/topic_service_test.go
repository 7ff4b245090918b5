package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teaching-server/internal/domain"
	"teaching-server/internal/mocks"
	"teaching-server/internal/moderation"
	"teaching-server/internal/service"
)

type serviceMocks struct {
	moderator *mocks.MockModerator
	detector  *mocks.MockLanguageDetector
	generator *mocks.MockContentGenerator
	repo      *mocks.MockTeachingRepository
}

func newService(t *testing.T) (*service.TopicService, serviceMocks) {
	m := serviceMocks{
		moderator: mocks.NewMockModerator(t),
		detector:  mocks.NewMockLanguageDetector(t),
		generator: mocks.NewMockContentGenerator(t),
		repo:      mocks.NewMockTeachingRepository(t),
	}
	svc := service.NewTopicService(m.moderator, m.detector, m.generator, m.repo, zap.NewNop())
	return svc, m
}

func sampleContent() *domain.GeneratedContent {
	return &domain.GeneratedContent{
		Analysis: domain.Analysis{
			CoreConcepts:   []string{"light reactions"},
			Prerequisites:  []string{"cells"},
			KeyTerms:       []domain.KeyTerm{{Term: "chlorophyll", Definition: "pigment"}},
			Misconceptions: []string{"plants eat soil"},
			Applications:   []string{"agriculture"},
		},
		Explanation: "Plants convert light into chemical energy.",
		Examples: []domain.Example{
			{Type: domain.ExampleEveryday, Content: "A leaf in sunlight."},
			{Type: domain.ExampleNumerical, Content: "6 CO2 molecules."},
			{Type: domain.ExampleApplication, Content: "Greenhouses."},
		},
		Scenes: []domain.Scene{
			{SceneNumber: 1, Duration: 45, Narration: "Plants convert light into chemical energy."},
			{SceneNumber: 2, Duration: 30, Narration: "A leaf in sunlight."},
		},
	}
}

func TestProcess_TopicTooShort(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Process(context.Background(), service.ProcessInput{Topic: "gravity"})

	assert.ErrorIs(t, err, domain.ErrTopicTooShort)
}

func TestProcess_InvalidDifficulty(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Process(context.Background(), service.ProcessInput{
		Topic:      "Explain how photosynthesis works",
		Difficulty: "expert",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestProcess_ModerationRejected(t *testing.T) {
	svc, m := newService(t)
	topic := "violence and hate explained in detail"
	m.moderator.On("Moderate", topic).
		Return(moderation.Decision{Approved: false, Reason: "Content flagged as inappropriate"})

	_, err := svc.Process(context.Background(), service.ProcessInput{Topic: topic})

	require.ErrorIs(t, err, domain.ErrContentRejected)
	var rejection *domain.ModerationRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "Content flagged as inappropriate", rejection.Reason)
}

func TestProcess_ModerationRejectedWithoutReason(t *testing.T) {
	svc, m := newService(t)
	topic := "a string with no recognizable intent"
	m.moderator.On("Moderate", topic).Return(moderation.Decision{Approved: false})

	_, err := svc.Process(context.Background(), service.ProcessInput{Topic: topic})

	require.ErrorIs(t, err, domain.ErrContentRejected)
	var rejection *domain.ModerationRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Empty(t, rejection.Reason)
}

func TestProcess_Success(t *testing.T) {
	svc, m := newService(t)
	topic := "Explain how photosynthesis works"
	content := sampleContent()

	m.moderator.On("Moderate", topic).Return(moderation.Decision{Approved: true})
	m.detector.On("Detect", topic).Return(domain.Detection{Language: "en", Confidence: 0.8})
	m.repo.On("CreateRequest", mock.Anything, mock.MatchedBy(func(req *domain.InputRequest) bool {
		return req.InputText == topic &&
			req.InputLanguage == "en" &&
			req.OutputLanguage == "en" &&
			req.DifficultyLevel == domain.DifficultyBeginner &&
			req.Status == domain.StatusProcessing
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.InputRequest).ID = uuid.New()
	}).Return(nil)
	m.generator.On("ProcessTopicRequest", mock.Anything, mock.Anything).Return(content, nil)

	explanation := &domain.Explanation{ID: uuid.New(), ExplanationText: content.Explanation}
	script := &domain.TeachingScript{ID: uuid.New(), Scenes: content.Scenes, TotalScenes: 2, EstimatedDuration: 75}
	m.repo.On("SaveGenerationResult", mock.Anything, mock.Anything, content).Return(explanation, script, nil)

	result, err := svc.Process(context.Background(), service.ProcessInput{Topic: topic})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.RequestID)
	assert.Equal(t, explanation, result.Explanation)
	assert.Equal(t, script, result.Script)
	assert.Equal(t, "en", result.DetectedLanguage)
}

func TestProcess_ExplicitOutputLanguage(t *testing.T) {
	svc, m := newService(t)
	topic := "Explain how photosynthesis works"

	m.moderator.On("Moderate", topic).Return(moderation.Decision{Approved: true})
	m.detector.On("Detect", topic).Return(domain.Detection{Language: "en", Confidence: 0.8})
	m.repo.On("CreateRequest", mock.Anything, mock.MatchedBy(func(req *domain.InputRequest) bool {
		return req.OutputLanguage == "kn" && req.InputLanguage == "en"
	})).Return(nil)
	m.generator.On("ProcessTopicRequest", mock.Anything, mock.Anything).Return(sampleContent(), nil)
	m.repo.On("SaveGenerationResult", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Explanation{}, &domain.TeachingScript{}, nil)

	_, err := svc.Process(context.Background(), service.ProcessInput{
		Topic:          topic,
		OutputLanguage: "kn",
	})

	require.NoError(t, err)
}

func TestProcess_GenerationFailureMarksRequestFailed(t *testing.T) {
	svc, m := newService(t)
	topic := "Explain how photosynthesis works"
	requestID := uuid.New()

	m.moderator.On("Moderate", topic).Return(moderation.Decision{Approved: true})
	m.detector.On("Detect", topic).Return(domain.Detection{Language: "en", Confidence: 0.8})
	m.repo.On("CreateRequest", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.InputRequest).ID = requestID
	}).Return(nil)
	m.generator.On("ProcessTopicRequest", mock.Anything, mock.Anything).
		Return(nil, domain.ErrGenerationFailed)
	m.repo.On("UpdateRequestStatus", mock.Anything, requestID, domain.StatusFailed).Return(nil)

	_, err := svc.Process(context.Background(), service.ProcessInput{Topic: topic})

	assert.ErrorIs(t, err, domain.ErrInternalServer)
}

func TestProcess_PersistenceFailureMarksRequestFailed(t *testing.T) {
	svc, m := newService(t)
	topic := "Explain how photosynthesis works"
	requestID := uuid.New()

	m.moderator.On("Moderate", topic).Return(moderation.Decision{Approved: true})
	m.detector.On("Detect", topic).Return(domain.Detection{Language: "en", Confidence: 0.8})
	m.repo.On("CreateRequest", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.InputRequest).ID = requestID
	}).Return(nil)
	m.generator.On("ProcessTopicRequest", mock.Anything, mock.Anything).Return(sampleContent(), nil)
	m.repo.On("SaveGenerationResult", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("connection reset"))
	m.repo.On("UpdateRequestStatus", mock.Anything, requestID, domain.StatusFailed).Return(nil)

	_, err := svc.Process(context.Background(), service.ProcessInput{Topic: topic})

	assert.ErrorIs(t, err, domain.ErrInternalServer)
}

func TestLanguages(t *testing.T) {
	svc, m := newService(t)
	catalogue := []domain.Language{{Code: "en", Name: "English", NativeName: "English"}}
	m.detector.On("SupportedLanguages").Return(catalogue)

	assert.Equal(t, catalogue, svc.Languages())
}
