package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teaching-server/internal/domain"
	"teaching-server/internal/service"
)

type stubProcessor struct {
	result    *service.ProcessResult
	err       error
	lastInput service.ProcessInput
	languages []domain.Language
}

func (s *stubProcessor) Process(_ context.Context, in service.ProcessInput) (*service.ProcessResult, error) {
	s.lastInput = in
	return s.result, s.err
}

func (s *stubProcessor) Languages() []domain.Language {
	return s.languages
}

func newTestRouter(stub *stubProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewTopicHandler(stub, zap.NewNop()).RegisterRoutes(router)
	return router
}

func postTopic(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/topic/process", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProcessTopic_Success(t *testing.T) {
	requestID := uuid.New()
	stub := &stubProcessor{
		result: &service.ProcessResult{
			RequestID:        requestID,
			Explanation:      &domain.Explanation{ID: uuid.New(), ExplanationText: "Plants convert light."},
			Script:           &domain.TeachingScript{TotalScenes: 2, EstimatedDuration: 75},
			DetectedLanguage: "en",
		},
	}
	router := newTestRouter(stub)

	w := postTopic(t, router, map[string]any{
		"topic":      "Explain how photosynthesis works",
		"difficulty": "exam",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Explain how photosynthesis works", stub.lastInput.Topic)
	assert.Equal(t, "exam", stub.lastInput.Difficulty)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, requestID.String(), resp["requestId"])
	assert.Equal(t, "en", resp["detectedLanguage"])
	assert.NotNil(t, resp["explanation"])
	assert.NotNil(t, resp["script"])
}

func TestProcessTopic_MissingTopic(t *testing.T) {
	router := newTestRouter(&stubProcessor{})

	w := postTopic(t, router, map[string]any{"difficulty": "beginner"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessTopic_TopicTooShort(t *testing.T) {
	stub := &stubProcessor{err: domain.ErrTopicTooShort}
	router := newTestRouter(stub)

	w := postTopic(t, router, map[string]any{"topic": "gravity"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrTopicTooShort.Error(), resp.Error)
}

func TestProcessTopic_ModerationRejected(t *testing.T) {
	stub := &stubProcessor{err: &domain.ModerationRejectionError{Reason: "Content flagged as inappropriate"}}
	router := newTestRouter(stub)

	w := postTopic(t, router, map[string]any{"topic": "violence and hate explained"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Content flagged as inappropriate", resp.Error)
}

func TestProcessTopic_ModerationRejectedWithoutReason(t *testing.T) {
	stub := &stubProcessor{err: &domain.ModerationRejectionError{}}
	router := newTestRouter(stub)

	w := postTopic(t, router, map[string]any{"topic": "a string with no recognizable intent"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
}

func TestProcessTopic_InternalError(t *testing.T) {
	stub := &stubProcessor{err: domain.ErrInternalServer}
	router := newTestRouter(stub)

	w := postTopic(t, router, map[string]any{"topic": "Explain how photosynthesis works"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error)
}

func TestLanguages(t *testing.T) {
	stub := &stubProcessor{languages: []domain.Language{
		{Code: "en", Name: "English", NativeName: "English"},
		{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
	}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp languagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Languages, 2)
	assert.Equal(t, "kn", resp.Languages[1].Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubProcessor{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}
