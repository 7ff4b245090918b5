// Package handler exposes the teaching pipeline over HTTP.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teaching-server/internal/domain"
	"teaching-server/internal/service"
)

// topicProcessor is the slice of the service layer the handler needs.
type topicProcessor interface {
	Process(ctx context.Context, in service.ProcessInput) (*service.ProcessResult, error)
	Languages() []domain.Language
}

// TopicHandler serves the topic-processing API.
type TopicHandler struct {
	service topicProcessor
	logger  *zap.Logger
}

// NewTopicHandler creates a handler over the given service.
func NewTopicHandler(svc topicProcessor, logger *zap.Logger) *TopicHandler {
	return &TopicHandler{service: svc, logger: logger}
}

// RegisterRoutes attaches all endpoints to the router.
func (h *TopicHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		api.POST("/topic/process", h.processTopic)
		api.GET("/languages", h.languages)
	}
}

func (h *TopicHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *TopicHandler) processTopic(c *gin.Context) {
	var req processTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "topic is required"})
		return
	}

	result, err := h.service.Process(c.Request.Context(), service.ProcessInput{
		Topic:          req.Topic,
		Difficulty:     req.Difficulty,
		OutputLanguage: req.OutputLanguage,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, processTopicResponse{
		RequestID:        result.RequestID,
		Explanation:      result.Explanation,
		Script:           result.Script,
		DetectedLanguage: result.DetectedLanguage,
	})
}

func (h *TopicHandler) languages(c *gin.Context) {
	c.JSON(http.StatusOK, languagesResponse{Languages: h.service.Languages()})
}
