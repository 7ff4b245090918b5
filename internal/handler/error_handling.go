package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teaching-server/internal/domain"
)

// handleServiceError maps service-layer errors to HTTP responses. Anything
// not recognized as a client fault becomes an opaque 500.
func (h *TopicHandler) handleServiceError(c *gin.Context, err error) {
	var rejection *domain.ModerationRejectionError

	switch {
	case errors.Is(err, domain.ErrTopicTooShort):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrTopicTooShort.Error()})
	case errors.Is(err, domain.ErrInvalidDifficulty):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrInvalidDifficulty.Error()})
	case errors.As(err, &rejection):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: rejection.Reason})
	case errors.Is(err, domain.ErrContentRejected):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrContentRejected.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrNotFound.Error()})
	default:
		h.logger.Error("Unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
