package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/demandcast/internal/domain/models"
	"github.com/mamadbah2/demandcast/internal/service/contact"
)

// ContactHandler accepts about page form submissions.
type ContactHandler struct {
	svc    *contact.Service
	logger *zap.Logger
}

// NewContactHandler constructs the HTTP handler adapter.
func NewContactHandler(svc *contact.Service, logger *zap.Logger) *ContactHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactHandler{svc: svc, logger: logger}
}

// Submit acknowledges a contact message.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ack, err := h.svc.Acknowledge(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, contact.ErrEmptyField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed acknowledging contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to accept message"})
		return
	}

	c.JSON(http.StatusAccepted, ack)
}
