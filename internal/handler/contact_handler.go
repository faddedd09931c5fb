package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/irku/blog-backend/internal/domain"
	"github.com/irku/blog-backend/internal/model"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	Sender domain.EmailSender
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(sender domain.EmailSender) *ContactHandler {
	return &ContactHandler{Sender: sender}
}

// Register mounts the contact route on the given router.
func (h *ContactHandler) Register(r gin.IRouter) {
	r.POST("/contact", h.Submit)
}

// Submit handles POST /contact. Dispatch is best-effort: 202 means the
// message was handed to the SMTP client, not that it was delivered.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Sender.SendContactEmail(req.ToMessage()); err != nil {
		log.Error().Err(err).Str("from", req.Email).Msg("failed to dispatch contact email")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to dispatch contact email"})
		return
	}
	c.Status(http.StatusAccepted)
}
