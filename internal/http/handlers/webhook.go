package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"webex_gacha/internal/logger"
	"webex_gacha/internal/metrics"
	"webex_gacha/internal/webex"

	"github.com/gin-gonic/gin"
)

// EventDispatcher runs the pipeline for one webhook delivery.
type EventDispatcher interface {
	Dispatch(ctx context.Context, data webex.EnvelopeData)
}

// WebhookHandler receives inbound Webex events.
type WebhookHandler struct {
	dispatcher EventDispatcher
	log        *slog.Logger
}

func NewWebhookHandler(d EventDispatcher) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: d,
		log:        logger.With("component", "webhook"),
	}
}

// Webhook handles one delivery. Webex redelivers anything that does not get a
// 2xx back, so every outcome, including malformed payloads and internal
// failures, acknowledges with 200.
func (h *WebhookHandler) Webhook(c *gin.Context) {
	var env webex.Envelope
	if err := c.ShouldBindJSON(&env); err != nil {
		h.log.Warn("malformed webhook payload", "error", err)
		metrics.WebhookEvents.WithLabelValues("malformed").Inc()
		c.String(http.StatusOK, "OK")
		return
	}

	h.dispatcher.Dispatch(c.Request.Context(), env.Data)
	c.String(http.StatusOK, "OK")
}
