// Package handler exposes the HTTP endpoint the WMS pushes callback events
// to (order dispatched, order cancelled).
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/artfocus/mystock-go/internal/domain/wms"
)

// callbackRequest is the JSON body the WMS posts for every event
type callbackRequest struct {
	EventType     int    `json:"eventType" binding:"required"`
	EventSubtype  int    `json:"eventSubtype" binding:"required"`
	DocumentID    string `json:"documentId" binding:"required"`
	ShippingLabel string `json:"shippingLabel"`
}

// validationDetail reports one invalid field of a rejected callback
type validationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CallbackHandler receives WMS callback events and dispatches them to the
// registered domain handler
type CallbackHandler struct {
	events wms.CallbackHandler
	logger *zap.Logger
}

// NewCallbackHandler creates a callback handler dispatching to the given
// event handler
func NewCallbackHandler(events wms.CallbackHandler, logger *zap.Logger) *CallbackHandler {
	return &CallbackHandler{
		events: events,
		logger: logger,
	}
}

// RegisterRoutes registers the callback routes on the engine
func (h *CallbackHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/callback", h.HandleEvent)
	r.GET("/healthz", h.Health)
}

// Health answers liveness probes
func (h *CallbackHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleEvent parses one callback event and dispatches it. Malformed bodies
// are rejected with 400, unknown event types with 422; a handler failure is
// reported to the WMS as 500 so it can redeliver.
func (h *CallbackHandler) HandleEvent(c *gin.Context) {
	var req callbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid callback body",
			"details": formatBindingError(err),
		})
		return
	}

	var err error
	switch req.EventType {
	case wms.EventTypeOrderDispatched:
		err = h.events.OnOrderDispatched(c.Request.Context(),
			wms.NewOrderDispatched(req.EventSubtype, req.DocumentID, req.ShippingLabel))
	case wms.EventTypeOrderCancelled:
		err = h.events.OnOrderCancelled(c.Request.Context(),
			wms.NewOrderCancelled(req.EventSubtype, req.DocumentID))
	default:
		h.logger.Warn("unknown callback event type",
			zap.Int("eventType", req.EventType),
			zap.String("documentId", req.DocumentID),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown event type"})
		return
	}

	if err != nil {
		h.logger.Error("callback handler failed",
			zap.Int("eventType", req.EventType),
			zap.String("documentId", req.DocumentID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event handling failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// formatBindingError turns validator errors into field-level details
func formatBindingError(err error) []validationDetail {
	var details []validationDetail
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, validationDetail{
				Field:   e.Field(),
				Message: "failed on rule: " + e.Tag(),
			})
		}
	}
	return details
}
