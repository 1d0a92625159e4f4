package fulfillment

import (
	"context"

	"go.uber.org/zap"

	"github.com/artfocus/mystock-go/internal/domain/wms"
)

// EventRecorder is the default wms.CallbackHandler: it records every event in
// the log. Deployments integrating an ERP replace it with a handler that
// updates order state.
type EventRecorder struct {
	logger *zap.Logger
}

// NewEventRecorder creates a logging callback handler
func NewEventRecorder(logger *zap.Logger) *EventRecorder {
	return &EventRecorder{logger: logger}
}

// OnOrderDispatched records a dispatched-order event
func (r *EventRecorder) OnOrderDispatched(ctx context.Context, event wms.OrderDispatched) error {
	r.logger.Info("order dispatched",
		zap.String("documentId", event.DocumentID),
		zap.Int("eventSubtype", event.EventSubtype),
		zap.String("shippingLabel", event.ShippingLabel),
	)
	return nil
}

// OnOrderCancelled records a cancelled-order event
func (r *EventRecorder) OnOrderCancelled(ctx context.Context, event wms.OrderCancelled) error {
	r.logger.Info("order cancelled",
		zap.String("documentId", event.DocumentID),
		zap.Int("eventSubtype", event.EventSubtype),
	)
	return nil
}

// Ensure EventRecorder implements the CallbackHandler port
var _ wms.CallbackHandler = (*EventRecorder)(nil)
