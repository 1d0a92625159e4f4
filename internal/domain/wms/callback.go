package wms

import "context"

// Event types pushed by the WMS to the integrator's callback endpoint
const (
	// EventTypeOrderDispatched signals an order left the warehouse
	EventTypeOrderDispatched = 12
	// EventTypeOrderCancelled signals an order was cancelled in the WMS
	EventTypeOrderCancelled = 20
)

// Event subtypes
const (
	// EventSubtypeCarrier - dispatched via a carrier
	EventSubtypeCarrier = 1
	// EventSubtypePersonalCollection - dispatched for personal collection
	EventSubtypePersonalCollection = 2
	// EventSubtypeOrderIncoming - cancellation of an incoming order
	EventSubtypeOrderIncoming = 3
)

// EventCallback carries the fields common to all WMS callback events
type EventCallback struct {
	// EventType identifies the event (see the EventType constants)
	EventType int
	// EventSubtype refines the event (see the EventSubtype constants)
	EventSubtype int
	// DocumentID is the order or receipt id the event is about
	DocumentID string
}

// OrderDispatched is the callback event for a dispatched order
type OrderDispatched struct {
	EventCallback
	// ShippingLabel is the carrier's shipping label (DR2082000056C)
	ShippingLabel string
}

// NewOrderDispatched creates a dispatched-order event
func NewOrderDispatched(eventSubtype int, documentID, shippingLabel string) OrderDispatched {
	return OrderDispatched{
		EventCallback: EventCallback{
			EventType:    EventTypeOrderDispatched,
			EventSubtype: eventSubtype,
			DocumentID:   documentID,
		},
		ShippingLabel: shippingLabel,
	}
}

// OrderCancelled is the callback event for a cancelled order
type OrderCancelled struct {
	EventCallback
}

// NewOrderCancelled creates a cancelled-order event
func NewOrderCancelled(eventSubtype int, documentID string) OrderCancelled {
	return OrderCancelled{
		EventCallback: EventCallback{
			EventType:    EventTypeOrderCancelled,
			EventSubtype: eventSubtype,
			DocumentID:   documentID,
		},
	}
}

// CallbackHandler reacts to events the WMS pushes back to the integrator.
// Implementations are called once per received event, synchronously; a
// returned error is reported to the WMS as a server-side failure.
type CallbackHandler interface {
	// OnOrderDispatched handles a dispatched-order event
	OnOrderDispatched(ctx context.Context, event OrderDispatched) error

	// OnOrderCancelled handles a cancelled-order event
	OnOrderCancelled(ctx context.Context, event OrderCancelled) error
}
