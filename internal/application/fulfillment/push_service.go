// Package fulfillment orchestrates pushes of catalog and order data to the
// WMS through the wms.Fulfillment port and interprets the batch responses,
// keeping partial failures visible instead of collapsing them into a boolean.
package fulfillment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/artfocus/mystock-go/internal/domain/wms"
)

// PushStatus is the overall outcome of one push
type PushStatus string

const (
	// PushStatusSuccess - the WMS accepted every record
	PushStatusSuccess PushStatus = "SUCCESS"
	// PushStatusPartial - a 2xx answer carrying per-record errors; some
	// records were created, others faulted
	PushStatusPartial PushStatus = "PARTIAL"
	// PushStatusFailed - the WMS rejected the request
	PushStatusFailed PushStatus = "FAILED"
)

// RecordFailure describes one faulted record of a push
type RecordFailure struct {
	// RecordID is the 1-based index of the faulted record, "0" or empty for
	// header-level errors
	RecordID string
	// RecordType tags the faulted record, empty for header-level errors
	RecordType string
	// PropertyName names the invalid property when the WMS attributed the
	// error to a single field
	PropertyName string
	// Message is the remote error text
	Message string
	// Code is the remote error type
	Code int
}

// PushResult is the interpreted outcome of one push
type PushResult struct {
	// Status is the overall outcome
	Status PushStatus
	// Response is the full parsed WMS response
	Response *wms.Response
	// Failures lists the faulted records in response order
	Failures []RecordFailure
	// PushedAt is when the push completed
	PushedAt time.Time
}

// Service pushes entities to the WMS. It is stateless and safe for
// concurrent use.
type Service struct {
	wms    wms.Fulfillment
	logger *zap.Logger
}

// NewService creates a push service on top of the given fulfillment port
func NewService(fulfillment wms.Fulfillment, logger *zap.Logger) *Service {
	return &Service{
		wms:    fulfillment,
		logger: logger,
	}
}

// ---------------------------------------------------------------------------
// Push Operations
// ---------------------------------------------------------------------------

// PushProduct creates a product in the WMS
func (s *Service) PushProduct(ctx context.Context, product *wms.Product) (*PushResult, error) {
	resp, err := s.wms.CreateProduct(ctx, product)
	return s.interpret("product", product.ProductCode, resp, err)
}

// PushProductUpdate updates a product previously created in the WMS
func (s *Service) PushProductUpdate(ctx context.Context, product *wms.Product, productID string) (*PushResult, error) {
	resp, err := s.wms.UpdateProduct(ctx, product, productID)
	return s.interpret("product", product.ProductCode, resp, err)
}

// PushBarcode attaches a barcode to a product in the WMS
func (s *Service) PushBarcode(ctx context.Context, barcode *wms.ProductBarcode) (*PushResult, error) {
	resp, err := s.wms.CreateBarcode(ctx, barcode)
	return s.interpret("productBarcode", barcode.Barcode, resp, err)
}

// PushPartner creates a partner in the WMS
func (s *Service) PushPartner(ctx context.Context, partner *wms.Partner) (*PushResult, error) {
	resp, err := s.wms.CreatePartner(ctx, partner)
	return s.interpret("partner", partner.Code, resp, err)
}

// PushOrder creates an incoming order in the WMS
func (s *Service) PushOrder(ctx context.Context, order *wms.OrderIncoming) (*PushResult, error) {
	resp, err := s.wms.CreateOrderIncoming(ctx, order)
	return s.interpret("orderIncoming", order.OrderCode, resp, err)
}

// ---------------------------------------------------------------------------
// Response Interpretation
// ---------------------------------------------------------------------------

// interpret classifies a WMS response and logs the outcome. Transport and
// precondition errors pass through untouched.
func (s *Service) interpret(kind, code string, resp *wms.Response, err error) (*PushResult, error) {
	if err != nil {
		if s.logger != nil {
			s.logger.Error("wms push failed",
				zap.String("kind", kind),
				zap.String("code", code),
				zap.Error(err),
			)
		}
		return nil, err
	}

	result := &PushResult{
		Response: resp,
		PushedAt: time.Now(),
	}
	for _, e := range resp.Errors {
		result.Failures = append(result.Failures, RecordFailure{
			RecordID:     e.RecordID,
			RecordType:   e.RecordType,
			PropertyName: e.PropertyName,
			Message:      e.Text,
			Code:         e.Type,
		})
	}

	switch {
	case !resp.IsOK():
		result.Status = PushStatusFailed
	case len(resp.Errors) > 0:
		result.Status = PushStatusPartial
	default:
		result.Status = PushStatusSuccess
	}

	if s.logger != nil {
		switch result.Status {
		case PushStatusSuccess:
			s.logger.Info("wms push accepted",
				zap.String("kind", kind),
				zap.String("code", code),
				zap.Int("ids", len(resp.IDs)),
			)
		default:
			s.logger.Warn("wms push not fully accepted",
				zap.String("kind", kind),
				zap.String("code", code),
				zap.String("status", string(result.Status)),
				zap.Int("httpStatus", resp.StatusCode),
				zap.Int("failures", len(result.Failures)),
			)
		}
	}

	return result, nil
}
