// Package mystock is the HTTP adapter for the MyStock WMS interface. It maps
// domain entities onto the interface's JSON schema, issues one synchronous
// basic-authenticated request per call and parses the heterogeneous response
// (generated ids plus structured errors) into a wms.Response.
package mystock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artfocus/mystock-go/internal/domain/wms"
)

// maxResponseSize limits the response body read from the interface (1MB);
// real responses are a few ids and errors
const maxResponseSize = 1 * 1024 * 1024

// Service paths under the versioned service root
const (
	serviceProduct              = "product"
	serviceProductBarcode       = "productBarcode"
	servicePartner              = "partner"
	servicePartnerOperatingUnit = "partnerOperatingUnit"
	serviceOrderIncoming        = "orderIncoming"
)

// Client implements the wms.Fulfillment port against the MyStock interface.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// SetLogger attaches a diagnostic logger. The logger is optional; without one
// the client stays silent. Set it before issuing requests.
func (c *Client) SetLogger(logger *zap.Logger) {
	c.logger = logger
}

// log emits a diagnostic record when a logger is attached. Logging is
// best-effort and never fails the call.
func (c *Client) log(msg string, fields ...zap.Field) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, fields...)
}

// ---------------------------------------------------------------------------
// Product Operations
// ---------------------------------------------------------------------------

// CreateProduct creates a product, optionally with its barcodes
func (c *Client) CreateProduct(ctx context.Context, product *wms.Product) (*wms.Response, error) {
	return c.sendRequest(ctx, serviceProduct, http.MethodPost, "", productPayload(product))
}

// UpdateProduct updates the product with the given WMS-generated id
func (c *Client) UpdateProduct(ctx context.Context, product *wms.Product, productID string) (*wms.Response, error) {
	return c.sendRequest(ctx, serviceProduct, http.MethodPut, productID, productPayload(product))
}

// CreateBarcode attaches a barcode to an existing product
func (c *Client) CreateBarcode(ctx context.Context, barcode *wms.ProductBarcode) (*wms.Response, error) {
	return c.sendRequest(ctx, serviceProductBarcode, http.MethodPost, "", barcodePayload(barcode, false))
}

// UpdateBarcode updates the barcode with the given WMS-generated id. The
// barcode value itself is the immutable key and is not sent.
func (c *Client) UpdateBarcode(ctx context.Context, barcode *wms.ProductBarcode, barcodeID string) (*wms.Response, error) {
	return c.sendRequest(ctx, serviceProductBarcode, http.MethodPut, barcodeID, barcodePayload(barcode, true))
}

// ---------------------------------------------------------------------------
// Partner Operations
// ---------------------------------------------------------------------------

// CreatePartner creates a partner, optionally with its operating units
func (c *Client) CreatePartner(ctx context.Context, partner *wms.Partner) (*wms.Response, error) {
	return c.sendRequest(ctx, servicePartner, http.MethodPost, "", partnerPayload(partner))
}

// UpdatePartner updates the partner identified by its code
func (c *Client) UpdatePartner(ctx context.Context, partner *wms.Partner) (*wms.Response, error) {
	return c.sendRequest(ctx, servicePartner, http.MethodPut, partner.Code, partnerPayload(partner))
}

// CreatePartnerOperatingUnit is not supported by the remote interface yet
func (c *Client) CreatePartnerOperatingUnit(ctx context.Context, unit *wms.OperatingUnit) (*wms.Response, error) {
	return nil, fmt.Errorf("%w: createPartnerOperatingUnit", wms.ErrNotSupported)
}

// UpdatePartnerOperatingUnit is not supported by the remote interface yet
func (c *Client) UpdatePartnerOperatingUnit(ctx context.Context, unit *wms.OperatingUnit) (*wms.Response, error) {
	return nil, fmt.Errorf("%w: updatePartnerOperatingUnit", wms.ErrNotSupported)
}

// ---------------------------------------------------------------------------
// Order Operations
// ---------------------------------------------------------------------------

// CreateOrderIncoming creates an incoming order with its items. The priority
// range is checked here so an out-of-range order never reaches the wire.
func (c *Client) CreateOrderIncoming(ctx context.Context, order *wms.OrderIncoming) (*wms.Response, error) {
	if err := order.ValidatePriority(); err != nil {
		return nil, err
	}
	return c.sendRequest(ctx, serviceOrderIncoming, http.MethodPost, "", orderIncomingPayload(order))
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// sendRequest performs one round trip against the interface. Transport
// failures are wrapped in wms.ErrUnavailable; any HTTP status that does come
// back, 2xx or not, is surfaced as a wms.Response for the caller to branch
// on.
func (c *Client) sendRequest(ctx context.Context, service, method, id string, payload any) (*wms.Response, error) {
	url := c.config.Endpoint + service
	if id != "" {
		url += "/" + id
	}

	requestID := uuid.NewString()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("mystock: failed to encode payload: %w", err)
	}

	c.log("request endpoint",
		zap.String("requestId", requestID),
		zap.String("method", method),
		zap.String("url", url),
	)
	c.log("request data",
		zap.String("requestId", requestID),
		zap.Any("payload", payload),
	)

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mystock: failed to create request: %w", err)
	}
	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wms.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("mystock: failed to read response: %w", err)
	}

	response := c.parseResponse(resp.StatusCode, rawBody, requestID)

	c.log("response",
		zap.String("requestId", requestID),
		zap.Int("status", response.StatusCode),
		zap.Int("ids", len(response.IDs)),
		zap.Int("errors", len(response.Errors)),
	)
	c.log("response body",
		zap.String("requestId", requestID),
		zap.ByteString("body", rawBody),
	)

	return response, nil
}

// parseResponse converts a raw status and body into a wms.Response. A missing
// body is recovered as "no ids, no errors" - the status code alone carries
// the signal then. On a decode error whatever the decoder did understand is
// still used, so one unreadable element cannot erase the generated ids or
// the remaining errors.
func (c *Client) parseResponse(statusCode int, rawBody []byte, requestID string) *wms.Response {
	response := wms.NewResponse(statusCode)

	if len(bytes.TrimSpace(rawBody)) == 0 {
		return response
	}

	var body apiResponse
	if err := json.Unmarshal(rawBody, &body); err != nil {
		if c.logger != nil {
			c.logger.Warn("malformed response body",
				zap.String("requestId", requestID),
				zap.Int("status", statusCode),
				zap.Error(err),
			)
		}
	}

	if body.Data != nil {
		for _, id := range body.Data.IDs {
			response.AddID(wms.ResponseID{
				ID:       id.ID,
				RecordID: id.RecordID,
				Type:     id.Type,
			})
		}
	}
	for _, apiErr := range body.Errors {
		response.AddError(wms.Error{
			Text:         apiErr.ErrorText,
			Type:         apiErr.errorTypeCode(),
			PropertyName: apiErr.PropertyName,
			RecordID:     apiErr.RecordID.String(),
			RecordType:   apiErr.RecordType,
		})
	}

	return response
}

// Ensure Client implements the Fulfillment port
var _ wms.Fulfillment = (*Client)(nil)
