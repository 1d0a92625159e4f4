package wms

import "context"

// Fulfillment is the port interface for the MyStock WMS. It is defined in the
// domain layer following the ports & adapters pattern; the concrete HTTP
// adapter lives in the infrastructure layer.
//
// Every call is one synchronous request/response round trip. A non-nil error
// means the call never produced a usable response (transport failure,
// unsupported operation, invalid input caught before sending); protocol-level
// failures - 4xx/5xx statuses and per-record errors - are data on the
// returned Response. Implementations hold no mutable state across calls and
// are safe for concurrent use.
type Fulfillment interface {
	// CreateProduct creates a product, optionally with its barcodes
	CreateProduct(ctx context.Context, product *Product) (*Response, error)

	// UpdateProduct updates the product with the given WMS-generated id
	UpdateProduct(ctx context.Context, product *Product, productID string) (*Response, error)

	// CreateBarcode attaches a barcode to an existing product
	CreateBarcode(ctx context.Context, barcode *ProductBarcode) (*Response, error)

	// UpdateBarcode updates the barcode with the given WMS-generated id.
	// The barcode value itself is immutable and not sent.
	UpdateBarcode(ctx context.Context, barcode *ProductBarcode, barcodeID string) (*Response, error)

	// CreatePartner creates a partner, optionally with its operating units
	CreatePartner(ctx context.Context, partner *Partner) (*Response, error)

	// UpdatePartner updates the partner identified by its code
	UpdatePartner(ctx context.Context, partner *Partner) (*Response, error)

	// CreatePartnerOperatingUnit is not supported by the remote interface
	// yet and fails with ErrNotSupported before any network attempt
	CreatePartnerOperatingUnit(ctx context.Context, unit *OperatingUnit) (*Response, error)

	// UpdatePartnerOperatingUnit is not supported by the remote interface
	// yet and fails with ErrNotSupported before any network attempt
	UpdatePartnerOperatingUnit(ctx context.Context, unit *OperatingUnit) (*Response, error)

	// CreateOrderIncoming creates an incoming order with its items
	CreateOrderIncoming(ctx context.Context, order *OrderIncoming) (*Response, error)
}
