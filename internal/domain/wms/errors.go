package wms

import "errors"

var (
	// ErrNotSupported indicates an operation the remote MyStock interface does
	// not implement yet. It is returned before any network attempt so callers
	// can distinguish "not yet supported" from "request failed".
	ErrNotSupported = errors.New("wms: operation not supported by remote interface")

	// ErrUnavailable wraps transport-level failures (connection refused, TLS,
	// timeout). The underlying error is attached via %w wrapping.
	ErrUnavailable = errors.New("wms: remote interface unavailable")

	// ErrPriorityOutOfRange indicates an incoming order priority outside the
	// -999..999 range accepted by the WMS.
	ErrPriorityOutOfRange = errors.New("wms: order priority out of range (-999..999)")
)
