package wms

// HTTP status codes the WMS reports for accepted requests. Anything else is a
// failure, including statuses with an empty body.
const (
	StatusOK      = 200
	StatusCreated = 201
)

// Remote error types. The table is defined by the MyStock interface and must
// be reproduced verbatim.
const (
	ErrorTypeValueNull       = 1
	ErrorTypeValueMissing    = 2
	ErrorTypeInvalidValue    = 3
	ErrorTypeOther           = 4
	ErrorTypeNotUnique       = 5
	ErrorTypeUpdateForbidden = 6
	ErrorTypeValueOverflow   = 7
	ErrorTypeInternal        = 100
)

// errorTypeTexts maps remote error types to their documented descriptions
var errorTypeTexts = map[int]string{
	ErrorTypeValueNull:       "Value is NULL",
	ErrorTypeValueMissing:    "Value is not specified",
	ErrorTypeInvalidValue:    "Invalid value - e.g. id of nonexisting record",
	ErrorTypeOther:           "Other specific error",
	ErrorTypeNotUnique:       "Value is not unique",
	ErrorTypeUpdateForbidden: "Update of record is forbidden",
	ErrorTypeValueOverflow:   "Value overflow e.g. string is too long",
	ErrorTypeInternal:        "Internal server error. Unique record id is set in recordId",
}

// ---------------------------------------------------------------------------
// ResponseID
// ---------------------------------------------------------------------------

// ResponseID is an id the WMS generated for one record of a request. A single
// call can create several records (an order and each of its items); RecordID
// is the 1-based position distinguishing them.
type ResponseID struct {
	// ID is the generated external id
	ID string
	// RecordID is the 1-based record index within the request
	RecordID int
	// Type tags the record (product, orderIncoming, orderIncomingItem, ...)
	Type string
}

// ---------------------------------------------------------------------------
// Error
// ---------------------------------------------------------------------------

// Error is a structured error the WMS attached to a response. Header-level
// errors carry no record context; RecordID and RecordType are then empty.
// Error is response data, not a Go error - protocol failures are never raised
// as exceptions.
type Error struct {
	// Text is the human-readable error description
	Text string
	// Type is the remote error type (see the ErrorType constants)
	Type int
	// PropertyName names the invalid property when the WMS attributes the
	// error to a single field
	PropertyName string
	// RecordID is the index of the faulted record, "0" for header errors,
	// empty when the WMS sent no record context
	RecordID string
	// RecordType is the type of the faulted record, empty for header errors
	RecordType string
}

// ErrorCodeText returns the documented description of the error type, or
// "Unknown error" for types outside the table.
func (e Error) ErrorCodeText() string {
	if text, ok := errorTypeTexts[e.Type]; ok {
		return text
	}
	return "Unknown error"
}

// ---------------------------------------------------------------------------
// Response
// ---------------------------------------------------------------------------

// Response is the parsed result of one WMS call. It is created once per call
// and never merged or retried. A 2xx status with a non-empty Errors slice is
// a partial failure: callers correlate Error.RecordID with the record indexes
// of what they submitted.
type Response struct {
	// StatusCode is the HTTP status of the call
	StatusCode int
	// IDs are the generated record ids in response order
	IDs []ResponseID
	// Errors are the structured errors in response order
	Errors []Error
}

// NewResponse creates a response carrying the given HTTP status
func NewResponse(statusCode int) *Response {
	return &Response{StatusCode: statusCode}
}

// AddID appends a generated id, preserving order
func (r *Response) AddID(id ResponseID) {
	r.IDs = append(r.IDs, id)
}

// AddError appends a structured error, preserving order
func (r *Response) AddError(err Error) {
	r.Errors = append(r.Errors, err)
}

// IsOK returns true iff the status code is 200 or 201. A true result does not
// mean every record succeeded - check Errors for partial failures.
func (r *Response) IsOK() bool {
	return r.StatusCode == StatusOK || r.StatusCode == StatusCreated
}

// IDsByType returns the generated ids with the given record type tag, in
// response order
func (r *Response) IDsByType(recordType string) []ResponseID {
	var ids []ResponseID
	for _, id := range r.IDs {
		if id.Type == recordType {
			ids = append(ids, id)
		}
	}
	return ids
}
