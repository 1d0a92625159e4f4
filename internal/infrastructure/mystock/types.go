package mystock

import "encoding/json"

// Wire types of the MyStock interface responses. Every call answers with an
// optional data.ids array (the generated record ids) and an optional errors
// array. Both can appear together: a 2xx status with errors is a partial
// failure.

// apiResponse is the response envelope
type apiResponse struct {
	Data   *apiData   `json:"data,omitempty"`
	Errors []apiError `json:"errors,omitempty"`
}

// apiData wraps the generated ids
type apiData struct {
	IDs []apiID `json:"ids"`
}

// apiID is one generated record id
type apiID struct {
	ID       string `json:"id"`
	RecordID int    `json:"recordId"`
	Type     string `json:"type"`
}

// apiError is one structured error. The interface is loose about numeric
// fields here: recordId and errorType arrive as numbers or as quoted numbers
// depending on the service, so both decode through json.Number. recordId
// references the faulted record for record-level errors ("0" means the
// header faulted) and is absent for header-level validation errors; recordId
// and recordType default to the empty string then.
type apiError struct {
	ErrorText    string      `json:"errorText"`
	ErrorType    json.Number `json:"errorType"`
	PropertyName string      `json:"propertyName,omitempty"`
	RecordID     json.Number `json:"recordId,omitempty"`
	RecordType   string      `json:"recordType,omitempty"`
}

// errorTypeCode converts the lenient errorType into the integer error code,
// 0 when absent or unreadable
func (e apiError) errorTypeCode() int {
	code, err := e.ErrorType.Int64()
	if err != nil {
		return 0
	}
	return int(code)
}
