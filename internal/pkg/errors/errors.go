package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any AppError with the same code, so copies made by WithDetails
// still satisfy errors.Is against the sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy of the error carrying details; the sentinel is left untouched
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// TransitAPIError - failure talking to the transit API: network error,
// non-2xx status or an unparseable body
type TransitAPIError struct {
	Op         string
	StatusCode int
	// Transport is set when the request never got a response (dial, TLS, timeout)
	Transport bool
	Err       error
}

func NewTransitAPIError(op string, statusCode int, err error) *TransitAPIError {
	return &TransitAPIError{Op: op, StatusCode: statusCode, Err: err}
}

// NewTransitTransportError wraps a failure of the HTTP round trip itself
func NewTransitTransportError(op string, err error) *TransitAPIError {
	return &TransitAPIError{Op: op, Transport: true, Err: err}
}

func (e *TransitAPIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transit api %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transit api %s: %v", e.Op, e.Err)
}

func (e *TransitAPIError) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying the same request may succeed:
// round-trip failures and 5xx. A request that could not be built is not.
func (e *TransitAPIError) Temporary() bool {
	return e.Transport || e.StatusCode >= 500
}
