package pkg

import "fmt"

// AppError is the error envelope returned by every handler.
//
// Code is a stable, machine-readable identifier (e.g. INSTALLMENTS_ALREADY_EXIST);
// Message is safe to show to the user. Err keeps the underlying cause for logs only.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails returns a copy carrying a user-facing detail line (validation errors).
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Err = fmt.Errorf("%s", details)
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError never leaks the wrapped cause of 5xx errors.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message}
	if e.Err != nil && e.HTTPStatus < 500 {
		out.Details = e.Err.Error()
	}
	return out
}
