package dto

// BaseError is the universal error envelope.
// Code is machine-oriented (snake_case); Message is short human-readable text;
// Details carries extra context; Fields lists per-field validation errors.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

func NewValidationError(msg string, fields []FieldError) BaseError {
	return BaseError{Code: "validation_error", Message: msg, Fields: fields}
}

func NewConflictError(msg string) BaseError {
	return BaseError{Code: "conflict", Message: msg}
}

func NewUnauthorizedError(msg string) BaseError {
	return BaseError{Code: "unauthorized", Message: msg}
}

func NewForbiddenError(msg string) BaseError {
	return BaseError{Code: "forbidden", Message: msg}
}

func NewNotFoundError(msg string) BaseError {
	return BaseError{Code: "not_found", Message: msg}
}

func NewUnprocessableError(code, msg string) BaseError {
	return BaseError{Code: code, Message: msg}
}

// NewUnavailableError accompanies 503 responses from dependencies that
// are temporarily down, such as the exchange-rate provider.
func NewUnavailableError(code, msg string) BaseError {
	return BaseError{Code: code, Message: msg}
}

func NewInternalError() BaseError {
	return BaseError{Code: "internal_error", Message: "internal server error"}
}
