package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	CustomerNotFound     ErrorCode = "customer_not_found"
	TransactionsNotFound ErrorCode = "transactions_not_found"
	InvalidInput         ErrorCode = "invalid_input"
	InvalidAmount        ErrorCode = "invalid_amount"
	InternalError        ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to the status the boundary layer should send.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CustomerNotFound, TransactionsNotFound:
		return http.StatusNotFound
	case InvalidInput, InvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// Predefined errors for common cases
var (
	ErrCustomerNotFound       = NewAppError(CustomerNotFound, "customer not found")
	ErrTransactionsNotFound   = NewAppError(TransactionsNotFound, "no transactions found")
	ErrCannotBeginTransaction = NewAppError(InternalError, "cannot begin transaction on non-database executor")
)
