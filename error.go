// Package premiumerrors provides the closed error taxonomy for premium
// (in-app billing) purchases, plus a small envelope that carries a
// category, the store's response code, and a human-readable message
// across HTTP, gRPC and logging boundaries.
package premiumerrors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Error is a structured premium purchase error.
type Error struct {
	Code         Code         `json:"code"`
	Message      string       `json:"message"`
	ResponseCode ResponseCode `json:"response_code,omitempty"`
	Operation    Operation    `json:"operation,omitempty"`
	Details      any          `json:"details,omitempty"`
	TraceID      string       `json:"trace_id,omitempty"`
	Retryable    bool         `json:"retryable"`

	// Not serialized:
	Status int   `json:"-"`
	Cause  error `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given code, HTTP status, and message.
// If status is 0, the code's default status is used. If message is empty,
// the code's default message is used.
func New(code Code, status int, msg string) *Error {
	if status == 0 {
		status = defaultStatus(code)
	}
	if msg == "" {
		msg = defaultMessage(code)
	}
	return &Error{
		Code:      code,
		Message:   msg,
		Status:    status,
		Retryable: isRetryableDefault(code),
	}
}

// Newf is like New with a formatted message.
func Newf(code Code, status int, format string, args ...any) *Error {
	return New(code, status, fmt.Sprintf(format, args...))
}

// Wrap creates a new Error that wraps an underlying cause.
func Wrap(code Code, status int, msg string, cause error) *Error {
	e := New(code, status, msg)
	e.Cause = cause
	return e
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(code Code, status int, format string, cause error, args ...any) *Error {
	return Wrap(code, status, fmt.Sprintf(format, args...), cause)
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// WithDetails returns a copy of e with structured details attached.
func (e *Error) WithDetails(details any) *Error {
	c := e.clone()
	c.Details = details
	return c
}

// WithTraceID returns a copy of e with the trace ID set.
func (e *Error) WithTraceID(id string) *Error {
	c := e.clone()
	c.TraceID = id
	return c
}

// WithRetryable returns a copy of e with the retryable flag set.
func (e *Error) WithRetryable(v bool) *Error {
	c := e.clone()
	c.Retryable = v
	return c
}

// WithStatus returns a copy of e with the HTTP status overridden.
// A zero status leaves the current one in place.
func (e *Error) WithStatus(status int) *Error {
	c := e.clone()
	if status != 0 {
		c.Status = status
	}
	return c
}

// WithResponseCode returns a copy of e carrying the store response code.
func (e *Error) WithResponseCode(rc ResponseCode) *Error {
	c := e.clone()
	c.ResponseCode = rc
	return c
}

// WithOperation returns a copy of e tagged with the billing operation.
func (e *Error) WithOperation(op Operation) *Error {
	c := e.clone()
	c.Operation = op
	return c
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
		slog.Bool("retryable", e.Retryable),
	}
	if e.Operation != "" {
		attrs = append(attrs, slog.String("operation", string(e.Operation)))
	}
	if e.ResponseCode != ResponseOK {
		attrs = append(attrs, slog.String("response_code", e.ResponseCode.String()))
	}
	if e.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", e.TraceID))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// Is checks if an error has the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func defaultMessage(code Code) string {
	switch code {
	case CodeDeveloperError:
		return "Invalid billing request"
	case CodeClientNotReady:
		return "Billing client is not ready"
	case CodeClientDisconnected:
		return "Billing client is disconnected"
	case CodeProductNotExist:
		return "Product does not exist"
	case CodeOfferNotExist:
		return "Offer does not exist"
	case CodeBillingError:
		return "Billing error"
	case CodeUserCanceled:
		return "Purchase canceled by user"
	case CodeServiceUnavailable:
		return "Billing service unavailable"
	case CodeBillingUnavailable:
		return "Billing is not available for this account"
	case CodeItemUnavailable:
		return "Item is not available for purchase"
	case CodeError:
		return "Internal billing error"
	case CodeItemAlreadyOwned:
		return "Item already owned"
	case CodeItemNotOwned:
		return "Item not owned"
	case CodeServiceDisconnected:
		return "Billing service disconnected"
	case CodeAcknowledgeError:
		return "Failed to acknowledge purchase"
	case CodeAcknowledgeWarning:
		return "Purchase is pending acknowledgement"
	case CodeOldPurchaseTokenNotFound:
		return "Previous purchase token not found"
	case CodeInvalidProductTypeSet:
		return "Invalid product type"
	case CodeConsumeError:
		return "Failed to consume purchase"
	}
	return "Internal billing error"
}

func defaultStatus(code Code) int {
	switch code {
	case CodeDeveloperError, CodeInvalidProductTypeSet:
		return http.StatusBadRequest
	case CodeClientNotReady, CodeClientDisconnected, CodeServiceUnavailable, CodeServiceDisconnected:
		return http.StatusServiceUnavailable
	case CodeProductNotExist, CodeOfferNotExist, CodeOldPurchaseTokenNotFound:
		return http.StatusNotFound
	case CodeBillingError, CodeAcknowledgeError, CodeConsumeError:
		return http.StatusBadGateway
	case CodeUserCanceled:
		return 499 // client closed request, nginx convention
	case CodeBillingUnavailable:
		return http.StatusForbidden
	case CodeItemUnavailable:
		return http.StatusUnprocessableEntity
	case CodeItemAlreadyOwned, CodeItemNotOwned:
		return http.StatusConflict
	case CodeAcknowledgeWarning:
		return http.StatusAccepted
	case CodeError:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func isRetryableDefault(code Code) bool {
	switch code {
	case CodeClientNotReady, CodeClientDisconnected, CodeServiceUnavailable,
		CodeServiceDisconnected, CodeError, CodeAcknowledgeError, CodeConsumeError:
		return true
	default:
		return false
	}
}
