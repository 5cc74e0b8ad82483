// Package apperror holds the typed application errors surfaced by the
// webhook service and the reporter that records them.
package apperror

import (
	"errors"
	"fmt"
)

type Code string

type Category string

type Severity string

const (
	WebhookCreationFailed Code = "WEBHOOK_CREATION_FAILED"
	WebhookNotFound       Code = "WEBHOOK_NOT_FOUND"
	WebhookInactive       Code = "WEBHOOK_INACTIVE"
	InvalidWebhookEvent   Code = "INVALID_WEBHOOK_EVENT"
	WebhookTriggerFailed  Code = "WEBHOOK_TRIGGER_FAILED"
	InvalidWebhookStatus  Code = "INVALID_WEBHOOK_STATUS"
	WebhookUpdateFailed   Code = "WEBHOOK_UPDATE_FAILED"
	DeliveryNotFound      Code = "DELIVERY_NOT_FOUND"
	DeliveryNotRetryable  Code = "DELIVERY_NOT_RETRYABLE"
	DeliveryRetryFailed   Code = "DELIVERY_RETRY_FAILED"
)

const (
	CategoryValidation Category = "VALIDATION"
	CategoryInternal   Category = "INTERNAL"
)

const (
	SeverityError    Severity = "ERROR"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Error is an application error with a stable code.
type Error struct {
	Code     Code
	Category Category
	Severity Severity
	Message  string
	Context  map[string]interface{}
	Err      error
}

func New(code Code, category Category, severity Severity, message string, context map[string]interface{}) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Severity: severity,
		Message:  message,
		Context:  context,
	}
}

// Wrap attaches cause to a new error.
func Wrap(cause error, code Code, category Category, severity Severity, message string, context map[string]interface{}) *Error {
	e := New(code, category, severity, message, context)
	e.Err = cause
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err is, or wraps, an *Error with the given code.
func Is(err error, code Code) bool {
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Code == code
}

// CodeOf returns the code of the outermost *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var ae *Error
	if !errors.As(err, &ae) {
		return "", false
	}
	return ae.Code, true
}
