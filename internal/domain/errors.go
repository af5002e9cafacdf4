package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMessage       = errors.New("invalid log message")
	ErrEmptyLine            = errors.New("empty log line")
	ErrReservedField        = errors.New("reserved field name")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
	ErrCircuitBreakerOpen   = errors.New("circuit breaker open")
)

type (
	DomainError struct {
		Code    string
		Message string
		Cause   error
		Details map[string]any
	}

	MaxAttemptsExceededError struct {
		MessageID   string
		Attempts    int
		MaxAttempts int
		Err         error
	}
)

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}

	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Details: make(map[string]any),
	}
}

func (e *DomainError) WithDetails(key string, value any) *DomainError {
	e.Details[key] = value

	return e
}

func NewInvalidMessageError(reason string) *DomainError {
	return NewDomainError(
		"INVALID_MESSAGE",
		reason,
		ErrInvalidMessage,
	)
}

func NewReservedFieldError(key string) *DomainError {
	return NewDomainError(
		"RESERVED_FIELD",
		fmt.Sprintf("field %q is reserved", key),
		ErrReservedField,
	).WithDetails("field", key)
}

func NewUnsupportedFieldTypeError(key string, value any) *DomainError {
	return NewDomainError(
		"UNSUPPORTED_FIELD_TYPE",
		fmt.Sprintf("field %q has unsupported type %T", key, value),
		ErrUnsupportedFieldType,
	).WithDetails("field", key).WithDetails("type", fmt.Sprintf("%T", value))
}

func (e *MaxAttemptsExceededError) Error() string {
	return fmt.Sprintf("max attempts exceeded for message %s: %d/%d: %v", e.MessageID, e.Attempts, e.MaxAttempts, e.Err)
}

func (e *MaxAttemptsExceededError) Unwrap() error {
	return e.Err
}
