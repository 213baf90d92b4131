package errors

import (
	stderr "errors"
	"fmt"
)

var (
	// CredentialMissingError is returned when a model call is attempted without an API key.
	CredentialMissingError = &PreconditionError{Reason: "API Key is not set."}
	// NoActiveDesignError is returned when an operation needs an active design and none exists.
	NoActiveDesignError = &PreconditionError{Reason: "There is no active design."}
	// GenerationInProgressError is returned when a second generation is requested while one is outstanding.
	GenerationInProgressError = &PreconditionError{Reason: "A design is already being generated."}
	// ConversionInProgressError is returned when a second conversion is requested while one is outstanding.
	ConversionInProgressError = &PreconditionError{Reason: "A code conversion is already running."}
)

// PreconditionError reports that the caller must fix something before retrying.
type PreconditionError struct {
	Reason string
}

// Error is an implementation of the error interface.
func (e *PreconditionError) Error() string {
	return e.Reason
}

// IsPrecondition reports whether a PreconditionError is part of the error chain.
func IsPrecondition(e error) bool {
	var pe *PreconditionError
	return stderr.As(e, &pe)
}

// ServiceError wraps a failure reported by, or about, the external model service.
type ServiceError struct {
	Service string
	Err     error
}

// Error is an implementation of the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Service, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a ServiceError with a plain message.
func NewServiceError(service string, msg string) *ServiceError {
	return &ServiceError{Service: service, Err: New(msg)}
}

// IsService reports whether a ServiceError is part of the error chain.
func IsService(e error) bool {
	var se *ServiceError
	return stderr.As(e, &se)
}

// StorageError reports that a durable write or read could not complete.
type StorageError struct {
	Key string
	Err error
}

// Error is an implementation of the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure for key %q: %s", e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorage reports whether a StorageError or QuotaExceededError is part of the error chain.
func IsStorage(e error) bool {
	var se *StorageError
	var qe *QuotaExceededError
	return stderr.As(e, &se) || stderr.As(e, &qe)
}

// QuotaExceededError reports that a write would take the store past its capacity.
type QuotaExceededError struct {
	Key      string
	Size     int64
	Capacity int64
}

// Error is an implementation of the error interface.
func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("writing %d bytes to %q exceeds storage capacity of %d bytes", e.Size, e.Key, e.Capacity)
}

// DataError reports persisted data that could not be decoded or validated.
type DataError struct {
	Key string
	Err error
}

// Error is an implementation of the error interface.
func (e *DataError) Error() string {
	return fmt.Sprintf("invalid data under key %q: %s", e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DataError) Unwrap() error {
	return e.Err
}

// IsData reports whether a DataError is part of the error chain.
func IsData(e error) bool {
	var de *DataError
	return stderr.As(e, &de)
}
