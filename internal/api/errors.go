// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the newsdesk
// backend service.
package api

import "errors"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the backend client.
type ClientError struct {
	Type    ErrorType
	Status  int // HTTP status, set for ErrTypeTransport only
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota

	// ErrTypeValidation: invalid user input. The operation is never
	// attempted; surfaced inline next to the offending field.
	ErrTypeValidation

	// ErrTypeTransport: the backend was reachable but responded with a
	// non-success status. Surfaced as a transient notification.
	ErrTypeTransport

	// ErrTypeNetwork: the exchange could not complete at all (host
	// unreachable, connection refused, timeout).
	ErrTypeNetwork

	// ErrTypeIndex: out-of-range access on a local collection. Should not
	// be reachable through normal UI flow.
	ErrTypeIndex

	// ErrTypeInvalidResponse: the backend responded but the body could not
	// be decoded.
	ErrTypeInvalidResponse
)

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// NewValidationError creates a validation error for invalid user input.
func NewValidationError(message string) *ClientError {
	return &ClientError{Type: ErrTypeValidation, Message: message}
}

// NewTransportError creates a transport error carrying the HTTP status.
func NewTransportError(status int, message string) *ClientError {
	return &ClientError{Type: ErrTypeTransport, Status: status, Message: message}
}

// NewNetworkError creates a network error wrapping the underlying cause.
func NewNetworkError(message string, cause error) *ClientError {
	return &ClientError{Type: ErrTypeNetwork, Message: message, Cause: cause}
}

// NewIndexError creates an out-of-range error for a local collection.
func NewIndexError(message string) *ClientError {
	return &ClientError{Type: ErrTypeIndex, Message: message}
}

// =============================================================================
// ERROR CLASSIFICATION
// =============================================================================

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errorType(err) == ErrTypeValidation
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	return errorType(err) == ErrTypeTransport
}

// IsNetwork checks if an error indicates the backend is unreachable.
func IsNetwork(err error) bool {
	return errorType(err) == ErrTypeNetwork
}

// IsIndex checks if an error is an out-of-range error.
func IsIndex(err error) bool {
	return errorType(err) == ErrTypeIndex
}

// TransportStatus returns the HTTP status of a transport error, or 0 if err
// is not one.
func TransportStatus(err error) int {
	var clientErr *ClientError
	if errors.As(err, &clientErr) && clientErr.Type == ErrTypeTransport {
		return clientErr.Status
	}
	return 0
}

func errorType(err error) ErrorType {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type
	}
	return ErrTypeUnknown
}
