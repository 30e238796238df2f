package providers

import (
	"errors"
	"fmt"
)

// UnauthorizedError captures an authentication failure from the
// upstream catalog, including a missing credential.
type UnauthorizedError struct {
	Provider string
	Message  string
}

func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "provider unauthorized"
}

// AsUnauthorizedError attempts to unwrap an error into an UnauthorizedError.
func AsUnauthorizedError(err error) (*UnauthorizedError, bool) {
	var target *UnauthorizedError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// RequestError captures any other non-success HTTP status from the
// upstream catalog.
type RequestError struct {
	Provider   string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// AsRequestError attempts to unwrap an error into a RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var target *RequestError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// NetworkError wraps a transport failure where no HTTP response was
// received at all.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network failure: %v", e.Err)
	}
	return "network failure"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var target *NetworkError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
