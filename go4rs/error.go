package go4rs

import (
	"fmt"
)

// ErrorCode classifies bridge failures
type ErrorCode int32

const (
	// ErrorCodeSuccess indicates the operation completed successfully
	ErrorCodeSuccess ErrorCode = 0

	// ErrorCodeUnknownType indicates a type name could not be resolved
	ErrorCodeUnknownType ErrorCode = -1

	// ErrorCodeEncoding indicates a value could not be serialized to its wire form
	ErrorCodeEncoding ErrorCode = -2

	// ErrorCodeDecoding indicates a wire form did not match the recorded type's shape
	ErrorCodeDecoding ErrorCode = -3

	// ErrorCodeIllegalCallbackState indicates a callback was attempted before the
	// channel handle was assigned, or with a nil value
	ErrorCodeIllegalCallbackState ErrorCode = -4

	// ErrorCodeCallbacksUnsupported indicates the native send primitive is not
	// bound (the native library was never loaded)
	ErrorCodeCallbacksUnsupported ErrorCode = -5

	// ErrorCodeLibraryLoad indicates the native library or its send symbol
	// could not be loaded
	ErrorCodeLibraryLoad ErrorCode = -6

	// ErrorCodeUnknown indicates an unknown error occurred
	ErrorCodeUnknown ErrorCode = -100
)

// BridgeError represents a structured error from the go4rs bridge
type BridgeError struct {
	code ErrorCode
	msg  string
}

// Error implements the error interface
func (e BridgeError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.msg, e.code)
}

// Code returns the bridge error code
func (e BridgeError) Code() ErrorCode {
	return e.code
}

// Message returns the error message without the code
func (e BridgeError) Message() string {
	return e.msg
}

// NewBridgeError creates a new BridgeError with the given code and message
func NewBridgeError(code ErrorCode, msg string) BridgeError {
	return BridgeError{code: code, msg: msg}
}

// Is reports whether target matches this error by comparing error codes.
// This enables errors.Is() support for BridgeError.
// Uses direct type assertion (not errors.As) to avoid recursive chain walking.
func (e BridgeError) Is(target error) bool {
	t, ok := target.(BridgeError)
	if ok {
		return e.code == t.code
	}
	return false
}

// Sentinel errors for common failure modes
var (
	// ErrUnknownType is returned when a type name matches neither a primitive
	// keyword nor a registered type. Use errors.Is(err, go4rs.ErrUnknownType).
	ErrUnknownType = NewBridgeError(ErrorCodeUnknownType, "unknown type name")

	// ErrEncoding is returned when a value cannot be serialized to JSON.
	ErrEncoding = NewBridgeError(ErrorCodeEncoding, "value encoding failed")

	// ErrDecoding is returned when a JSON form cannot be decoded as the
	// recorded type.
	ErrDecoding = NewBridgeError(ErrorCodeDecoding, "value decoding failed")

	// ErrIllegalCallbackState is returned when SendCallback runs before a
	// handle was assigned, or with a nil value.
	ErrIllegalCallbackState = NewBridgeError(ErrorCodeIllegalCallbackState, "callback attempted in illegal state")

	// ErrCallbacksUnsupported is returned when SendCallback runs but the
	// native send primitive was never bound.
	ErrCallbacksUnsupported = NewBridgeError(ErrorCodeCallbacksUnsupported, "native callbacks unsupported")
)
