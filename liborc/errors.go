package liborc

import (
	"errors"
	"fmt"
)

// Status codes returned by orcshim calls. Zero is success; positive values
// classify the C++ exception the shim caught.
const (
	StatusOK             int32 = 0
	StatusParseError     int32 = 1 // orc::ParseError: corrupt or truncated file
	StatusInvalidArg     int32 = 2 // std::invalid_argument and friends
	StatusNotImplemented int32 = 3 // orc::NotImplementedYet
	StatusIO             int32 = 4 // filesystem/stream failure
	StatusInternal       int32 = 5 // anything else
)

// Error represents an error reported by the ORC native library.
type Error struct {
	Code    int32  // Shim status code (Status* constants)
	Op      string // Operation that failed
	Message string // Message carried by the native exception
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("orc %s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("orc %s: %s (status %d)", e.Op, e.Message, e.Code)
}

// NewError creates an Error from a shim status code and message.
// Returns nil if code is StatusOK.
func NewError(code int32, op, message string) error {
	if code == StatusOK {
		return nil
	}
	return &Error{Code: code, Op: op, Message: message}
}

// Code returns the shim status code from an error, or StatusOK if err is not
// a liborc error.
func Code(err error) int32 {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return StatusOK
}

// IsCorrupt returns true if the error indicates a corrupt or truncated file.
func IsCorrupt(err error) bool {
	return Code(err) == StatusParseError
}

// IsNotImplemented returns true if the error indicates a feature the native
// library does not support.
func IsNotImplemented(err error) bool {
	return Code(err) == StatusNotImplemented
}
