//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"errors"

	"github.com/obinnaokechukwu/orcgo/liborc"
)

// ORCError is an error from ORC native operations.
// It carries the shim status code and the native exception message.
type ORCError = liborc.Error

// Common errors
var (
	// ErrNotLoaded indicates the ORC native libraries are not loaded.
	ErrNotLoaded = errors.New("orcgo: ORC libraries not loaded")

	// ErrClosed indicates the resource has been closed.
	ErrClosed = errors.New("orcgo: resource is closed")

	// ErrNoStripes indicates the file contains no stripes.
	ErrNoStripes = errors.New("orcgo: file has no stripes")
)

// IsCorrupt returns true if the error indicates a corrupt or truncated file.
func IsCorrupt(err error) bool {
	return liborc.IsCorrupt(err)
}

// IsNotImplemented returns true if the error indicates a feature the native
// library does not support.
func IsNotImplemented(err error) bool {
	return liborc.IsNotImplemented(err)
}

// ErrorCode returns the shim status code from an error, or 0 if err is not
// an ORC error.
func ErrorCode(err error) int32 {
	return liborc.Code(err)
}
