package main

/*
#include <stdlib.h>
#include <string.h>

// Error codes (must match liborcbridge.h)
typedef enum {
    ORC_OK = 0,
    ORC_ERR_INVALID_HANDLE = 1,
    ORC_ERR_INVALID_ARGUMENT = 2,
    ORC_ERR_IO = 3,
    ORC_ERR_CORRUPT = 4,
    ORC_ERR_ALREADY_CLOSED = 5,
    ORC_ERR_NOT_IMPLEMENTED = 6,
    ORC_ERR_NOT_LOADED = 7,
    ORC_ERR_UNKNOWN = 99
} orc_error_code;

typedef struct {
    orc_error_code code;
    char* message;
} orc_error;

// Helper to set error fields
static inline void set_error(orc_error* err, orc_error_code code, const char* message) {
    if (err == NULL) return;
    err->code = code;
    err->message = message ? strdup(message) : NULL;
}

static inline void clear_error(orc_error* err) {
    if (err == NULL) return;
    err->code = ORC_OK;
    err->message = NULL;
}
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/obinnaokechukwu/orcgo"
	"github.com/obinnaokechukwu/orcgo/liborc"
)

// errorCode maps a Go error to a C error code.
func errorCode(err error) C.orc_error_code {
	if err == nil {
		return C.ORC_OK
	}

	// Native errors carry a shim status code.
	var orcErr *liborc.Error
	if errors.As(err, &orcErr) {
		switch orcErr.Code {
		case liborc.StatusParseError:
			return C.ORC_ERR_CORRUPT
		case liborc.StatusInvalidArg:
			return C.ORC_ERR_INVALID_ARGUMENT
		case liborc.StatusNotImplemented:
			return C.ORC_ERR_NOT_IMPLEMENTED
		case liborc.StatusIO:
			return C.ORC_ERR_IO
		default:
			return C.ORC_ERR_UNKNOWN
		}
	}

	// Sentinel errors from the Go layer
	if errors.Is(err, orcgo.ErrNotLoaded) {
		return C.ORC_ERR_NOT_LOADED
	}
	if errors.Is(err, orcgo.ErrClosed) {
		return C.ORC_ERR_ALREADY_CLOSED
	}
	if errors.Is(err, orcgo.ErrNoStripes) {
		return C.ORC_ERR_INVALID_ARGUMENT
	}

	return C.ORC_ERR_UNKNOWN
}

// setError populates an orc_error struct from a Go error.
func setError(err error, cErr *C.orc_error) C.orc_error_code {
	if err == nil {
		C.clear_error(cErr)
		return C.ORC_OK
	}

	code := errorCode(err)

	msg := C.CString(err.Error())
	C.set_error(cErr, code, msg)
	// set_error duplicates the message
	C.free(unsafe.Pointer(msg))

	return code
}

// setInvalidHandle reports a handle the registry could not resolve. This is
// the host-visible form of a registry not-found: deterministic and explicit,
// never a crash.
func setInvalidHandle(cErr *C.orc_error, handleType string) C.orc_error_code {
	msg := C.CString("invalid " + handleType + " handle")
	C.set_error(cErr, C.ORC_ERR_INVALID_HANDLE, msg)
	C.free(unsafe.Pointer(msg))
	return C.ORC_ERR_INVALID_HANDLE
}

// setInvalidArgument reports a malformed argument from the host.
func setInvalidArgument(cErr *C.orc_error, text string) C.orc_error_code {
	msg := C.CString(text)
	C.set_error(cErr, C.ORC_ERR_INVALID_ARGUMENT, msg)
	C.free(unsafe.Pointer(msg))
	return C.ORC_ERR_INVALID_ARGUMENT
}
