// liborcbridge exposes orcgo readers to non-Go host runtimes (JVM via
// JNA/Panama, Python via ctypes, .NET via P/Invoke) as a c-shared library.
//
// Hosts never see Go objects: every reader and stripe reader is registered
// in a handle table and addressed by an int64 handle. A stale or closed
// handle yields ORC_ERR_INVALID_HANDLE, never undefined behavior. Schemas
// and record batches cross the boundary as Arrow IPC stream bytes, which
// every Arrow implementation can deserialize.
//
// Build with:
//
//	go build -buildmode=c-shared -o liborcbridge.so ./bindings/c
package main

/*
#include <stdlib.h>
#include <stdint.h>
#include <stddef.h>

// API version
#define ORC_BRIDGE_VERSION_MAJOR 0
#define ORC_BRIDGE_VERSION_MINOR 1
#define ORC_BRIDGE_VERSION_PATCH 0

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
*/
import "C"

import (
	"bytes"
	"io"
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow/ipc"

	"github.com/obinnaokechukwu/orcgo"
)

//export orc_bridge_version
func orc_bridge_version(major, minor, patch *C.int32_t) {
	if major != nil {
		*major = C.ORC_BRIDGE_VERSION_MAJOR
	}
	if minor != nil {
		*minor = C.ORC_BRIDGE_VERSION_MINOR
	}
	if patch != nil {
		*patch = C.ORC_BRIDGE_VERSION_PATCH
	}
}

// orc_init loads the ORC native libraries. Hosts may call it eagerly to
// surface configuration problems early; it is also called implicitly by
// orc_reader_open.
//
//export orc_init
func orc_init(cErr *C.orc_error) C.orc_error_code {
	return setError(orcgo.Init(), cErr)
}

// orc_reader_open opens an ORC file and returns a reader handle.
//
//export orc_reader_open
func orc_reader_open(path *C.char, outHandle *C.int64_t, cErr *C.orc_error) C.orc_error_code {
	if path == nil || outHandle == nil {
		return setInvalidArgument(cErr, "path and out_handle must not be NULL")
	}

	r, err := orcgo.Open(C.GoString(path))
	if err != nil {
		return setError(err, cErr)
	}

	*outHandle = C.int64_t(newReaderHandle(r))
	return setError(nil, cErr)
}

//export orc_reader_num_rows
func orc_reader_num_rows(handle C.int64_t, out *C.int64_t, cErr *C.orc_error) C.orc_error_code {
	if out == nil {
		return setInvalidArgument(cErr, "out must not be NULL")
	}
	r, ok := lookupReader(int64(handle))
	if !ok {
		return setInvalidHandle(cErr, "reader")
	}

	n, err := r.NumRows()
	if err != nil {
		return setError(err, cErr)
	}
	*out = C.int64_t(n)
	return setError(nil, cErr)
}

//export orc_reader_num_stripes
func orc_reader_num_stripes(handle C.int64_t, out *C.int64_t, cErr *C.orc_error) C.orc_error_code {
	if out == nil {
		return setInvalidArgument(cErr, "out must not be NULL")
	}
	r, ok := lookupReader(int64(handle))
	if !ok {
		return setInvalidHandle(cErr, "reader")
	}

	*out = C.int64_t(r.NumStripes())
	return setError(nil, cErr)
}

// orc_reader_schema returns the file schema serialized as an Arrow IPC
// stream. The buffer must be released with orc_free_bytes.
//
//export orc_reader_schema
func orc_reader_schema(handle C.int64_t, outData **C.uint8_t, outLen *C.size_t, cErr *C.orc_error) C.orc_error_code {
	if outData == nil || outLen == nil {
		return setInvalidArgument(cErr, "out_data and out_len must not be NULL")
	}
	r, ok := lookupReader(int64(handle))
	if !ok {
		return setInvalidHandle(cErr, "reader")
	}

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(r.Schema()))
	if err := w.Close(); err != nil {
		return setError(err, cErr)
	}

	*outData = (*C.uint8_t)(C.CBytes(buf.Bytes()))
	*outLen = C.size_t(buf.Len())
	return setError(nil, cErr)
}

// orc_reader_next_stripe returns a handle for the next unread stripe, or 0
// when all stripes have been consumed.
//
//export orc_reader_next_stripe
func orc_reader_next_stripe(handle C.int64_t, outHandle *C.int64_t, cErr *C.orc_error) C.orc_error_code {
	if outHandle == nil {
		return setInvalidArgument(cErr, "out_handle must not be NULL")
	}
	r, ok := lookupReader(int64(handle))
	if !ok {
		return setInvalidHandle(cErr, "reader")
	}

	sr, err := r.NextStripeReader()
	if err != nil {
		return setError(err, cErr)
	}
	if sr == nil {
		*outHandle = 0
		return setError(nil, cErr)
	}

	*outHandle = C.int64_t(newStripeHandle(sr))
	return setError(nil, cErr)
}

// orc_reader_stripe_at returns a handle for stripe i, independent of the
// next-stripe cursor.
//
//export orc_reader_stripe_at
func orc_reader_stripe_at(handle C.int64_t, stripe C.int64_t, outHandle *C.int64_t, cErr *C.orc_error) C.orc_error_code {
	if outHandle == nil {
		return setInvalidArgument(cErr, "out_handle must not be NULL")
	}
	r, ok := lookupReader(int64(handle))
	if !ok {
		return setInvalidHandle(cErr, "reader")
	}

	sr, err := r.StripeReaderAt(int(stripe))
	if err != nil {
		return setError(err, cErr)
	}

	*outHandle = C.int64_t(newStripeHandle(sr))
	return setError(nil, cErr)
}

// orc_stripe_next decodes the next record batch of a stripe, serialized as
// an Arrow IPC stream (schema message followed by one record batch). At end
// of stripe it returns ORC_OK with out_len = 0. The buffer must be released
// with orc_free_bytes.
//
//export orc_stripe_next
func orc_stripe_next(handle C.int64_t, outData **C.uint8_t, outLen *C.size_t, cErr *C.orc_error) C.orc_error_code {
	if outData == nil || outLen == nil {
		return setInvalidArgument(cErr, "out_data and out_len must not be NULL")
	}
	s, ok := lookupStripe(int64(handle))
	if !ok {
		return setInvalidHandle(cErr, "stripe")
	}

	rec, err := s.Next()
	if err == io.EOF {
		*outData = nil
		*outLen = 0
		return setError(nil, cErr)
	}
	if err != nil {
		return setError(err, cErr)
	}
	defer rec.Release()

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(rec.Schema()))
	if err := w.Write(rec); err != nil {
		w.Close()
		return setError(err, cErr)
	}
	if err := w.Close(); err != nil {
		return setError(err, cErr)
	}

	*outData = (*C.uint8_t)(C.CBytes(buf.Bytes()))
	*outLen = C.size_t(buf.Len())
	return setError(nil, cErr)
}

// orc_stripe_close releases a stripe reader. Closing an unknown or
// already-closed handle is a no-op.
//
//export orc_stripe_close
func orc_stripe_close(handle C.int64_t) {
	if s := freeStripeHandle(int64(handle)); s != nil {
		s.Close()
	}
}

// orc_reader_close releases a reader. Closing an unknown or already-closed
// handle is a no-op. Stripe handles obtained from the reader stay valid
// until closed themselves; hosts should close stripes first.
//
//export orc_reader_close
func orc_reader_close(handle C.int64_t) {
	if r := freeReaderHandle(int64(handle)); r != nil {
		r.Close()
	}
}

// orc_shutdown closes every live reader and stripe reader. Call once at
// host teardown; it reclaims anything the host failed to close.
//
//export orc_shutdown
func orc_shutdown() {
	clearHandles()
}

// orc_free_bytes releases a buffer returned by orc_reader_schema or
// orc_stripe_next.
//
//export orc_free_bytes
func orc_free_bytes(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// orc_error_free releases the message of an orc_error.
//
//export orc_error_free
func orc_error_free(cErr *C.orc_error) {
	if cErr == nil {
		return
	}
	if cErr.message != nil {
		C.free(unsafe.Pointer(cErr.message))
		cErr.message = nil
	}
	cErr.code = C.ORC_OK
}

func main() {}
