//go:build !ios && !android && (amd64 || arm64)

// Package liborc provides low-level bindings to the Apache ORC library via
// the orcshim helper, loaded with purego (no CGO).
//
// The objects handed out by this package (Reader, RowReader, Type, Batch) are
// opaque pointers into native memory. Their lifetimes are owned by the caller:
// every Reader must be balanced by ReaderClose, every RowReader by
// RowReaderClose, and every Batch by BatchFree. Type pointers are borrowed
// from their Reader and must not be used after the Reader is closed.
//
// Higher layers should prefer the orcgo root package, which wraps these
// bindings in Go-owned structs with Close methods.
package liborc

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/orcgo/internal/bindings"
)

// Reader is an opaque orc::Reader pointer.
type Reader = unsafe.Pointer

// RowReader is an opaque orc::RowReader pointer.
type RowReader = unsafe.Pointer

// Type is an opaque orc::Type pointer, borrowed from its Reader.
type Type = unsafe.Pointer

// Batch is an opaque orc::ColumnVectorBatch pointer.
type Batch = unsafe.Pointer

// Function bindings
var (
	orcshimReaderOpen       func(path string, out *unsafe.Pointer, errMsg *unsafe.Pointer) int32
	orcshimReaderOpenStream func(readCb uintptr, opaque uintptr, size uint64, name string, out *unsafe.Pointer, errMsg *unsafe.Pointer) int32
	orcshimReaderClose      func(r unsafe.Pointer)
	orcshimReaderNumRows    func(r unsafe.Pointer) uint64
	orcshimReaderNumStripes func(r unsafe.Pointer) uint64
	orcshimReaderStripeRows func(r unsafe.Pointer, stripe uint64) uint64
	orcshimReaderCompress   func(r unsafe.Pointer) int32
	orcshimReaderType       func(r unsafe.Pointer) unsafe.Pointer
	orcshimReaderRowReader  func(r unsafe.Pointer, stripe int64, include string, out *unsafe.Pointer, errMsg *unsafe.Pointer) int32

	orcshimRowReaderClose       func(rr unsafe.Pointer)
	orcshimRowReaderType        func(rr unsafe.Pointer) unsafe.Pointer
	orcshimRowReaderCreateBatch func(rr unsafe.Pointer, capacity uint64) unsafe.Pointer
	orcshimRowReaderNext        func(rr unsafe.Pointer, b unsafe.Pointer, errMsg *unsafe.Pointer) int32

	orcshimTypeKind         func(t unsafe.Pointer) int32
	orcshimTypeSubtypeCount func(t unsafe.Pointer) uint64
	orcshimTypeSubtype      func(t unsafe.Pointer, i uint64) unsafe.Pointer
	orcshimTypeFieldName    func(t unsafe.Pointer, i uint64) *byte
	orcshimTypePrecision    func(t unsafe.Pointer) uint64
	orcshimTypeScale        func(t unsafe.Pointer) uint64
	orcshimTypeMaxLength    func(t unsafe.Pointer) uint64

	orcshimBatchNumElements   func(b unsafe.Pointer) uint64
	orcshimBatchHasNulls      func(b unsafe.Pointer) int32
	orcshimBatchNotNull       func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchLongs         func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchDoubles       func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchStringData    func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchStringLengths func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchTSSeconds     func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchTSNanos       func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchListOffsets   func(b unsafe.Pointer) unsafe.Pointer
	orcshimBatchDecimal       func(b unsafe.Pointer, i uint64, hi *int64, lo *uint64) int32
	orcshimBatchChildCount    func(b unsafe.Pointer) uint64
	orcshimBatchChild         func(b unsafe.Pointer, i uint64) unsafe.Pointer
	orcshimBatchFree          func(b unsafe.Pointer)

	orcshimFreeString     func(p unsafe.Pointer)
	orcshimSetLogCallback func(cb uintptr)

	bindingsRegistered bool
)

func init() {
	registerBindings()
}

func registerBindings() {
	if bindingsRegistered {
		return
	}

	if err := bindings.Load(); err != nil {
		return
	}

	lib := bindings.LibORCShim()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&orcshimReaderOpen, lib, "orcshim_reader_open")
	purego.RegisterLibFunc(&orcshimReaderOpenStream, lib, "orcshim_reader_open_stream")
	purego.RegisterLibFunc(&orcshimReaderClose, lib, "orcshim_reader_close")
	purego.RegisterLibFunc(&orcshimReaderNumRows, lib, "orcshim_reader_num_rows")
	purego.RegisterLibFunc(&orcshimReaderNumStripes, lib, "orcshim_reader_num_stripes")
	purego.RegisterLibFunc(&orcshimReaderStripeRows, lib, "orcshim_reader_stripe_rows")
	purego.RegisterLibFunc(&orcshimReaderCompress, lib, "orcshim_reader_compression")
	purego.RegisterLibFunc(&orcshimReaderType, lib, "orcshim_reader_type")
	purego.RegisterLibFunc(&orcshimReaderRowReader, lib, "orcshim_reader_row_reader")

	purego.RegisterLibFunc(&orcshimRowReaderClose, lib, "orcshim_row_reader_close")
	purego.RegisterLibFunc(&orcshimRowReaderType, lib, "orcshim_row_reader_type")
	purego.RegisterLibFunc(&orcshimRowReaderCreateBatch, lib, "orcshim_row_reader_create_batch")
	purego.RegisterLibFunc(&orcshimRowReaderNext, lib, "orcshim_row_reader_next")

	purego.RegisterLibFunc(&orcshimTypeKind, lib, "orcshim_type_kind")
	purego.RegisterLibFunc(&orcshimTypeSubtypeCount, lib, "orcshim_type_subtype_count")
	purego.RegisterLibFunc(&orcshimTypeSubtype, lib, "orcshim_type_subtype")
	purego.RegisterLibFunc(&orcshimTypeFieldName, lib, "orcshim_type_field_name")
	purego.RegisterLibFunc(&orcshimTypePrecision, lib, "orcshim_type_precision")
	purego.RegisterLibFunc(&orcshimTypeScale, lib, "orcshim_type_scale")
	purego.RegisterLibFunc(&orcshimTypeMaxLength, lib, "orcshim_type_max_length")

	purego.RegisterLibFunc(&orcshimBatchNumElements, lib, "orcshim_batch_num_elements")
	purego.RegisterLibFunc(&orcshimBatchHasNulls, lib, "orcshim_batch_has_nulls")
	purego.RegisterLibFunc(&orcshimBatchNotNull, lib, "orcshim_batch_not_null")
	purego.RegisterLibFunc(&orcshimBatchLongs, lib, "orcshim_batch_longs")
	purego.RegisterLibFunc(&orcshimBatchDoubles, lib, "orcshim_batch_doubles")
	purego.RegisterLibFunc(&orcshimBatchStringData, lib, "orcshim_batch_string_data")
	purego.RegisterLibFunc(&orcshimBatchStringLengths, lib, "orcshim_batch_string_lengths")
	purego.RegisterLibFunc(&orcshimBatchTSSeconds, lib, "orcshim_batch_ts_seconds")
	purego.RegisterLibFunc(&orcshimBatchTSNanos, lib, "orcshim_batch_ts_nanos")
	purego.RegisterLibFunc(&orcshimBatchListOffsets, lib, "orcshim_batch_list_offsets")
	purego.RegisterLibFunc(&orcshimBatchDecimal, lib, "orcshim_batch_decimal128")
	purego.RegisterLibFunc(&orcshimBatchChildCount, lib, "orcshim_batch_child_count")
	purego.RegisterLibFunc(&orcshimBatchChild, lib, "orcshim_batch_child")
	purego.RegisterLibFunc(&orcshimBatchFree, lib, "orcshim_batch_free")

	purego.RegisterLibFunc(&orcshimFreeString, lib, "orcshim_free_string")
	purego.RegisterLibFunc(&orcshimSetLogCallback, lib, "orcshim_set_log_callback")

	bindingsRegistered = true
}

// Load ensures the orcshim library is loaded and all bindings are registered.
func Load() error {
	if err := bindings.Load(); err != nil {
		return err
	}
	registerBindings()
	return nil
}

// takeErrMsg converts and frees a shim-allocated error message.
func takeErrMsg(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	msg := cString((*byte)(p))
	orcshimFreeString(p)
	return msg
}

// cString converts a NUL-terminated C string to a Go string.
func cString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// OpenFile opens an ORC file from the local filesystem.
func OpenFile(path string) (Reader, error) {
	if err := Load(); err != nil {
		return nil, err
	}

	var out, errMsg unsafe.Pointer
	code := orcshimReaderOpen(path, &out, &errMsg)
	if code != StatusOK {
		return nil, NewError(code, "reader_open", takeErrMsg(errMsg))
	}
	return Reader(out), nil
}

// OpenStream opens an ORC reader over a custom input stream.
//
// readCb must be a C function pointer (purego.NewCallback) with signature
// int64_t (*)(uintptr_t opaque, char* buf, uint64_t length, uint64_t offset),
// returning the number of bytes read or a negative value on failure. opaque is
// passed back to every invocation; callers typically use a handle registry
// value so no Go pointer crosses the boundary. size is the total stream
// length and name is used in native error messages.
func OpenStream(readCb uintptr, opaque uintptr, size uint64, name string) (Reader, error) {
	if err := Load(); err != nil {
		return nil, err
	}

	var out, errMsg unsafe.Pointer
	code := orcshimReaderOpenStream(readCb, opaque, size, name, &out, &errMsg)
	if code != StatusOK {
		return nil, NewError(code, "reader_open_stream", takeErrMsg(errMsg))
	}
	return Reader(out), nil
}

// ReaderClose destroys a reader. The reader's Type pointers become invalid.
func ReaderClose(r Reader) {
	if r == nil || orcshimReaderClose == nil {
		return
	}
	orcshimReaderClose(r)
}

// ReaderNumRows returns the total number of rows in the file.
func ReaderNumRows(r Reader) uint64 {
	return orcshimReaderNumRows(r)
}

// ReaderNumStripes returns the number of stripes in the file.
func ReaderNumStripes(r Reader) uint64 {
	return orcshimReaderNumStripes(r)
}

// ReaderStripeRows returns the number of rows in stripe i.
func ReaderStripeRows(r Reader, i uint64) uint64 {
	return orcshimReaderStripeRows(r, i)
}

// ReaderCompression returns the file's block compression kind.
func ReaderCompression(r Reader) CompressionKind {
	return CompressionKind(orcshimReaderCompress(r))
}

// ReaderType returns the file's root type (always a struct). Borrowed.
func ReaderType(r Reader) Type {
	return Type(orcshimReaderType(r))
}

// ReaderRowReader creates a row reader. stripe selects a single stripe to
// scan, or -1 for the whole file. include is a comma-separated list of
// top-level column names to read; empty means all columns.
func ReaderRowReader(r Reader, stripe int64, include string) (RowReader, error) {
	var out, errMsg unsafe.Pointer
	code := orcshimReaderRowReader(r, stripe, include, &out, &errMsg)
	if code != StatusOK {
		return nil, NewError(code, "row_reader", takeErrMsg(errMsg))
	}
	return RowReader(out), nil
}

// RowReaderClose destroys a row reader.
func RowReaderClose(rr RowReader) {
	if rr == nil || orcshimRowReaderClose == nil {
		return
	}
	orcshimRowReaderClose(rr)
}

// RowReaderType returns the selected schema of the row reader. Borrowed.
func RowReaderType(rr RowReader) Type {
	return Type(orcshimRowReaderType(rr))
}

// RowReaderCreateBatch allocates a column vector batch sized for capacity
// rows. The batch must be released with BatchFree.
func RowReaderCreateBatch(rr RowReader, capacity uint64) Batch {
	return Batch(orcshimRowReaderCreateBatch(rr, capacity))
}

// RowReaderNext reads the next batch of rows into b. It returns false when
// the reader is exhausted.
func RowReaderNext(rr RowReader, b Batch) (bool, error) {
	var errMsg unsafe.Pointer
	code := orcshimRowReaderNext(rr, b, &errMsg)
	switch {
	case code > 0:
		return true, nil
	case code == 0:
		return false, nil
	default:
		return false, NewError(-code, "row_reader_next", takeErrMsg(errMsg))
	}
}

// SetLogCallback installs a C function pointer the shim invokes for
// diagnostic messages. Pass 0 to silence the shim. The callback signature is
// void (*)(int32_t severity, const char* message).
func SetLogCallback(cb uintptr) error {
	if err := Load(); err != nil {
		return err
	}
	orcshimSetLogCallback(cb)
	return nil
}

// BatchFree releases a column vector batch.
func BatchFree(b Batch) {
	if b == nil || orcshimBatchFree == nil {
		return
	}
	orcshimBatchFree(b)
}
