//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"io"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/orcgo/internal/registry"
	"github.com/obinnaokechukwu/orcgo/liborc"
)

// Custom input streams hand the native library a C callback plus an opaque
// word. Go pointers must not cross that boundary, so each open stream is
// registered here and the opaque word carries its handle; read callbacks
// arriving on native threads resolve the handle back to the Go stream. An
// erased handle makes late callbacks fail cleanly instead of touching a
// freed stream.
var streams = registry.New[*boundStream]()

type boundStream struct {
	ra     io.ReaderAt
	size   int64
	handle int64
}

func (b *boundStream) release() {
	streams.Erase(b.handle)
}

// Registered once and shared by every stream; the per-stream state travels
// in the opaque handle (purego callbacks are a limited global resource).
var (
	streamCBOnce sync.Once
	streamCBPtr  uintptr
)

func initStreamCallback() {
	streamCBOnce.Do(func() {
		// int64_t read(uintptr_t opaque, char* buf, uint64_t length, uint64_t offset)
		streamCBPtr = purego.NewCallback(func(_ purego.CDecl, opaque uintptr, buf *byte, length uint64, offset uint64) int64 {
			st, ok := streams.Lookup(int64(opaque))
			if !ok {
				// Stream already closed; report failure to the native reader.
				return -1
			}

			goBuf := unsafe.Slice(buf, length)
			n, err := st.ra.ReadAt(goBuf, int64(offset))
			if err != nil && err != io.EOF {
				return -1
			}
			return int64(n)
		})
	})
}

// OpenReaderAt opens an ORC reader over any io.ReaderAt. size must be the
// total length of the stream; name appears in native error messages.
//
// The ReaderAt must tolerate concurrent calls if the resulting Reader's
// stripe readers are used from multiple goroutines (os.File and bytes.Reader
// both qualify).
func OpenReaderAt(ra io.ReaderAt, size int64, name string, options ...Option) (*Reader, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	initStreamCallback()

	st := &boundStream{ra: ra, size: size}
	st.handle = streams.Insert(st)

	r, err := liborc.OpenStream(streamCBPtr, uintptr(st.handle), uint64(size), name)
	if err != nil {
		st.release()
		return nil, err
	}

	reader, err := newReader(r, st, options)
	if err != nil {
		return nil, err
	}
	return reader, nil
}
