//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"strings"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/obinnaokechukwu/orcgo/adapter"
	"github.com/obinnaokechukwu/orcgo/liborc"
)

// DefaultBatchSize is the number of rows decoded per record batch.
const DefaultBatchSize = 1024

// Reader reads an ORC file and exposes its stripes as Arrow record streams.
type Reader struct {
	mu sync.Mutex

	reader liborc.Reader
	desc   *liborc.TypeDesc
	schema *arrow.Schema

	opts       readerOptions
	numStripes uint64
	nextStripe uint64

	stream *boundStream // non-nil when reading from a custom stream
	closed bool
}

type readerOptions struct {
	batchSize   uint64
	include     []string
	alloc       memory.Allocator
	parallelism int
	pool        *BatchPool
}

// Option is a functional option for configuring a reader.
type Option func(*readerOptions)

// WithBatchSize sets the number of rows per decoded record batch.
func WithBatchSize(n int) Option {
	return func(o *readerOptions) {
		if n > 0 {
			o.batchSize = uint64(n)
		}
	}
}

// WithIncludedColumns restricts reading to the named top-level columns.
func WithIncludedColumns(names ...string) Option {
	return func(o *readerOptions) {
		o.include = names
	}
}

// WithAllocator sets the Arrow allocator used for record batches.
func WithAllocator(alloc memory.Allocator) Option {
	return func(o *readerOptions) {
		if alloc != nil {
			o.alloc = alloc
		}
	}
}

// WithParallelism bounds the number of stripes decoded concurrently by
// ReadStripes. Zero or negative means one goroutine per CPU.
func WithParallelism(n int) Option {
	return func(o *readerOptions) {
		o.parallelism = n
	}
}

// WithBatchPool reuses native row batches across stripe readers.
func WithBatchPool(p *BatchPool) Option {
	return func(o *readerOptions) {
		o.pool = p
	}
}

func defaultOptions() readerOptions {
	return readerOptions{
		batchSize: DefaultBatchSize,
		alloc:     memory.DefaultAllocator,
	}
}

// Open opens an ORC file from the local filesystem.
func Open(path string, options ...Option) (*Reader, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	r, err := liborc.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newReader(r, nil, options)
}

func newReader(r liborc.Reader, stream *boundStream, options []Option) (*Reader, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	desc := liborc.DescribeType(liborc.ReaderType(r))
	schema, err := adapter.SchemaOf(desc)
	if err != nil {
		liborc.ReaderClose(r)
		if stream != nil {
			stream.release()
		}
		return nil, err
	}

	return &Reader{
		reader:     r,
		desc:       desc,
		schema:     schema,
		opts:       opts,
		numStripes: liborc.ReaderNumStripes(r),
		stream:     stream,
	}, nil
}

// Schema returns the Arrow schema of the full file (before column
// projection).
func (r *Reader) Schema() *arrow.Schema {
	return r.schema
}

// Type returns the ORC type tree of the file.
func (r *Reader) Type() *liborc.TypeDesc {
	return r.desc
}

// NumRows returns the total number of rows in the file.
func (r *Reader) NumRows() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, ErrClosed
	}
	return int64(liborc.ReaderNumRows(r.reader)), nil
}

// NumStripes returns the number of stripes in the file.
func (r *Reader) NumStripes() int {
	return int(r.numStripes)
}

// StripeRows returns the number of rows in stripe i.
func (r *Reader) StripeRows(i int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, ErrClosed
	}
	return int64(liborc.ReaderStripeRows(r.reader, uint64(i))), nil
}

// Compression returns the file's block compression kind.
func (r *Reader) Compression() (CompressionKind, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return CompressionNone, ErrClosed
	}
	return liborc.ReaderCompression(r.reader), nil
}

// NextStripeReader returns a reader for the next unread stripe, or nil when
// all stripes have been consumed. The returned stripe reader must be closed.
func (r *Reader) NextStripeReader() (*StripeReader, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrClosed
	}
	if r.nextStripe >= r.numStripes {
		r.mu.Unlock()
		return nil, nil
	}
	stripe := r.nextStripe
	r.nextStripe++
	r.mu.Unlock()

	return r.StripeReaderAt(int(stripe))
}

// StripeReaderAt returns a reader for stripe i. Stripe readers for different
// stripes are independent and may be used from different goroutines.
func (r *Reader) StripeReaderAt(i int) (*StripeReader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	if i < 0 || uint64(i) >= r.numStripes {
		return nil, ErrNoStripes
	}

	rr, err := liborc.ReaderRowReader(r.reader, int64(i), strings.Join(r.opts.include, ","))
	if err != nil {
		return nil, err
	}
	return newStripeReader(rr, r.opts)
}

// Close releases the native reader. Stripe readers obtained earlier stay
// usable until they are closed themselves; close them first in normal use.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	liborc.ReaderClose(r.reader)
	r.reader = nil
	if r.stream != nil {
		r.stream.release()
		r.stream = nil
	}
	return nil
}
