//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"io"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/obinnaokechukwu/orcgo/adapter"
	"github.com/obinnaokechukwu/orcgo/liborc"
)

// StripeReader decodes one stripe of an ORC file into Arrow records.
type StripeReader struct {
	mu sync.Mutex

	rowReader liborc.RowReader
	batch     liborc.Batch
	desc      *liborc.TypeDesc // selected schema (after column projection)
	schema    *arrow.Schema

	opts   readerOptions
	closed bool
}

func newStripeReader(rr liborc.RowReader, opts readerOptions) (*StripeReader, error) {
	desc := liborc.DescribeType(liborc.RowReaderType(rr))
	schema, err := adapter.SchemaOf(desc)
	if err != nil {
		liborc.RowReaderClose(rr)
		return nil, err
	}

	var batch liborc.Batch
	if opts.pool != nil {
		batch, err = opts.pool.Get(rr, opts.batchSize)
		if err != nil {
			liborc.RowReaderClose(rr)
			return nil, err
		}
	} else {
		batch = liborc.RowReaderCreateBatch(rr, opts.batchSize)
	}

	return &StripeReader{
		rowReader: rr,
		batch:     batch,
		desc:      desc,
		schema:    schema,
		opts:      opts,
	}, nil
}

// Schema returns the Arrow schema of the records produced by this stripe
// reader (after column projection).
func (s *StripeReader) Schema() *arrow.Schema {
	return s.schema
}

// Next decodes and returns the next record batch. It returns io.EOF when the
// stripe is exhausted. The caller owns the record and must Release it.
func (s *StripeReader) Next() (arrow.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	ok, err := liborc.RowReaderNext(s.rowReader, s.batch)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}

	rows := int64(liborc.BatchNumElements(s.batch))

	bldr := array.NewRecordBuilder(s.opts.alloc, s.schema)
	defer bldr.Release()
	bldr.Reserve(int(rows))

	for i, child := range s.desc.Children {
		col := adapter.Native(liborc.BatchChild(s.batch, i))
		if err := adapter.AppendBatch(child, col, 0, rows, bldr.Field(i)); err != nil {
			return nil, err
		}
	}

	return bldr.NewRecord(), nil
}

// Close releases the native row reader and its batch. Safe to call twice.
func (s *StripeReader) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if s.opts.pool != nil {
		s.opts.pool.Put(s.batch)
	} else {
		liborc.BatchFree(s.batch)
	}
	s.batch = nil

	liborc.RowReaderClose(s.rowReader)
	s.rowReader = nil
	return nil
}
