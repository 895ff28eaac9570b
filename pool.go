//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"errors"
	"sync"

	"github.com/obinnaokechukwu/orcgo/liborc"
)

// BatchPool reuses native column vector batches across stripe readers to
// reduce allocation churn when scanning many stripes with the same schema.
//
// All stripe readers sharing a pool must come from readers with the same
// selected schema and batch size; a batch created for one row reader is only
// compatible with row readers over the same column set.
type BatchPool struct {
	mu       sync.Mutex
	idle     []liborc.Batch
	closed   bool
	inUse    int
	maxInUse int
}

// NewBatchPool creates a new pool. If maxInUse <= 0, the pool is unbounded.
func NewBatchPool(maxInUse int) *BatchPool {
	return &BatchPool{maxInUse: maxInUse}
}

// Get returns a batch from the pool, creating one from rr if none is idle.
func (p *BatchPool) Get(rr liborc.RowReader, capacity uint64) (liborc.Batch, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, errors.New("orcgo: batch pool is closed")
	}
	if p.maxInUse > 0 && p.inUse >= p.maxInUse {
		return nil, errors.New("orcgo: batch pool exhausted")
	}

	var b liborc.Batch
	n := len(p.idle)
	if n > 0 {
		b = p.idle[n-1]
		p.idle = p.idle[:n-1]
	} else {
		b = liborc.RowReaderCreateBatch(rr, capacity)
		if b == nil {
			return nil, ErrNotLoaded
		}
	}

	p.inUse++
	return b, nil
}

// Put returns a batch to the pool.
func (p *BatchPool) Put(b liborc.Batch) {
	if p == nil || b == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.inUse--
	if p.closed {
		liborc.BatchFree(b)
		return
	}
	p.idle = append(p.idle, b)
}

// Close frees all idle batches. Batches still in use are freed when
// returned via Put.
func (p *BatchPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for _, b := range p.idle {
		liborc.BatchFree(b)
	}
	p.idle = nil
}

// InUse returns the number of batches currently checked out.
func (p *BatchPool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}
