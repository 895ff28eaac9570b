//go:build !ios && !android && (amd64 || arm64)

package adapter

import "github.com/obinnaokechukwu/orcgo/liborc"

// nativeBatch adapts a native ORC column vector batch to the ColumnBatch
// interface. All slices alias native memory owned by the batch.
type nativeBatch struct {
	b liborc.Batch
}

// Native wraps a native column vector batch for conversion.
func Native(b liborc.Batch) ColumnBatch {
	return nativeBatch{b: b}
}

func (n nativeBatch) Len() int                 { return int(liborc.BatchNumElements(n.b)) }
func (n nativeBatch) NotNull() []byte          { return liborc.BatchNotNull(n.b) }
func (n nativeBatch) Longs() []int64           { return liborc.BatchLongs(n.b) }
func (n nativeBatch) Doubles() []float64       { return liborc.BatchDoubles(n.b) }
func (n nativeBatch) Value(i int) []byte       { return liborc.BatchStringValue(n.b, i) }
func (n nativeBatch) TimestampSeconds() []int64 { return liborc.BatchTimestampSeconds(n.b) }
func (n nativeBatch) TimestampNanos() []int64  { return liborc.BatchTimestampNanos(n.b) }
func (n nativeBatch) ListOffsets() []int64     { return liborc.BatchListOffsets(n.b) }

func (n nativeBatch) Decimal128(i int) (int64, uint64) {
	return liborc.BatchDecimal128(n.b, i)
}

func (n nativeBatch) Child(i int) ColumnBatch {
	return nativeBatch{b: liborc.BatchChild(n.b, i)}
}
