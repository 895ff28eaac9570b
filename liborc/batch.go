//go:build !ios && !android && (amd64 || arm64)

package liborc

import "unsafe"

// Batch accessors return Go slice views directly over the native column
// vector memory. The views are valid until the next RowReaderNext call on the
// owning row reader or until BatchFree; callers must copy anything they keep.

// BatchNumElements returns the number of rows currently in the batch.
func BatchNumElements(b Batch) uint64 {
	return orcshimBatchNumElements(b)
}

// BatchHasNulls reports whether the batch's null bitmap is populated.
func BatchHasNulls(b Batch) bool {
	return orcshimBatchHasNulls(b) != 0
}

// BatchNotNull returns the validity array (1 = present, 0 = null), or nil
// when the batch has no nulls.
func BatchNotNull(b Batch) []byte {
	if !BatchHasNulls(b) {
		return nil
	}
	p := orcshimBatchNotNull(b)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), BatchNumElements(b))
}

// BatchLongs returns the int64 data array of a boolean/integer/date batch.
func BatchLongs(b Batch) []int64 {
	p := orcshimBatchLongs(b)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*int64)(p), BatchNumElements(b))
}

// BatchDoubles returns the float64 data array of a float/double batch.
func BatchDoubles(b Batch) []float64 {
	p := orcshimBatchDoubles(b)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*float64)(p), BatchNumElements(b))
}

// BatchStringValue returns the i-th value of a string/binary batch.
func BatchStringValue(b Batch, i int) []byte {
	data := orcshimBatchStringData(b)
	lengths := orcshimBatchStringLengths(b)
	if data == nil || lengths == nil {
		return nil
	}
	n := BatchNumElements(b)
	ptrs := unsafe.Slice((**byte)(data), n)
	lens := unsafe.Slice((*int64)(lengths), n)
	if ptrs[i] == nil || lens[i] <= 0 {
		return nil
	}
	return unsafe.Slice(ptrs[i], lens[i])
}

// BatchTimestampSeconds returns the seconds array of a timestamp batch.
func BatchTimestampSeconds(b Batch) []int64 {
	p := orcshimBatchTSSeconds(b)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*int64)(p), BatchNumElements(b))
}

// BatchTimestampNanos returns the sub-second nanoseconds array of a
// timestamp batch.
func BatchTimestampNanos(b Batch) []int64 {
	p := orcshimBatchTSNanos(b)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*int64)(p), BatchNumElements(b))
}

// BatchListOffsets returns the offsets array of a list batch. It has
// BatchNumElements+1 entries; element i spans [offsets[i], offsets[i+1]) in
// the child batch.
func BatchListOffsets(b Batch) []int64 {
	p := orcshimBatchListOffsets(b)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*int64)(p), BatchNumElements(b)+1)
}

// BatchDecimal128 returns the i-th value of a decimal batch as a 128-bit
// integer split into high and low words.
func BatchDecimal128(b Batch, i int) (hi int64, lo uint64) {
	orcshimBatchDecimal(b, uint64(i), &hi, &lo)
	return hi, lo
}

// BatchChildCount returns the number of child batches (struct fields, or 1
// for a list element batch).
func BatchChildCount(b Batch) uint64 {
	return orcshimBatchChildCount(b)
}

// BatchChild returns the i-th child batch. Borrowed from the parent.
func BatchChild(b Batch, i int) Batch {
	return Batch(orcshimBatchChild(b, uint64(i)))
}
