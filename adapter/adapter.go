// Package adapter converts ORC schemas and column vector batches into Apache
// Arrow types and arrays.
//
// The conversion is pure: it reads a decoded batch and appends rows to an
// Arrow builder. It never touches reader lifetimes or handle state; callers
// resolve the native resources and hand in a ColumnBatch view.
package adapter

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/obinnaokechukwu/orcgo/liborc"
)

// ErrUnsupportedType is wrapped by conversion errors for ORC types that have
// no Arrow mapping here (map, union).
var ErrUnsupportedType = fmt.Errorf("orcgo: unsupported ORC type")

// ColumnBatch is the adapter's view of one decoded ORC column vector batch.
// Implementations expose the native arrays directly; all slices are valid
// only until the underlying batch is refilled or freed.
type ColumnBatch interface {
	// Len returns the number of rows in the batch.
	Len() int
	// NotNull returns the validity array (1 = present), or nil when every
	// row is present.
	NotNull() []byte
	// Longs returns the int64 data array (boolean, integer, date, and
	// short-decimal batches).
	Longs() []int64
	// Doubles returns the float64 data array (float and double batches).
	Doubles() []float64
	// Value returns the i-th variable-length value (string and binary
	// batches).
	Value(i int) []byte
	// TimestampSeconds and TimestampNanos return the two halves of a
	// timestamp batch.
	TimestampSeconds() []int64
	TimestampNanos() []int64
	// ListOffsets returns the Len()+1 offsets of a list batch.
	ListOffsets() []int64
	// Decimal128 returns the i-th value of a long-decimal batch.
	Decimal128(i int) (hi int64, lo uint64)
	// Child returns the i-th child batch (struct fields, list elements).
	Child(i int) ColumnBatch
}

// GetArrowType maps an ORC type to its Arrow equivalent.
func GetArrowType(desc *liborc.TypeDesc) (arrow.DataType, error) {
	switch desc.Kind {
	case liborc.KindBoolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case liborc.KindByte:
		return arrow.PrimitiveTypes.Int8, nil
	case liborc.KindShort:
		return arrow.PrimitiveTypes.Int16, nil
	case liborc.KindInt:
		return arrow.PrimitiveTypes.Int32, nil
	case liborc.KindLong:
		return arrow.PrimitiveTypes.Int64, nil
	case liborc.KindFloat:
		return arrow.PrimitiveTypes.Float32, nil
	case liborc.KindDouble:
		return arrow.PrimitiveTypes.Float64, nil
	case liborc.KindString, liborc.KindVarchar, liborc.KindChar:
		return arrow.BinaryTypes.String, nil
	case liborc.KindBinary:
		return arrow.BinaryTypes.Binary, nil
	case liborc.KindDate:
		return arrow.FixedWidthTypes.Date32, nil
	case liborc.KindTimestamp, liborc.KindTimestampInstant:
		return arrow.FixedWidthTypes.Timestamp_ns, nil
	case liborc.KindDecimal:
		return &arrow.Decimal128Type{
			Precision: desc.Precision,
			Scale:     desc.Scale,
		}, nil
	case liborc.KindStruct:
		fields := make([]arrow.Field, len(desc.Children))
		for i, child := range desc.Children {
			dt, err := GetArrowType(child)
			if err != nil {
				return nil, err
			}
			fields[i] = arrow.Field{Name: desc.FieldNames[i], Type: dt, Nullable: true}
		}
		return arrow.StructOf(fields...), nil
	case liborc.KindList:
		elem, err := GetArrowType(desc.Children[0])
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(elem), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, desc.Kind)
	}
}

// SchemaOf maps a file's root struct type to an Arrow schema.
func SchemaOf(root *liborc.TypeDesc) (*arrow.Schema, error) {
	if root.Kind != liborc.KindStruct {
		return nil, fmt.Errorf("%w: root type is %s, expected struct", ErrUnsupportedType, root.Kind)
	}
	fields := make([]arrow.Field, len(root.Children))
	for i, child := range root.Children {
		dt, err := GetArrowType(child)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: root.FieldNames[i], Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}

// AppendBatch appends length logical rows of batch, starting at offset, to
// builder. The builder must have been created for the Arrow type returned by
// GetArrowType(desc).
func AppendBatch(desc *liborc.TypeDesc, batch ColumnBatch, offset, length int64, builder array.Builder) error {
	switch desc.Kind {
	case liborc.KindBoolean:
		return appendBools(batch, offset, length, builder.(*array.BooleanBuilder))
	case liborc.KindByte:
		return appendInts(batch, offset, length, builder.(*array.Int8Builder))
	case liborc.KindShort:
		return appendInt16s(batch, offset, length, builder.(*array.Int16Builder))
	case liborc.KindInt:
		return appendInt32s(batch, offset, length, builder.(*array.Int32Builder))
	case liborc.KindLong:
		return appendInt64s(batch, offset, length, builder.(*array.Int64Builder))
	case liborc.KindFloat:
		return appendFloat32s(batch, offset, length, builder.(*array.Float32Builder))
	case liborc.KindDouble:
		return appendFloat64s(batch, offset, length, builder.(*array.Float64Builder))
	case liborc.KindString, liborc.KindVarchar, liborc.KindChar:
		return appendStrings(batch, offset, length, builder.(*array.StringBuilder))
	case liborc.KindBinary:
		return appendBinary(batch, offset, length, builder.(*array.BinaryBuilder))
	case liborc.KindDate:
		return appendDates(batch, offset, length, builder.(*array.Date32Builder))
	case liborc.KindTimestamp, liborc.KindTimestampInstant:
		return appendTimestamps(batch, offset, length, builder.(*array.TimestampBuilder))
	case liborc.KindDecimal:
		return appendDecimals(desc, batch, offset, length, builder.(*array.Decimal128Builder))
	case liborc.KindStruct:
		return appendStructs(desc, batch, offset, length, builder.(*array.StructBuilder))
	case liborc.KindList:
		return appendLists(desc, batch, offset, length, builder.(*array.ListBuilder))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, desc.Kind)
	}
}

// valid reports whether row i is present given a validity array that may be
// nil (meaning all rows present).
func valid(notNull []byte, i int64) bool {
	return notNull == nil || notNull[i] != 0
}

func validity(batch ColumnBatch, offset, length int64) []bool {
	notNull := batch.NotNull()
	if notNull == nil {
		return nil
	}
	out := make([]bool, length)
	for i := int64(0); i < length; i++ {
		out[i] = notNull[offset+i] != 0
	}
	return out
}

func appendBools(batch ColumnBatch, offset, length int64, b *array.BooleanBuilder) error {
	longs := batch.Longs()
	vals := make([]bool, length)
	for i := int64(0); i < length; i++ {
		vals[i] = longs[offset+i] != 0
	}
	b.AppendValues(vals, validity(batch, offset, length))
	return nil
}

func appendInts(batch ColumnBatch, offset, length int64, b *array.Int8Builder) error {
	longs := batch.Longs()
	vals := make([]int8, length)
	for i := int64(0); i < length; i++ {
		vals[i] = int8(longs[offset+i])
	}
	b.AppendValues(vals, validity(batch, offset, length))
	return nil
}

func appendInt16s(batch ColumnBatch, offset, length int64, b *array.Int16Builder) error {
	longs := batch.Longs()
	vals := make([]int16, length)
	for i := int64(0); i < length; i++ {
		vals[i] = int16(longs[offset+i])
	}
	b.AppendValues(vals, validity(batch, offset, length))
	return nil
}

func appendInt32s(batch ColumnBatch, offset, length int64, b *array.Int32Builder) error {
	longs := batch.Longs()
	vals := make([]int32, length)
	for i := int64(0); i < length; i++ {
		vals[i] = int32(longs[offset+i])
	}
	b.AppendValues(vals, validity(batch, offset, length))
	return nil
}

func appendInt64s(batch ColumnBatch, offset, length int64, b *array.Int64Builder) error {
	longs := batch.Longs()
	b.AppendValues(longs[offset:offset+length], validity(batch, offset, length))
	return nil
}

func appendFloat32s(batch ColumnBatch, offset, length int64, b *array.Float32Builder) error {
	doubles := batch.Doubles()
	vals := make([]float32, length)
	for i := int64(0); i < length; i++ {
		vals[i] = float32(doubles[offset+i])
	}
	b.AppendValues(vals, validity(batch, offset, length))
	return nil
}

func appendFloat64s(batch ColumnBatch, offset, length int64, b *array.Float64Builder) error {
	doubles := batch.Doubles()
	b.AppendValues(doubles[offset:offset+length], validity(batch, offset, length))
	return nil
}

func appendStrings(batch ColumnBatch, offset, length int64, b *array.StringBuilder) error {
	notNull := batch.NotNull()
	for i := int64(0); i < length; i++ {
		if !valid(notNull, offset+i) {
			b.AppendNull()
			continue
		}
		b.Append(string(batch.Value(int(offset + i))))
	}
	return nil
}

func appendBinary(batch ColumnBatch, offset, length int64, b *array.BinaryBuilder) error {
	notNull := batch.NotNull()
	for i := int64(0); i < length; i++ {
		if !valid(notNull, offset+i) {
			b.AppendNull()
			continue
		}
		b.Append(batch.Value(int(offset + i)))
	}
	return nil
}

func appendDates(batch ColumnBatch, offset, length int64, b *array.Date32Builder) error {
	longs := batch.Longs()
	vals := make([]arrow.Date32, length)
	for i := int64(0); i < length; i++ {
		vals[i] = arrow.Date32(longs[offset+i])
	}
	b.AppendValues(vals, validity(batch, offset, length))
	return nil
}

func appendTimestamps(batch ColumnBatch, offset, length int64, b *array.TimestampBuilder) error {
	secs := batch.TimestampSeconds()
	nanos := batch.TimestampNanos()
	vals := make([]arrow.Timestamp, length)
	for i := int64(0); i < length; i++ {
		vals[i] = arrow.Timestamp(secs[offset+i]*1e9 + nanos[offset+i])
	}
	b.AppendValues(vals, validity(batch, offset, length))
	return nil
}

func appendDecimals(desc *liborc.TypeDesc, batch ColumnBatch, offset, length int64, b *array.Decimal128Builder) error {
	notNull := batch.NotNull()
	// ORC stores precision <= 18 in 64-bit batches, exposed via Longs.
	if desc.Precision > 0 && desc.Precision <= 18 {
		longs := batch.Longs()
		for i := int64(0); i < length; i++ {
			if !valid(notNull, offset+i) {
				b.AppendNull()
				continue
			}
			b.Append(decimal128.FromI64(longs[offset+i]))
		}
		return nil
	}
	for i := int64(0); i < length; i++ {
		if !valid(notNull, offset+i) {
			b.AppendNull()
			continue
		}
		hi, lo := batch.Decimal128(int(offset + i))
		b.Append(decimal128.New(hi, lo))
	}
	return nil
}

func appendStructs(desc *liborc.TypeDesc, batch ColumnBatch, offset, length int64, b *array.StructBuilder) error {
	notNull := batch.NotNull()
	// AppendValues sets only the parent validity bitmap. Per-row Append(false)
	// would also push a null into every child builder, shifting the full-window
	// child appends below out of row alignment.
	valids := make([]bool, length)
	for i := int64(0); i < length; i++ {
		valids[i] = valid(notNull, offset+i)
	}
	b.AppendValues(valids)
	// ORC struct children are row-aligned with the parent, including at null
	// parent positions, matching the Arrow struct layout.
	for i, child := range desc.Children {
		if err := AppendBatch(child, batch.Child(i), offset, length, b.FieldBuilder(i)); err != nil {
			return err
		}
	}
	return nil
}

func appendLists(desc *liborc.TypeDesc, batch ColumnBatch, offset, length int64, b *array.ListBuilder) error {
	notNull := batch.NotNull()
	offsets := batch.ListOffsets()
	elems := batch.Child(0)
	for i := int64(0); i < length; i++ {
		if !valid(notNull, offset+i) {
			b.AppendNull()
			continue
		}
		b.Append(true)
		start := offsets[offset+i]
		count := offsets[offset+i+1] - start
		if count == 0 {
			continue
		}
		if err := AppendBatch(desc.Children[0], elems, start, count, b.ValueBuilder()); err != nil {
			return err
		}
	}
	return nil
}
