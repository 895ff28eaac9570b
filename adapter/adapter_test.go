package adapter

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/obinnaokechukwu/orcgo/liborc"
)

// fakeBatch is an in-memory ColumnBatch for conversion tests.
type fakeBatch struct {
	length   int
	notNull  []byte
	longs    []int64
	doubles  []float64
	values   [][]byte
	tsSecs   []int64
	tsNanos  []int64
	offsets  []int64
	children []*fakeBatch
}

func (f *fakeBatch) Len() int                  { return f.length }
func (f *fakeBatch) NotNull() []byte           { return f.notNull }
func (f *fakeBatch) Longs() []int64            { return f.longs }
func (f *fakeBatch) Doubles() []float64        { return f.doubles }
func (f *fakeBatch) Value(i int) []byte        { return f.values[i] }
func (f *fakeBatch) TimestampSeconds() []int64 { return f.tsSecs }
func (f *fakeBatch) TimestampNanos() []int64   { return f.tsNanos }
func (f *fakeBatch) ListOffsets() []int64      { return f.offsets }
func (f *fakeBatch) Decimal128(i int) (int64, uint64) {
	return 0, uint64(f.longs[i])
}
func (f *fakeBatch) Child(i int) ColumnBatch { return f.children[i] }

func desc(kind liborc.TypeKind) *liborc.TypeDesc {
	return &liborc.TypeDesc{Kind: kind}
}

func TestGetArrowTypePrimitives(t *testing.T) {
	tests := []struct {
		kind liborc.TypeKind
		want arrow.DataType
	}{
		{liborc.KindBoolean, arrow.FixedWidthTypes.Boolean},
		{liborc.KindByte, arrow.PrimitiveTypes.Int8},
		{liborc.KindShort, arrow.PrimitiveTypes.Int16},
		{liborc.KindInt, arrow.PrimitiveTypes.Int32},
		{liborc.KindLong, arrow.PrimitiveTypes.Int64},
		{liborc.KindFloat, arrow.PrimitiveTypes.Float32},
		{liborc.KindDouble, arrow.PrimitiveTypes.Float64},
		{liborc.KindString, arrow.BinaryTypes.String},
		{liborc.KindVarchar, arrow.BinaryTypes.String},
		{liborc.KindChar, arrow.BinaryTypes.String},
		{liborc.KindBinary, arrow.BinaryTypes.Binary},
		{liborc.KindDate, arrow.FixedWidthTypes.Date32},
		{liborc.KindTimestamp, arrow.FixedWidthTypes.Timestamp_ns},
	}

	for _, tt := range tests {
		got, err := GetArrowType(desc(tt.kind))
		if err != nil {
			t.Errorf("GetArrowType(%s): %v", tt.kind, err)
			continue
		}
		if !arrow.TypeEqual(got, tt.want) {
			t.Errorf("GetArrowType(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestGetArrowTypeDecimal(t *testing.T) {
	d := &liborc.TypeDesc{Kind: liborc.KindDecimal, Precision: 38, Scale: 10}
	got, err := GetArrowType(d)
	if err != nil {
		t.Fatalf("GetArrowType: %v", err)
	}
	dec, ok := got.(*arrow.Decimal128Type)
	if !ok {
		t.Fatalf("GetArrowType(decimal) = %T, want *arrow.Decimal128Type", got)
	}
	if dec.Precision != 38 || dec.Scale != 10 {
		t.Errorf("decimal = (%d, %d), want (38, 10)", dec.Precision, dec.Scale)
	}
}

func TestGetArrowTypeNested(t *testing.T) {
	d := &liborc.TypeDesc{
		Kind:       liborc.KindStruct,
		FieldNames: []string{"id", "tags"},
		Children: []*liborc.TypeDesc{
			desc(liborc.KindLong),
			{Kind: liborc.KindList, Children: []*liborc.TypeDesc{desc(liborc.KindString)}},
		},
	}

	got, err := GetArrowType(d)
	if err != nil {
		t.Fatalf("GetArrowType: %v", err)
	}

	want := arrow.StructOf(
		arrow.Field{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		arrow.Field{Name: "tags", Type: arrow.ListOf(arrow.BinaryTypes.String), Nullable: true},
	)
	if !arrow.TypeEqual(got, want) {
		t.Errorf("GetArrowType = %s, want %s", got, want)
	}
}

func TestGetArrowTypeUnsupported(t *testing.T) {
	for _, kind := range []liborc.TypeKind{liborc.KindMap, liborc.KindUnion} {
		_, err := GetArrowType(desc(kind))
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("GetArrowType(%s) error = %v, want ErrUnsupportedType", kind, err)
		}
	}
}

func TestSchemaOf(t *testing.T) {
	root := &liborc.TypeDesc{
		Kind:       liborc.KindStruct,
		FieldNames: []string{"a", "b"},
		Children:   []*liborc.TypeDesc{desc(liborc.KindInt), desc(liborc.KindString)},
	}

	schema, err := SchemaOf(root)
	if err != nil {
		t.Fatalf("SchemaOf: %v", err)
	}
	if schema.NumFields() != 2 {
		t.Fatalf("NumFields = %d, want 2", schema.NumFields())
	}
	if schema.Field(0).Name != "a" || schema.Field(1).Name != "b" {
		t.Errorf("field names = %s, %s", schema.Field(0).Name, schema.Field(1).Name)
	}

	if _, err := SchemaOf(desc(liborc.KindLong)); err == nil {
		t.Error("SchemaOf of a non-struct root should fail")
	}
}

func TestAppendBatchInt64(t *testing.T) {
	batch := &fakeBatch{
		length:  4,
		longs:   []int64{10, 20, 30, 40},
		notNull: []byte{1, 0, 1, 1},
	}

	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()

	if err := AppendBatch(desc(liborc.KindLong), batch, 0, 4, b); err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}

	arr := b.NewInt64Array()
	defer arr.Release()

	if arr.Len() != 4 {
		t.Fatalf("Len = %d, want 4", arr.Len())
	}
	if arr.Value(0) != 10 || arr.Value(2) != 30 || arr.Value(3) != 40 {
		t.Errorf("values = %v", arr.Int64Values())
	}
	if !arr.IsNull(1) {
		t.Error("row 1 should be null")
	}
}

func TestAppendBatchOffsetWindow(t *testing.T) {
	batch := &fakeBatch{
		length: 5,
		longs:  []int64{1, 2, 3, 4, 5},
	}

	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()

	// Rows [1, 4).
	if err := AppendBatch(desc(liborc.KindLong), batch, 1, 3, b); err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}

	arr := b.NewInt64Array()
	defer arr.Release()

	want := []int64{2, 3, 4}
	if arr.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", arr.Len(), len(want))
	}
	for i, w := range want {
		if arr.Value(i) != w {
			t.Errorf("value[%d] = %d, want %d", i, arr.Value(i), w)
		}
	}
}

func TestAppendBatchBoolean(t *testing.T) {
	batch := &fakeBatch{
		length: 3,
		longs:  []int64{1, 0, 1},
	}

	b := array.NewBooleanBuilder(memory.DefaultAllocator)
	defer b.Release()

	if err := AppendBatch(desc(liborc.KindBoolean), batch, 0, 3, b); err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}

	arr := b.NewBooleanArray()
	defer arr.Release()

	if !arr.Value(0) || arr.Value(1) || !arr.Value(2) {
		t.Errorf("values = %v, %v, %v, want true, false, true", arr.Value(0), arr.Value(1), arr.Value(2))
	}
}

func TestAppendBatchString(t *testing.T) {
	batch := &fakeBatch{
		length:  3,
		values:  [][]byte{[]byte("orc"), nil, []byte("arrow")},
		notNull: []byte{1, 0, 1},
	}

	b := array.NewStringBuilder(memory.DefaultAllocator)
	defer b.Release()

	if err := AppendBatch(desc(liborc.KindString), batch, 0, 3, b); err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}

	arr := b.NewStringArray()
	defer arr.Release()

	if arr.Value(0) != "orc" || arr.Value(2) != "arrow" {
		t.Errorf("values = %q, %q", arr.Value(0), arr.Value(2))
	}
	if !arr.IsNull(1) {
		t.Error("row 1 should be null")
	}
}

func TestAppendBatchTimestamp(t *testing.T) {
	batch := &fakeBatch{
		length:  2,
		tsSecs:  []int64{1, 2},
		tsNanos: []int64{500, 0},
	}

	b := array.NewTimestampBuilder(memory.DefaultAllocator, &arrow.TimestampType{Unit: arrow.Nanosecond})
	defer b.Release()

	if err := AppendBatch(desc(liborc.KindTimestamp), batch, 0, 2, b); err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}

	arr := b.NewTimestampArray()
	defer arr.Release()

	if arr.Value(0) != 1_000_000_500 {
		t.Errorf("value[0] = %d, want 1000000500", arr.Value(0))
	}
	if arr.Value(1) != 2_000_000_000 {
		t.Errorf("value[1] = %d, want 2000000000", arr.Value(1))
	}
}

func TestAppendBatchList(t *testing.T) {
	d := &liborc.TypeDesc{
		Kind:     liborc.KindList,
		Children: []*liborc.TypeDesc{desc(liborc.KindLong)},
	}
	batch := &fakeBatch{
		length:  3,
		notNull: []byte{1, 0, 1},
		offsets: []int64{0, 2, 2, 5},
		children: []*fakeBatch{{
			length: 5,
			longs:  []int64{1, 2, 3, 4, 5},
		}},
	}

	b := array.NewListBuilder(memory.DefaultAllocator, arrow.PrimitiveTypes.Int64)
	defer b.Release()

	if err := AppendBatch(d, batch, 0, 3, b); err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}

	arr := b.NewListArray()
	defer arr.Release()

	if arr.Len() != 3 {
		t.Fatalf("Len = %d, want 3", arr.Len())
	}
	if !arr.IsNull(1) {
		t.Error("row 1 should be null")
	}

	elems := arr.ListValues().(*array.Int64)
	want := []int64{1, 2, 3, 4, 5}
	if elems.Len() != len(want) {
		t.Fatalf("element count = %d, want %d", elems.Len(), len(want))
	}
	for i, w := range want {
		if elems.Value(i) != w {
			t.Errorf("element[%d] = %d, want %d", i, elems.Value(i), w)
		}
	}
}

func TestAppendBatchStruct(t *testing.T) {
	d := &liborc.TypeDesc{
		Kind:       liborc.KindStruct,
		FieldNames: []string{"x", "y"},
		Children:   []*liborc.TypeDesc{desc(liborc.KindLong), desc(liborc.KindDouble)},
	}
	batch := &fakeBatch{
		length:  2,
		notNull: []byte{1, 0},
		children: []*fakeBatch{
			{length: 2, longs: []int64{7, 0}},
			{length: 2, doubles: []float64{1.5, 0}},
		},
	}

	dt, err := GetArrowType(d)
	if err != nil {
		t.Fatalf("GetArrowType: %v", err)
	}
	b := array.NewStructBuilder(memory.DefaultAllocator, dt.(*arrow.StructType))
	defer b.Release()

	if err := AppendBatch(d, batch, 0, 2, b); err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}

	arr := b.NewStructArray()
	defer arr.Release()

	if arr.Len() != 2 {
		t.Fatalf("Len = %d, want 2", arr.Len())
	}
	if !arr.IsNull(1) {
		t.Error("row 1 should be null")
	}

	xs := arr.Field(0).(*array.Int64)
	if xs.Value(0) != 7 {
		t.Errorf("x[0] = %d, want 7", xs.Value(0))
	}
	ys := arr.Field(1).(*array.Float64)
	if ys.Value(0) != 1.5 {
		t.Errorf("y[0] = %f, want 1.5", ys.Value(0))
	}
}

func TestAppendBatchUnsupported(t *testing.T) {
	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()

	err := AppendBatch(desc(liborc.KindMap), &fakeBatch{length: 1}, 0, 1, b)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("error = %v, want ErrUnsupportedType", err)
	}
}
