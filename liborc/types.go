package liborc

// TypeKind identifies the logical type of an ORC column.
// Values match the orc::TypeKind enum in the ORC specification.
type TypeKind int32

const (
	KindBoolean          TypeKind = 0
	KindByte             TypeKind = 1
	KindShort            TypeKind = 2
	KindInt              TypeKind = 3
	KindLong             TypeKind = 4
	KindFloat            TypeKind = 5
	KindDouble           TypeKind = 6
	KindString           TypeKind = 7
	KindBinary           TypeKind = 8
	KindTimestamp        TypeKind = 9
	KindList             TypeKind = 10
	KindMap              TypeKind = 11
	KindStruct           TypeKind = 12
	KindUnion            TypeKind = 13
	KindDecimal          TypeKind = 14
	KindDate             TypeKind = 15
	KindVarchar          TypeKind = 16
	KindChar             TypeKind = 17
	KindTimestampInstant TypeKind = 18
)

// String returns the lowercase ORC name of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "tinyint"
	case KindShort:
		return "smallint"
	case KindInt:
		return "int"
	case KindLong:
		return "bigint"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindTimestamp:
		return "timestamp"
	case KindList:
		return "array"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "uniontype"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindVarchar:
		return "varchar"
	case KindChar:
		return "char"
	case KindTimestampInstant:
		return "timestamp with local time zone"
	default:
		return "unknown"
	}
}

// CompressionKind identifies the block compression of an ORC file.
// Values match orc::CompressionKind.
type CompressionKind int32

const (
	CompressionNone   CompressionKind = 0
	CompressionZlib   CompressionKind = 1
	CompressionSnappy CompressionKind = 2
	CompressionLZO    CompressionKind = 3
	CompressionLZ4    CompressionKind = 4
	CompressionZstd   CompressionKind = 5
)

// TypeDesc is a pure-Go description of an ORC type tree, detached from the
// native Type pointer so it can outlive the Reader that produced it.
type TypeDesc struct {
	Kind       TypeKind
	FieldNames []string // parallel to Children; struct types only
	Children   []*TypeDesc
	Precision  int32  // decimal types
	Scale      int32  // decimal types
	MaxLength  uint64 // char/varchar types
}

// String returns the name of the compression kind.
func (c CompressionKind) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZlib:
		return "zlib"
	case CompressionSnappy:
		return "snappy"
	case CompressionLZO:
		return "lzo"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}
