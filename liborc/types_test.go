package liborc

import "testing"

func TestTypeKindString(t *testing.T) {
	tests := []struct {
		kind TypeKind
		want string
	}{
		{KindBoolean, "boolean"},
		{KindByte, "tinyint"},
		{KindShort, "smallint"},
		{KindInt, "int"},
		{KindLong, "bigint"},
		{KindFloat, "float"},
		{KindDouble, "double"},
		{KindString, "string"},
		{KindBinary, "binary"},
		{KindTimestamp, "timestamp"},
		{KindList, "array"},
		{KindMap, "map"},
		{KindStruct, "struct"},
		{KindDecimal, "decimal"},
		{KindDate, "date"},
		{KindVarchar, "varchar"},
		{KindChar, "char"},
		{TypeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TypeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCompressionKindString(t *testing.T) {
	tests := []struct {
		kind CompressionKind
		want string
	}{
		{CompressionNone, "none"},
		{CompressionZlib, "zlib"},
		{CompressionSnappy, "snappy"},
		{CompressionLZO, "lzo"},
		{CompressionLZ4, "lz4"},
		{CompressionZstd, "zstd"},
		{CompressionKind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("CompressionKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
