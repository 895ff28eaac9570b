//go:build !ios && !android && (amd64 || arm64)

// Package orcgo provides high-level bindings to Apache ORC for reading
// columnar files into Apache Arrow records. It works without CGO using
// purego and a small orcshim helper library.
//
// For most use cases, open a Reader and iterate stripe readers:
//
//	r, err := orcgo.Open("data.orc")
//	...
//	for {
//		sr, err := r.NextStripeReader()
//		if sr == nil || err != nil {
//			break
//		}
//		for {
//			rec, err := sr.Next()
//			if err == io.EOF {
//				break
//			}
//			...
//		}
//		sr.Close()
//	}
//
// For advanced use cases, the low-level liborc package is available. The
// bindings/c directory builds a c-shared bridge that exposes readers to
// non-Go host runtimes through integer handles.
package orcgo

import (
	"github.com/obinnaokechukwu/orcgo/internal/bindings"
	"github.com/obinnaokechukwu/orcgo/liborc"
)

// Init loads the ORC native libraries. This is called automatically when
// opening a reader, but can be called explicitly to check for errors.
// It is safe to call multiple times.
func Init() error {
	return liborc.Load()
}

// IsLoaded returns true if the ORC native libraries have been successfully
// loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Version returns the orcshim ABI version, or 0 if not loaded.
func Version() uint32 {
	return bindings.Version()
}

// Re-export common types for convenience
type (
	// TypeKind identifies the logical type of an ORC column.
	TypeKind = liborc.TypeKind

	// TypeDesc describes an ORC type tree.
	TypeDesc = liborc.TypeDesc

	// CompressionKind identifies the block compression of an ORC file.
	CompressionKind = liborc.CompressionKind
)

// Re-export common constants
const (
	KindBoolean   = liborc.KindBoolean
	KindByte      = liborc.KindByte
	KindShort     = liborc.KindShort
	KindInt       = liborc.KindInt
	KindLong      = liborc.KindLong
	KindFloat     = liborc.KindFloat
	KindDouble    = liborc.KindDouble
	KindString    = liborc.KindString
	KindBinary    = liborc.KindBinary
	KindTimestamp = liborc.KindTimestamp
	KindList      = liborc.KindList
	KindMap       = liborc.KindMap
	KindStruct    = liborc.KindStruct
	KindDecimal   = liborc.KindDecimal
	KindDate      = liborc.KindDate

	CompressionNone   = liborc.CompressionNone
	CompressionZlib   = liborc.CompressionZlib
	CompressionSnappy = liborc.CompressionSnappy
	CompressionLZ4    = liborc.CompressionLZ4
	CompressionZstd   = liborc.CompressionZstd
)
