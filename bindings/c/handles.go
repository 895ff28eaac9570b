package main

import (
	"github.com/obinnaokechukwu/orcgo"
	"github.com/obinnaokechukwu/orcgo/internal/registry"
)

// Handle tables for resources exposed to the host runtime. Handles start at
// the registry's reserved threshold, so 0 can mean "invalid" and the bridge
// can use the remaining low values as sentinels in its own protocol.
var (
	readers = registry.New[*orcgo.Reader]()
	stripes = registry.New[*orcgo.StripeReader]()
)

// newReaderHandle registers a reader and returns its handle.
func newReaderHandle(r *orcgo.Reader) int64 {
	return readers.Insert(r)
}

// lookupReader resolves a reader handle. Returns (nil, false) if the handle
// was never issued or the reader was already closed.
func lookupReader(h int64) (*orcgo.Reader, bool) {
	return readers.Lookup(h)
}

// freeReaderHandle removes a reader handle and returns the reader that was
// stored, or nil if not found. The take is atomic, so concurrent closes of
// the same handle hand the reader to exactly one caller.
func freeReaderHandle(h int64) *orcgo.Reader {
	r, ok := readers.Take(h)
	if !ok {
		return nil
	}
	return r
}

// newStripeHandle registers a stripe reader and returns its handle.
func newStripeHandle(s *orcgo.StripeReader) int64 {
	return stripes.Insert(s)
}

// lookupStripe resolves a stripe reader handle.
func lookupStripe(h int64) (*orcgo.StripeReader, bool) {
	return stripes.Lookup(h)
}

// freeStripeHandle removes a stripe handle and returns the stripe reader
// that was stored, or nil if not found.
func freeStripeHandle(h int64) *orcgo.StripeReader {
	s, ok := stripes.Take(h)
	if !ok {
		return nil
	}
	return s
}

// clearHandles closes every live resource and empties both tables. Called
// from orc_shutdown as a safety valve for hosts that leak handles.
func clearHandles() {
	// Stripes first: they borrow row readers from their parent reader.
	for _, s := range stripes.Drain() {
		s.Close()
	}
	for _, r := range readers.Drain() {
		r.Close()
	}
}
