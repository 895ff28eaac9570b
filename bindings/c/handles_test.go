package main

import "testing"

func TestLookupUnknownHandles(t *testing.T) {
	if _, ok := lookupReader(0); ok {
		t.Error("handle 0 resolved to a reader")
	}
	if _, ok := lookupStripe(0); ok {
		t.Error("handle 0 resolved to a stripe reader")
	}
	if _, ok := lookupReader(999999); ok {
		t.Error("never-issued reader handle resolved")
	}
}

func TestFreeUnknownHandleIsNoop(t *testing.T) {
	if r := freeReaderHandle(12345); r != nil {
		t.Errorf("freeReaderHandle(12345) = %v, want nil", r)
	}
	if s := freeStripeHandle(12345); s != nil {
		t.Errorf("freeStripeHandle(12345) = %v, want nil", s)
	}
}

func TestClearHandlesEmptyTables(t *testing.T) {
	clearHandles()
	if n := readers.Len(); n != 0 {
		t.Errorf("readers.Len() = %d after clearHandles, want 0", n)
	}
	if n := stripes.Len(); n != 0 {
		t.Errorf("stripes.Len() = %d after clearHandles, want 0", n)
	}
}
