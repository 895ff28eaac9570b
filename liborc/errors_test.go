package liborc

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewErrorOK(t *testing.T) {
	if err := NewError(StatusOK, "reader_open", ""); err != nil {
		t.Errorf("NewError(StatusOK) = %v, want nil", err)
	}
}

func TestNewError(t *testing.T) {
	err := NewError(StatusParseError, "reader_open", "malformed postscript")
	if err == nil {
		t.Fatal("NewError returned nil for a failure status")
	}

	if !strings.Contains(err.Error(), "reader_open") {
		t.Errorf("error message should carry the op: %v", err)
	}
	if !strings.Contains(err.Error(), "malformed postscript") {
		t.Errorf("error message should carry the native message: %v", err)
	}

	if Code(err) != StatusParseError {
		t.Errorf("Code = %d, want %d", Code(err), StatusParseError)
	}
	if !IsCorrupt(err) {
		t.Error("IsCorrupt should be true for StatusParseError")
	}
	if IsNotImplemented(err) {
		t.Error("IsNotImplemented should be false for StatusParseError")
	}
}

func TestCodeOnWrappedError(t *testing.T) {
	inner := NewError(StatusNotImplemented, "row_reader", "union type")
	wrapped := fmt.Errorf("opening stripe: %w", inner)

	if Code(wrapped) != StatusNotImplemented {
		t.Errorf("Code should unwrap: got %d", Code(wrapped))
	}
	if !IsNotImplemented(wrapped) {
		t.Error("IsNotImplemented should unwrap")
	}
}

func TestCodeOnForeignError(t *testing.T) {
	if Code(errors.New("plain")) != StatusOK {
		t.Error("Code of a non-liborc error should be StatusOK")
	}
	if IsCorrupt(nil) {
		t.Error("IsCorrupt(nil) should be false")
	}
}
