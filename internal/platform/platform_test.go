//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestIs64Bit(t *testing.T) {
	// We only support 64-bit platforms
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
	}{
		{"orcshim", 0},
		{"orcshim", 1},
		{"orc", 2},
	}

	for _, tt := range tests {
		got := FormatLibraryName(tt.name, tt.version)
		if got == "" {
			t.Errorf("FormatLibraryName(%q, %d) returned empty string", tt.name, tt.version)
		}

		switch runtime.GOOS {
		case "darwin":
			want := "lib" + tt.name
			if got[:len(want)] != want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want prefix %q", tt.name, tt.version, got, want)
			}
		case "windows":
			if got[:len(tt.name)] != tt.name {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want prefix %q", tt.name, tt.version, got, tt.name)
			}
		default:
			want := "lib" + tt.name
			if got[:len(want)] != want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want prefix %q", tt.name, tt.version, got, want)
			}
		}
	}
}

func TestGOOSAndGOARCH(t *testing.T) {
	if GOOS() != runtime.GOOS {
		t.Errorf("GOOS() = %s, want %s", GOOS(), runtime.GOOS)
	}
	if GOARCH() != runtime.GOARCH {
		t.Errorf("GOARCH() = %s, want %s", GOARCH(), runtime.GOARCH)
	}
}
