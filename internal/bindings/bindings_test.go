//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestLibrarySearchPaths_RespectsShimDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ORCGO_SHIM_DIR", dir)

	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Fatal("LibrarySearchPaths returned no paths")
	}
	if paths[0] != dir {
		t.Errorf("ORCGO_SHIM_DIR should be searched first; got %q", paths[0])
	}
}

func TestLibrarySearchPaths_NotEmpty(t *testing.T) {
	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Error("expected at least one search path")
	}
	for _, p := range paths {
		if p == "" {
			t.Error("empty search path returned")
		}
	}
}

func TestLibrarySearchPaths_IncludesLdLibraryPath(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		t.Skip("LD_LIBRARY_PATH only consulted on linux/freebsd")
	}

	extra := filepath.Join(t.TempDir(), "liborc")
	t.Setenv("LD_LIBRARY_PATH", extra)

	found := false
	for _, p := range LibrarySearchPaths() {
		if p == extra {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("LD_LIBRARY_PATH entry %q not in search paths", extra)
	}
}

func TestVersionBeforeLoad(t *testing.T) {
	if !IsLoaded() && Version() != 0 {
		t.Error("Version should be 0 before a successful Load")
	}
}
