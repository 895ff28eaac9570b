//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles loading the orcshim shared library and registering
// function bindings using purego.
//
// orcshim is a small C wrapper around the Apache ORC C++ library (liborc has
// no stable C API, and purego cannot call C++ directly). It exposes the
// reader, row reader, type, and column batch surfaces as plain C functions.
//
// Pre-built shims are available in releases for:
//   - Linux amd64/arm64 (liborcshim.so)
//   - macOS amd64/arm64 (liborcshim.dylib)
//   - Windows amd64 (orcshim.dll)
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/orcgo/internal/platform"
)

// ErrNotLoaded is returned when ORC functions are called before Load().
var ErrNotLoaded = errors.New("orcgo: orcshim library not loaded; call orcgo.Init() first")

// ErrLibraryNotFound is returned when the orcshim library cannot be found.
var ErrLibraryNotFound = errors.New("orcgo: orcshim library not found")

// shimVersions lists the shim ABI versions we can bind to, newest first.
var shimVersions = []int{1, 0}

var (
	libORCShim uintptr
	shimPath   string

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Version function binding
var orcshimVersion func() uint32

// IsLoaded returns true if the orcshim library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load locates and loads the orcshim library and registers the version
// binding. It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	lib, path, err := loadLibrary("orcshim", shimVersions)
	if err != nil {
		return fmt.Errorf("loading liborcshim: %w", err)
	}
	libORCShim = lib
	shimPath = path

	purego.RegisterLibFunc(&orcshimVersion, libORCShim, "orcshim_version")
	return nil
}

// loadLibrary attempts to load a library by trying versioned names.
func loadLibrary(name string, versions []int) (uintptr, string, error) {
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range versions {
			libName := platform.FormatLibraryName(name, ver)
			fullPath := filepath.Join(searchPath, libName)

			lib, err := tryOpen(fullPath)
			if err == nil {
				return lib, fullPath, nil
			}
		}

		libName := platform.FormatLibraryName(name, 0)
		fullPath := filepath.Join(searchPath, libName)
		lib, err := tryOpen(fullPath)
		if err == nil {
			return lib, fullPath, nil
		}
	}

	// Try just the library name (let the system find it)
	for _, ver := range versions {
		libName := platform.FormatLibraryName(name, ver)
		lib, err := tryOpen(libName)
		if err == nil {
			return lib, libName, nil
		}
	}

	libName := platform.FormatLibraryName(name, 0)
	lib, err := tryOpen(libName)
	if err == nil {
		return lib, libName, nil
	}

	return 0, "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// RTLD_GLOBAL keeps liborc's own transitive libraries (protobuf, compression
// codecs) resolvable when the shim links them dynamically.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for the orcshim library and returns its full path.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range shimVersions {
			libName := platform.FormatLibraryName("orcshim", ver)
			fullPath := filepath.Join(searchPath, libName)
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		libName := platform.FormatLibraryName("orcshim", 0)
		fullPath := filepath.Join(searchPath, libName)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: orcshim", ErrLibraryNotFound)
}

// LibrarySearchPaths returns platform-specific library search paths.
// ORCGO_SHIM_DIR, when set, is searched first.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv("ORCGO_SHIM_DIR"); dir != "" {
		paths = append(paths, dir)
	}

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
			"/opt/homebrew/opt/orc/lib",
			"/usr/local/opt/orc/lib",
		)

	case "windows":
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		paths = append(paths,
			"C:\\orc\\bin",
			"C:\\Program Files\\orc\\bin",
		)

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}

// Version returns the orcshim ABI version, or 0 if not loaded.
func Version() uint32 {
	if !loaded || orcshimVersion == nil {
		return 0
	}
	return orcshimVersion()
}

// LibORCShim returns the orcshim library handle.
func LibORCShim() uintptr {
	return libORCShim
}

// ShimPath returns the path the shim was loaded from, for diagnostics.
func ShimPath() string {
	return shimPath
}
