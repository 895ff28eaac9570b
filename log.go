//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/orcgo/liborc"
)

// LogLevel represents orcshim diagnostic severities.
type LogLevel int32

const (
	LogDebug   LogLevel = 0
	LogInfo    LogLevel = 1
	LogWarning LogLevel = 2
	LogError   LogLevel = 3
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarning:
		return "warning"
	case LogError:
		return "error"
	default:
		return "unknown"
	}
}

// LogCallback is called for each diagnostic message from the native library.
type LogCallback func(level LogLevel, message string)

var (
	logCallbackMu sync.Mutex
	logCallback   LogCallback
	logCBHandle   uintptr
)

// SetLogCallback sets a handler for diagnostics from the native library.
// Pass nil to silence them (the default). The library itself never logs;
// routing diagnostics is entirely the caller's choice.
func SetLogCallback(cb LogCallback) error {
	if err := Init(); err != nil {
		return err
	}

	logCallbackMu.Lock()
	defer logCallbackMu.Unlock()

	if cb == nil {
		logCallback = nil
		return liborc.SetLogCallback(0)
	}

	logCallback = cb

	if logCBHandle == 0 {
		logCBHandle = purego.NewCallback(logCallbackTrampoline)
	}

	return liborc.SetLogCallback(logCBHandle)
}

// logCallbackTrampoline is called by the shim and forwards to the Go callback.
// Signature: void (*)(int32_t severity, const char* msg)
func logCallbackTrampoline(_ purego.CDecl, level int32, msg *byte) {
	logCallbackMu.Lock()
	cb := logCallback
	logCallbackMu.Unlock()

	if cb == nil {
		return
	}

	goMsg := ""
	if msg != nil {
		for i := 0; ; i++ {
			b := *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(msg)) + uintptr(i)))
			if b == 0 {
				goMsg = string(unsafe.Slice(msg, i))
				break
			}
			if i > 4096 { // Safety limit
				goMsg = string(unsafe.Slice(msg, i))
				break
			}
		}
	}

	cb(LogLevel(level), goMsg)
}
