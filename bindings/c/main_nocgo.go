//go:build !cgo

package main

// The real main lives in bridge.go, which is a cgo file and therefore
// excluded when CGO_ENABLED=0. This stub keeps the package compilable
// (and its pure-Go tests runnable) without cgo.
func main() {}
