//go:build !linux || !amd64
// +build !linux !amd64

package amx

// No tile-state opt-in outside linux/amd64.
func enableTileData() error { return nil }
