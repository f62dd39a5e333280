//go:build linux && amd64
// +build linux,amd64

package amx

import (
	"sync"

	"golang.org/x/sys/unix"
)

// Linux gates the large AMX tile state behind an explicit opt-in; a
// tile instruction in a process that never asked for XTILEDATA raises
// SIGILL even on AMX hardware.
const (
	archReqXcompPerm  = 0x1023
	xfeatureXTileData = 18
)

var (
	enableOnce sync.Once
	enableErr  error
)

// enableTileData requests XTILEDATA state for this process.
func enableTileData() error {
	enableOnce.Do(func() {
		_, _, errno := unix.Syscall(unix.SYS_ARCH_PRCTL, archReqXcompPerm, xfeatureXTileData, 0)
		if errno != 0 {
			enableErr = errno
		}
	})
	return enableErr
}
