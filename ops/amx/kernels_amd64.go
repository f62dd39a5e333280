//go:build amd64
// +build amd64

package amx

import (
	"unsafe"
)

// tileCfgBuf holds the 64-byte tile configuration at a 64-byte aligned
// offset; LDTILECFG faults on a misaligned operand. The kernel
// recomputes the same alignment at run time.
var tileCfgBuf [128]byte

// tileSink receives the stored accumulator tile (16 rows × 64 bytes).
// Written by the kernel, read only for the returned scalar and the out
// copy.
var tileSink [1024]byte

// tileDotKernel is the AMX sequence: LDTILECFG, TILEZERO, two
// TILELOADDs with zero row stride, one TDPBF16PS, TILESTORED,
// TILERELEASE. Implemented in kernels_amd64.s with hand-assembled VEX
// encodings; the assembler has no AMX mnemonics.
//
//go:noescape
func tileDotKernel(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32

func init() {
	cfg := ConfigureBF16DotProduct()
	if err := ValidateConfig(cfg); err != nil {
		// The configuration is a package constant; failing validation
		// is a programming error, not a runtime condition.
		panic(err)
	}
	off := (64 - (uintptr(unsafe.Pointer(&tileCfgBuf[0])) & 63)) & 63
	copy(tileCfgBuf[off:off+64], GetConfigBytes(cfg))

	kernel = tileDotKernel
	hasKernel = true
}
