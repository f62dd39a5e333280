// Package fma provides the fused-multiply-add probe operations: the
// 8-lane AVX2 variant, the 16-lane AVX-512 variant with a masked second
// FMA, and the AVX512_4FMAPS packed 4-iteration variant.
//
// FLOP accounting (what the trace consumer should attribute):
//   - AVX2: one VFNMSUB = 2 x 8 single precision FLOPs, unmasked.
//   - AVX-512: one VFMADDSUB = 2 x 16 unmasked, one masked VFMADD under
//     mask 0x00FF = 1/2 x 2 x 16 masked single precision FLOPs.
//   - 4FMA: one V4FMADDPS = 4 x 2 x 16 unmasked, one zero-masked
//     V4FMADDPS under 0x00FF = 1/2 x 4 x 2 x 16 masked FLOPs.
package fma

import (
	"encoding/binary"
	"math"

	"github.com/LynnColeArt/sdemark"
)

// Selected kernels. They default to the portable references and are
// swapped for the amd64 implementations at init on amd64 builds
// (see kernels_amd64.go). Selection is by build target, not by CPU
// feature: under SDE emulation the instructions must be dispatched even
// on hosts that do not support them, so availability gates dispatch in
// the runner rather than kernel choice here.
var (
	avx2Kernel   sdemark.Kernel = refAVX2
	avx512Kernel sdemark.Kernel = refAVX512
	fma4Kernel   sdemark.Kernel = refFMA4

	avx2HasKernel   bool
	avx512HasKernel bool
	fma4HasKernel   bool
)

// AVX2 returns the AVX2 FNMSUB probe operation.
func AVX2() sdemark.Operation {
	return sdemark.Operation{
		Name:      "fma_avx2",
		Feature:   "AVX2+FMA",
		Available: sdemark.HasFMAAVX2(),
		Kernel:    avx2Kernel,
		HasKernel: avx2HasKernel,
	}
}

// AVX512 returns the AVX-512 FMADDSUB + masked FMADD probe operation.
func AVX512() sdemark.Operation {
	return sdemark.Operation{
		Name:      "fma_avx512",
		Feature:   "AVX512F",
		Available: sdemark.HasFMAAVX512(),
		Kernel:    avx512Kernel,
		HasKernel: avx512HasKernel,
	}
}

// FMA4 returns the AVX512_4FMAPS probe operation. Its four scalar
// multiplier operands are read from the auxiliary buffer, matching the
// instruction's 128-bit memory operand.
func FMA4() sdemark.Operation {
	return sdemark.Operation{
		Name:      "fma4",
		Feature:   "AVX512_4FMAPS",
		Available: sdemark.Has4FMA(),
		Kernel:    fma4Kernel,
		HasKernel: fma4HasKernel,
	}
}

// refAVX2 mirrors the AVX2 kernel: r = -(a*b) - c over 8 lanes; the
// store covers lanes 0..7 only, exactly like the 256-bit store in the
// hardware kernel.
func refAVX2(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
	for i := 0; i < 8; i++ {
		out[i] = -(a[i] * b[i]) - c[i]
	}
	return out[0]
}

// refAVX512 mirrors the AVX-512 kernel: t = FMADDSUB(a, b, c) (odd
// lanes a*b+c, even lanes a*b-c), then the mask3 FMADD under 0x00FF:
// r = k ? t*a + b : b.
func refAVX512(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
	var t [16]float32
	for i := 0; i < 16; i++ {
		if i%2 == 0 {
			t[i] = a[i]*b[i] - c[i]
		} else {
			t[i] = a[i]*b[i] + c[i]
		}
	}
	for i := 0; i < 16; i++ {
		if i < 8 {
			out[i] = t[i]*a[i] + b[i]
		} else {
			out[i] = b[i]
		}
	}
	return out[0]
}

// refFMA4 mirrors the 4FMAPS kernel. The unmasked V4FMADDPS computes
// src + a*m0 + b*m1 + c*m2 + d*m3 with src = a; its result is
// materialized by the hardware but not stored. The stored result is the
// zero-masked variant with src = d under mask 0x00FF.
func refFMA4(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
	var m [4]float32
	for i := range m {
		m[i] = math.Float32frombits(binary.LittleEndian.Uint32(aux[i*4:]))
	}

	var e [16]float32
	for i := 0; i < 16; i++ {
		e[i] = a[i] + a[i]*m[0] + b[i]*m[1] + c[i]*m[2] + d[i]*m[3]
	}
	_ = e

	for i := 0; i < 16; i++ {
		if i < 8 {
			out[i] = d[i] + a[i]*m[0] + b[i]*m[1] + c[i]*m[2] + d[i]*m[3]
		} else {
			out[i] = 0
		}
	}
	return out[0]
}
