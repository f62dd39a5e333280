// Package fp16 provides the AVX512-FP16 fused-multiply-add probe
// operation: 16 half-precision lanes converted from the a, b and c
// vectors, one unmasked VFMADD231PH, one merge-masked VFMADD231PH under
// mask 0x00FF, and the result converted back to single precision.
// The conversions sit inside the instrumented region but carry no
// FLOPs; the consumer attributes only the two half-precision FMAs.
package fp16

import (
	"github.com/LynnColeArt/sdemark"
	"github.com/x448/float16"
)

var (
	kernel    sdemark.Kernel = refFMA
	hasKernel bool
)

// FMA returns the FP16 FMA probe operation.
func FMA() sdemark.Operation {
	return sdemark.Operation{
		Name:      "fp16_fma",
		Feature:   "AVX512_FP16",
		Available: sdemark.HasFP16(),
		Kernel:    kernel,
		HasKernel: hasKernel,
	}
}

// refFMA mirrors the hardware kernel:
//
//	ah = fp16(a), bh = fp16(b), r = fp16(c)
//	r  = r + ah*bh          (all 16 lanes)
//	r  = r + ah*bh          (lanes 0..7 under the mask)
//	out = float32(r)
//
// The hardware FMA rounds once in half precision; the reference
// computes in float32 and rounds the result to fp16, which can differ
// in the last bit. Cross-checks against the kernel use a tolerance.
func refFMA(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
	var ah, bh, r [16]float16.Float16
	for i := 0; i < 16; i++ {
		ah[i] = float16.Fromfloat32(a[i])
		bh[i] = float16.Fromfloat32(b[i])
		r[i] = float16.Fromfloat32(c[i])
	}
	for i := 0; i < 16; i++ {
		r[i] = float16.Fromfloat32(r[i].Float32() + ah[i].Float32()*bh[i].Float32())
	}
	for i := 0; i < 8; i++ {
		r[i] = float16.Fromfloat32(r[i].Float32() + ah[i].Float32()*bh[i].Float32())
	}
	for i := 0; i < 16; i++ {
		out[i] = r[i].Float32()
	}
	return out[0]
}
