// Package bf16 provides the AVX512-BF16 dot-product probe operation and
// the BFloat16 scalar type its reference path is built on.
//
// The kernel mirrors the DPBF16 validation sequence: a zero-masked and
// an unmasked CVTNE2 pairing of the a and b vectors into BF16, one
// unmasked VDPBF16PS against the c accumulator, then one merge-masked
// VDPBF16PS under mask 0x00FF. The up-conversions are part of the
// instrumented region but are not FLOPs; the trace consumer counts only
// the dot products (2 x 2 x 16 unmasked, 1/2 x 2 x 2 x 16 masked,
// single precision).
package bf16

import (
	"math"

	"github.com/LynnColeArt/sdemark"
)

// BFloat16 represents a 16-bit brain floating point number
// Format: 1 sign bit, 8 exponent bits, 7 mantissa bits
type BFloat16 uint16

// ToBFloat16 converts float32 to BFloat16 with round-to-nearest-even,
// matching the VCVTNE2PS2BF16 conversion.
func ToBFloat16(f float32) BFloat16 {
	bits := math.Float32bits(f)
	if bits&0x7F800000 == 0x7F800000 && bits&0x007FFFFF != 0 {
		// NaN: keep it a NaN, force the quiet bit
		return BFloat16(bits>>16 | 0x0040)
	}
	lsb := (bits >> 16) & 1
	bits += 0x7FFF + lsb
	return BFloat16(bits >> 16)
}

// Float32 converts BFloat16 back to float32 (exact).
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

var (
	kernel    sdemark.Kernel = refDotProduct
	hasKernel bool
)

// DotProduct returns the BF16 dot-product probe operation.
func DotProduct() sdemark.Operation {
	return sdemark.Operation{
		Name:      "bf16_dotproduct",
		Feature:   "AVX512_BF16",
		Available: sdemark.HasBF16(),
		Kernel:    kernel,
		HasKernel: hasKernel,
	}
}

// refDotProduct mirrors the hardware kernel lane for lane:
//
//	c1 = maskz(0x0000FFFF) cvtne2(a, b)  -> low 16 elements bf16(b), rest zero
//	c2 = cvtne2(b, a)                    -> low 16 bf16(a), high 16 bf16(b)
//	t  = dpbf16(c, c1, c2)
//	r  = mask(0x00FF) dpbf16(t, c2, c1)
//
// Each float32 lane i of a dot product accumulates the products of
// BF16 element pairs (2i, 2i+1). BF16 products are exact in float32.
func refDotProduct(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
	var c1, c2 [32]BFloat16
	for j := 0; j < 16; j++ {
		c1[j] = ToBFloat16(b[j])
		c2[j] = ToBFloat16(a[j])
		c2[16+j] = ToBFloat16(b[j])
	}

	var t [16]float32
	for i := 0; i < 16; i++ {
		t[i] = c[i] +
			c1[2*i].Float32()*c2[2*i].Float32() +
			c1[2*i+1].Float32()*c2[2*i+1].Float32()
	}
	for i := 0; i < 16; i++ {
		if i < 8 {
			out[i] = t[i] +
				c2[2*i].Float32()*c1[2*i].Float32() +
				c2[2*i+1].Float32()*c1[2*i+1].Float32()
		} else {
			out[i] = t[i]
		}
	}
	return out[0]
}
