// Package amx provides the AMX tile dot-product probe operation: one
// TDPBF16PS over a 16×32 BF16 A tile and a 16×32 BF16 B tile into a
// 16×16 FP32 accumulator tile (2 x 16 x 16 x 16 single precision FLOPs
// for the trace consumer).
//
// The tiles are loaded with a row stride of zero directly from the byte
// images of the a and b operand vectors, so every tile row reads the
// same 64 bytes and no packing code pollutes the instrumented region.
// The float32 bit patterns are reinterpreted as BF16 pairs; the probe
// measures instructions, not numerics, and the reference implementation
// reproduces the reinterpretation exactly.
package amx

import (
	"math"

	"github.com/LynnColeArt/sdemark"
)

var (
	kernel    sdemark.Kernel = refTileDotProduct
	hasKernel bool
)

// TileDotProduct returns the AMX BF16 tile dot-product probe operation.
// On Linux hosts with AMX, the first call requests XTILEDATA state from
// the kernel; without that permission a tile instruction faults.
func TileDotProduct() sdemark.Operation {
	available := sdemark.HasAMX()
	if available {
		available = enableTileData() == nil
	}
	return sdemark.Operation{
		Name:      "amx_tile_dotproduct",
		Feature:   "AMX-TILE+AMX-BF16",
		Available: available,
		Kernel:    kernel,
		HasKernel: hasKernel,
	}
}

// ftz converts a BF16 bit pattern to float32 with the dot-product
// unit's denormals-are-zero behavior.
func ftz(u uint16) float32 {
	if u&0x7F80 == 0 {
		return 0
	}
	return math.Float32frombits(uint32(u) << 16)
}

// refTileDotProduct mirrors the tile kernel: with a zero row stride
// every A row is the byte image of a and every B row the byte image of
// b, so each accumulator row is identical and
//
//	C[m][n] = Σ_k A[2k]·B[2n] + A[2k+1]·B[2n+1]
//
// over the 32 BF16 words of each 64-byte row. Row 0 is stored to out.
func refTileDotProduct(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
	var aw, bw [32]uint16
	for i := 0; i < 16; i++ {
		abits := math.Float32bits(a[i])
		bbits := math.Float32bits(b[i])
		aw[2*i] = uint16(abits)
		aw[2*i+1] = uint16(abits >> 16)
		bw[2*i] = uint16(bbits)
		bw[2*i+1] = uint16(bbits >> 16)
	}

	for n := 0; n < 16; n++ {
		var acc float32
		for k := 0; k < 16; k++ {
			acc += ftz(aw[2*k])*ftz(bw[2*n]) + ftz(aw[2*k+1])*ftz(bw[2*n+1])
		}
		out[n] = acc
	}
	return out[0]
}
