//go:build amd64
// +build amd64

package bf16

// dotProductKernel is the AVX512-BF16 sequence. Implemented in
// kernels_amd64.s with hand-assembled EVEX encodings; the assembler has
// no VCVTNE2PS2BF16/VDPBF16PS mnemonics.
//
//go:noescape
func dotProductKernel(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32

func init() {
	kernel = dotProductKernel
	hasKernel = true
}
