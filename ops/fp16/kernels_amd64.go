//go:build amd64
// +build amd64

package fp16

// fmaKernel is the AVX512-FP16 sequence. Implemented in
// kernels_amd64.s; the two VFMADD231PH instructions are hand-assembled
// EVEX MAP6 encodings.
//
//go:noescape
func fmaKernel(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32

func init() {
	kernel = fmaKernel
	hasKernel = true
}
