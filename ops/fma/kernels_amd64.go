//go:build amd64
// +build amd64

package fma

// Assembly kernels. Implemented in kernels_amd64.s.

//go:noescape
func fmaAVX2Kernel(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32

//go:noescape
func fmaAVX512Kernel(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32

//go:noescape
func fma4Kernel4FMAPS(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32

func init() {
	avx2Kernel = fmaAVX2Kernel
	avx2HasKernel = true
	avx512Kernel = fmaAVX512Kernel
	avx512HasKernel = true
	fma4Kernel = fma4Kernel4FMAPS
	fma4HasKernel = true
}
