package sdemark

import (
	"encoding/binary"
	"math"
)

// VectorLen is the number of float32 lanes in each input operand, sized
// for the widest vector operation (one AVX-512 register).
const VectorLen = 16

// AuxLen is the size in bytes of the auxiliary operand, one full tile
// row wide. The 4FMA kernel reads its first 16 bytes as four float32
// memory operands.
const AuxLen = 64

// Operands is the shared operand set passed to every test operation:
// four read-only float32 input vectors and one auxiliary buffer. The
// kernels treat all five as immutable.
type Operands struct {
	A, B, C, D [VectorLen]float32
	Aux        [AuxLen]byte
}

// NewOperands returns the canonical operand set the probe always runs
// with:
//
//	A[i] = 1.00/(i+1)
//	B[i] = 0.50/(i+1)
//	C[i] = 0.10/(i+1)
//	D[i] = 0.05/(i+1)
//
// and the first four float32 slots of Aux set to 0.9/(i+1). The test
// operations are fixed instruction sequences, so with fixed inputs every
// run computes the same values and the external trace is reproducible.
func NewOperands() *Operands {
	set := &Operands{}
	for i := 0; i < VectorLen; i++ {
		n := float32(i + 1)
		set.A[i] = 1.00 / n
		set.B[i] = 0.50 / n
		set.C[i] = 0.10 / n
		set.D[i] = 0.05 / n
	}
	for i := 0; i < 4; i++ {
		bits := math.Float32bits(0.9 / float32(i+1))
		binary.LittleEndian.PutUint32(set.Aux[i*4:], bits)
	}
	return set
}

// AuxFloats returns the first four float32 values of the auxiliary
// buffer (the 4FMA memory operand view).
func (o *Operands) AuxFloats() [4]float32 {
	var f [4]float32
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(o.Aux[i*4:]))
	}
	return f
}
