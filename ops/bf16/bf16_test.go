package bf16

import (
	"math"
	"testing"

	"github.com/LynnColeArt/sdemark"
)

func TestToBFloat16Exact(t *testing.T) {
	// Values with at most 7 mantissa bits survive the round trip exactly.
	cases := []float32{0, 1, -1, 0.5, 0.25, 2, -3.5, 128, 1.0 / 256}
	for _, f := range cases {
		if got := ToBFloat16(f).Float32(); got != f {
			t.Errorf("round trip of %v = %v", f, got)
		}
	}
}

func TestToBFloat16RoundsToNearestEven(t *testing.T) {
	cases := []struct {
		in   uint32
		want BFloat16
	}{
		// Below the halfway point: truncate.
		{0x3F807FFF, 0x3F80},
		// Above halfway: round up.
		{0x3F808001, 0x3F81},
		// Exactly halfway, even target: stay.
		{0x3F808000, 0x3F80},
		// Exactly halfway, odd target: round up to even.
		{0x3F818000, 0x3F82},
	}
	for _, c := range cases {
		got := ToBFloat16(math.Float32frombits(c.in))
		if got != c.want {
			t.Errorf("ToBFloat16(%#08x) = %#04x, want %#04x", c.in, got, c.want)
		}
	}
}

func TestToBFloat16NaN(t *testing.T) {
	got := ToBFloat16(float32(math.NaN()))
	if got&0x7F80 != 0x7F80 || got&0x007F == 0 {
		t.Errorf("ToBFloat16(NaN) = %#04x, not a NaN", got)
	}
}

func TestToBFloat16Infinity(t *testing.T) {
	if got := ToBFloat16(float32(math.Inf(1))); got != 0x7F80 {
		t.Errorf("ToBFloat16(+Inf) = %#04x, want 0x7F80", got)
	}
	if got := ToBFloat16(float32(math.Inf(-1))); got != 0xFF80 {
		t.Errorf("ToBFloat16(-Inf) = %#04x, want 0xFF80", got)
	}
}

func TestRefDotProductLowLanes(t *testing.T) {
	set := sdemark.NewOperands()
	var out [16]float32
	ret := refDotProduct(&set.A, &set.B, &set.C, &set.D, &set.Aux, &out)

	if ret != out[0] {
		t.Errorf("return = %v, want out[0] = %v", ret, out[0])
	}

	// Lane i pairs elements (2i, 2i+1): c1 holds bf16(b), c2 bf16(a).
	// Lanes below 8 accumulate the pair twice (both dot products).
	for i := 0; i < 8; i++ {
		p0 := ToBFloat16(set.B[2*i]).Float32() * ToBFloat16(set.A[2*i]).Float32()
		p1 := ToBFloat16(set.B[2*i+1]).Float32() * ToBFloat16(set.A[2*i+1]).Float32()
		want := set.C[i] + p0 + p1
		want = want + p0 + p1
		if out[i] != want {
			t.Errorf("lane %d = %v, want %v", i, out[i], want)
		}
	}
}

func TestRefDotProductMaskedLanes(t *testing.T) {
	set := sdemark.NewOperands()
	var out [16]float32
	refDotProduct(&set.A, &set.B, &set.C, &set.D, &set.Aux, &out)

	// Lanes 8..15 read the zero-masked half of the first conversion
	// vector, so the products vanish and the merge mask skips the second
	// dot product: out[i] must be exactly c[i].
	for i := 8; i < 16; i++ {
		if out[i] != set.C[i] {
			t.Errorf("lane %d = %v, want c[%d] = %v", i, out[i], i, set.C[i])
		}
	}
}

func TestRefDoesNotMutateOperands(t *testing.T) {
	set := sdemark.NewOperands()
	before := *set
	var out [16]float32
	refDotProduct(&set.A, &set.B, &set.C, &set.D, &set.Aux, &out)
	sdemark.CheckOperandsUnchanged(t, before, set)
}

func TestKernelMatchesRef(t *testing.T) {
	op := DotProduct()
	set := sdemark.NewOperands()
	got := sdemark.DispatchOrSkip(t, op, set)

	var out [16]float32
	want := refDotProduct(&set.A, &set.B, &set.C, &set.D, &set.Aux, &out)
	sdemark.CheckClose(t, op.Name, got, want, 1e-2)
}
