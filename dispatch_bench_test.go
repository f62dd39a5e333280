package sdemark_test

import (
	"testing"

	"github.com/aclements/go-perfevent/perfbench"

	"github.com/LynnColeArt/sdemark"
	"github.com/LynnColeArt/sdemark/ops"
)

// BenchmarkDispatch measures the per-call cost of the dispatch wrapper
// around a trivial kernel. The region markers compile to an ebx load
// plus a prefixed nop, so the wrapper overhead should be dominated by
// the indirect call itself.
func BenchmarkDispatch(b *testing.B) {
	op := sdemark.Operation{
		Name:      "noop",
		Available: true,
		Kernel: func(a, bv, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
			return a[0]
		},
	}
	set := sdemark.NewOperands()

	cs := perfbench.Open(b)
	b.ResetTimer()
	cs.Reset()
	for i := 0; i < b.N; i++ {
		sdemark.Dispatch(op, set)
	}
	cs.Stop()
}

// BenchmarkOperations runs each probe whose kernel the host can execute
// natively, with hardware counters attached.
func BenchmarkOperations(b *testing.B) {
	for _, op := range ops.Catalog() {
		b.Run(op.Name, func(b *testing.B) {
			if !op.Available {
				b.Skipf("%s not supported on this host", op.Feature)
			}
			set := sdemark.NewOperands()
			cs := perfbench.Open(b)
			b.ResetTimer()
			cs.Reset()
			for i := 0; i < b.N; i++ {
				sdemark.Dispatch(op, set)
			}
			cs.Stop()
		})
	}
}
