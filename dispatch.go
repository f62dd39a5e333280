package sdemark

// Kernel is one test operation body: a fixed hardware instruction
// sequence reading the four input vectors (and possibly the auxiliary
// buffer) and returning lane 0 of its result. The kernel must store its
// full result vector into out so the optimizer cannot discard any lane,
// and must not mutate a, b, c or d.
type Kernel func(a, b, c, d *[VectorLen]float32, aux *[AuxLen]byte, out *[VectorLen]float32) float32

// Operation is one selectable probe: a named kernel plus the CPU
// feature it exercises. Kernel is the real amd64 implementation on
// amd64 builds and the portable reference elsewhere, chosen by the ops
// subpackages at init.
type Operation struct {
	// Name identifies the operation to the driver and the run log
	// (e.g. "fma_avx512").
	Name string

	// Feature names the ISA extension the kernel needs on real
	// hardware (e.g. "AVX512F").
	Feature string

	// Available reports whether the host CPU has Feature. An
	// unavailable operation still carries a dispatchable kernel: under
	// SDE emulation the instructions execute fine on hosts that lack
	// them, which is the whole point of the -force flag.
	Available bool

	// Kernel is the selected implementation. Never nil for operations
	// built by the ops package.
	Kernel Kernel

	// HasKernel reports whether Kernel is the real hardware
	// implementation rather than the portable reference.
	HasKernel bool
}

// Dispatch brackets exactly one invocation of op between the start and
// stop SSC marks and returns the operation's scalar result.
//
// The contract is the core of the harness: between the two marks,
// the instructions of op.Kernel execute plus a small fixed overhead the
// trace consumer treats as known — the returns unwinding out of the
// start-mark emitter, the argument loads and indirect call into the
// kernel, and the call sequence down to the stop-mark immediate. That
// overhead is identical for every operation, so it cancels in any
// comparison across operations. The kernel is reached through a
// function value held in a struct field, so the call target is a
// runtime value the compiler cannot devirtualize, and Dispatch itself
// is noinline so the bracket never merges into a caller.
//
// A nil op.Kernel is a configuration error the caller must rule out
// before dispatching; Dispatch has no fallback path.
//
//go:noinline
func Dispatch(op Operation, set *Operands) float32 {
	// Scratch sink for the kernel's full result vector. Written, never
	// read: it exists to force materialization of all lanes.
	var scratch [VectorLen]float32

	fn := op.Kernel
	Mark(RegionStart)
	ret := fn(&set.A, &set.B, &set.C, &set.D, &set.Aux, &scratch)
	Mark(RegionStop)

	return ret
}
