package sdemark

import (
	"math"
	"testing"
)

// DispatchOrSkip dispatches op and skips the test when the host does
// not report the operation's ISA extension. Forcing a kernel the host
// lacks would kill the test process with SIGILL.
func DispatchOrSkip(t testing.TB, op Operation, set *Operands) float32 {
	t.Helper()
	if !op.Available {
		t.Skipf("host CPU lacks %s", op.Feature)
	}
	return Dispatch(op, set)
}

// CheckClose fails the test if got and want differ by more than tol.
func CheckClose(t testing.TB, name string, got, want, tol float32) {
	t.Helper()
	if math.IsNaN(float64(got)) || float32(math.Abs(float64(got-want))) > tol {
		t.Errorf("%s: got %g, want %g (tolerance %g)", name, got, want, tol)
	}
}

// CheckOperandsUnchanged fails the test if set differs from the
// snapshot taken before the operation ran. Test operations must never
// mutate their inputs.
func CheckOperandsUnchanged(t testing.TB, before Operands, set *Operands) {
	t.Helper()
	if before.A != set.A || before.B != set.B || before.C != set.C || before.D != set.D {
		t.Error("input vectors mutated by operation")
	}
	if before.Aux != set.Aux {
		t.Error("auxiliary buffer mutated by operation")
	}
}
