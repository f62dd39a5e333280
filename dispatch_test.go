package sdemark

import (
	"testing"
)

// recorder captures the observable event sequence of a dispatch: marker
// emissions and kernel invocations.
type recorder struct {
	events []string
}

func (r *recorder) markFunc() MarkFunc {
	return func(tag uint32) {
		switch tag {
		case RegionStart:
			r.events = append(r.events, "start")
		case RegionStop:
			r.events = append(r.events, "stop")
		default:
			r.events = append(r.events, "unknown")
		}
	}
}

func (r *recorder) op(name string, val float32) Operation {
	return Operation{
		Name:      name,
		Feature:   "none",
		Available: true,
		Kernel: func(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
			r.events = append(r.events, name)
			for i := range out {
				out[i] = val
			}
			return out[0]
		},
	}
}

func checkEvents(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("event sequence %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event sequence %v, want %v", got, want)
		}
	}
}

func TestDispatchBracketsExactlyOneInvocation(t *testing.T) {
	rec := &recorder{}
	prev := SetMarkFunc(rec.markFunc())
	defer SetMarkFunc(prev)

	set := NewOperands()
	got := Dispatch(rec.op("op", 2.5), set)

	checkEvents(t, rec.events, []string{"start", "op", "stop"})
	if got != 2.5 {
		t.Errorf("Dispatch returned %g, want 2.5", got)
	}
}

func TestDispatchBracketsNeverInterleave(t *testing.T) {
	rec := &recorder{}
	prev := SetMarkFunc(rec.markFunc())
	defer SetMarkFunc(prev)

	set := NewOperands()
	Dispatch(rec.op("first", 1), set)
	Dispatch(rec.op("second", 2), set)
	Dispatch(rec.op("third", 3), set)

	checkEvents(t, rec.events, []string{
		"start", "first", "stop",
		"start", "second", "stop",
		"start", "third", "stop",
	})
}

func TestDispatchDoesNotMutateOperands(t *testing.T) {
	prev := SetMarkFunc(func(uint32) {})
	defer SetMarkFunc(prev)

	rec := &recorder{}
	set := NewOperands()
	before := *set
	Dispatch(rec.op("op", 1), set)
	CheckOperandsUnchanged(t, before, set)
}

func TestDispatchPassesOperandPointers(t *testing.T) {
	prev := SetMarkFunc(func(uint32) {})
	defer SetMarkFunc(prev)

	set := NewOperands()
	op := Operation{
		Name:      "probe",
		Available: true,
		Kernel: func(a, b, c, d *[16]float32, aux *[64]byte, out *[16]float32) float32 {
			if a != &set.A || b != &set.B || c != &set.C || d != &set.D || aux != &set.Aux {
				t.Error("kernel did not receive the shared operand buffers")
			}
			return a[0] + b[0]
		},
	}
	got := Dispatch(op, set)
	CheckClose(t, "a[0]+b[0]", got, 1.5, 0)
}
