package sdemark

import (
	"testing"
)

func TestMarkerTagsDistinct(t *testing.T) {
	if RegionStart == RegionStop {
		t.Fatalf("marker tags must be distinct, both are %#x", RegionStart)
	}
	// Wire contract with the SDE command line (FACE/DEAD).
	if RegionStart != 0xFACE {
		t.Errorf("start tag = %#x, want 0xFACE", RegionStart)
	}
	if RegionStop != 0xDEAD {
		t.Errorf("stop tag = %#x, want 0xDEAD", RegionStop)
	}
}

func TestMarkHardwareEmitterIsHarmless(t *testing.T) {
	// The default emitter must be a semantic no-op on every platform:
	// no crash, no visible state change.
	Mark(RegionStart)
	Mark(RegionStop)
}

func TestHardwareEmitterPerTag(t *testing.T) {
	// Each region tag has its own emitter with the tag baked into the
	// instruction bytes; the dispatch must accept both and ignore tags
	// outside the wire contract.
	sscMark(RegionStart)
	sscMark(RegionStop)
	sscMark(0x1234)
}

func TestSetMarkFunc(t *testing.T) {
	var got []uint32
	prev := SetMarkFunc(func(tag uint32) { got = append(got, tag) })
	defer SetMarkFunc(prev)

	Mark(RegionStart)
	Mark(RegionStop)
	Mark(RegionStart)

	want := []uint32{RegionStart, RegionStop, RegionStart}
	if len(got) != len(want) {
		t.Fatalf("recorded %d marks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mark %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestSetMarkFuncNilRestoresDefault(t *testing.T) {
	var count int
	SetMarkFunc(func(tag uint32) { count++ })
	SetMarkFunc(nil)

	Mark(RegionStart)
	if count != 0 {
		t.Errorf("recorder still installed after reset, saw %d marks", count)
	}
}
