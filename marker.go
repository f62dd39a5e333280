package sdemark

// SSC mark tags recognized by the external trace consumer. These two
// values are the wire contract with Intel SDE's -start_ssc_mark /
// -stop_ssc_mark options and must never change.
const (
	// RegionStart begins (or resumes) instruction attribution.
	RegionStart uint32 = 0xFACE

	// RegionStop ends (or pauses) instruction attribution.
	RegionStop uint32 = 0xDEAD
)

// MarkFunc emits a trace-visible annotation carrying tag. An emitter
// must be a semantic no-op: no register or memory state visible to the
// caller may change, and it must never fail.
type MarkFunc func(tag uint32)

// markFunc is the emitter used by Mark. It defaults to the hardware SSC
// mark on amd64 and to a true no-op elsewhere. It is a package variable
// so tests can install a recorder; production code never swaps it.
var markFunc MarkFunc = sscMark

// Mark emits the SSC mark for tag at the call site.
//
//go:noinline
func Mark(tag uint32) {
	markFunc(tag)
}

// SetMarkFunc installs fn as the mark emitter and returns the previous
// emitter. A nil fn restores the hardware default.
func SetMarkFunc(fn MarkFunc) MarkFunc {
	prev := markFunc
	if fn == nil {
		fn = sscMark
	}
	markFunc = fn
	return prev
}
