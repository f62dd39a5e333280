//go:build amd64
// +build amd64

package sdemark

// The SDE mark detector statically pattern-matches a `mov ebx, imm32`
// immediately preceding the magic three-byte no-op and reads the tag
// from the immediate. A register load from memory carries no immediate
// and is never recognized, so each tag needs its own TEXT block with
// the tag baked in. Implemented in marker_amd64.s.

//go:noescape
func sscMarkStart()

//go:noescape
func sscMarkStop()

// sscMark dispatches to the immediate-form emitter for tag. Tags
// outside the wire contract emit nothing: there is no general-purpose
// mark, only the two region delimiters.
func sscMark(tag uint32) {
	switch tag {
	case RegionStart:
		sscMarkStart()
	case RegionStop:
		sscMarkStop()
	}
}
