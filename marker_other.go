//go:build !amd64
// +build !amd64

package sdemark

// SSC marks are an x86 tracer convention. On other architectures the
// emitter degrades to a true no-op: marker placement is advisory
// instrumentation, never an error.
func sscMark(tag uint32) {}
