package sdemark

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions the probe
// operations depend on.
type CPUFeatures struct {
	HasAVX2       bool
	HasFMA        bool
	HasAVX512F    bool
	HasAVX512BW   bool
	HasAVX512VL   bool
	HasAVX5124FMA bool // AVX512_4FMAPS (Knights Mill)
	HasAVX512BF16 bool
	HasAVX512FP16 bool
	HasAMXTile    bool
	HasAMXBF16    bool
}

var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct. Bits
// x/sys/cpu exposes come from there; the newer extensions it does not
// cover are read through klauspost/cpuid.
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasAVX2:       cpu.X86.HasAVX2,
		HasFMA:        cpu.X86.HasFMA,
		HasAVX512F:    cpu.X86.HasAVX512F,
		HasAVX512BW:   cpu.X86.HasAVX512BW,
		HasAVX512VL:   cpu.X86.HasAVX512VL,
		HasAVX5124FMA: cpu.X86.HasAVX5124FMAPS,
		HasAVX512BF16: cpuid.CPU.Supports(cpuid.AVX512BF16),
		HasAVX512FP16: cpuid.CPU.Supports(cpuid.AVX512FP16),
		HasAMXTile:    cpuid.CPU.Supports(cpuid.AMXTILE),
		HasAMXBF16:    cpuid.CPU.Supports(cpuid.AMXBF16),
	}
}

// Features returns the detected CPU feature set.
func Features() CPUFeatures {
	return cpuFeatures
}

// HasFMAAVX2 reports whether the AVX2 FMA operation runs natively.
func HasFMAAVX2() bool {
	return cpuFeatures.HasAVX2 && cpuFeatures.HasFMA
}

// HasFMAAVX512 reports whether the AVX-512 FMA operation runs natively.
// The masked second FMA needs BW for the 32-bit mask load form.
func HasFMAAVX512() bool {
	return cpuFeatures.HasAVX512F && cpuFeatures.HasAVX512BW
}

// Has4FMA reports AVX512_4FMAPS support.
func Has4FMA() bool {
	return cpuFeatures.HasAVX512F && cpuFeatures.HasAVX5124FMA
}

// HasBF16 reports AVX512-BF16 support.
func HasBF16() bool {
	return cpuFeatures.HasAVX512F && cpuFeatures.HasAVX512BF16
}

// HasFP16 reports AVX512-FP16 support.
func HasFP16() bool {
	return cpuFeatures.HasAVX512F && cpuFeatures.HasAVX512FP16
}

// HasAMX reports AMX tile + BF16 dot-product support.
func HasAMX() bool {
	return cpuFeatures.HasAMXTile && cpuFeatures.HasAMXBF16
}

// CPUInfo returns a string describing the detected features, for the
// driver's -cpuinfo output.
func CPUInfo() string {
	type bit struct {
		name string
		on   bool
	}
	bits := []bit{
		{"AVX2", cpuFeatures.HasAVX2},
		{"FMA", cpuFeatures.HasFMA},
		{"AVX512F", cpuFeatures.HasAVX512F},
		{"AVX512BW", cpuFeatures.HasAVX512BW},
		{"AVX512VL", cpuFeatures.HasAVX512VL},
		{"AVX512_4FMAPS", cpuFeatures.HasAVX5124FMA},
		{"AVX512_BF16", cpuFeatures.HasAVX512BF16},
		{"AVX512_FP16", cpuFeatures.HasAVX512FP16},
		{"AMX-TILE", cpuFeatures.HasAMXTile},
		{"AMX-BF16", cpuFeatures.HasAMXBF16},
	}

	result := ""
	for _, b := range bits {
		if !b.on {
			continue
		}
		if result != "" {
			result += ", "
		}
		result += b.name
	}
	if result == "" {
		return "No probe-relevant extensions detected"
	}
	return "CPU features: " + result
}
