// Package ops assembles the fixed catalog of probe operations. Each
// operation lives in its own subpackage with its hardware kernel,
// feature detection, and a portable reference implementation; this
// package only fixes the catalog order, which is also the dispatch
// order of a multi-operation run.
package ops

import (
	"github.com/LynnColeArt/sdemark"
	"github.com/LynnColeArt/sdemark/ops/amx"
	"github.com/LynnColeArt/sdemark/ops/bf16"
	"github.com/LynnColeArt/sdemark/ops/fma"
	"github.com/LynnColeArt/sdemark/ops/fp16"
)

// Catalog returns all probe operations in their fixed dispatch order.
// The order is stable across runs so a trace can be matched to its
// operations positionally.
func Catalog() []sdemark.Operation {
	return []sdemark.Operation{
		fma.AVX2(),
		fma.AVX512(),
		fma.FMA4(),
		bf16.DotProduct(),
		fp16.FMA(),
		amx.TileDotProduct(),
	}
}

// ByName returns the catalog operation with the given name.
func ByName(name string) (sdemark.Operation, bool) {
	for _, op := range Catalog() {
		if op.Name == name {
			return op, true
		}
	}
	return sdemark.Operation{}, false
}

// Names returns the catalog operation names in dispatch order.
func Names() []string {
	catalog := Catalog()
	names := make([]string, len(catalog))
	for i, op := range catalog {
		names[i] = op.Name
	}
	return names
}
