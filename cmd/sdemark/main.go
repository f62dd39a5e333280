// Copyright ©2024 The sdemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sdemark runs the marker-delimited FLOP probe.
//
// Each selected operation is dispatched exactly once, bracketed by the
// SSC marks an attached Intel SDE run pattern-matches on:
//
//	sde64 -iform -mix -dyn_mask_profile -start_ssc_mark FACE:repeat \
//	      -stop_ssc_mark DEAD:repeat -- sdemark -fma-avx512 -bf16 -force
//
// The process exit code is the truncated sum of the operations' scalar
// results; it exists only to keep the computations live.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/LynnColeArt/sdemark"
	"github.com/LynnColeArt/sdemark/ops"
)

func main() {
	var (
		fmaAVX2   = flag.Bool("fma-avx2", false, "probe AVX2 FMA (VFNMSUB, 8 lanes)")
		fmaAVX512 = flag.Bool("fma-avx512", false, "probe AVX-512 FMA (VFMADDSUB + masked VFMADD)")
		fma4      = flag.Bool("fma4", false, "probe AVX512_4FMAPS (V4FMADDPS, unmasked + zero-masked)")
		bf16Flag  = flag.Bool("bf16", false, "probe AVX512-BF16 dot product (VDPBF16PS)")
		fp16Flag  = flag.Bool("fp16", false, "probe AVX512-FP16 FMA (VFMADD231PH)")
		amxFlag   = flag.Bool("amx", false, "probe AMX tile dot product (TDPBF16PS)")
		all       = flag.Bool("all", false, "probe every operation")
		force     = flag.Bool("force", false, "dispatch operations the host CPU does not report (for SDE emulation)")
		list      = flag.Bool("list", false, "list operations and availability, then exit")
		cpuinfo   = flag.Bool("cpuinfo", false, "print detected CPU features, then exit")
		version   = flag.Bool("version", false, "print the module version, then exit")
		jsonPath  = flag.String("json", "", "write the run log as JSON to this file")
	)
	klog.InitFlags(nil)
	flag.Parse()

	if *version {
		v, sum := sdemark.Version()
		if v == "" {
			v = "(devel)"
		}
		fmt.Printf("sdemark %s %s\n", v, sum)
		return
	}
	if *cpuinfo {
		fmt.Println(sdemark.CPUInfo())
		return
	}
	if *list {
		for _, op := range ops.Catalog() {
			avail := "unavailable"
			if op.Available {
				avail = "available"
			}
			kernel := "reference"
			if op.HasKernel {
				kernel = "amd64"
			}
			fmt.Printf("%-22s %-18s %-12s %s kernel\n", op.Name, op.Feature, avail, kernel)
		}
		return
	}

	selected := map[string]bool{
		"fma_avx2":            *fmaAVX2 || *all,
		"fma_avx512":          *fmaAVX512 || *all,
		"fma4":                *fma4 || *all,
		"bf16_dotproduct":     *bf16Flag || *all,
		"fp16_fma":            *fp16Flag || *all,
		"amx_tile_dotproduct": *amxFlag || *all,
	}

	// Catalog order is dispatch order.
	var selection []sdemark.Operation
	for _, op := range ops.Catalog() {
		if selected[op.Name] {
			selection = append(selection, op)
		}
	}

	runner := &sdemark.Runner{Force: *force}
	set := sdemark.NewOperands()
	sum, results, err := runner.Run(selection, set)
	if err != nil {
		klog.Flush()
		fmt.Fprintf(os.Stderr, "sdemark: %v\n", err)
		os.Exit(1)
	}

	if *jsonPath != "" {
		runLog := sdemark.NewRunLog(results, sum, *force)
		if err := runLog.WriteFile(*jsonPath); err != nil {
			klog.Warningf("run log not written: %v", err)
		}
	}

	klog.Flush()
	os.Exit(sdemark.ExitCode(sum))
}
