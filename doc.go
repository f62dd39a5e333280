// Copyright ©2024 The sdemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdemark is a microbenchmark harness for counting FLOPs of
// individual instruction-set extensions with the Intel Software
// Development Emulator (SDE).
//
// The harness brackets exactly one hardware test operation between a
// pair of SSC trace marks (0xFACE to start, 0xDEAD to stop). An SDE run
// started with
//
//	sde64 -iform -mix -dyn_mask_profile -start_ssc_mark FACE:repeat \
//	      -stop_ssc_mark DEAD:repeat -- sdemark -fma-avx512
//
// captures only the instructions executed between the two marks, so the
// downstream mix analysis attributes FLOPs to the operation under test
// and nothing else.
//
// The marks are semantic no-ops: they change no register or memory state
// visible to the program and execute in constant time. Each test
// operation is reached through a runtime function value so the call
// boundary survives optimization, and every operation's scalar result is
// accumulated into the process exit value so no computation can be
// eliminated as dead code.
//
// Operation kernels live under ops/ with one subpackage per ISA family
// (AVX2/AVX-512 FMA, AVX512_4FMAPS, AVX512-BF16, AVX512-FP16, AMX).
// Each ships a real amd64 kernel selected on amd64 builds, and a
// portable reference implementation used on other architectures and by
// the tests. Whether an operation may be dispatched on this host is
// decided by the runner, where -force overrides the CPU feature check
// for emulated runs.
package sdemark
