// Copyright 2022 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux

package trampoline

import "math"

// maxFloatRegisters is the number of XMM registers System V AMD64
// dedicates to floating-point arguments (spec.md §4.4).
const maxFloatRegisters = 8

// maxStackSpillWords bounds how many general-purpose arguments beyond
// the first six may spill onto the stack. sysvCall is a NOSPLIT leaf
// trampoline: it grows the real stack pointer by hand at runtime
// instead of through a declared Go frame, so nothing stops the
// assembly from reserving an unreasonable amount of space. This cap,
// enforced in Go before the call ever reaches assembly, keeps that
// reservation well inside a goroutine's guaranteed stack headroom —
// comfortably past what any real C function signature needs.
const maxStackSpillWords = 504

// maxFloatSpillWords bounds fpSpill the same way maxStackSpillWords
// bounds gp's stack-spill region: a defensive Go-level clamp ahead of
// the NOSPLIT trampoline's hand-grown stack frame.
const maxFloatSpillWords = 504

//go:noescape
func sysvCall(target uintptr, gp *uintptr, gpLen int, fp *float64, fpLen int, fpSpill *uint64, fpSpillLen int) (retLo, retHi uintptr, retFPBits uint64)

// sysvCaller implements Caller for x86-64 System V Linux (spec.md
// §4.4). It is also registered under ConventionCDecl, since on this
// triple cdecl and System V AMD64 are the same convention (spec.md
// §6: "On x86-64/Linux [cdecl] *is* System V AMD64").
type sysvCaller struct{}

func (sysvCaller) Call(target uintptr, gp []uintptr, fp []float64, fpSpill []uint64) (retLo, retHi uintptr, retFP float64) {
	if len(gp) > 6+maxStackSpillWords {
		panic("trampoline: gp argument count exceeds the System V trampoline's stack-spill capacity")
	}
	if len(fp) > maxFloatRegisters {
		panic("trampoline: fp argument count exceeds System V's eight XMM argument registers")
	}
	if len(fpSpill) > maxFloatSpillWords {
		panic("trampoline: fp argument count exceeds the System V trampoline's float stack-spill capacity")
	}
	var gpPtr *uintptr
	if len(gp) > 0 {
		gpPtr = &gp[0]
	}
	var fpPtr *float64
	if len(fp) > 0 {
		fpPtr = &fp[0]
	}
	var fpSpillPtr *uint64
	if len(fpSpill) > 0 {
		fpSpillPtr = &fpSpill[0]
	}
	lo, hi, fpBits := sysvCall(target, gpPtr, len(gp), fpPtr, len(fp), fpSpillPtr, len(fpSpill))
	return lo, hi, math.Float64frombits(fpBits)
}

func init() {
	register(ConventionCDecl, sysvCaller{})
}
