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

package trampoline

import "math"

// maxStackSpillWords386 bounds how many gp words the i386 trampolines
// will push onto the stack per call, for the same reason
// maxStackSpillWords does on amd64: these are NOSPLIT leaf functions
// that grow the real stack pointer by hand.
const maxStackSpillWords386 = 1008

//go:noescape
func cdeclCall(target uintptr, gp *uintptr, gpLen int) (retLo, retHi uintptr, retFPBits uint64)

//go:noescape
func stdcallCall(target uintptr, gp *uintptr, gpLen int) (retLo, retHi uintptr, retFPBits uint64)

// cdecl386Caller implements Caller for i386 cdecl (spec.md §4.2): every
// argument, integer or floating-point-as-bits alike, has already been
// classified by the invoke package into gpQueue — a 32-bit host has no
// XMM argument registers and no separate float stack-spill lane in
// this convention, so fp and fpSpill are always empty here and are
// accepted only to satisfy the Caller interface.
type cdecl386Caller struct{}

func (cdecl386Caller) Call(target uintptr, gp []uintptr, fp []float64, fpSpill []uint64) (retLo, retHi uintptr, retFP float64) {
	lo, hi, fpBits := cdeclCall(target, ptr386Of(gp), len(gp))
	return lo, hi, math.Float64frombits(fpBits)
}

// stdcall386Caller implements Caller for i386 stdcall (spec.md §4.3):
// identical argument layout to cdecl, but the callee cleans its own
// stack.
type stdcall386Caller struct{}

func (stdcall386Caller) Call(target uintptr, gp []uintptr, fp []float64, fpSpill []uint64) (retLo, retHi uintptr, retFP float64) {
	lo, hi, fpBits := stdcallCall(target, ptr386Of(gp), len(gp))
	return lo, hi, math.Float64frombits(fpBits)
}

func ptr386Of(gp []uintptr) *uintptr {
	if len(gp) == 0 {
		return nil
	}
	if len(gp) > maxStackSpillWords386 {
		panic("trampoline: gp argument count exceeds the i386 trampoline's stack capacity")
	}
	return &gp[0]
}

func init() {
	register(ConventionCDecl, cdecl386Caller{})
	register(ConventionStdcall, stdcall386Caller{})
}
