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

// Package asmgen prints the register-loading "staircase" used by the
// hand-written trampolines in ../trampoline_amd64.s, formatted through
// the same asmfmt pass the teacher's TranslateUnit pipeline runs its
// generated kernels through. It is not part of the build: the checked
// in .s files are the source of truth and are edited by hand; this
// package only returns the staircase text for review when the register
// set changes. It writes no files and has no go:generate directive.
package asmgen

import (
	"fmt"
	"strings"

	"github.com/klauspost/asmfmt"
)

// Staircase renders a descending CMP/JGE comparison chain followed by
// a register-loading fallthrough ladder: entry label N loads register
// regs[N-1] and falls into entry label N-1, down to label 0 which
// loads nothing. count is the runtime register holding how many of
// regs are populated; instr is the load mnemonic ("MOVSD", "MOVQ");
// base is the register holding the queue's base pointer; wordBytes is
// the stride between consecutive queue slots.
func Staircase(count, base, instr string, regs []string, wordBytes int) (string, error) {
	if len(regs) == 0 {
		return "", fmt.Errorf("asmgen: no registers given")
	}

	var b strings.Builder
	n := len(regs)

	for i := n; i >= 1; i-- {
		fmt.Fprintf(&b, "\tCMPQ %s, $%d\n", count, i)
		fmt.Fprintf(&b, "\tJGE  load%d\n", i)
	}
	fmt.Fprintf(&b, "\tJMP  load0\n\n")

	for i := n; i >= 1; i-- {
		fmt.Fprintf(&b, "load%d:\n", i)
		fmt.Fprintf(&b, "\t%s %d(%s), %s\n\n", instr, (i-1)*wordBytes, base, regs[i-1])
	}
	fmt.Fprintf(&b, "load0:\n")

	formatted, err := asmfmt.Format(strings.NewReader(b.String()))
	if err != nil {
		return "", fmt.Errorf("asmgen: format staircase: %w", err)
	}
	return string(formatted), nil
}

// SystemVFloatStaircase renders the XMM0..XMM7 loading ladder used by
// trampoline_amd64.s's float-argument staircase.
func SystemVFloatStaircase() (string, error) {
	return Staircase("R14", "R13", "MOVSD", []string{"X0", "X1", "X2", "X3", "X4", "X5", "X6", "X7"}, 8)
}

// SystemVIntStaircase renders the R9..RDI loading ladder used by
// trampoline_amd64.s's integer-register staircase.
func SystemVIntStaircase() (string, error) {
	return Staircase("R10", "BX", "MOVQ", []string{"DI", "SI", "DX", "CX", "R8", "R9"}, 8)
}
