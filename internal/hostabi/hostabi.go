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

// Package hostabi answers the two questions cmd/callit and invoke's
// tests need before they can pick a trampoline: how wide is this host's
// native word, and which of spec.md §4's three calling conventions does
// trampoline.Supports actually wire up here. The teacher asks the
// equivalent "what architecture am I building for" question with
// runtime.GOARCH/runtime.GOOS defaults on its --target/--target-os
// flags (main.go); hostabi answers it for the host invoke itself runs
// on, rather than a cross-compilation target, since invoke calls into
// the running process's own address space.
package hostabi

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/callit/internal/trampoline"
)

// WordBits is the width of the host's native machine word: 64 on amd64,
// 32 on 386. It mirrors the wordBits constant invoke/push.go computes
// independently for its own classification logic.
const WordBits = 32 << (^uint(0) >> 63)

// Triple names the (GOOS, GOARCH) pair a convention is registered for.
type Triple struct {
	OS   string
	Arch string
}

// Host is the triple this process is currently running on.
func Host() Triple {
	return Triple{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Supports reports whether conv has a registered trampoline.Caller for
// the host triple. It is a thin wrapper that forwards to
// trampoline.Supports; cmd/callit calls trampoline.Supports directly.
func Supports(conv trampoline.Convention) bool {
	return trampoline.Supports(conv)
}

// HasAVX reports whether the host CPU supports AVX (cpu.X86.HasAVX;
// always false off x86). invoke never emits AVX instructions
// itself — the System V trampoline only ever touches the low XMM0-XMM7
// lanes cpu.X86.HasSSE2 already guarantees — but cmd/callit surfaces
// this in --verbose diagnostics so a caller debugging a crash can rule
// the host FPU out.
func HasAVX() bool {
	return cpu.X86.HasAVX
}
