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

package invoke

import (
	"errors"

	"github.com/ajroetker/callit/internal/trampoline"
)

// ErrUnsupportedOperation is returned by a dispatch verb that has no
// trampoline for the running (GOARCH, GOOS) pair, or by a return
// accessor asked to reinterpret a width the host cannot represent
// (spec.md §7's UnsupportedOperation failure kind).
var ErrUnsupportedOperation = errors.New("invoke: unsupported operation on this platform")

// CDecl invokes the target under the cdecl convention: on i386 this is
// the classic right-to-left-push, caller-cleans-stack convention
// (spec.md §4.2); on x86-64/Linux, cdecl *is* System V AMD64 (spec.md
// §4.4), so the same verb is exposed there too. It panics if called a
// second time on the same Invocation, since gpQueue/fpQueue have
// already been consumed by the trampoline and a second run would
// silently replay stale arguments.
func (i *Invocation) CDecl() {
	i.dispatch(trampoline.ConventionCDecl)
}

// Stdcall invokes the target under the stdcall convention (spec.md
// §4.3): identical to cdecl except the callee cleans its own stack.
// Only implemented on i386; on any other host it returns
// ErrUnsupportedOperation and performs no call.
func (i *Invocation) Stdcall() error {
	if !trampoline.Supports(trampoline.ConventionStdcall) {
		return ErrUnsupportedOperation
	}
	i.dispatch(trampoline.ConventionStdcall)
	return nil
}

func (i *Invocation) dispatch(conv trampoline.Convention) {
	if i.called {
		panic("invoke: Invocation dispatched more than once")
	}
	i.called = true
	i.retLo, i.retHi, i.retFP = trampoline.Call(conv, i.target, i.gpQueue, i.fpQueue, i.fpSpillQueue)
}
