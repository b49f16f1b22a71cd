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

//go:build linux && 386 && cgo

package invoke

import (
	"bytes"
	"testing"
	"unsafe"
)

// i386 cdecl pushes every argument to the stack (spec.md §4.3); these
// mirror the amd64 suite's scenarios against the same libc entry points
// to confirm the 386 trampoline produces the same call-site behavior a
// register-passing ABI does, just via an all-stack layout.

func TestCdeclSprintfPreservesArgumentOrder(t *testing.T) {
	libc, err := New("libc.so.6", "sprintf")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	buf := make([]byte, 64)
	format := cString("%d-%d-%d")

	libc.PushPointer(uintptr(unsafe.Pointer(&buf[0])))
	pushCString(libc, format)
	libc.PushI32(1)
	libc.PushI32(2)
	libc.PushI32(3)
	libc.CDecl()

	want := "1-2-3"
	if n := libc.RetI32(); n != int32(len(want)) {
		t.Fatalf("sprintf returned %d, want %d", n, len(want))
	}
	if got := string(bytes.TrimRight(buf, "\x00")); got != want {
		t.Fatalf("sprintf wrote %q, want %q", got, want)
	}
}

func TestCdeclAtoiAndAtof(t *testing.T) {
	atoi, err := New("libc.so.6", "atoi")
	if err != nil {
		t.Fatalf("New(atoi): %v", err)
	}
	atoi.PushPointer(uintptr(unsafe.Pointer(&cString("42")[0])))
	atoi.CDecl()
	if got := atoi.RetI32(); got != 42 {
		t.Fatalf("atoi(\"42\") = %d, want 42", got)
	}

	atof, err := New("libc.so.6", "atof")
	if err != nil {
		t.Fatalf("New(atof): %v", err)
	}
	atof.PushPointer(uintptr(unsafe.Pointer(&cString("3.5")[0])))
	atof.CDecl()
	if got := atof.RetF64(); got != 3.5 {
		t.Fatalf("atof(\"3.5\") = %v, want 3.5", got)
	}
}

func TestCdeclCallerCleansStackAcrossRepeatedCalls(t *testing.T) {
	// cdecl's defining trait versus stdcall: repeated calls at varying
	// argument counts must never drift the caller's stack pointer.
	// spec.md §8 calls for thousands of repeated calls, since a
	// one-word-per-call cleanup drift is invisible after only a few
	// iterations and only shows up once it has accumulated far enough
	// to misalign the stack for a later call.
	const iterations = 5000
	for i := 0; i < iterations; i++ {
		atoi, err := New("libc.so.6", "atoi")
		if err != nil {
			t.Fatalf("New(atoi) iteration %d: %v", i, err)
		}
		atoi.PushPointer(uintptr(unsafe.Pointer(&cString("7")[0])))
		atoi.CDecl()
		if got := atoi.RetI32(); got != 7 {
			t.Fatalf("iteration %d: atoi(\"7\") = %d, want 7", i, got)
		}

		pow, err := New("libm.so.6", "pow")
		if err != nil {
			t.Fatalf("New(pow) iteration %d: %v", i, err)
		}
		pow.PushF64(2)
		pow.PushF64(3)
		pow.CDecl()
		if got := pow.RetF64(); got != 8 {
			t.Fatalf("iteration %d: pow(2,3) = %v, want 8", i, got)
		}
	}
}
