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

//go:build linux && cgo

package dynload

import "testing"

const libm = "libm.so.6"

func TestOpenReusesHandleForSamePath(t *testing.T) {
	a, err := Open(libm)
	if err != nil {
		t.Fatalf("Open(%q): %v", libm, err)
	}
	defer a.Close()

	b, err := Open(libm)
	if err != nil {
		t.Fatalf("second Open(%q): %v", libm, err)
	}
	defer b.Close()

	if a != b {
		t.Fatal("expected Open to return the cached Library for an already-open path")
	}
	if a.refs != 2 {
		t.Fatalf("refs = %d, want 2", a.refs)
	}
}

func TestCloseReleasesHandleOnceRefsReachZero(t *testing.T) {
	a, err := Open(libm)
	if err != nil {
		t.Fatalf("Open(%q): %v", libm, err)
	}
	b, err := Open(libm)
	if err != nil {
		t.Fatalf("second Open(%q): %v", libm, err)
	}

	if err := a.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if _, ok := cache[libm]; !ok {
		t.Fatal("expected library to remain cached while a reference is still outstanding")
	}

	if err := b.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := cache[libm]; ok {
		t.Fatal("expected library to be evicted once every reference was released")
	}
}

func TestSymbolResolvesKnownAndRejectsUnknown(t *testing.T) {
	lib, err := Open(libm)
	if err != nil {
		t.Fatalf("Open(%q): %v", libm, err)
	}
	defer lib.Close()

	if _, err := lib.Symbol("floor"); err != nil {
		t.Fatalf("Symbol(%q): %v", "floor", err)
	}
	if _, err := lib.Symbol("this_symbol_does_not_exist_anywhere"); err == nil {
		t.Fatal("expected an error resolving a nonexistent symbol")
	}
}

func TestOpenUnknownLibraryFails(t *testing.T) {
	if _, err := Open("libthisdoesnotexist.so.999"); err == nil {
		t.Fatal("expected an error opening a nonexistent library")
	}
}
