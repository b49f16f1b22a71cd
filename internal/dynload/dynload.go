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

// Package dynload is the OS loader collaborator spec.md §1 puts out of
// scope for the core engine: opening a shared library by path and
// resolving a symbol name to a code address. invoke.New is the only
// caller that needs both steps combined; Open/Symbol/Close are kept
// independently usable since original_source/ (Aloxaf/funcall) exposes
// the same Library/symbol split.
package dynload

import (
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// ErrLibraryNotFound is returned when the platform loader cannot open
// the requested shared object (spec.md §7's LoaderError kind).
var ErrLibraryNotFound = errors.New("dynload: library not found")

// ErrSymbolNotFound is returned when the requested symbol does not
// exist in an otherwise successfully opened library.
var ErrSymbolNotFound = errors.New("dynload: symbol not found")

// Library is an open, reference-counted shared-library handle.
type Library struct {
	path   string
	handle uintptr

	mu     sync.Mutex
	refs   int
	closed bool
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*Library{}
)

// Open resolves path to a Library, reusing an already-open handle for
// the same path rather than calling the platform loader again
// (SPEC_FULL.md §7, Open Question 1: a cached handle table is kept).
func Open(path string) (*Library, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if lib, ok := cache[path]; ok {
		lib.mu.Lock()
		lib.refs++
		lib.mu.Unlock()
		return lib, nil
	}

	handle, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, path, err)
	}
	lib := &Library{path: path, handle: handle, refs: 1}
	cache[path] = lib
	return lib, nil
}

// Symbol resolves name to a code address within the library. The NUL
// terminator spec.md §6 requires is added by the platform loader
// binding below; Go strings passed through cgo are always
// NUL-terminated on conversion.
func (l *Library) Symbol(name string) (uintptr, error) {
	addr, err := dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	return addr, nil
}

// Close releases one reference to the library. The underlying OS
// handle is only actually closed once every matching Open has been
// released — CachedPaths below reports which paths are still held
// open, for tests and for cmd/callit's --verbose diagnostics.
func (l *Library) Close() error {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	l.mu.Lock()
	l.refs--
	remaining := l.refs
	l.mu.Unlock()

	if remaining > 0 {
		return nil
	}
	delete(cache, l.path)
	if l.closed {
		return nil
	}
	l.closed = true
	return dlclose(l.handle)
}

// CachedPaths returns the paths currently held open, for tests and for
// the --verbose diagnostics in cmd/callit.
func CachedPaths() []string {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	return lo.Uniq(lo.Keys(cache))
}
