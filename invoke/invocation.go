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
	"fmt"

	"github.com/ajroetker/callit/internal/dynload"
)

// maxFloatArgs is the number of leading floating-point arguments carried
// in XMM registers on 64-bit System V; the ninth onward goes to
// fpSpillQueue as an 8-byte bit pattern.
const maxFloatArgs = 8

// Invocation is the single aggregate described by the marshalling
// engine: a resolved code address plus the two append-only argument
// queues and the three captured return slots.
type Invocation struct {
	target uintptr

	// gpQueue holds integer/pointer arguments, and any wide value (a
	// float or 64-bit integer on a 32-bit host, a 128-bit integer) split into contiguous
	// little-endian machine words, in source push order.
	gpQueue []uintptr

	// fpQueue holds up to maxFloatArgs floating-point arguments, widened
	// to float64, in source push order.
	fpQueue []float64

	// fpSpillQueue holds the 8-byte IEEE-754 bit pattern of every
	// floating-point argument past the first maxFloatArgs, in source
	// push order. Kept separate from gpQueue: these words belong on the
	// stack unconditionally and must never be mistaken for integer
	// arguments still eligible for an integer argument register.
	fpSpillQueue []uint64

	retLo uintptr
	retHi uintptr
	retFP float64

	called bool
}

// FromAddress builds an Invocation directly around a code address. No
// validation is performed: the caller vouches that the address is
// executable and will remain so for the lifetime of the Invocation.
func FromAddress(addr uintptr) *Invocation {
	return &Invocation{target: addr}
}

// New resolves symbolName inside the shared library at libraryPath and
// returns an Invocation targeting it. Resolution is delegated entirely
// to the dynload package; any library-not-found or symbol-not-found
// failure is returned as a LoaderError-wrapped error.
func New(libraryPath, symbolName string) (*Invocation, error) {
	lib, err := dynload.Open(libraryPath)
	if err != nil {
		return nil, fmt.Errorf("invoke: open %q: %w", libraryPath, err)
	}
	addr, err := lib.Symbol(symbolName)
	if err != nil {
		return nil, fmt.Errorf("invoke: resolve %q in %q: %w", symbolName, libraryPath, err)
	}
	return &Invocation{target: addr}, nil
}

// Target returns the code address this Invocation will call.
func (i *Invocation) Target() uintptr {
	return i.target
}
