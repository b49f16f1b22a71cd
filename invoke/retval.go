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

import "github.com/ajroetker/callit/internal/retval"

// Ret accessors reinterpret the three captured return slots (spec.md
// §4.5). They are pure and idempotent: calling more than one, or the
// same one twice, never mutates the Invocation.

func (i *Invocation) RetI8() int8   { return int8(i.RetU8()) }
func (i *Invocation) RetU8() uint8  { return uint8(i.retLo) }
func (i *Invocation) RetI16() int16 { return int16(i.RetU16()) }
func (i *Invocation) RetU16() uint16 {
	return uint16(i.retLo)
}
func (i *Invocation) RetI32() int32   { return int32(i.RetU32()) }
func (i *Invocation) RetU32() uint32  { return uint32(i.retLo) }
func (i *Invocation) RetI64() int64   { return int64(i.RetU64()) }
func (i *Invocation) RetU64() uint64  { return retval.CombineU64(uint64(i.retLo), uint64(i.retHi), wordBits) }
func (i *Invocation) RetIsize() int   { return int(i.retLo) }
func (i *Invocation) RetUsize() uint  { return uint(i.retLo) }
func (i *Invocation) RetF32() float32 { return float32(i.retFP) }
func (i *Invocation) RetF64() float64 { return i.retFP }

// RetI128 combines RAX:RDX into a signed 128-bit result, given as
// (lo, hi) 64-bit limbs, per spec.md §4.5. It is only implemented on a
// 64-bit host; a 32-bit host cannot combine a 128-bit value from two
// 32-bit return registers and spec.md §4.5/§7 calls that out as a
// deterministic unsupported failure.
func (i *Invocation) RetI128() (lo, hi uint64, err error) { return i.RetU128() }

// RetU128 is the unsigned counterpart of RetI128.
func (i *Invocation) RetU128() (lo, hi uint64, err error) {
	if wordBits != 64 {
		return 0, 0, ErrUnsupportedOperation
	}
	return uint64(i.retLo), uint64(i.retHi), nil
}
