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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// typedArg is one --arg type:value pair, parsed but not yet pushed. The
// type tag spells the same primitive classes spec.md §4.1 names:
// i8 u8 i16 u16 i32 u32 i64 u64 ptr f32 f64.
type typedArg struct {
	typ   string
	value string
}

// argList backs the repeatable --arg flag. pflag.Value is satisfied by
// String/Set/Type, the same shape cobra's own StringSlice flags use
// internally.
type argList struct {
	args []typedArg
}

func (a *argList) String() string {
	parts := lo.Map(a.args, func(t typedArg, _ int) string {
		return t.typ + ":" + t.value
	})
	return strings.Join(parts, ",")
}

func (a *argList) Set(raw string) error {
	typ, value, ok := strings.Cut(raw, ":")
	if !ok {
		return fmt.Errorf("--arg %q: want TYPE:VALUE", raw)
	}
	a.args = append(a.args, typedArg{typ: typ, value: value})
	return nil
}

func (a *argList) Type() string {
	return "type:value"
}

// push applies every parsed argument to inv, in the order --arg was
// given on the command line — spec.md §2's push sequence is
// order-sensitive, so argList preserves insertion order rather than
// grouping by type.
func (a *argList) push(inv pusher) error {
	for i, t := range a.args {
		if err := pushOne(inv, t); err != nil {
			return fmt.Errorf("--arg #%d (%s:%s): %w", i+1, t.typ, t.value, err)
		}
	}
	return nil
}

// pusher is the subset of *invoke.Invocation that pushOne needs; kept as
// an interface purely so arg_flag_test.go can exercise pushOne against a
// recording fake instead of a live *invoke.Invocation.
type pusher interface {
	PushI8(int8)
	PushU8(uint8)
	PushI16(int16)
	PushU16(uint16)
	PushI32(int32)
	PushU32(uint32)
	PushI64(int64)
	PushU64(uint64)
	PushPointer(uintptr)
	PushF32(float32)
	PushF64(float64)
}

func pushOne(inv pusher, t typedArg) error {
	switch t.typ {
	case "i8":
		v, err := strconv.ParseInt(t.value, 0, 8)
		if err != nil {
			return err
		}
		inv.PushI8(int8(v))
	case "u8":
		v, err := strconv.ParseUint(t.value, 0, 8)
		if err != nil {
			return err
		}
		inv.PushU8(uint8(v))
	case "i16":
		v, err := strconv.ParseInt(t.value, 0, 16)
		if err != nil {
			return err
		}
		inv.PushI16(int16(v))
	case "u16":
		v, err := strconv.ParseUint(t.value, 0, 16)
		if err != nil {
			return err
		}
		inv.PushU16(uint16(v))
	case "i32":
		v, err := strconv.ParseInt(t.value, 0, 32)
		if err != nil {
			return err
		}
		inv.PushI32(int32(v))
	case "u32":
		v, err := strconv.ParseUint(t.value, 0, 32)
		if err != nil {
			return err
		}
		inv.PushU32(uint32(v))
	case "i64":
		v, err := strconv.ParseInt(t.value, 0, 64)
		if err != nil {
			return err
		}
		inv.PushI64(v)
	case "u64":
		v, err := strconv.ParseUint(t.value, 0, 64)
		if err != nil {
			return err
		}
		inv.PushU64(v)
	case "ptr":
		v, err := strconv.ParseUint(t.value, 0, 64)
		if err != nil {
			return err
		}
		inv.PushPointer(uintptr(v))
	case "f32":
		v, err := strconv.ParseFloat(t.value, 32)
		if err != nil {
			return err
		}
		inv.PushF32(float32(v))
	case "f64":
		v, err := strconv.ParseFloat(t.value, 64)
		if err != nil {
			return err
		}
		inv.PushF64(v)
	default:
		return fmt.Errorf("unknown argument type %q (want one of i8 u8 i16 u16 i32 u32 i64 u64 ptr f32 f64)", t.typ)
	}
	return nil
}
