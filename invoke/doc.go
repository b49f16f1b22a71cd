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

// Package invoke marshals a heterogeneous, type-erased argument list into
// the register and stack layout a native calling convention expects,
// invokes a resolved code address, and hands back the raw return
// registers as typed values.
//
// An Invocation is built once, pushed into left-to-right in source
// order, dispatched under exactly one calling convention, and its
// return read through the Ret* accessors. It is not safe for concurrent
// use; each goroutine that wants to call into native code should own
// its own Invocation.
//
// Narrow integers are zero-extended, never sign-extended, when stored
// in the general-purpose queue. A pushed int8(-1) therefore reaches a
// 64-bit general register as 0x00000000000000FF, not
// 0xFFFFFFFFFFFFFFFF; the callee's declared parameter type is what
// gives those high bits meaning. This matches the classification rule
// used throughout the package and is load-bearing for PushI8/PushI16/
// PushI32 — see push.go.
//
// The package never validates that the pushed arguments match the
// callee's real signature, that the selected convention matches the
// callee's own, or that the resolved address is executable. Getting
// any of those wrong is undefined behavior at the call site, same as
// calling a C function pointer with the wrong prototype in C itself.
package invoke
