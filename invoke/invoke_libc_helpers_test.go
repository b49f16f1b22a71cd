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

package invoke

import "unsafe"

// cString and pushCString are shared across the amd64 System V and 386
// cdecl/stdcall libc test suites.

func cString(s string) []byte {
	return append([]byte(s), 0)
}

func pushCString(inv *Invocation, s []byte) uintptr {
	addr := uintptr(unsafe.Pointer(&s[0]))
	inv.PushPointer(addr)
	return addr
}
