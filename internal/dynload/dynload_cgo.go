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

//go:build cgo && !windows

package dynload

/*
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"unsafe"
)

// This file is the one place in the module that uses cgo, isolated
// exactly as spec.md §1 asks: "the core only consumes a code address".
// Everything above this package works purely with uintptr addresses.

func dlopen(path string) (uintptr, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	C.dlerror() // clear any pending error
	handle := C.dlopen(cPath, C.RTLD_NOW|C.RTLD_GLOBAL)
	if handle == nil {
		return 0, loaderError()
	}
	return uintptr(handle), nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	C.dlerror()
	addr := C.dlsym(unsafe.Pointer(handle), cName)
	if addr == nil {
		return 0, loaderError()
	}
	return uintptr(addr), nil
}

func dlclose(handle uintptr) error {
	if C.dlclose(unsafe.Pointer(handle)) != 0 {
		return loaderError()
	}
	return nil
}

func loaderError() error {
	if msg := C.dlerror(); msg != nil {
		return errors.New(C.GoString(msg))
	}
	return errors.New("unknown dynamic loader error")
}
