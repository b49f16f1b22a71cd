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

//go:build !cgo && !windows

package dynload

import "errors"

// errCgoRequired is returned by every loader primitive when the
// binary was built with cgo disabled: opening a shared object by path
// outside of Windows requires the platform's dlfcn.h, which this
// module only reaches through cgo (dynload_cgo.go). invoke.FromAddress
// remains fully usable without cgo — only invoke.New needs this path.
var errCgoRequired = errors.New("dynload: resolving a library by path requires CGO_ENABLED=1 on this platform")

func dlopen(path string) (uintptr, error) {
	return 0, errCgoRequired
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return 0, errCgoRequired
}

func dlclose(handle uintptr) error {
	return errCgoRequired
}
