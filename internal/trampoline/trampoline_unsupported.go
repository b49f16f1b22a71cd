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

//go:build !(linux && amd64) && !386

package trampoline

// No trampoline is registered on this (GOARCH, GOOS) pair: neither
// ConventionCDecl nor ConventionStdcall has an implementation here, so
// Supports always reports false and Call always panics, per spec.md
// §9 ("Unsupported triples refuse to build rather than silently
// misbehaving") softened to the Go-native equivalent — the package
// still builds on every platform, since a pure-Go module with
// per-arch .s files ordinarily must, but nothing is ever registered,
// so every entry point fails loudly instead of dereferencing an
// absent trampoline.
