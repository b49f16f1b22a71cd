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

	"github.com/ajroetker/callit/internal/csig"
)

// argTypeOf translates a csig.Class into the same TYPE token pushOne
// already understands from a hand-written --arg TYPE:VALUE flag, so
// --csig and --arg share one push path.
func argTypeOf(c csig.Class) (string, bool) {
	switch c {
	case csig.ClassI8:
		return "i8", true
	case csig.ClassU8:
		return "u8", true
	case csig.ClassI16:
		return "i16", true
	case csig.ClassU16:
		return "u16", true
	case csig.ClassI32:
		return "i32", true
	case csig.ClassU32:
		return "u32", true
	case csig.ClassI64:
		return "i64", true
	case csig.ClassU64:
		return "u64", true
	case csig.ClassPointer:
		return "ptr", true
	case csig.ClassF32:
		return "f32", true
	case csig.ClassF64:
		return "f64", true
	default:
		return "", false
	}
}

// pushCsigArgs classifies prototype with csig.Parse and pushes values,
// positionally zipped against the parsed parameter list, through the
// same pusher interface --arg uses. This is the wiring SPEC_FULL.md §3
// promises for modernc.org/cc/v4: --csig lets a caller hand callit a C
// prototype instead of spelling out a --arg TYPE:VALUE per parameter.
func pushCsigArgs(inv pusher, prototype string, values []string) (csig.Signature, error) {
	sig, err := csig.Parse(prototype)
	if err != nil {
		return csig.Signature{}, fmt.Errorf("--csig %q: %w", prototype, err)
	}
	if len(values) != len(sig.Params) {
		return sig, fmt.Errorf("--csig %q wants %d argument(s), got %d", prototype, len(sig.Params), len(values))
	}
	for i, class := range sig.Params {
		typ, ok := argTypeOf(class)
		if !ok {
			return sig, fmt.Errorf("--csig %q: parameter %d has no invoke push class", prototype, i+1)
		}
		if err := pushOne(inv, typedArg{typ: typ, value: values[i]}); err != nil {
			return sig, fmt.Errorf("--csig %q: argument %d (%s): %w", prototype, i+1, values[i], err)
		}
	}
	return sig, nil
}

// returnTypeOf maps a csig.Signature's return class back onto the
// --return-type flag's vocabulary, for callers who pass --csig and want
// the return type inferred rather than stated twice.
func returnTypeOf(sig csig.Signature) string {
	switch sig.Return {
	case csig.ClassI8:
		return "i8"
	case csig.ClassU8:
		return "u8"
	case csig.ClassI16:
		return "i16"
	case csig.ClassU16:
		return "u16"
	case csig.ClassI32:
		return "i32"
	case csig.ClassU32:
		return "u32"
	case csig.ClassI64:
		return "i64"
	case csig.ClassU64:
		return "u64"
	case csig.ClassPointer:
		return "u64"
	case csig.ClassF32:
		return "f32"
	case csig.ClassF64:
		return "f64"
	default:
		return ""
	}
}
