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

package csig

import (
	"reflect"
	"testing"
)

func TestParseClassifiesScalarParameters(t *testing.T) {
	sig, err := Parse("int sum8(int,int,int,int,int,int,int,int)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sig.Name != "sum8" {
		t.Fatalf("Name = %q, want sum8", sig.Name)
	}
	if sig.Return != ClassI32 {
		t.Fatalf("Return = %v, want ClassI32", sig.Return)
	}
	want := []Class{ClassI32, ClassI32, ClassI32, ClassI32, ClassI32, ClassI32, ClassI32, ClassI32}
	if !reflect.DeepEqual(sig.Params, want) {
		t.Fatalf("Params = %v, want %v", sig.Params, want)
	}
}

func TestParseClassifiesPointerAndFloatParameters(t *testing.T) {
	sig, err := Parse("double atof(const char *s)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sig.Return != ClassF64 {
		t.Fatalf("Return = %v, want ClassF64", sig.Return)
	}
	if len(sig.Params) != 1 || sig.Params[0] != ClassPointer {
		t.Fatalf("Params = %v, want [ClassPointer]", sig.Params)
	}
}

func TestParseRejectsUnsupportedParameterType(t *testing.T) {
	if _, err := Parse("int f(struct foo s)"); err == nil {
		t.Fatal("expected an error classifying a struct-by-value parameter")
	}
}

func TestParseHandlesVoidReturn(t *testing.T) {
	sig, err := Parse("void noop(int x)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sig.Return != -1 {
		t.Fatalf("Return = %v, want void sentinel -1", sig.Return)
	}
}
