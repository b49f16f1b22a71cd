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

package asmgen

import (
	"strings"
	"testing"
)

func TestStaircaseRejectsEmptyRegisterSet(t *testing.T) {
	if _, err := Staircase("CX", "BX", "MOVQ", nil, 8); err == nil {
		t.Fatal("expected an error for an empty register set")
	}
}

func TestSystemVIntStaircaseLoadsAllSixRegisters(t *testing.T) {
	out, err := SystemVIntStaircase()
	if err != nil {
		t.Fatalf("SystemVIntStaircase: %v", err)
	}
	for _, reg := range []string{"DI", "SI", "DX", "CX", "R8", "R9"} {
		if !strings.Contains(out, reg) {
			t.Errorf("expected staircase to load %s, got:\n%s", reg, out)
		}
	}
}

func TestSystemVFloatStaircaseLoadsAllEightRegisters(t *testing.T) {
	out, err := SystemVFloatStaircase()
	if err != nil {
		t.Fatalf("SystemVFloatStaircase: %v", err)
	}
	for i := 0; i < 8; i++ {
		reg := "X" + string(rune('0'+i))
		if !strings.Contains(out, reg) {
			t.Errorf("expected staircase to load %s, got:\n%s", reg, out)
		}
	}
}
