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

// Package csig is the optional signature-assist collaborator SPEC_FULL.md
// §3 describes: given a C function prototype, classify each parameter and
// the return type into one of invoke's primitive push/ret classes, so a
// caller doesn't have to hand-translate "unsigned long" to PushU64 itself.
//
// The parsing pipeline is lifted straight from the teacher's
// TranslateUnit.parseSource/convertFunction: build a cc.Config for the
// host target, hand cc.Parse a synthetic translation unit, and walk the
// resulting ExternalDeclarationFuncDef the same way. The only difference
// is the source: instead of a real .c file, Parse wraps the prototype in
// a stub function body so cc/v4 has something to parse a definition
// out of.
package csig

import (
	"fmt"
	"runtime"
	"strings"

	"modernc.org/cc/v4"
)

// Class is one of spec.md §4.1's primitive argument/return classes.
type Class int

const (
	ClassI8 Class = iota
	ClassU8
	ClassI16
	ClassU16
	ClassI32
	ClassU32
	ClassI64
	ClassU64
	ClassPointer
	ClassF32
	ClassF64
)

func (c Class) String() string {
	switch c {
	case ClassI8:
		return "i8"
	case ClassU8:
		return "u8"
	case ClassI16:
		return "i16"
	case ClassU16:
		return "u16"
	case ClassI32:
		return "i32"
	case ClassU32:
		return "u32"
	case ClassI64:
		return "i64"
	case ClassU64:
		return "u64"
	case ClassPointer:
		return "pointer"
	case ClassF32:
		return "f32"
	case ClassF64:
		return "f64"
	default:
		return "unknown"
	}
}

// Signature is a prototype's parameters and return type, each already
// classified.
type Signature struct {
	Name   string
	Params []Class
	Return Class
}

// classByToken mirrors the teacher's supportedTypes set, but maps each C
// spelling onto an invoke push/ret class instead of onto a GoAT codegen
// type name. long/int default to the LP64 width csig assumes throughout;
// a caller targeting a genuinely different data model should classify by
// hand instead.
var classByToken = map[string]Class{
	"void":      -1, // only legal as a bare return type; handled specially
	"_Bool":     ClassU8,
	"char":      ClassI8,
	"signed":    ClassI32,
	"int8_t":    ClassI8,
	"uint8_t":   ClassU8,
	"short":     ClassI16,
	"int16_t":   ClassI16,
	"uint16_t":  ClassU16,
	"int":       ClassI32,
	"unsigned":  ClassU32,
	"int32_t":   ClassI32,
	"uint32_t":  ClassU32,
	"long":      ClassI64,
	"int64_t":   ClassI64,
	"uint64_t":  ClassU64,
	"size_t":    ClassU64,
	"ssize_t":   ClassI64,
	"float":     ClassF32,
	"double":    ClassF64,
}

// Parse classifies a single C function prototype, e.g.
//
//	"int sum8(int,int,int,int,int,int,int,int)"
//
// Declarations with no parameter names are accepted; csig only needs the
// types. Variadic (`...`) trailers and struct/union parameters are
// rejected — SPEC_FULL.md §3 scopes csig to the primitive classes
// spec.md §4.1 names, the same boundary invoke.Push* itself draws.
func Parse(prototype string) (Signature, error) {
	cfg, err := cc.NewConfig(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return Signature{}, fmt.Errorf("csig: %w", err)
	}

	source := strings.TrimSpace(prototype)
	if !strings.HasSuffix(source, ";") {
		source += ";"
	}
	// cc/v4 parses translation units, not bare declarations, so the
	// prototype is restated as a function definition with a stub body.
	body := bodyOf(source)

	ast, err := cc.Parse(cfg, []cc.Source{
		{Name: "<predefined>", Value: cfg.Predefined},
		{Name: "<builtin>", Value: cc.Builtin},
		{Name: "<csig>", Value: body},
	})
	if err != nil {
		return Signature{}, fmt.Errorf("csig: parse %q: %w", prototype, err)
	}

	for tu := ast.TranslationUnit; tu != nil; tu = tu.TranslationUnit {
		decl := tu.ExternalDeclaration
		if decl.Case != cc.ExternalDeclarationFuncDef {
			continue
		}
		return convertSignature(decl.FunctionDefinition)
	}
	return Signature{}, fmt.Errorf("csig: %q did not parse as a function definition", prototype)
}

// bodyOf turns "int sum8(int,int);" into "int sum8(int,int){return 0;}" so
// cc/v4 treats it as a definition. The synthetic return statement is
// dropped by every caller; only the declarator and parameter list matter.
func bodyOf(decl string) string {
	decl = strings.TrimSuffix(strings.TrimSpace(decl), ";")
	return decl + "{ return 0; }\n"
}

func convertSignature(fn *cc.FunctionDefinition) (Signature, error) {
	declarationSpecifiers := fn.DeclarationSpecifiers
	if declarationSpecifiers.Case != cc.DeclarationSpecifiersTypeSpec {
		return Signature{}, fmt.Errorf("csig: invalid function return type: %v", declarationSpecifiers.Case)
	}
	returnToken := declarationSpecifiers.TypeSpecifier.Token.SrcStr()

	directDeclarator := fn.Declarator.DirectDeclarator
	if directDeclarator.Case != cc.DirectDeclaratorFuncParam {
		return Signature{}, fmt.Errorf("csig: invalid function declarator: %v", directDeclarator.Case)
	}

	var returnClass Class
	if returnToken == "void" {
		returnClass = -1
	} else {
		class, ok := classByToken[returnToken]
		if !ok {
			return Signature{}, fmt.Errorf("csig: unsupported return type: %q", returnToken)
		}
		returnClass = class
	}

	if directDeclarator.ParameterTypeList != nil && directDeclarator.ParameterTypeList.Case == cc.ParameterTypeListVar {
		return Signature{}, fmt.Errorf("csig: variadic prototypes are not supported")
	}

	var params []Class
	if directDeclarator.ParameterTypeList != nil && directDeclarator.ParameterTypeList.ParameterList != nil {
		var err error
		params, err = convertParameters(directDeclarator.ParameterTypeList.ParameterList)
		if err != nil {
			return Signature{}, err
		}
	}

	return Signature{
		Name:   directDeclarator.DirectDeclarator.Token.SrcStr(),
		Params: params,
		Return: returnClass,
	}, nil
}

func convertParameters(params *cc.ParameterList) ([]Class, error) {
	declaration := params.ParameterDeclaration

	var typeToken string
	if declaration.DeclarationSpecifiers.Case == cc.DeclarationSpecifiersTypeQual {
		typeToken = declaration.DeclarationSpecifiers.DeclarationSpecifiers.TypeSpecifier.Token.SrcStr()
	} else {
		typeToken = declaration.DeclarationSpecifiers.TypeSpecifier.Token.SrcStr()
	}

	isPointer := declaration.Declarator != nil && declaration.Declarator.Pointer != nil

	var class Class
	switch {
	case isPointer:
		class = ClassPointer
	default:
		c, ok := classByToken[typeToken]
		if !ok || c == -1 {
			position := declaration.Position()
			return nil, fmt.Errorf("%v:%v:%v: csig: unsupported parameter type: %v",
				position.Filename, position.Line, position.Column, typeToken)
		}
		class = c
	}

	classes := []Class{class}
	if params.ParameterList != nil {
		rest, err := convertParameters(params.ParameterList)
		if err != nil {
			return nil, err
		}
		classes = append(classes, rest...)
	}
	return classes, nil
}
