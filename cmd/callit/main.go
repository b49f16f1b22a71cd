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

// Command callit is a thin command-line harness over the invoke
// package: resolve a symbol in a shared library, push a sequence of
// typed arguments, dispatch it under a chosen calling convention, and
// print whichever return accessor the caller asked for. It exists for
// manual exploration and for the module's own smoke-testing, the same
// role the teacher's goat command plays for GoAT's kernel
// generation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/callit/internal/dynload"
	"github.com/ajroetker/callit/internal/hostabi"
	"github.com/ajroetker/callit/internal/trampoline"
	"github.com/ajroetker/callit/invoke"
)

var verbose bool

var args argList

var command = &cobra.Command{
	Use:  "callit library symbol [csig-value...]",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, cliArgs []string) error {
		convention, _ := cmd.Flags().GetString("convention")
		returnType, _ := cmd.Flags().GetString("return-type")
		prototype, _ := cmd.Flags().GetString("csig")

		library, symbol := cliArgs[0], cliArgs[1]
		extra := cliArgs[2:]
		if prototype == "" && len(extra) > 0 {
			return fmt.Errorf("unexpected positional argument %q: positional values are only read alongside --csig", extra[0])
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "callit: host=%s/%s word-bits=%d avx=%v\n",
				hostabi.Host().OS, hostabi.Host().Arch, hostabi.WordBits, hostabi.HasAVX())
			if len(dynload.CachedPaths()) > 0 {
				fmt.Fprintf(os.Stderr, "callit: cached libraries: %v\n", dynload.CachedPaths())
			}
		}

		inv, err := invoke.New(library, symbol)
		if err != nil {
			return err
		}
		if err := args.push(inv); err != nil {
			return err
		}
		if prototype != "" {
			sig, err := pushCsigArgs(inv, prototype, extra)
			if err != nil {
				return err
			}
			if returnType == "" {
				returnType = returnTypeOf(sig)
			}
		}

		switch convention {
		case "cdecl", "sysv":
			inv.CDecl()
		case "stdcall":
			if err := inv.Stdcall(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown --convention %q (want cdecl, stdcall, or sysv)", convention)
		}

		return printReturn(inv, returnType)
	},
}

func printReturn(inv *invoke.Invocation, returnType string) error {
	switch returnType {
	case "":
	case "i8":
		fmt.Println(inv.RetI8())
	case "u8":
		fmt.Println(inv.RetU8())
	case "i16":
		fmt.Println(inv.RetI16())
	case "u16":
		fmt.Println(inv.RetU16())
	case "i32":
		fmt.Println(inv.RetI32())
	case "u32":
		fmt.Println(inv.RetU32())
	case "i64":
		fmt.Println(inv.RetI64())
	case "u64":
		fmt.Println(inv.RetU64())
	case "usize":
		fmt.Println(inv.RetUsize())
	case "isize":
		fmt.Println(inv.RetIsize())
	case "f32":
		fmt.Println(inv.RetF32())
	case "f64":
		fmt.Println(inv.RetF64())
	default:
		return fmt.Errorf("unknown --return-type %q", returnType)
	}
	return nil
}

func init() {
	command.Flags().VarP(&args, "arg", "a", "typed argument, repeatable: TYPE:VALUE (e.g. i32:42, f64:3.14, ptr:0x1000)")
	command.Flags().String("convention", conventionDefault(), "calling convention: sysv (amd64), cdecl, or stdcall")
	command.Flags().String("return-type", "", "one of i8 u8 i16 u16 i32 u32 i64 u64 isize usize f32 f64; omit to print nothing")
	command.Flags().String("csig", "", "C function prototype (e.g. \"int sum8(int,int,int,int,int,int,int,int)\"); classifies trailing positional values into Push* calls via internal/csig instead of --arg")
	command.Flags().BoolVarP(&verbose, "verbose", "v", false, "print host ABI diagnostics to stderr before calling")
}

// conventionDefault picks whichever convention trampoline actually
// registers on the host, so a bare `callit lib sym` works out of the box
// on both System V hosts and i386 cdecl hosts without forcing a flag.
func conventionDefault() string {
	if trampoline.Supports(trampoline.ConventionCDecl) {
		return "cdecl"
	}
	if trampoline.Supports(trampoline.ConventionStdcall) {
		return "stdcall"
	}
	return "cdecl"
}

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
