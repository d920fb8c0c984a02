// Copyright 2025 go-rtvp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/circuitfox/go-rtvp/conv"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed)
)

func newKernelsCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "kernels",
		Short: "List the available kernels and their weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listKernels(cmd.OutOrStdout(), size)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 3, "odd kernel side length")
	return cmd
}

func listKernels(w io.Writer, size int) error {
	for _, name := range conv.Names() {
		headingColor.Fprintf(w, "%s (size %d)\n", name, size)
		filters, err := conv.Lookup(name, size)
		if err != nil {
			errorColor.Fprintf(w, "  %v\n", err)
			continue
		}
		for i, f := range filters {
			if len(filters) > 1 {
				fmt.Fprintf(w, "  pass %d:\n", i+1)
			}
			if err := printFilter(w, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func printFilter(w io.Writer, f conv.Filter) error {
	switch f := f.(type) {
	case *conv.Weighted:
		fmt.Fprintf(w, "  sum / %d\n", f.Size())
		printGrid(w, f.Kernel(), f.Size())
	case *conv.Identity:
		k, err := conv.IdentityKernel(f.Size())
		if err != nil {
			return err
		}
		printGrid(w, k, f.Size())
	case *conv.Gaussian:
		k := f.Kernel()
		var sum int
		for _, v := range k {
			sum += int(v)
		}
		fmt.Fprintf(w, "  sum / %d\n", sum)
		printGrid(w, k, f.Size())
	case *conv.Sobel:
		x, y := f.Kernels()
		fmt.Fprintln(w, "  x:")
		printGrid(w, x, f.Size())
		fmt.Fprintln(w, "  y:")
		printGrid(w, y, f.Size())
	default:
		fmt.Fprintf(w, "  %T\n", f)
	}
	return nil
}

type weight interface {
	~uint8 | ~uint16 | ~int8
}

func printGrid[T weight](w io.Writer, k []T, size int) {
	for r := range size {
		fmt.Fprint(w, "   ")
		for _, v := range k[r*size : (r+1)*size] {
			fmt.Fprintf(w, " %5d", v)
		}
		fmt.Fprintln(w)
	}
}
