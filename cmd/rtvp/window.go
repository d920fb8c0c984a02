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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/circuitfox/go-rtvp/conv"
	"github.com/circuitfox/go-rtvp/conv/contrib/image"
)

func newWindowCmd(a *app) *cobra.Command {
	var x, y, size int
	cmd := &cobra.Command{
		Use:   "window <input>",
		Short: "Print the padded neighborhood of one pixel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, _, err := image.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			w, err := img.Window(x, y, size)
			if err != nil {
				return err
			}
			b := conv.Classify(y, x, img.Height(), img.Width(), size/2)
			a.log.Debug("window",
				zap.Int("y", y),
				zap.Int("x", x),
				zap.Int("size", size),
				zap.Stringer("boundary", b))
			return printWindow(cmd.OutOrStdout(), w, size, b)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&y, "y", 0, "pixel row")
	flags.IntVar(&x, "x", 0, "pixel column")
	flags.IntVarP(&size, "size", "s", 3, "odd window side length")
	return cmd
}

func printWindow(w io.Writer, window []byte, size int, b conv.Boundary) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "boundary: %s\n", b)
	for r := range size {
		for c, v := range window[r*size : (r+1)*size] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%3d", v)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
