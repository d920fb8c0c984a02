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
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/circuitfox/go-rtvp/conv"
	"github.com/circuitfox/go-rtvp/conv/contrib/image"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected CPU target and default parallelism",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "target:   %s\n", conv.CurrentName())
			fmt.Fprintf(w, "arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "workers:  %d\n", conv.DefaultWorkers())
			fmt.Fprintf(w, "kernels:  %s\n", strings.Join(conv.Names(), ", "))
			fmt.Fprintf(w, "formats:  %s\n", strings.Join(image.Formats, ", "))
			fmt.Fprintf(w, "config:   kernel=%s size=%d workers=%d\n", a.cfg.Kernel, a.cfg.Size, a.cfg.Workers)
			return nil
		},
	}
}
