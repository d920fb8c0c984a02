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
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/circuitfox/go-rtvp/conv"
	"github.com/circuitfox/go-rtvp/conv/contrib/image"
	"github.com/circuitfox/go-rtvp/conv/contrib/workerpool"
)

func newFilterCmd(a *app) *cobra.Command {
	var (
		kernel  string
		size    int
		workers int
		resize  int
		format  string
	)
	cmd := &cobra.Command{
		Use:   "filter <input> <output>",
		Short: "Convolve an image with a named kernel",
		Long: `Decode the input, convert it to luminance, optionally resize it, run the
kernel's passes and write the grayscale result. The output encoding follows
the file extension unless --format is given, and defaults to PNG.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			override(flags, "kernel", &a.cfg.Kernel, kernel)
			override(flags, "size", &a.cfg.Size, size)
			override(flags, "workers", &a.cfg.Workers, workers)
			override(flags, "resize", &a.cfg.Resize, resize)
			override(flags, "format", &a.cfg.Format, format)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.filter(args[0], args[1])
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&kernel, "kernel", "k", "", "kernel name, see 'rtvp kernels'")
	flags.IntVarP(&size, "size", "s", 0, "odd kernel side length")
	flags.IntVarP(&workers, "workers", "w", 0, "row-parallel workers, 1 for sequential, 0 for one per CPU")
	flags.IntVar(&resize, "resize", 0, "scale to this width before filtering, 0 to keep the size")
	flags.StringVarP(&format, "format", "f", "", "output format: png, jpeg, bmp or tiff")
	return cmd
}

func (a *app) filter(in, out string) error {
	cfg := a.cfg
	log := a.log.With(
		zap.String("input", in),
		zap.String("kernel", cfg.Kernel),
		zap.Int("size", cfg.Size))

	img, format, err := image.Load(in)
	if err != nil {
		return fmt.Errorf("loading %s: %w", in, err)
	}
	log.Debug("decoded",
		zap.String("format", format),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()))

	if cfg.Resize > 0 {
		if img, err = image.Resize(img, cfg.Resize); err != nil {
			return err
		}
		log.Debug("resized", zap.Int("width", img.Width()), zap.Int("height", img.Height()))
	}

	filters, err := conv.Lookup(cfg.Kernel, cfg.Size)
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = conv.DefaultWorkers()
	}
	var opts []conv.Option
	if workers > 1 {
		pool := workerpool.New(workers)
		defer pool.Close()
		opts = append(opts, conv.WithRunner(pool))
	}

	start := time.Now()
	res, err := image.Convolve(img, filters, opts...)
	if err != nil {
		return fmt.Errorf("convolving %s: %w", in, err)
	}
	elapsed := time.Since(start)

	outFormat, err := outputFormat(cfg.Format, out)
	if err != nil {
		return err
	}
	if err := writeImage(out, res, outFormat); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Info("filtered",
		zap.String("output", out),
		zap.String("format", outFormat),
		zap.Int("passes", len(filters)),
		zap.Int("workers", workers),
		zap.Duration("elapsed", elapsed))
	return nil
}

// outputFormat picks the encoding for path: the explicit format if set, then
// the extension, then PNG.
func outputFormat(explicit, path string) (string, error) {
	if explicit != "" {
		return image.ParseFormat(explicit)
	}
	if f := image.FormatFromPath(path); f != "" {
		return f, nil
	}
	return "png", nil
}

func writeImage(path string, img *image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := image.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
