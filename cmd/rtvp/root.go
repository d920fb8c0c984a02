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

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/circuitfox/go-rtvp/internal/config"
	"github.com/circuitfox/go-rtvp/internal/logging"
)

// app carries state shared by the subcommands.
type app struct {
	configPath string
	logLevel   string
	logFile    string
	dev        bool

	cfg   *config.Config
	log   *zap.Logger
	runID string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "rtvp",
		Short:        "Replicate-padded convolution for grayscale images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (default "+config.DefaultFile+" if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFile, "log-file", "", "also write JSON logs to this file, rotated")
	flags.BoolVar(&a.dev, "dev", false, "human readable console logs with stack traces")

	root.AddCommand(
		newFilterCmd(a),
		newWindowCmd(a),
		newKernelsCmd(a),
		newInfoCmd(a),
	)
	return root
}

// setup loads the configuration, applies the persistent flags and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	override(flags, "log-level", &cfg.Log.Level, a.logLevel)
	override(flags, "log-file", &cfg.Log.File, a.logFile)
	override(flags, "dev", &cfg.Log.Dev, a.dev)

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:       level,
		Development: cfg.Log.Dev,
		File:        cfg.Log.File,
		Console:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	a.runID = uuid.NewString()[:8]
	a.log = logger.With(zap.String("run_id", a.runID))
	a.cfg = cfg
	a.log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("kernel", cfg.Kernel),
		zap.Int("size", cfg.Size),
		zap.Int("workers", cfg.Workers))
	return nil
}

// override sets *dst to v when the named flag was given on the command line.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}
