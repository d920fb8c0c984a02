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

// Package config loads rtvp settings.
//
// Values are layered, later sources winning: built-in defaults, a YAML file,
// a .env file, then RTVP_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/circuitfox/go-rtvp/conv"
	"github.com/circuitfox/go-rtvp/conv/contrib/image"
	"github.com/circuitfox/go-rtvp/internal/logging"
)

// Default file names, resolved against the working directory.
const (
	DefaultFile    = "rtvp.yaml"
	DefaultEnvFile = ".env"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RTVP_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings for a filtering run.
type Config struct {
	// Kernel names an entry of conv.Names.
	Kernel string `yaml:"kernel"`

	// Size is the odd kernel side length.
	Size int `yaml:"size"`

	// Workers is the row-parallel worker count. 1 runs sequentially and 0
	// picks conv.DefaultWorkers.
	Workers int `yaml:"workers"`

	// Resize scales the input to this width before filtering. 0 disables it.
	Resize int `yaml:"resize"`

	// Format overrides the output encoding implied by the file extension.
	Format string `yaml:"format"`

	Log Log `yaml:"log"`
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	Dev   bool   `yaml:"dev"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Kernel:  "gaussian",
		Size:    3,
		Workers: 1,
		Log:     Log{Level: "info"},
	}
}

// Load reads path (or DefaultFile when path is empty and the file exists),
// overlays DefaultEnvFile and the process environment, and validates the
// result.
func Load(path string) (*Config, error) {
	return load(path, DefaultEnvFile, os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	env, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	// The process environment wins over the .env file.
	merged := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}
	if err := cfg.ApplyEnv(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return c.Decode(data)
}

// Decode overlays the YAML document data onto c. Unknown keys are errors.
func (c *Config) Decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parsing yaml: %w", err)
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return env, nil
}

// ApplyEnv overlays the RTVP_* variables reported by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = n
		return nil
	}

	str("KERNEL", &c.Kernel)
	str("FORMAT", &c.Format)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FILE", &c.Log.File)
	if err := num("SIZE", &c.Size); err != nil {
		return err
	}
	if err := num("WORKERS", &c.Workers); err != nil {
		return err
	}
	if err := num("RESIZE", &c.Resize); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "LOG_DEV"); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sLOG_DEV=%q is not a boolean", ErrInvalid, EnvPrefix, v)
		}
		c.Log.Dev = b
	}
	return nil
}

// Validate checks every field and reports all failures together.
func (c *Config) Validate() error {
	var errs []error
	if !isKernel(c.Kernel) {
		errs = append(errs, fmt.Errorf("%w: kernel %q (known: %s)", ErrInvalid, c.Kernel, strings.Join(conv.Names(), ", ")))
	}
	if c.Size <= 0 || c.Size%2 == 0 {
		errs = append(errs, fmt.Errorf("%w: size %d must be odd and positive", ErrInvalid, c.Size))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers))
	}
	if c.Resize < 0 {
		errs = append(errs, fmt.Errorf("%w: resize %d is negative", ErrInvalid, c.Resize))
	}
	if c.Format != "" {
		if _, err := image.ParseFormat(c.Format); err != nil {
			errs = append(errs, fmt.Errorf("%w: format: %w", ErrInvalid, err))
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

func isKernel(name string) bool {
	return slices.Contains(conv.Names(), strings.ToLower(name))
}
