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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad_Layers(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rtvp.yaml", `
kernel: sobel
size: 3
workers: 4
resize: 320
log:
  level: debug
  file: run.log
`)
	envFile := writeFile(t, dir, ".env", "RTVP_WORKERS=2\nRTVP_FORMAT=tif\nRTVP_LOG_DEV=true\n")
	lookup := envMap(map[string]string{"RTVP_WORKERS": "8"})

	got, err := load(path, envFile, lookup)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Kernel:  "sobel",
		Size:    3,
		Workers: 8,
		Resize:  320,
		Format:  "tif",
		Log:     Log{Level: "debug", File: "run.log", Dev: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	got, err := load("", "", envMap(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, DefaultFile, "kernel: mean\nsize: 5\n")
	t.Chdir(dir)
	got, err := load("", "", envMap(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Kernel != "mean" || got.Size != 5 {
		t.Errorf("got kernel %q size %d, want mean 5", got.Kernel, got.Size)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name  string
		yaml  string
		env   map[string]string
		check func(error) bool
	}{
		{
			name:  "unknown_key",
			yaml:  "kernal: mean\n",
			check: func(err error) bool { return strings.Contains(err.Error(), "kernal") },
		},
		{
			name:  "even_size",
			yaml:  "size: 4\n",
			check: func(err error) bool { return errors.Is(err, ErrInvalid) },
		},
		{
			name:  "bad_kernel",
			env:   map[string]string{"RTVP_KERNEL": "median"},
			check: func(err error) bool { return errors.Is(err, ErrInvalid) && strings.Contains(err.Error(), "median") },
		},
		{
			name:  "bad_int",
			env:   map[string]string{"RTVP_SIZE": "three"},
			check: func(err error) bool { return errors.Is(err, ErrInvalid) },
		},
		{
			name:  "bad_bool",
			env:   map[string]string{"RTVP_LOG_DEV": "sometimes"},
			check: func(err error) bool { return errors.Is(err, ErrInvalid) },
		},
		{
			name:  "bad_format",
			yaml:  "format: webp\n",
			check: func(err error) bool { return errors.Is(err, ErrInvalid) },
		},
		{
			name:  "bad_level",
			yaml:  "log:\n  level: loud\n",
			check: func(err error) bool { return errors.Is(err, ErrInvalid) },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".yaml", tc.yaml)
			_, err := load(path, "", envMap(tc.env))
			if err == nil {
				t.Fatal("expected error")
			}
			if !tc.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), "", envMap(nil))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := &Config{Kernel: "nope", Size: 2, Workers: -1, Resize: -5}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"kernel", "size", "workers", "resize"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidate_KernelCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Kernel = "Sobel-Gaussian"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
