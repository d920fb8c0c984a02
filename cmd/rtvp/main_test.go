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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/circuitfox/go-rtvp/conv/contrib/image"
)

// run executes the command line in a scratch directory so no rtvp.yaml or
// .env is picked up.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func scratch(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func grid(t *testing.T, dir string, width, height int) string {
	t.Helper()
	img := image.NewImage(width, height)
	for i, p := 0, img.Pix(); i < len(p); i++ {
		p[i] = byte(i + 1)
	}
	path := filepath.Join(dir, "in.png")
	if err := image.Save(path, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFilter_Identity(t *testing.T) {
	dir := scratch(t)
	in := grid(t, dir, 7, 5)
	out := filepath.Join(dir, "out.png")

	if _, stderr, err := run(t, "filter", in, out, "--kernel", "id", "--size", "3"); err != nil {
		t.Fatalf("filter: %v\n%s", err, stderr)
	}
	want, _, err := image.Load(in)
	if err != nil {
		t.Fatal(err)
	}
	got, format, err := image.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("output format %q, want png", format)
	}
	if diff := cmp.Diff(want.Pix(), got.Pix()); diff != "" {
		t.Errorf("identity output differs (-want +got):\n%s", diff)
	}
}

func TestFilter_ParallelMatchesSequential(t *testing.T) {
	dir := scratch(t)
	in := grid(t, dir, 40, 33)
	seq := filepath.Join(dir, "seq.bmp")
	par := filepath.Join(dir, "par.bmp")

	for _, c := range []struct{ out, workers string }{{seq, "1"}, {par, "4"}} {
		if _, stderr, err := run(t, "filter", in, c.out, "-k", "sobel-gaussian", "-w", c.workers); err != nil {
			t.Fatalf("filter -w %s: %v\n%s", c.workers, err, stderr)
		}
	}
	a, _, err := image.Load(seq)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := image.Load(par)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("parallel output differs from sequential")
	}
}

func TestFilter_Logs(t *testing.T) {
	dir := scratch(t)
	in := grid(t, dir, 8, 8)
	_, stderr, err := run(t, "filter", in, filepath.Join(dir, "o.png"), "-k", "mean")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	var found bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) != nil {
			continue
		}
		if entry["message"] != "filtered" {
			continue
		}
		found = true
		if id, _ := entry["run_id"].(string); len(id) != 8 {
			t.Errorf("run_id = %v, want 8 characters", entry["run_id"])
		}
		if entry["kernel"] != "mean" {
			t.Errorf("kernel = %v, want mean", entry["kernel"])
		}
	}
	if !found {
		t.Errorf("no filtered entry in logs:\n%s", stderr)
	}
}

func TestFilter_LogFile(t *testing.T) {
	dir := scratch(t)
	in := grid(t, dir, 5, 5)
	logFile := filepath.Join(dir, "rtvp.log")
	if _, _, err := run(t, "--log-file", logFile, "filter", in, filepath.Join(dir, "o.png")); err != nil {
		t.Fatalf("filter: %v", err)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"filtered"`) {
		t.Errorf("log file missing entry:\n%s", data)
	}
}

func TestFilter_ConfigFile(t *testing.T) {
	dir := scratch(t)
	in := grid(t, dir, 6, 6)
	if err := os.WriteFile(filepath.Join(dir, "rtvp.yaml"), []byte("kernel: sobel\nsize: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Sobel only exists at size 3.
	if _, _, err := run(t, "filter", in, filepath.Join(dir, "o.png")); err == nil {
		t.Fatal("expected sobel size 5 from rtvp.yaml to fail")
	}
	if _, stderr, err := run(t, "filter", in, filepath.Join(dir, "o.png"), "--size", "3"); err != nil {
		t.Fatalf("filter --size 3: %v\n%s", err, stderr)
	}
}

func TestFilter_Errors(t *testing.T) {
	dir := scratch(t)
	in := grid(t, dir, 4, 4)
	out := filepath.Join(dir, "o.png")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown_kernel", []string{"filter", in, out, "-k", "median"}, "median"},
		{"even_size", []string{"filter", in, out, "-s", "4"}, "odd"},
		{"too_large", []string{"filter", in, out, "-k", "mean", "-s", "5"}, "larger than image"},
		{"missing_input", []string{"filter", filepath.Join(dir, "none.png"), out}, "none.png"},
		{"bad_format", []string{"filter", in, out, "-f", "webp"}, "webp"},
		{"arg_count", []string{"filter", in}, "accepts 2 arg"},
		{"bad_level", []string{"--log-level", "loud", "info"}, "loud"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	dir := scratch(t)
	in := grid(t, dir, 4, 4)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"corner", []string{"window", in, "--y", "0", "--x", "0"},
			"boundary: corner(top-left)\n  1   1   2\n  1   1   2\n  5   5   6\n"},
		{"edge", []string{"window", in, "--y", "0", "--x", "1"},
			"boundary: edge(top)\n  1   2   3\n  1   2   3\n  5   6   7\n"},
		{"interior", []string{"window", in, "--y", "2", "--x", "1"},
			"boundary: interior\n  5   6   7\n  9  10  11\n 13  14  15\n"},
		{"single", []string{"window", in, "--y", "3", "--x", "3", "-s", "1"},
			"boundary: interior\n 16\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, stderr, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("window: %v\n%s", err, stderr)
			}
			if diff := cmp.Diff(tc.want, out); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, _, err := run(t, "window", in, "--y", "4"); err == nil {
		t.Error("expected out of range error")
	}
}

func TestKernels(t *testing.T) {
	scratch(t)
	out, _, err := run(t, "kernels")
	if err != nil {
		t.Fatalf("kernels: %v", err)
	}
	for _, want := range []string{"gaussian (size 3)", "sobel-gaussian", "pass 2:", "sum / 16", "    -1     0     1"} {
		if !strings.Contains(out, want) {
			t.Errorf("kernels output missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "kernels", "-s", "5")
	if err != nil {
		t.Fatalf("kernels -s 5: %v", err)
	}
	if !strings.Contains(out, "sobel is defined for size 3") {
		t.Errorf("expected sobel size error in listing:\n%s", out)
	}
}

func TestInfo(t *testing.T) {
	scratch(t)
	out, _, err := run(t, "info")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"target:", "workers:", "png, jpeg, bmp, tiff", "kernel=gaussian size=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}
