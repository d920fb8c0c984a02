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

package conv

import (
	"os"
	"runtime"
	"strconv"
)

// Target is the vector extension detected on the running CPU. The reducers
// are plain Go; the target is reported for diagnostics and benchmarks.
type Target int

const (
	// TargetScalar indicates no usable vector extension was detected.
	TargetScalar Target = iota

	// TargetSSE2 indicates SSE2 (x86-64 baseline).
	TargetSSE2

	// TargetAVX2 indicates AVX2 (256-bit).
	TargetAVX2

	// TargetAVX512 indicates AVX-512 foundation (512-bit).
	TargetAVX512

	// TargetNEON indicates ARM NEON (128-bit).
	TargetNEON

	// TargetSVE indicates ARM SVE (scalable vector length).
	TargetSVE
)

// String returns a human-readable name for the target.
func (t Target) String() string {
	switch t {
	case TargetScalar:
		return "scalar"
	case TargetSSE2:
		return "sse2"
	case TargetAVX2:
		return "avx2"
	case TargetAVX512:
		return "avx512"
	case TargetNEON:
		return "neon"
	case TargetSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentTarget is set by init() in dispatch_*.go files.
var currentTarget Target

// CurrentTarget returns the detected vector extension.
func CurrentTarget() Target {
	return currentTarget
}

// CurrentName returns the name of the detected vector extension, e.g. "avx2".
func CurrentName() string {
	return currentTarget.String()
}

// NoParallelEnv checks if the RTVP_NO_PARALLEL environment variable is set.
// When set, DefaultWorkers returns 1 regardless of the number of CPUs.
func NoParallelEnv() bool {
	val := os.Getenv("RTVP_NO_PARALLEL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// DefaultWorkers returns the worker count to use when none is configured.
func DefaultWorkers() int {
	if NoParallelEnv() {
		return 1
	}
	return runtime.GOMAXPROCS(0)
}
