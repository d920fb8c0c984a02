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

import "errors"

// MaxPixels bounds the size of any buffer the package allocates. Requests
// above it fail with ErrAlloc rather than attempting the allocation.
const MaxPixels = 1 << 30

var (
	ErrEvenSize       = errors.New("conv: kernel size must be odd and positive")
	ErrKernelSize     = errors.New("conv: kernel length does not match size*size")
	ErrWindowSize     = errors.New("conv: window buffer shorter than size*size")
	ErrDimensions     = errors.New("conv: invalid image dimensions")
	ErrKernelTooLarge = errors.New("conv: kernel larger than image")
	ErrOutOfRange     = errors.New("conv: pixel coordinate out of range")
	ErrAlloc          = errors.New("conv: buffer allocation failed")
	ErrZeroKernel     = errors.New("conv: kernel weights sum to zero")
	ErrNilFilter      = errors.New("conv: nil filter")
	ErrUnknownKernel  = errors.New("conv: unknown kernel")
)
