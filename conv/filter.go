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
	"fmt"
	"slices"
)

// Filter reduces a fully padded size*size window to one output byte.
// Implementations must be safe for concurrent use; the driver may call Apply
// from several goroutines at once with distinct windows.
type Filter interface {
	// Size returns the kernel side length. It is always odd.
	Size() int
	// Apply returns the filtered value for window.
	Apply(window []byte) uint8
}

// Weighted is a generic kernel of byte weights; see Convolve.
type Weighted struct {
	kernel []uint8
	size   int
}

// NewWeighted returns a Weighted filter. The kernel is copied.
func NewWeighted(kernel []uint8, size int) (*Weighted, error) {
	if err := checkKernel(len(kernel), size); err != nil {
		return nil, err
	}
	return &Weighted{kernel: slices.Clone(kernel), size: size}, nil
}

func (f *Weighted) Size() int { return f.size }

func (f *Weighted) Apply(window []byte) uint8 {
	return Convolve(window, f.kernel, f.size)
}

// Kernel returns a copy of the weights.
func (f *Weighted) Kernel() []uint8 { return slices.Clone(f.kernel) }

// Identity passes the center pixel through; see ConvolveID.
type Identity struct {
	size int
}

// NewIdentity returns an Identity filter whose window has side size.
func NewIdentity(size int) (*Identity, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &Identity{size: size}, nil
}

func (f *Identity) Size() int { return f.size }

func (f *Identity) Apply(window []byte) uint8 {
	return ConvolveID(window, f.size)
}

// Gaussian is a kernel of unnormalized 16-bit weights; see ConvolveGaussian.
type Gaussian struct {
	kernel []uint16
	size   int
}

// NewGaussian returns a Gaussian filter. The kernel is copied and its weights
// must not sum to zero.
func NewGaussian(kernel []uint16, size int) (*Gaussian, error) {
	if err := checkKernel(len(kernel), size); err != nil {
		return nil, err
	}
	var sum int
	for _, k := range kernel {
		sum += int(k)
	}
	if sum == 0 {
		return nil, ErrZeroKernel
	}
	return &Gaussian{kernel: slices.Clone(kernel), size: size}, nil
}

func (f *Gaussian) Size() int { return f.size }

func (f *Gaussian) Apply(window []byte) uint8 {
	return ConvolveGaussian(window, f.kernel, f.size)
}

// Kernel returns a copy of the weights.
func (f *Gaussian) Kernel() []uint16 { return slices.Clone(f.kernel) }

// Sobel computes a gradient magnitude from two signed kernels; see
// ConvolveSobel.
type Sobel struct {
	kernelX []int8
	kernelY []int8
	size    int
}

// NewSobel returns a Sobel filter. Both kernels are copied.
func NewSobel(kernelX, kernelY []int8, size int) (*Sobel, error) {
	if err := checkKernel(len(kernelX), size); err != nil {
		return nil, fmt.Errorf("x gradient: %w", err)
	}
	if err := checkKernel(len(kernelY), size); err != nil {
		return nil, fmt.Errorf("y gradient: %w", err)
	}
	return &Sobel{kernelX: slices.Clone(kernelX), kernelY: slices.Clone(kernelY), size: size}, nil
}

func (f *Sobel) Size() int { return f.size }

func (f *Sobel) Apply(window []byte) uint8 {
	return ConvolveSobel(window, f.kernelX, f.kernelY, f.size)
}

// Kernels returns copies of the x and y gradient weights.
func (f *Sobel) Kernels() (x, y []int8) {
	return slices.Clone(f.kernelX), slices.Clone(f.kernelY)
}

// checkKernel validates a kernel of length n for side length size.
func checkKernel(n, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if n != size*size {
		return fmt.Errorf("%w: got %d weights for size %d", ErrKernelSize, n, size)
	}
	return nil
}
