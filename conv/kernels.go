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
	"strings"

	"github.com/samber/lo"
)

// maxGaussianExponent is the largest power of two a uint16 weight can hold.
const maxGaussianExponent = 15

// MeanKernel returns a size*size kernel of ones.
func MeanKernel(size int) ([]uint8, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	k := make([]uint8, size*size)
	for i := range k {
		k[i] = 1
	}
	return k, nil
}

// IdentityKernel returns a size*size kernel with a single 1 at the center.
func IdentityKernel(size int) ([]uint8, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	k := make([]uint8, size*size)
	k[len(k)/2] = 1
	return k, nil
}

// GaussianKernel returns the size*size power-of-two approximation of a
// Gaussian: the weight at (i, j) is 2^(a+b) where a and b are the distances
// of i and j from the nearest kernel border. For size 3 this is
//
//	1 2 1
//	2 4 2
//	1 2 1
//
// The center weight is 2^(size-1), so size may be at most 15.
func GaussianKernel(size int) ([]uint16, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if 2*(size/2) > maxGaussianExponent {
		return nil, fmt.Errorf("%w: gaussian size %d overflows 16-bit weights", ErrKernelSize, size)
	}
	k := make([]uint16, size*size)
	for i := range size {
		a := min(i, size-1-i)
		for j := range size {
			b := min(j, size-1-j)
			k[i*size+j] = 1 << (a + b)
		}
	}
	return k, nil
}

// SobelX returns the 3x3 horizontal gradient kernel.
func SobelX() []int8 {
	return []int8{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}
}

// SobelY returns the 3x3 vertical gradient kernel.
func SobelY() []int8 {
	return []int8{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
}

// builder constructs the filter passes of a named kernel for a given size.
type builder func(size int) ([]Filter, error)

var registry = map[string]builder{
	"mean": func(size int) ([]Filter, error) {
		k, err := MeanKernel(size)
		if err != nil {
			return nil, err
		}
		return single(NewWeighted(k, size))
	},
	"id": func(size int) ([]Filter, error) {
		return single(NewIdentity(size))
	},
	"gaussian": func(size int) ([]Filter, error) {
		return gaussianPass(size)
	},
	"sobel": func(size int) ([]Filter, error) {
		return sobelPass(size)
	},
	// Blur first so the gradient ignores sensor noise.
	"sobel-gaussian": func(size int) ([]Filter, error) {
		blur, err := gaussianPass(size)
		if err != nil {
			return nil, err
		}
		edges, err := sobelPass(3)
		if err != nil {
			return nil, err
		}
		return append(blur, edges...), nil
	},
}

// Lookup returns the filter passes for the named kernel. For "sobel" the size
// must be 3; for "sobel-gaussian" size selects the Gaussian pre-blur.
func Lookup(name string, size int) ([]Filter, error) {
	build, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownKernel, name, strings.Join(Names(), ", "))
	}
	return build(size)
}

// Names returns the registered kernel names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

func gaussianPass(size int) ([]Filter, error) {
	k, err := GaussianKernel(size)
	if err != nil {
		return nil, err
	}
	return single(NewGaussian(k, size))
}

func sobelPass(size int) ([]Filter, error) {
	if size != 3 {
		return nil, fmt.Errorf("%w: sobel is defined for size 3, got %d", ErrKernelSize, size)
	}
	return single(NewSobel(SobelX(), SobelY(), 3))
}

func single(f Filter, err error) ([]Filter, error) {
	if err != nil {
		return nil, err
	}
	return []Filter{f}, nil
}
