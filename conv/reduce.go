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

import "math"

// sobelScale divides the Sobel gradient magnitude.
const sobelScale = 8

// Convolve returns the weighted sum of window and kernel divided by size
// (the kernel's side length, not its area), rounded to a byte.
//
// A uniform window returns its value unchanged.
func Convolve(window, kernel []uint8, size int) uint8 {
	n := size * size
	if len(window) < n {
		panic("conv: window slice too short")
	}
	if len(kernel) < n {
		panic("conv: kernel slice too short")
	}
	window = window[:n]
	if uniform(window) {
		return window[0]
	}

	var sum float64
	for i, w := range window {
		sum += float64(int(w) * int(kernel[i]))
	}
	return toByte(sum / float64(size))
}

// ConvolveID returns the center pixel of window.
func ConvolveID(window []uint8, size int) uint8 {
	n := size * size
	if len(window) < n {
		panic("conv: window slice too short")
	}
	return window[n/2]
}

// ConvolveGaussian returns the weighted sum of window and kernel normalized
// by the sum of the kernel weights, rounded to a byte. The weights need not
// be pre-normalized but must not sum to zero.
//
// A uniform window returns its value unchanged.
func ConvolveGaussian(window []uint8, kernel []uint16, size int) uint8 {
	n := size * size
	if len(window) < n {
		panic("conv: window slice too short")
	}
	if len(kernel) < n {
		panic("conv: kernel slice too short")
	}
	window = window[:n]
	if uniform(window) {
		return window[0]
	}

	var sum float64
	var ksum int
	for i, w := range window {
		k := int(kernel[i])
		sum += float64(int(w) * k)
		ksum += k
	}
	return toByte(sum / float64(ksum))
}

// ConvolveSobel returns the magnitude of the gradient (gx, gy) computed with
// kernelX and kernelY, divided by 8 and rounded to a byte.
//
// A uniform window has no gradient and returns 0.
func ConvolveSobel(window []uint8, kernelX, kernelY []int8, size int) uint8 {
	n := size * size
	if len(window) < n {
		panic("conv: window slice too short")
	}
	if len(kernelX) < n || len(kernelY) < n {
		panic("conv: kernel slice too short")
	}
	window = window[:n]
	if uniform(window) {
		return 0
	}

	var gx, gy float64
	for i, w := range window {
		gx += float64(int(w) * int(kernelX[i]))
		gy += float64(int(w) * int(kernelY[i]))
	}
	return toByte(math.Sqrt(gx*gx+gy*gy) / sobelScale)
}

// uniform reports whether every byte of window equals the first.
func uniform(window []uint8) bool {
	v := window[0]
	for _, w := range window[1:] {
		if w != v {
			return false
		}
	}
	return true
}

// toByte rounds v half away from zero and saturates it to [0, 255].
func toByte(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}
