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

// Package conv applies square convolution filters to single-channel byte
// images with replicate padding at the borders.
//
// Images are flat row-major []byte buffers of height*width pixels. Kernels
// are flat row-major buffers of size*size weights, size odd. The kernel
// half-width size/2 is called the median throughout the package.
//
// # Pipeline
//
// Every output pixel goes through three steps:
//
//	Classify(y, x, height, width, median) // Interior, Edge(dir) or Corner(dir)
//	ExtractInto(window, img, y, x, ...)   // fully padded size*size window
//	filter.Apply(window)                  // one output byte
//
// The window is always complete, so the reducers never look at the border.
//
// # Reducers
//
//	Convolve(window, kernel, size)             // round(sum(w*k) / size)
//	ConvolveID(window, size)                   // center pixel
//	ConvolveGaussian(window, kernel, size)     // round(sum(w*k) / sum(k))
//	ConvolveSobel(window, kx, ky, size)        // round(|(gx, gy)| / 8)
//
// All four return the window's value (0 for Sobel) when the window is uniform.
// Results are rounded half away from zero and saturated to [0, 255].
//
// # Usage Example
//
//	f, err := conv.Lookup("gaussian", 7)
//	if err != nil {
//	    return err
//	}
//	out, err := conv.RunChain(pix, height, width, f)
//
// Rows can be spread over a worker pool with WithRunner; the output is
// byte-identical to the sequential result.
package conv
