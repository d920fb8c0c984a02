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

import "fmt"

// GetMatrixAt returns a newly allocated size*size window centered at (y, x)
// of the height*width image img. Window cell (r, c) holds the pixel at
// (y-median+r, x-median+c), with each axis clamped to the image so that
// out-of-bounds rows and columns repeat the nearest valid one.
func GetMatrixAt(img []byte, y, x, height, width, size int) ([]byte, error) {
	if err := checkImage(img, height, width, size); err != nil {
		return nil, err
	}
	if err := checkPoint(y, x, height, width); err != nil {
		return nil, err
	}
	window, err := allocBytes(size * size)
	if err != nil {
		return nil, err
	}
	extract(window, img, y, x, height, width, size)
	return window, nil
}

// ExtractInto writes the window centered at (y, x) into dst, which must hold
// at least size*size bytes, and returns the pixel's Boundary. It performs the
// same checks as GetMatrixAt but never allocates.
func ExtractInto(dst, img []byte, y, x, height, width, size int) (Boundary, error) {
	if err := checkImage(img, height, width, size); err != nil {
		return Boundary{}, err
	}
	if err := checkPoint(y, x, height, width); err != nil {
		return Boundary{}, err
	}
	if len(dst) < size*size {
		return Boundary{}, fmt.Errorf("%w: have %d, need %d", ErrWindowSize, len(dst), size*size)
	}
	return extract(dst, img, y, x, height, width, size), nil
}

// extract fills dst[:size*size] without validating its arguments.
//
// Interior windows are copied row by row. Edge and corner windows clamp only
// the axes reported by Boundary.Clamps; the other axis is known to be in
// range, so its row segment is copied directly.
func extract(dst, img []byte, y, x, height, width, size int) Boundary {
	median := size / 2
	b := Classify(y, x, height, width, median)
	clampRows, clampCols := b.Clamps()
	top, left := y-median, x-median

	for r := range size {
		row := top + r
		if clampRows {
			row = clampIndex(row, height)
		}
		out := dst[r*size : (r+1)*size]
		if !clampCols {
			start := row*width + left
			copy(out, img[start:start+size])
			continue
		}
		src := img[row*width : (row+1)*width]
		for c := range out {
			out[c] = src[clampIndex(left+c, width)]
		}
	}
	return b
}

// clampIndex returns index clamped to [0, n-1].
func clampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}

// checkSize validates a kernel size.
func checkSize(size int) error {
	if size <= 0 || size%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenSize, size)
	}
	return nil
}

// checkImage validates image dimensions against the buffer and kernel size.
func checkImage(img []byte, height, width, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if height <= 0 || width <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if width > MaxPixels/height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAlloc, width, height, MaxPixels)
	}
	if len(img) != height*width {
		return fmt.Errorf("%w: buffer has %d bytes, want %d for %dx%d",
			ErrDimensions, len(img), height*width, width, height)
	}
	if size > height || size > width {
		return fmt.Errorf("%w: size %d, image %dx%d", ErrKernelTooLarge, size, width, height)
	}
	return nil
}

// checkPoint validates a pixel coordinate.
func checkPoint(y, x, height, width int) error {
	if y < 0 || y >= height || x < 0 || x >= width {
		return fmt.Errorf("%w: (y=%d, x=%d) in %dx%d", ErrOutOfRange, y, x, width, height)
	}
	return nil
}

// allocBytes allocates n bytes, reporting ErrAlloc for sizes the package
// refuses to allocate.
func allocBytes(n int) ([]byte, error) {
	if n <= 0 || n > MaxPixels {
		return nil, fmt.Errorf("%w: %d bytes", ErrAlloc, n)
	}
	return make([]byte, n), nil
}
