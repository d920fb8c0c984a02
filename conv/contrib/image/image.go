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

package image

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrEmptyImage        = errors.New("image: empty image data")
	ErrInvalidImage      = errors.New("image: invalid image data")
	ErrUnsupportedFormat = errors.New("image: unsupported image format")
	ErrInvalidDimensions = errors.New("image: invalid dimensions")
)

// Image is a single-channel 8-bit image with rows stored back to back.
type Image struct {
	pix    []byte
	width  int
	height int
}

// NewImage creates a zeroed image with the specified dimensions. Non-positive
// dimensions give an empty 0x0 image.
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	return &Image{
		pix:    make([]byte, width*height),
		width:  width,
		height: height,
	}
}

// FromPix wraps pix, which must hold exactly width*height bytes. The buffer
// is not copied.
func FromPix(pix []byte, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidDimensions, len(pix), width, height)
	}
	return &Image{pix: pix, width: width, height: height}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Pix returns the backing buffer, row-major, height*width bytes.
func (img *Image) Pix() []byte {
	return img.pix
}

// Row returns a mutable slice for row y, or nil if y is out of range.
func (img *Image) Row(y int) []byte {
	if y < 0 || y >= img.height || img.pix == nil {
		return nil
	}
	start := y * img.width
	return img.pix[start : start+img.width]
}

// At returns the value at position (x, y). Out-of-bounds reads return 0.
func (img *Image) At(x, y int) byte {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return 0
	}
	return img.pix[y*img.width+x]
}

// Set sets the value at position (x, y). Out-of-bounds writes are ignored.
func (img *Image) Set(x, y int, value byte) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.pix[y*img.width+x] = value
}

// EdgeMode selects how AtEdge maps out-of-bounds coordinates.
type EdgeMode int

const (
	// EdgeClamp repeats the nearest edge pixel (replicate padding).
	EdgeClamp EdgeMode = iota
	// EdgeMirror reflects at the border.
	EdgeMirror
	// EdgeWrap tiles the image.
	EdgeWrap
)

// AtEdge returns the value at (x, y) with both coordinates first mapped into
// the image by mode. The image must not be empty.
func (img *Image) AtEdge(x, y int, mode EdgeMode) byte {
	var index func(i, n int) int
	switch mode {
	case EdgeMirror:
		index = Mirror
	case EdgeWrap:
		index = Wrap
	default:
		index = Clamp
	}
	return img.pix[index(y, img.height)*img.width+index(x, img.width)]
}

// SameSize returns true if both images have the same dimensions.
func SameSize(a, b *Image) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	return &Image{
		pix:    slices.Clone(img.pix),
		width:  img.width,
		height: img.height,
	}
}

// Fill sets all pixels to the specified value.
func (img *Image) Fill(value byte) {
	for i := range img.pix {
		img.pix[i] = value
	}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		X0: max(r.X0, other.X0),
		Y0: max(r.Y0, other.Y0),
		X1: min(r.X1, other.X1),
		Y1: min(r.Y1, other.Y1),
	}
}

// Bounds returns the bounding rectangle of the image.
func (img *Image) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// Crop returns a copy of the part of img inside r. An r that does not
// overlap the image yields an empty image.
func (img *Image) Crop(r Rect) *Image {
	r = r.Intersect(img.Bounds())
	if r.IsEmpty() {
		return &Image{}
	}
	out := NewImage(r.Width(), r.Height())
	for y := r.Y0; y < r.Y1; y++ {
		copy(out.Row(y-r.Y0), img.Row(y)[r.X0:r.X1])
	}
	return out
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Given bounds [0, size), mirrors index to stay within bounds.
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	if index < 0 {
		index = -index - 1
	}
	if index >= size {
		period := 2 * size
		index = index % period
		if index >= size {
			index = period - index - 1
		}
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index = index % size
	if index < 0 {
		index += size
	}
	return index
}
