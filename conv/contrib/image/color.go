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
	stdimage "image"
	"image/color"
	"math"
)

// Rec. 709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luma returns round(0.2126*r + 0.7152*g + 0.0722*b) for 8-bit channels.
func Luma(r, g, b uint8) uint8 {
	return uint8(math.Round(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)))
}

// FromImage converts src to a single-channel luminance image. Gray sources
// are copied as is; everything else goes through Luma on the
// non-premultiplied 8-bit color, ignoring alpha.
func FromImage(src stdimage.Image) *Image {
	b := src.Bounds()
	out := NewImage(b.Dx(), b.Dy())
	if out.pix == nil {
		return out
	}

	switch s := src.(type) {
	case *stdimage.Gray:
		for y := range out.height {
			start := s.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Row(y), s.Pix[start:start+out.width])
		}
	case *stdimage.NRGBA:
		for y := range out.height {
			row := out.Row(y)
			start := s.PixOffset(b.Min.X, b.Min.Y+y)
			px := s.Pix[start : start+4*out.width]
			for x := range row {
				row[x] = Luma(px[4*x], px[4*x+1], px[4*x+2])
			}
		}
	default:
		for y := range out.height {
			row := out.Row(y)
			for x := range row {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				row[x] = Luma(c.R, c.G, c.B)
			}
		}
	}
	return out
}

// Gray returns a *image.Gray sharing img's pixels.
func (img *Image) Gray() *stdimage.Gray {
	return &stdimage.Gray{
		Pix:    img.pix,
		Stride: img.width,
		Rect:   stdimage.Rect(0, 0, img.width, img.height),
	}
}
