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
	"bytes"
	"fmt"
	stdimage "image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Formats lists the encodings accepted by Encode and Save.
var Formats = []string{"png", "jpeg", "bmp", "tiff"}

// Decode reads any registered image format from r and converts it to
// luminance. It returns the format name reported by the decoder.
func Decode(r io.Reader) (*Image, string, error) {
	src, format, err := stdimage.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return FromImage(src), format, nil
}

// DecodeBytes is Decode for an in-memory buffer.
func DecodeBytes(data []byte) (*Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes img to w as an 8-bit grayscale image in format.
func Encode(w io.Writer, img *Image, format string) error {
	if img.pix == nil {
		return ErrEmptyImage
	}
	gray := img.Gray()
	switch normalizeFormat(format) {
	case "png":
		return png.Encode(w, gray)
	case "jpeg":
		return jpeg.Encode(w, gray, &jpeg.Options{Quality: 95})
	case "bmp":
		return bmp.Encode(w, gray)
	case "tiff":
		return tiff.Encode(w, gray, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Load decodes the image file at path.
func Load(path string) (*Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

// Save encodes img to path, picking the format from the file extension.
func Save(path string, img *Image) error {
	format := FormatFromPath(path)
	if format == "" {
		return fmt.Errorf("%w: extension of %s", ErrUnsupportedFormat, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatFromPath returns the encoding implied by path's extension, or "" if
// it is not one of Formats.
func FormatFromPath(path string) string {
	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return ""
	}
	return format
}

// ParseFormat returns the canonical name of format. The aliases jpg and tif
// are accepted.
func ParseFormat(format string) (string, error) {
	f := normalizeFormat(format)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return f, nil
}

func normalizeFormat(format string) string {
	switch f := strings.ToLower(format); f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	default:
		return f
	}
}

// Resize scales img to the given width, keeping the aspect ratio, with
// Catmull-Rom interpolation. The height is at least one pixel.
func Resize(img *Image, width int) (*Image, error) {
	if width <= 0 || img.pix == nil {
		return nil, fmt.Errorf("%w: resize %dx%d to width %d", ErrInvalidDimensions, img.width, img.height, width)
	}
	if width == img.width {
		return img.Clone(), nil
	}
	height := max(1, int(float64(img.height)*float64(width)/float64(img.width)+0.5))
	dst := stdimage.NewGray(stdimage.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img.Gray(), img.Gray().Bounds(), draw.Src, nil)
	return &Image{pix: dst.Pix, width: width, height: height}, nil
}
