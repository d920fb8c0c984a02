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

// Package image provides a flat single-channel byte image and the glue
// between it, the standard library's image types, and package conv.
//
// An Image stores height*width bytes in row-major order with no stride
// padding, which is the buffer layout conv expects.
//
// # Conversion
//
//	FromImage(src)  // luminance from any image.Image (Rec. 709 weights)
//	img.Gray()      // *image.Gray view for encoding
//
// # Files
//
//	img, format, err := image.Load("frame.png")
//	err = image.Save("out.png", img)
//
// PNG, JPEG and GIF are decoded through the standard library; BMP and TIFF
// through golang.org/x/image.
//
// # Edge Handling
//
// Coordinate helper functions for handling out-of-bounds pixel access:
//
//	Mirror(index, size) - reflect at boundaries
//	Clamp(index, size)  - repeat edge pixels
//	Wrap(index, size)   - tile/wrap around
package image
