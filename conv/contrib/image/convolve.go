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

import "github.com/circuitfox/go-rtvp/conv"

// Convolve runs filters over img in order and returns the result as a new
// image. img is left untouched.
func Convolve(img *Image, filters []conv.Filter, opts ...conv.Option) (*Image, error) {
	pix, err := conv.RunChain(img.pix, img.height, img.width, filters, opts...)
	if err != nil {
		return nil, err
	}
	return &Image{pix: pix, width: img.width, height: img.height}, nil
}

// Window returns the padded size*size neighborhood of (x, y), as the
// filters see it.
func (img *Image) Window(x, y, size int) ([]byte, error) {
	return conv.GetMatrixAt(img.pix, y, x, img.height, img.width, size)
}
