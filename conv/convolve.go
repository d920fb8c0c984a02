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

// Runner splits [0, n) into contiguous ranges and calls fn on each, returning
// once every range is done. *workerpool.Pool satisfies it.
type Runner interface {
	ParallelFor(n int, fn func(start, end int))
}

type options struct {
	runner Runner
}

// Option configures a driver call.
type Option func(*options)

// WithRunner spreads image rows over r. A nil Runner runs sequentially.
func WithRunner(r Runner) Option {
	return func(o *options) {
		o.runner = r
	}
}

// Run applies f to every pixel of the height*width image img and returns a
// new image of the same dimensions. img is never modified.
//
// Pixels are visited in row-major order; each row range reuses a single
// scratch window. Either the whole output is returned or an error is.
func Run(img []byte, height, width int, f Filter, opts ...Option) ([]byte, error) {
	if f == nil {
		return nil, ErrNilFilter
	}
	size := f.Size()
	if err := checkImage(img, height, width, size); err != nil {
		return nil, err
	}
	out, err := allocBytes(height * width)
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rows := func(start, end int) {
		window := make([]byte, size*size)
		for i := start; i < end; i++ {
			row := out[i*width : (i+1)*width]
			for j := range row {
				extract(window, img, i, j, height, width, size)
				row[j] = f.Apply(window)
			}
		}
	}
	if o.runner != nil {
		o.runner.ParallelFor(height, rows)
	} else {
		rows(0, height)
	}
	return out, nil
}

// RunChain applies each filter in turn, feeding the output of one pass into
// the next. With no filters it returns a copy of img.
func RunChain(img []byte, height, width int, filters []Filter, opts ...Option) ([]byte, error) {
	if len(filters) == 0 {
		if err := checkImage(img, height, width, 1); err != nil {
			return nil, err
		}
		out, err := allocBytes(len(img))
		if err != nil {
			return nil, err
		}
		copy(out, img)
		return out, nil
	}
	cur := img
	for _, f := range filters {
		next, err := Run(cur, height, width, f, opts...)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// ConvolveImage applies a generic byte kernel to img; see Convolve.
func ConvolveImage(img, kernel []uint8, height, width, size int, opts ...Option) ([]byte, error) {
	f, err := NewWeighted(kernel, size)
	if err != nil {
		return nil, err
	}
	return Run(img, height, width, f, opts...)
}

// ConvolveImageID copies img through an identity window of side size.
func ConvolveImageID(img []uint8, height, width, size int, opts ...Option) ([]byte, error) {
	f, err := NewIdentity(size)
	if err != nil {
		return nil, err
	}
	return Run(img, height, width, f, opts...)
}

// ConvolveImageGaussian applies an unnormalized 16-bit kernel to img; see
// ConvolveGaussian.
func ConvolveImageGaussian(img []uint8, kernel []uint16, height, width, size int, opts ...Option) ([]byte, error) {
	f, err := NewGaussian(kernel, size)
	if err != nil {
		return nil, err
	}
	return Run(img, height, width, f, opts...)
}

// ConvolveImageSobel computes the gradient magnitude image of img; see
// ConvolveSobel.
func ConvolveImageSobel(img []uint8, kernelX, kernelY []int8, height, width, size int, opts ...Option) ([]byte, error) {
	f, err := NewSobel(kernelX, kernelY, size)
	if err != nil {
		return nil, err
	}
	return Run(img, height, width, f, opts...)
}
