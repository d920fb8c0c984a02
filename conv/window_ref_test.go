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

package conv_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/circuitfox/go-rtvp/conv"
	"github.com/circuitfox/go-rtvp/conv/contrib/image"
)

// refWindow builds the window with per-pixel clamped lookups.
func refWindow(img *image.Image, y, x, size int) []byte {
	median := size / 2
	w := make([]byte, 0, size*size)
	for r := range size {
		for c := range size {
			w = append(w, img.AtEdge(x-median+c, y-median+r, image.EdgeClamp))
		}
	}
	return w
}

func TestGetMatrixAt_MatchesClampedLookup(t *testing.T) {
	dims := []struct{ width, height int }{{4, 4}, {9, 5}, {5, 9}, {16, 7}, {7, 7}}
	for _, d := range dims {
		img := image.NewImage(d.width, d.height)
		for y := range d.height {
			for x := range d.width {
				img.Set(x, y, byte((x*31+y*17)%251))
			}
		}
		for _, size := range []int{1, 3, 5, 7} {
			if size > d.width || size > d.height {
				continue
			}
			t.Run(fmt.Sprintf("%dx%d/size%d", d.width, d.height, size), func(t *testing.T) {
				for y := range d.height {
					for x := range d.width {
						got, err := conv.GetMatrixAt(img.Pix(), y, x, d.height, d.width, size)
						if err != nil {
							t.Fatalf("GetMatrixAt(%d, %d): %v", y, x, err)
						}
						if diff := cmp.Diff(refWindow(img, y, x, size), got); diff != "" {
							t.Fatalf("window at (%d, %d) mismatch (-want +got):\n%s", y, x, diff)
						}
					}
				}
			})
		}
	}
}
