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

import (
	"errors"
	"slices"
	"testing"
)

func TestMeanKernel(t *testing.T) {
	k, err := MeanKernel(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(k) != 25 {
		t.Fatalf("len = %d, want 25", len(k))
	}
	for i, v := range k {
		if v != 1 {
			t.Errorf("k[%d] = %d, want 1", i, v)
		}
	}
}

func TestIdentityKernel(t *testing.T) {
	k, err := IdentityKernel(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}; !slices.Equal(k, want) {
		t.Errorf("got %v, want %v", k, want)
	}
}

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		size int
		want []uint16
	}{
		{1, []uint16{1}},
		{3, []uint16{1, 2, 1, 2, 4, 2, 1, 2, 1}},
		{5, []uint16{
			1, 2, 4, 2, 1,
			2, 4, 8, 4, 2,
			4, 8, 16, 8, 4,
			2, 4, 8, 4, 2,
			1, 2, 4, 2, 1,
		}},
	}
	for _, tc := range tests {
		got, err := GaussianKernel(tc.size)
		if err != nil {
			t.Fatalf("GaussianKernel(%d): %v", tc.size, err)
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("GaussianKernel(%d) = %v, want %v", tc.size, got, tc.want)
		}
	}

	k, err := GaussianKernel(15)
	if err != nil {
		t.Fatalf("GaussianKernel(15): %v", err)
	}
	if c := k[len(k)/2]; c != 1<<14 {
		t.Errorf("size 15 center = %d, want %d", c, 1<<14)
	}
	if _, err := GaussianKernel(17); !errors.Is(err, ErrKernelSize) {
		t.Errorf("GaussianKernel(17): got %v, want ErrKernelSize", err)
	}
	if _, err := GaussianKernel(4); !errors.Is(err, ErrEvenSize) {
		t.Errorf("GaussianKernel(4): got %v, want ErrEvenSize", err)
	}
}

func TestSobelKernels(t *testing.T) {
	x, y := SobelX(), SobelY()
	// SobelY is the transpose of SobelX.
	for i := range 3 {
		for j := range 3 {
			if x[i*3+j] != y[j*3+i] {
				t.Errorf("x[%d][%d] = %d, y[%d][%d] = %d", i, j, x[i*3+j], j, i, y[j*3+i])
			}
		}
	}
	x[0] = 9
	if SobelX()[0] != -1 {
		t.Error("SobelX returned shared storage")
	}
}

func TestNames(t *testing.T) {
	want := []string{"gaussian", "id", "mean", "sobel", "sobel-gaussian"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		count int
		sizes []int
		err   error
	}{
		{"mean", 3, 1, []int{3}, nil},
		{"MEAN", 5, 1, []int{5}, nil},
		{"id", 7, 1, []int{7}, nil},
		{"gaussian", 5, 1, []int{5}, nil},
		{"sobel", 3, 1, []int{3}, nil},
		{"sobel-gaussian", 5, 2, []int{5, 3}, nil},
		{"sobel", 5, 0, nil, ErrKernelSize},
		{"gaussian", 17, 0, nil, ErrKernelSize},
		{"mean", 4, 0, nil, ErrEvenSize},
		{"median", 3, 0, nil, ErrUnknownKernel},
	}
	for _, tc := range tests {
		filters, err := Lookup(tc.name, tc.size)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Lookup(%q, %d): got %v, want %v", tc.name, tc.size, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Lookup(%q, %d): %v", tc.name, tc.size, err)
			continue
		}
		if len(filters) != tc.count {
			t.Errorf("Lookup(%q, %d): %d filters, want %d", tc.name, tc.size, len(filters), tc.count)
			continue
		}
		for i, f := range filters {
			if f.Size() != tc.sizes[i] {
				t.Errorf("Lookup(%q, %d)[%d].Size() = %d, want %d", tc.name, tc.size, i, f.Size(), tc.sizes[i])
			}
		}
	}
}

func TestLookup_FilterTypes(t *testing.T) {
	filters, err := Lookup("sobel-gaussian", 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := filters[0].(*Gaussian); !ok {
		t.Errorf("first pass is %T, want *Gaussian", filters[0])
	}
	if _, ok := filters[1].(*Sobel); !ok {
		t.Errorf("second pass is %T, want *Sobel", filters[1])
	}
}
