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

// Command rtvp applies replicate-padded convolution filters to grayscale
// images.
//
// Usage:
//
//	rtvp filter in.png out.png --kernel gaussian --size 5
//	rtvp filter in.jpg edges.png --kernel sobel-gaussian --workers 8
//	rtvp window in.png --y 0 --x 0 --size 3
//	rtvp kernels --size 5
//	rtvp info
//
// Settings come from rtvp.yaml, .env and RTVP_* variables (see
// internal/config), with command-line flags taking precedence.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
