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

// Kind is the broad position of a pixel relative to the image border.
type Kind uint8

const (
	// Interior pixels have a full window inside the image.
	Interior Kind = iota
	// OnEdge pixels have a window crossing exactly one border.
	OnEdge
	// OnCorner pixels have a window crossing two adjacent borders.
	OnCorner
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Interior:
		return "interior"
	case OnEdge:
		return "edge"
	case OnCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// Edge names the single border crossed by an edge pixel's window.
type Edge uint8

const (
	Top Edge = iota + 1
	Bottom
	Left
	Right
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Corner names the two borders crossed by a corner pixel's window.
type Corner uint8

const (
	TopLeft Corner = iota + 1
	BottomLeft
	TopRight
	BottomRight
)

// String returns a human-readable name for the corner.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Boundary is the classification of a single pixel: Interior, Edge(dir) or
// Corner(dir). The zero value is Interior.
type Boundary struct {
	kind   Kind
	edge   Edge
	corner Corner
}

// EdgeBoundary returns the Boundary for an edge pixel.
func EdgeBoundary(e Edge) Boundary {
	return Boundary{kind: OnEdge, edge: e}
}

// CornerBoundary returns the Boundary for a corner pixel.
func CornerBoundary(c Corner) Boundary {
	return Boundary{kind: OnCorner, corner: c}
}

// Kind reports which variant b holds.
func (b Boundary) Kind() Kind {
	return b.kind
}

// Edge returns the crossed border when b is an edge.
func (b Boundary) Edge() (Edge, bool) {
	return b.edge, b.kind == OnEdge
}

// Corner returns the crossed corner when b is a corner.
func (b Boundary) Corner() (Corner, bool) {
	return b.corner, b.kind == OnCorner
}

// Clamps reports which window axes reach outside the image and need their
// indices clamped: rows for Top/Bottom, cols for Left/Right, both for corners.
func (b Boundary) Clamps() (rows, cols bool) {
	switch b.kind {
	case OnEdge:
		return b.edge == Top || b.edge == Bottom, b.edge == Left || b.edge == Right
	case OnCorner:
		return true, true
	default:
		return false, false
	}
}

// String returns e.g. "interior", "edge(top)" or "corner(bottom-right)".
func (b Boundary) String() string {
	switch b.kind {
	case OnEdge:
		return "edge(" + b.edge.String() + ")"
	case OnCorner:
		return "corner(" + b.corner.String() + ")"
	default:
		return b.kind.String()
	}
}

// ClassifyCorner reports whether the window of radius median centered at
// (y, x) crosses two borders, and which. Conditions are tested in the order
// TopLeft, BottomLeft, TopRight, BottomRight; the first match wins.
//
// Coordinates must satisfy 0 <= y < height and 0 <= x < width.
func ClassifyCorner(y, x, height, width, median int) (Corner, bool) {
	switch {
	case x-median < 0 && y-median < 0:
		return TopLeft, true
	case x-median < 0 && y+median > height-1:
		return BottomLeft, true
	case x+median > width-1 && y-median < 0:
		return TopRight, true
	case x+median > width-1 && y+median > height-1:
		return BottomRight, true
	}
	return 0, false
}

// ClassifyEdge reports whether the window of radius median centered at
// (y, x) crosses a border, tested in the order Top, Bottom, Left, Right.
// It is only meaningful for pixels that ClassifyCorner rejected.
func ClassifyEdge(y, x, height, width, median int) (Edge, bool) {
	switch {
	case y-median < 0:
		return Top, true
	case y+median > height-1:
		return Bottom, true
	case x-median < 0:
		return Left, true
	case x+median > width-1:
		return Right, true
	}
	return 0, false
}

// Classify returns the single Boundary that applies to (y, x): a corner if
// ClassifyCorner matches, else an edge if ClassifyEdge matches, else Interior.
func Classify(y, x, height, width, median int) Boundary {
	if c, ok := ClassifyCorner(y, x, height, width, median); ok {
		return CornerBoundary(c)
	}
	if e, ok := ClassifyEdge(y, x, height, width, median); ok {
		return EdgeBoundary(e)
	}
	return Boundary{}
}
