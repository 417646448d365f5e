// Package images - Bounding-box geometry for detection outputs.
package images

// Box is a detection bounding box in the quantized center+extent form a
// YOLO head emits after rounding: center coordinates plus width/height,
// all integers.
//
// Extents may be negative when the upstream tensor is malformed; the
// geometry functions below do not defend against that and simply carry
// the values through their arithmetic.
type Box struct {
	// CX, CY are the box center coordinates.
	CX int `json:"cx" yaml:"cx"`
	CY int `json:"cy" yaml:"cy"`
	// W, H are the full width and height.
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// Rect is a lightweight corner-form bounding box.
type Rect struct {
	// X2,Y2 are exclusive (like image.Rectangle).
	X1, Y1, X2, Y2 int
}

// X1 returns the left edge, CX - W/2.
//
// The half-extent split uses truncating integer division: an odd width
// biases the rectangle by one unit toward the center. That quantization
// is part of the box contract, so every corner derivation goes through
// these four accessors rather than recomputing W/2 elsewhere.
func (b Box) X1() int { return b.CX - b.W/2 }

// Y1 returns the top edge, CY - H/2.
func (b Box) Y1() int { return b.CY - b.H/2 }

// X2 returns the right edge, CX + W/2.
func (b Box) X2() int { return b.CX + b.W/2 }

// Y2 returns the bottom edge, CY + H/2.
func (b Box) Y2() int { return b.CY + b.H/2 }

// Area returns W*H. Negative extents yield a negative area; callers that
// feed malformed geometry get the arithmetic they asked for.
func (b Box) Area() int { return b.W * b.H }

// Rect converts the box to corner form using the truncating half-extent
// split above.
func (b Box) Rect() Rect {
	return Rect{X1: b.X1(), Y1: b.Y1(), X2: b.X2(), Y2: b.Y2()}
}

// CalculateIoU computes the Intersection over Union of two boxes.
//
// IoU (Intersection over Union) is the standard overlap metric for
// bounding boxes:
//
//	IoU = Area of Intersection / Area of Union
//
//	- 1.0 means the boxes are identical.
//	- 0.0 means they do not overlap at all.
//
// The calculation runs entirely in integer arithmetic on the corner form
// derived by Rect(), so two boxes with odd extents intersect exactly the
// way their truncated corners say they do:
//
//  1. The intersection rectangle spans from the maximum of the two
//     top-left corners to the minimum of the two bottom-right corners.
//     Each side is clamped at zero, so disjoint boxes contribute an
//     intersection area of 0.
//
//  2. The union follows the Principle of Inclusion-Exclusion:
//
//     Area(Union) = Area(A) + Area(B) - Area(Intersection)
//
//     using Area = W*H directly rather than the corner spans.
//
//  3. A union of exactly 0 returns 0.0 instead of dividing by zero.
//     This is a defined fallback for degenerate boxes, not a "no
//     overlap" signal.
//
// Arguments:
//   - a: The first box.
//   - b: The other box to compare against.
//
// Returns:
//   - float32: The IoU score, 0.0 to 1.0 for well-formed boxes.
func CalculateIoU(a, b Box) float32 {
	// Corners of the intersection rectangle: the overlap cannot start
	// before both boxes have begun nor end after the first one ends.
	ix1 := max(a.X1(), b.X1())
	iy1 := max(a.Y1(), b.Y1())
	ix2 := min(a.X2(), b.X2())
	iy2 := min(a.Y2(), b.Y2())

	// Clamp each side at zero so disjoint boxes intersect with area 0.
	interArea := max(0, ix2-ix1) * max(0, iy2-iy1)

	// Inclusion-exclusion over the raw W*H areas.
	unionArea := a.Area() + b.Area() - interArea
	if unionArea == 0 {
		return 0.0
	}

	return float32(interArea) / float32(unionArea)
}
