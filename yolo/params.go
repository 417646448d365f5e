package yolo

import "github.com/pkg/errors"

// Family identifies a YOLO export generation whose output rows carry
// geometry plus raw per-class scores. Generations differ in the memory
// layout of the output tensor: v8-style heads emit [features][anchors]
// and need a transpose before row-wise extraction.
type Family string

const (
	// FamilyYOLOv8 is the YOLOv8 export layout: [features][anchors].
	FamilyYOLOv8 Family = "yolov8"
	// FamilyYOLOv11 is the YOLOv11 export layout, same as YOLOv8.
	FamilyYOLOv11 Family = "yolov11"
)

// ErrUnknownFamily is returned by ParamsForFamily for a family with no
// registered preset.
var ErrUnknownFamily = errors.New("unknown model family")

// Params configures one decoding pass over a raw output buffer.
type Params struct {
	// Rows is the declared row count of the buffer as laid out in
	// memory (before any transpose).
	Rows int `json:"rows" yaml:"rows"`
	// Columns is the declared column count of the buffer as laid out in
	// memory (before any transpose).
	Columns int `json:"columns" yaml:"columns"`
	// Transpose flips the decoded matrix so that anchors become rows.
	// Set when the export emits [features][anchors].
	Transpose bool `json:"transpose" yaml:"transpose"`
	// ScoreThreshold is the minimum confidence for a detection to
	// survive filtering (inclusive).
	ScoreThreshold float32 `json:"score_threshold" yaml:"score_threshold"`
	// IoUThreshold is the overlap above which a lower-confidence
	// same-class detection is suppressed.
	IoUThreshold float32 `json:"iou_threshold" yaml:"iou_threshold"`
}

// ParamsForFamily returns the decoding preset for a known export
// layout, assuming the standard 640x640 input with 80 classes. Callers
// with custom exports fill in Params directly instead.
//
// Arguments:
//   - family: The model generation that produced the buffer.
//
// Returns:
//   - The preset Params, or ErrUnknownFamily.
func ParamsForFamily(family Family) (Params, error) {
	switch family {
	case FamilyYOLOv8, FamilyYOLOv11:
		// [4 geometry + 80 classes][8400 anchors], transposed before
		// extraction so each anchor becomes a row.
		return Params{
			Rows:           84,
			Columns:        8400,
			Transpose:      true,
			ScoreThreshold: 0.25,
			IoUThreshold:   0.45,
		}, nil
	default:
		return Params{}, errors.Wrapf(ErrUnknownFamily, "%q", family)
	}
}
