// Package postprocess - Confidence filtering and class-wise
// Non-Maximum Suppression for detection results.
package postprocess

import "github.com/nvr-ai/go-nms/images"

// Result represents a single detection result.
type Result struct {
	// The bounding box of the result.
	Box images.Box `json:"box" yaml:"box"`
	// The confidence score of the result.
	Score float32 `json:"score" yaml:"score"`
	// The predicted class index of the result.
	Class int `json:"class" yaml:"class"`
}

// Flatten encodes results as uniform float32 rows of
// [cx, cy, w, h, score, class], one per result in order. The class
// index is widened to float32 so the boundary carries a single element
// type, not because class is continuous.
func Flatten(results []Result) [][]float32 {
	rows := make([][]float32, 0, len(results))
	for _, r := range results {
		rows = append(rows, []float32{
			float32(r.Box.CX),
			float32(r.Box.CY),
			float32(r.Box.W),
			float32(r.Box.H),
			r.Score,
			float32(r.Class),
		})
	}
	return rows
}
