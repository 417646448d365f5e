// Package yolo - Decoding YOLO detection-head output tensors into final
// bounding boxes.
package yolo

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/images"
	"github.com/nvr-ai/go-nms/postprocess"
	"github.com/nvr-ai/go-nms/tensors"
)

// geometryCols is the number of leading geometry columns in a detection
// row: cx, cy, w, h. Everything after them is the per-class score
// vector.
const geometryCols = 4

// ErrNoClassScores is returned when a detection row has no class score
// columns (column count <= 4). A row without scores has no meaningful
// best class, so extraction fails fast instead of fabricating one.
var ErrNoClassScores = errors.New("detection row has no class scores")

// ExtractBoxes maps every matrix row to exactly one detection result.
//
// Row layout: columns 0..3 are cx, cy, w, h, rounded half away from
// zero to integers; columns 4..end are per-class confidence scores. The
// best class is the first index achieving the maximum score — a later
// equal score does not displace an earlier one, so exact ties break to
// the lowest class index.
//
// Arguments:
//   - m: The decoded (and, if needed, transposed) output matrix, one
//     detection anchor per row.
//
// Returns:
//   - One Result per row in row order, or ErrNoClassScores when the
//     matrix has no score columns.
func ExtractBoxes(m *tensors.Matrix) ([]postprocess.Result, error) {
	if m.Cols() <= geometryCols {
		return nil, errors.Wrapf(ErrNoClassScores,
			"matrix has %d columns, want more than %d", m.Cols(), geometryCols)
	}

	results := make([]postprocess.Result, 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)

		scores := row[geometryCols:]
		class := 0
		maxScore := scores[0]
		for j, score := range scores[1:] {
			if score > maxScore {
				maxScore = score
				class = j + 1
			}
		}

		results = append(results, postprocess.Result{
			Box: images.Box{
				CX: int(math32.Round(row[0])),
				CY: int(math32.Round(row[1])),
				W:  int(math32.Round(row[2])),
				H:  int(math32.Round(row[3])),
			},
			Score: maxScore,
			Class: class,
		})
	}
	return results, nil
}
