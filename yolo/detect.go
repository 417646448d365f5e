package yolo

import (
	"github.com/nvr-ai/go-nms/postprocess"
	"github.com/nvr-ai/go-nms/tensors"
)

// Detect runs the full decoding pipeline over a raw output buffer:
// decode the bytes as a Rows×Columns float32 matrix, transpose if the
// export layout requires it, extract one candidate box per anchor row,
// drop candidates below the score threshold, and suppress overlapping
// same-class duplicates.
//
// The call is a pure function of its inputs: no state survives between
// invocations and intermediate structures are discarded, so concurrent
// calls over independent frames need no coordination. Any failure is
// surfaced once as the returned error; there are no partial results.
//
// Arguments:
//   - buffer: Raw float32 tensor bytes, native endianness, length
//     exactly Rows*Columns*4.
//   - p: Shape, layout and threshold configuration.
//
// Returns:
//   - The final detections, grouped by ascending class and by
//     descending confidence within each class.
func Detect(buffer []byte, p Params) ([]postprocess.Result, error) {
	m, err := tensors.Decode(buffer, p.Rows, p.Columns)
	if err != nil {
		return nil, err
	}
	return DetectMatrix(m, p)
}

// DetectMatrix runs the pipeline on an already-decoded matrix. Hosts
// holding a runtime tensor go through the tensors adapters and call
// this directly, skipping the byte decode; p.Rows and p.Columns are
// ignored in favor of the matrix's own shape.
func DetectMatrix(m *tensors.Matrix, p Params) ([]postprocess.Result, error) {
	if p.Transpose {
		m = m.Transpose()
	}

	candidates, err := ExtractBoxes(m)
	if err != nil {
		return nil, err
	}

	filtered := postprocess.FilterByScore(candidates, p.ScoreThreshold)
	return postprocess.ApplyNMS(filtered, p.IoUThreshold), nil
}
