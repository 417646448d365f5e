package tensors

import (
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// FromORT builds a Matrix from an ONNX Runtime output tensor.
//
// Detection heads emit shapes like [1, 84, 8400]: the last two
// dimensions are taken as rows and columns, and every leading dimension
// must be 1 (a single-image batch — batching is the caller's problem).
// The tensor's backing slice is wrapped directly, so the Matrix aliases
// the tensor data and must be consumed before the tensor is destroyed.
//
// Arguments:
//   - t: An ONNX Runtime float32 tensor with at least two dimensions.
//
// Returns:
//   - The wrapping matrix, or ErrShapeMismatch when the tensor has
//     fewer than two dimensions or a leading dimension other than 1.
func FromORT(t *ort.Tensor[float32]) (*Matrix, error) {
	shape := t.GetShape()
	if len(shape) < 2 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"onnxruntime tensor has %d dimensions, want at least 2", len(shape))
	}
	for _, d := range shape[:len(shape)-2] {
		if d != 1 {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"onnxruntime tensor shape %v has a batch dimension other than 1", shape)
		}
	}

	rows := int(shape[len(shape)-2])
	cols := int(shape[len(shape)-1])
	return New(rows, cols, t.GetData())
}
