package tensors

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// FromDense builds a Matrix from a gorgonia dense tensor.
//
// The tensor must be a 2-D float32 Dense; its backing slice is wrapped
// directly, so the Matrix aliases the tensor data.
//
// Arguments:
//   - d: A 2-D float32 *tensor.Dense.
//
// Returns:
//   - The wrapping matrix, or ErrShapeMismatch when the tensor is not
//     2-D float32.
func FromDense(d *tensor.Dense) (*Matrix, error) {
	if d.Dtype() != tensor.Float32 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"dense tensor has dtype %v, want float32", d.Dtype())
	}
	shape := d.Shape()
	if len(shape) != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"dense tensor shape %v is not 2-D", shape)
	}
	return New(shape[0], shape[1], d.Float32s())
}
