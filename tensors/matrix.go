// Package tensors - Decoding raw model-output buffers into 2-D float32
// matrices.
package tensors

import (
	"encoding/binary"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// float32Size is the byte width of one matrix element.
const float32Size = 4

// ErrShapeMismatch is returned when a buffer or tensor cannot be
// interpreted under the declared row/column shape. Callers test for it
// with errors.Is; the wrapped message carries the observed and expected
// sizes.
var ErrShapeMismatch = errors.New("tensor shape mismatch")

// Matrix is a dense row-major matrix of float32 values.
//
// The backing is a single flat slice, so Row returns a view rather than
// a copy. A Matrix is never mutated after construction; every transform
// allocates a fresh one.
type Matrix struct {
	rows, cols int
	data       []float32
}

// New wraps an existing float32 slice as a rows×cols matrix. The slice
// is used as the backing directly, not copied.
//
// Arguments:
//   - rows: Number of rows, >= 0.
//   - cols: Number of columns, >= 0.
//   - data: Row-major element data, length exactly rows*cols.
//
// Returns:
//   - The wrapping matrix, or ErrShapeMismatch when the slice length
//     does not match the declared shape.
func New(rows, cols int, data []float32) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "negative dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"data length %d does not match shape %dx%d (want %d elements)",
			len(data), rows, cols, rows*cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Decode reinterprets a raw byte buffer as a rows×cols matrix of native
// byte-order float32 values, row-major and contiguous.
//
// The shape preconditions are fatal rather than recoverable: the buffer
// length must equal rows*cols*4 exactly, and the row byte width must be
// a positive multiple of four. A mismatch returns ErrShapeMismatch —
// the decoder never truncates or pads.
//
// Arguments:
//   - buf: Raw tensor bytes, native endianness.
//   - rows: Declared row count, >= 1.
//   - cols: Declared column count, >= 1.
//
// Returns:
//   - The decoded matrix, or ErrShapeMismatch on any shape violation.
func Decode(buf []byte, rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "non-positive shape %dx%d", rows, cols)
	}
	rowSize := cols * float32Size
	if len(buf) != rows*rowSize {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"buffer size %d does not match %dx%d float32 matrix (want %d bytes)",
			len(buf), rows, cols, rows*rowSize)
	}
	if len(buf)%rowSize != 0 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"buffer size %d is not a multiple of the row size %d", len(buf), rowSize)
	}

	data := make([]float32, rows*cols)
	for i := range data {
		bits := binary.NativeEndian.Uint32(buf[i*float32Size:])
		data[i] = math32.Float32frombits(bits)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Row returns row i as a view into the backing slice.
func (m *Matrix) Row(i int) []float32 {
	offset := i * m.cols
	return m.data[offset : offset+m.cols]
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.cols+j]
}

// Transpose returns a new cols×rows matrix whose element [j][i] equals
// this matrix's [i][j]. An empty matrix transposes to the empty matrix.
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.rows, m.cols
	if rows == 0 {
		cols = 0
	}

	data := make([]float32, cols*rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[j*rows+i] = m.data[i*m.cols+j]
		}
	}
	return &Matrix{rows: cols, cols: rows, data: data}
}

// Encode serializes the matrix back to the raw row-major native-endian
// byte form Decode consumes.
func (m *Matrix) Encode() []byte {
	buf := make([]byte, len(m.data)*float32Size)
	for i, v := range m.data {
		binary.NativeEndian.PutUint32(buf[i*float32Size:], math32.Float32bits(v))
	}
	return buf
}

// Equal reports whether both matrices have the same shape and
// bit-identical elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if math32.Float32bits(v) != math32.Float32bits(o.data[i]) {
			return false
		}
	}
	return true
}
