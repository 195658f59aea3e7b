// Package ndarray: dense N-dimensional array.
// Array is a concrete row-major implementation storing elements in a flat
// slice for performance and cache friendliness.
package ndarray

import (
	"fmt"
	"strings"
)

// arrayErrorf wraps an underlying error with Array method context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// Array is a fixed-shape, row-major container of float64 values.
// shape holds the extent of each dimension, strides the row-major step sizes,
// and data the len == volume(shape) backing storage.
type Array struct {
	shape   []int     // extent per dimension; empty for rank-0 (scalar)
	strides []int     // row-major strides, len == len(shape)
	data    []float64 // flat backing storage, length == product of shape
}

// volume returns the element count implied by shape, or -1 if any dim <= 0.
// A rank-0 shape has volume 1 (a scalar holds exactly one element).
func volume(shape []int) int {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return -1
		}
		n *= d
	}

	return n
}

// stridesOf computes row-major strides for shape.
// Complexity: O(rank).
func stridesOf(shape []int) []int {
	s := make([]int, len(shape))
	step := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = step
		step *= shape[i]
	}

	return s
}

// New creates a zero-initialized Array with the given shape.
// Stage 1 (Validate): every dimension must be > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Array or ErrBadShape.
// New() with no dimensions yields a rank-0 scalar holding 0.
// Complexity: O(volume) time and memory.
func New(shape ...int) (*Array, error) {
	n := volume(shape)
	if n < 0 {
		return nil, arrayErrorf("New", ErrBadShape)
	}

	return &Array{
		shape:   append([]int(nil), shape...),
		strides: stridesOf(shape),
		data:    make([]float64, n),
	}, nil
}

// FromSlice wraps data into an Array with the given shape.
// The data slice is copied; the caller keeps ownership of its slice.
// Fails with ErrBadShape when len(data) != volume(shape).
// Complexity: O(len(data)).
func FromSlice(data []float64, shape ...int) (*Array, error) {
	n := volume(shape)
	if n < 0 || n != len(data) {
		return nil, arrayErrorf("FromSlice", ErrBadShape)
	}
	buf := make([]float64, n)
	copy(buf, data)

	return &Array{shape: append([]int(nil), shape...), strides: stridesOf(shape), data: buf}, nil
}

// Scalar returns a rank-0 Array holding v.
// Scalars are how single-valued record fields enter the comparators.
func Scalar(v float64) *Array {
	return &Array{shape: nil, strides: nil, data: []float64{v}}
}

// FromRows builds a rank-2 Array from a slice of equally sized rows.
// Fails with ErrBadShape when rows is empty, a row is empty, or row
// lengths differ.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, arrayErrorf("FromRows", ErrBadShape)
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf("FromRows", ErrBadShape)
		}
		data = append(data, row...)
	}

	return &Array{shape: []int{len(rows), c}, strides: stridesOf([]int{len(rows), c}), data: data}, nil
}

// Shape returns a copy of the array's shape. Rank-0 yields an empty slice.
// Complexity: O(rank).
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Rank returns the number of dimensions (0 for scalars).
func (a *Array) Rank() int {
	return len(a.shape)
}

// Len returns the total number of elements (1 for scalars).
func (a *Array) Len() int {
	return len(a.data)
}

// offsetOf computes the flat index for idx or returns ErrOutOfRange.
// Stage 1 (Validate): len(idx) must equal rank; each index within bounds.
// Stage 2 (Execute): accumulate stride-weighted offset.
// Complexity: O(rank).
func (a *Array) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[d]
	}

	return off, nil
}

// At retrieves the element at the given multi-index.
// A rank-0 array is read with At() (no indices).
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return 0, arrayErrorf("At", err)
	}

	return a.data[off], nil
}

// Set assigns v at the given multi-index.
// Complexity: O(rank).
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offsetOf(idx)
	if err != nil {
		return arrayErrorf("Set", err)
	}
	a.data[off] = v

	return nil
}

// Data exposes the flat row-major backing slice for whole-array walks.
// Callers must treat the returned slice as read-only; use Set to mutate.
// Complexity: O(1).
func (a *Array) Data() []float64 {
	return a.data
}

// Clone returns a deep copy of the array.
// Complexity: O(len) time and memory.
func (a *Array) Clone() *Array {
	buf := make([]float64, len(a.data))
	copy(buf, a.data)

	return &Array{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    buf,
	}
}

// SameShape reports whether a and b have identical shapes.
// Complexity: O(rank).
func (a *Array) SameShape(b *Array) bool {
	if b == nil || len(a.shape) != len(b.shape) {
		return false
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}

	return true
}

// Rows returns the row count of a rank-2 array.
// Fails with ErrNotMatrix for any other rank.
func (a *Array) Rows() (int, error) {
	if len(a.shape) != 2 {
		return 0, arrayErrorf("Rows", ErrNotMatrix)
	}

	return a.shape[0], nil
}

// Cols returns the column count of a rank-2 array.
// Fails with ErrNotMatrix for any other rank.
func (a *Array) Cols() (int, error) {
	if len(a.shape) != 2 {
		return 0, arrayErrorf("Cols", ErrNotMatrix)
	}

	return a.shape[1], nil
}

// Column extracts column j of a rank-2 array as a fresh slice.
// Stage 1 (Validate): rank must be 2 and j within bounds.
// Stage 2 (Execute): gather the column with a strided walk.
// Complexity: O(rows).
func (a *Array) Column(j int) ([]float64, error) {
	if len(a.shape) != 2 {
		return nil, arrayErrorf("Column", ErrNotMatrix)
	}
	if j < 0 || j >= a.shape[1] {
		return nil, arrayErrorf("Column", ErrOutOfRange)
	}
	r, c := a.shape[0], a.shape[1]
	col := make([]float64, r)
	for i := 0; i < r; i++ {
		col[i] = a.data[i*c+j]
	}

	return col, nil
}

// String implements fmt.Stringer for easy debugging.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("ndarray.Array{shape: [")
	for d, s := range a.shape {
		if d > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", s)
	}
	fmt.Fprintf(&sb, "], len: %d}", len(a.data))

	return sb.String()
}
