// Package tensor provides the dense array core for the multiway toolkit.
package tensor

import "fmt"

// Array is implemented by every dense array type in this package.
// It lets operations accept either a plain Dense or a labelled DataArray
// and work on the underlying values.
type Array interface {
	// AsDense returns the plain dense values, dropping any axis labels.
	AsDense() *Dense

	// Shape returns the array's shape.
	Shape() Shape
}

// Dense is a dense row-major tensor of float64 values.
//
// The zero value is not usable; construct instances with NewDense, FromSlice,
// or the creation functions (Zeros, Ones, ...). All operations return new
// tensors and never mutate their inputs.
type Dense struct {
	data    []float64
	shape   Shape
	strides []int
}

// NewDense creates a zero-filled tensor with the given shape.
// An empty shape yields a scalar holding one element.
func NewDense(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Dense{
		data:    make([]float64, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	d, err := NewDense(shape)
	if err != nil {
		return nil, err
	}
	copy(d.data, data)
	return d, nil
}

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Strides returns the tensor's row-major memory strides.
func (d *Dense) Strides() []int {
	return d.strides
}

// NumDims returns the number of dimensions (the tensor order).
func (d *Dense) NumDims() int {
	return len(d.shape)
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// Data returns the flat row-major value slice.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (d *Dense) Data() []float64 {
	return d.data
}

// AsDense returns the tensor itself. It implements the Array interface.
func (d *Dense) AsDense() *Dense {
	return d
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (d *Dense) At(indices ...int) float64 {
	return d.data[d.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (d *Dense) Set(value float64, indices ...int) {
	d.data[d.offsetOf(indices)] = value
}

// offsetOf converts n-dimensional indices into a flat offset.
func (d *Dense) offsetOf(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, d.shape[i]))
		}
		offset += idx * d.strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (d *Dense) Clone() *Dense {
	clone := &Dense{
		data:    make([]float64, len(d.data)),
		shape:   d.shape.Clone(),
		strides: append([]int(nil), d.strides...),
	}
	copy(clone.data, d.data)
	return clone
}

// Equal reports whether two tensors have the same shape and identical values.
func (d *Dense) Equal(other *Dense) bool {
	if other == nil || !d.shape.Equal(other.shape) {
		return false
	}
	for i, v := range d.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense%v", d.shape)
}
