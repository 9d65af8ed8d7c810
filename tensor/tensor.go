// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/multiway/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Dense is a dense row-major tensor of float64 values.
type Dense = tensor.Dense

// DataArray is a dense tensor whose axes may carry names and coordinate labels.
type DataArray = tensor.DataArray

// Axis describes one labelled dimension of a DataArray.
type Axis = tensor.Axis

// Array is implemented by every dense array type in this package.
type Array = tensor.Array

// NewDense creates a zero-filled tensor with the given shape.
func NewDense(shape Shape) (*Dense, error) {
	return tensor.NewDense(shape)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// NewDataArray wraps values in a DataArray with the given axes.
// Passing nil axes produces a plain (unlabelled) array.
func NewDataArray(values *Dense, axes []Axis) (*DataArray, error) {
	return tensor.NewDataArray(values, axes)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Randn creates a tensor with random values from a standard normal distribution.
func Randn(shape Shape) *Dense {
	return tensor.Randn(shape)
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
func Rand(shape Shape) *Dense {
	return tensor.Rand(shape)
}

// Arange creates a 1D tensor with values from start to end (exclusive), step 1.
func Arange(start, end float64) *Dense {
	return tensor.Arange(start, end)
}

// Eye creates a 2D identity matrix.
func Eye(n int) *Dense {
	return tensor.Eye(n)
}

// FromMat creates a 2-D tensor holding a copy of the gonum matrix m.
func FromMat(m mat.Matrix) *Dense {
	return tensor.FromMat(m)
}
