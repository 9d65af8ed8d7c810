package tensor

import "fmt"

// Reshape returns a tensor with the same data but a different shape.
// The new shape must describe the same number of elements.
//
// Example:
//
//	x := tensor.Arange(0, 6)           // Shape: [6]
//	y, err := x.Reshape(Shape{2, 3})   // Shape: [2, 3]
func (d *Dense) Reshape(newShape Shape) (*Dense, error) {
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: invalid shape: %w", err)
	}

	if d.NumElements() != newShape.NumElements() {
		return nil, fmt.Errorf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			d.shape, newShape)
	}

	result := &Dense{
		data:    make([]float64, len(d.data)),
		shape:   newShape.Clone(),
		strides: newShape.ComputeStrides(),
	}
	copy(result.data, d.data)
	return result, nil
}

// Transpose permutes the tensor's dimensions according to axes.
// With no axes given the dimension order is reversed.
//
// Example:
//
//	x := tensor.Zeros(Shape{2, 3, 4})
//	y, err := x.Transpose(1, 0, 2) // Shape: [3, 2, 4]
func (d *Dense) Transpose(axes ...int) (*Dense, error) {
	ndim := len(d.shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		return nil, fmt.Errorf("transpose: axes length %d != ndim %d", len(axes), ndim)
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("transpose: invalid axis %d for %dD tensor", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("transpose: duplicate axis %d", ax)
		}
		seen[ax] = true
	}

	newShape := make(Shape, ndim)
	for i, ax := range axes {
		newShape[i] = d.shape[ax]
	}

	result := Zeros(newShape)
	transposeData(result, d, axes)
	return result, nil
}

// Moveaxis moves the axis at position src to position dst, keeping the
// relative order of the remaining axes.
//
// Example:
//
//	x := tensor.Zeros(Shape{2, 3, 4})
//	y, err := x.Moveaxis(2, 0) // Shape: [4, 2, 3]
func (d *Dense) Moveaxis(src, dst int) (*Dense, error) {
	ndim := len(d.shape)
	if src < 0 || src >= ndim {
		return nil, fmt.Errorf("moveaxis: source axis %d out of range for %dD tensor", src, ndim)
	}
	if dst < 0 || dst >= ndim {
		return nil, fmt.Errorf("moveaxis: destination axis %d out of range for %dD tensor", dst, ndim)
	}

	// Build the permutation: remove src, reinsert at dst.
	axes := make([]int, 0, ndim)
	for ax := 0; ax < ndim; ax++ {
		if ax != src {
			axes = append(axes, ax)
		}
	}
	axes = append(axes, 0)
	copy(axes[dst+1:], axes[dst:])
	axes[dst] = src

	return d.Transpose(axes...)
}

// transposeData copies src into result with dimensions permuted by axes.
func transposeData(result, src *Dense, axes []int) {
	shape := src.shape
	ndim := len(shape)
	srcStrides := src.strides
	dstStrides := result.strides

	n := shape.NumElements()
	for i := 0; i < n; i++ {
		// Compute multi-dimensional coordinates in source
		coords := make([]int, ndim)
		idx := i
		for dim := 0; dim < ndim; dim++ {
			coords[dim] = idx / srcStrides[dim]
			idx %= srcStrides[dim]
		}

		// Compute flat index in destination: destination dim j holds source axis axes[j]
		dstIdx := 0
		for dim := 0; dim < ndim; dim++ {
			dstIdx += coords[axes[dim]] * dstStrides[dim]
		}

		result.data[dstIdx] = src.data[i]
	}
}
