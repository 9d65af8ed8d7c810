package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4})
func Zeros(shape Shape) *Dense {
	d, err := NewDense(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	// Data is already zero-initialized by make()
	return d
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones(Shape{2, 3})
func Ones(shape Shape) *Dense {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Dense {
	t := Zeros(shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
// Note: Uses math/rand (not crypto/rand) - appropriate for numerical purposes.
//
// Example:
//
//	t := tensor.Randn(Shape{100, 100})
func Randn(shape Shape) *Dense {
	t := Zeros(shape)
	data := t.Data()

	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: math/rand intentionally for reproducibility
		u2 := rand.Float64() //nolint:gosec // G404: math/rand intentionally for reproducibility
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = z0
		if i+1 < len(data) {
			data[i+1] = z1
		}
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
//
// Example:
//
//	t := tensor.Rand(Shape{10, 10})
func Rand(shape Shape) *Dense {
	t := Zeros(shape)
	data := t.Data()
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: math/rand intentionally
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive), step 1.
//
// Example:
//
//	t := tensor.Arange(0, 10) // [0, 1, 2, ..., 9]
func Arange(start, end float64) *Dense {
	numElements := int(end - start)
	if numElements <= 0 {
		panic("end must be greater than start")
	}

	t := Zeros(Shape{numElements})
	data := t.Data()
	for i := range data {
		data[i] = start + float64(i)
	}
	return t
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye(3) // 3x3 identity matrix
func Eye(n int) *Dense {
	t := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}
