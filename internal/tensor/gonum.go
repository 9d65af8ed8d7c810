package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMat creates a 2-D tensor holding a copy of the gonum matrix m.
func FromMat(m mat.Matrix) *Dense {
	r, c := m.Dims()
	d := Zeros(Shape{r, c})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = m.At(i, j)
		}
	}
	return d
}

// ToMat converts a 2-D tensor into a gonum *mat.Dense sharing no memory
// with the receiver. Tensors of any other order are rejected.
func (d *Dense) ToMat() (*mat.Dense, error) {
	if d.NumDims() != 2 {
		return nil, fmt.Errorf("to mat: order-%d tensor is not a matrix", d.NumDims())
	}
	data := make([]float64, len(d.data))
	copy(data, d.data)
	return mat.NewDense(d.shape[0], d.shape[1], data), nil
}
