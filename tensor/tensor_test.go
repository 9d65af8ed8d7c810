package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/multiway/tensor"
)

// TestFacadeCreation exercises the public creation surface.
func TestFacadeCreation(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{2, 3})
	assert.Equal(t, 6, x.NumElements())

	y, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 4.0, y.At(1, 1))

	assert.Equal(t, []float64{1, 1, 1}, tensor.Ones(tensor.Shape{3}).Data())
}

// TestFacadeManipulation exercises reshape and moveaxis through the facade.
func TestFacadeManipulation(t *testing.T) {
	x := tensor.Arange(0, 6)

	m, err := x.Reshape(tensor.Shape{2, 3})
	require.NoError(t, err)

	moved, err := m.Moveaxis(1, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, moved.Shape())
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, moved.Data())
}

// TestFacadeDataArray exercises labelled-array construction.
func TestFacadeDataArray(t *testing.T) {
	values, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	arr, err := tensor.NewDataArray(values, []tensor.Axis{
		{Name: "subject", Labels: []string{"s1", "s2"}},
		{Name: "time", Labels: []string{"t1", "t2"}},
	})
	require.NoError(t, err)
	assert.True(t, arr.IsLabelled())
	assert.Equal(t, "time", arr.Axis(1).Name)
}

// TestFacadeGonum exercises the mat.Dense round trip.
func TestFacadeGonum(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	d := tensor.FromMat(src)
	assert.Equal(t, tensor.Shape{2, 3}, d.Shape())

	back, err := d.ToMat()
	require.NoError(t, err)
	assert.True(t, mat.Equal(src, back))
}
