package decomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/multiway/internal/tensor"
)

// TestNewFactorMatrix tests construction and shape accessors.
func TestNewFactorMatrix(t *testing.T) {
	f := mustFactor(t, tensor.Rand(tensor.Shape{4, 2}))
	assert.Equal(t, 4, f.Rows())
	assert.Equal(t, 2, f.Rank())
	assert.False(t, f.IsLabelled())
	assert.Empty(t, f.Name())
	assert.Nil(t, f.Labels())

	t.Run("nil values", func(t *testing.T) {
		_, err := NewFactorMatrix(nil)
		assert.Error(t, err)
	})

	t.Run("not a matrix", func(t *testing.T) {
		_, err := NewFactorMatrix(tensor.Rand(tensor.Shape{4}))
		assert.Error(t, err)
	})
}

// TestNewLabelledFactorMatrix tests label validation.
func TestNewLabelledFactorMatrix(t *testing.T) {
	f := mustLabelledFactor(t, tensor.Rand(tensor.Shape{2, 3}), "subject", []string{"s1", "s2"})
	assert.True(t, f.IsLabelled())
	assert.Equal(t, "subject", f.Name())
	assert.Equal(t, []string{"s1", "s2"}, f.Labels())

	t.Run("label count mismatch", func(t *testing.T) {
		_, err := NewLabelledFactorMatrix(tensor.Rand(tensor.Shape{2, 3}), "x", []string{"only one"})
		assert.Error(t, err)
	})

	t.Run("nil labels", func(t *testing.T) {
		_, err := NewLabelledFactorMatrix(tensor.Rand(tensor.Shape{2, 3}), "x", nil)
		assert.Error(t, err)
	})
}

// TestFactorFromMatrix tests the gonum round trip.
func TestFactorFromMatrix(t *testing.T) {
	src := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	f := FactorFromMatrix(src)
	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, 2, f.Rank())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, f.Values().Data())

	back := f.Matrix()
	assert.True(t, mat.Equal(src, back))
}

// TestFactorFromMatrix_Reconstruction runs a CP reconstruction through
// gonum-built factors.
func TestFactorFromMatrix_Reconstruction(t *testing.T) {
	a := FactorFromMatrix(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	b := FactorFromMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))

	full, err := CPToTensor(&CPTensor{Factors: []*FactorMatrix{a, b}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4}, full.AsDense().Data())
}
