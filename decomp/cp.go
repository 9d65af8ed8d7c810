// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"fmt"

	"github.com/born-ml/multiway/internal/einsum"
	"github.com/born-ml/multiway/internal/tensor"
)

// CPTensor is a CP (Canonical Polyadic) decomposition: a weight vector of
// length R and one factor matrix of shape (axis size, R) per mode.
//
// Weights may be nil, meaning all ones. A non-nil weight tensor of any shape
// is accepted as long as it holds exactly R elements; it is flattened before
// use.
type CPTensor struct {
	Weights *tensor.Dense
	Factors []*FactorMatrix
}

// NumModes returns the number of modes (factor matrices).
func (cp *CPTensor) NumModes() int {
	return len(cp.Factors)
}

// Rank returns the shared rank dimension R, or 0 without factors.
func (cp *CPTensor) Rank() int {
	if len(cp.Factors) == 0 {
		return 0
	}
	return cp.Factors[0].Rank()
}

// Validate checks the decomposition's structural invariants: at least one
// factor, every factor sharing the same rank dimension, and weights (when
// given) holding exactly rank elements.
func (cp *CPTensor) Validate() error {
	if len(cp.Factors) == 0 {
		return fmt.Errorf("%w: no factor matrices", ErrInvalidDecomposition)
	}
	r := cp.Factors[0].Rank()
	for i, f := range cp.Factors {
		if f == nil {
			return fmt.Errorf("%w: factor %d is nil", ErrInvalidDecomposition, i)
		}
		if f.Rank() != r {
			return fmt.Errorf("%w: factor %d has rank %d, factor 0 has rank %d",
				ErrInvalidDecomposition, i, f.Rank(), r)
		}
	}
	if cp.Weights != nil && cp.Weights.NumElements() != r {
		return fmt.Errorf("%w: %d weights for rank %d",
			ErrInvalidDecomposition, cp.Weights.NumElements(), r)
	}
	return nil
}

// IsLabelledCP reports whether every factor matrix of the decomposition
// carries row labels.
func IsLabelledCP(cp *CPTensor) bool {
	return allLabelled(cp.Factors)
}

// CPToTensor reconstructs the dense tensor described by a CP decomposition:
//
//	full[i0, ..., iM-1] = sum_r weights[r] * prod_m factor_m[i_m, r]
//
// The result has shape (rows of factor 0, ..., rows of factor M-1). If every
// factor carries row labels the result is labelled, with axis names and
// coordinates taken from the factors in mode order; otherwise it is plain.
//
// Returns ErrTooManyModes beyond MaxModes modes and ErrInvalidDecomposition
// for rank or weight-length mismatches.
func CPToTensor(cp *CPTensor) (*tensor.DataArray, error) {
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	m := cp.NumModes()
	if m > MaxModes {
		return nil, fmt.Errorf("%w: %d modes, limit %d", ErrTooManyModes, m, MaxModes)
	}
	r := cp.Rank()

	weights := cp.Weights
	if weights == nil {
		weights = tensor.Ones(tensor.Shape{r})
	} else if weights.NumDims() != 1 {
		flat, err := weights.Reshape(tensor.Shape{r})
		if err != nil {
			return nil, err
		}
		weights = flat
	}

	// Mode m's output axis gets tag m; the rank dimension the reserved
	// tag M, summed out of the result.
	rankTag := m
	operands := make([]*tensor.Dense, 0, m+1)
	subscripts := make([][]int, 0, m+1)
	operands = append(operands, weights)
	subscripts = append(subscripts, []int{rankTag})
	output := make([]int, m)
	for i, f := range cp.Factors {
		operands = append(operands, f.values)
		subscripts = append(subscripts, []int{i, rankTag})
		output[i] = i
	}

	dense, err := einsum.Contract(operands, subscripts, output)
	if err != nil {
		return nil, err
	}

	if !IsLabelledCP(cp) {
		return tensor.NewDataArray(dense, nil)
	}
	return tensor.NewDataArray(dense, labelledAxes(cp.Factors))
}
