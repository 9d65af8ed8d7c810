// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"fmt"

	"github.com/born-ml/multiway/internal/einsum"
	"github.com/born-ml/multiway/internal/tensor"
)

// TuckerTensor is a Tucker decomposition: a core tensor of shape
// (R_0, ..., R_{M-1}) and one factor matrix of shape (axis size, R_m) per
// mode.
type TuckerTensor struct {
	Core    *tensor.Dense
	Factors []*FactorMatrix
}

// NumModes returns the number of modes (factor matrices).
func (tt *TuckerTensor) NumModes() int {
	return len(tt.Factors)
}

// Validate checks the decomposition's structural invariants: a core whose
// order equals the number of factors, with factor m's rank dimension equal
// to the core's size along axis m.
func (tt *TuckerTensor) Validate() error {
	if tt.Core == nil {
		return fmt.Errorf("%w: nil core", ErrInvalidDecomposition)
	}
	if len(tt.Factors) == 0 {
		return fmt.Errorf("%w: no factor matrices", ErrInvalidDecomposition)
	}
	if tt.Core.NumDims() != len(tt.Factors) {
		return fmt.Errorf("%w: order-%d core with %d factor matrices",
			ErrInvalidDecomposition, tt.Core.NumDims(), len(tt.Factors))
	}
	for i, f := range tt.Factors {
		if f == nil {
			return fmt.Errorf("%w: factor %d is nil", ErrInvalidDecomposition, i)
		}
		if f.Rank() != tt.Core.Shape()[i] {
			return fmt.Errorf("%w: factor %d has rank %d, core axis %d has size %d",
				ErrInvalidDecomposition, i, f.Rank(), i, tt.Core.Shape()[i])
		}
	}
	return nil
}

// TuckerToTensor reconstructs the dense tensor described by a Tucker
// decomposition:
//
//	full[i0, ..., iM-1] = sum_{r0, ..., rM-1} core[r0, ..., rM-1] *
//	                      prod_m factor_m[i_m, r_m]
//
// The result has shape (rows of factor 0, ..., rows of factor M-1). If every
// factor carries row labels the result is labelled, symmetrically with
// CPToTensor; otherwise it is plain.
//
// Returns ErrTooManyModes beyond MaxModes modes and ErrInvalidDecomposition
// for core/factor shape mismatches.
func TuckerToTensor(tt *TuckerTensor) (*tensor.DataArray, error) {
	if err := tt.Validate(); err != nil {
		return nil, err
	}
	m := tt.NumModes()
	if m > MaxModes {
		return nil, fmt.Errorf("%w: %d modes, limit %d", ErrTooManyModes, m, MaxModes)
	}

	// Mode i's output axis gets tag i and its core/rank axis tag M+i;
	// every rank tag is summed out of the result.
	coreTags := make([]int, m)
	for i := range coreTags {
		coreTags[i] = m + i
	}
	operands := make([]*tensor.Dense, 0, m+1)
	subscripts := make([][]int, 0, m+1)
	operands = append(operands, tt.Core)
	subscripts = append(subscripts, coreTags)
	output := make([]int, m)
	for i, f := range tt.Factors {
		operands = append(operands, f.values)
		subscripts = append(subscripts, []int{i, m + i})
		output[i] = i
	}

	dense, err := einsum.Contract(operands, subscripts, output)
	if err != nil {
		return nil, err
	}

	if !allLabelled(tt.Factors) {
		return tensor.NewDataArray(dense, nil)
	}
	return tensor.NewDataArray(dense, labelledAxes(tt.Factors))
}
