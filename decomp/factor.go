// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/multiway/internal/tensor"
)

// FactorMatrix is one per-mode factor of a decomposition: a matrix of shape
// (axis size, rank). It may optionally carry an axis name and one row label
// per axis position, the dataframe-index analog; reconstruction propagates
// those onto the result's axes.
type FactorMatrix struct {
	values *tensor.Dense
	name   string
	labels []string
}

// NewFactorMatrix wraps a 2-D tensor as an unlabelled factor matrix.
func NewFactorMatrix(values *tensor.Dense) (*FactorMatrix, error) {
	if values == nil {
		return nil, fmt.Errorf("factor matrix: nil values")
	}
	if values.NumDims() != 2 {
		return nil, fmt.Errorf("factor matrix: order-%d tensor is not a matrix", values.NumDims())
	}
	return &FactorMatrix{values: values}, nil
}

// NewLabelledFactorMatrix wraps a 2-D tensor as a factor matrix with an axis
// name and one label per row. The name may be empty; reconstruction then
// falls back to a "Mode {i}" default.
func NewLabelledFactorMatrix(values *tensor.Dense, name string, labels []string) (*FactorMatrix, error) {
	f, err := NewFactorMatrix(values)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		return nil, fmt.Errorf("factor matrix: nil labels")
	}
	if len(labels) != f.Rows() {
		return nil, fmt.Errorf("factor matrix: %d labels for %d rows", len(labels), f.Rows())
	}
	f.name = name
	f.labels = labels
	return f, nil
}

// FactorFromMatrix copies a gonum matrix into an unlabelled factor matrix.
func FactorFromMatrix(m mat.Matrix) *FactorMatrix {
	return &FactorMatrix{values: tensor.FromMat(m)}
}

// Values returns the factor's dense values.
func (f *FactorMatrix) Values() *tensor.Dense {
	return f.values
}

// Matrix returns the factor's values as a gonum *mat.Dense copy.
func (f *FactorMatrix) Matrix() *mat.Dense {
	m, err := f.values.ToMat()
	if err != nil {
		panic(err) // Construction guarantees a 2-D tensor.
	}
	return m
}

// Rows returns the axis size (the number of rows).
func (f *FactorMatrix) Rows() int {
	return f.values.Shape()[0]
}

// Rank returns the rank dimension (the number of columns).
func (f *FactorMatrix) Rank() int {
	return f.values.Shape()[1]
}

// Name returns the factor's axis name, or "" when none was given.
func (f *FactorMatrix) Name() string {
	return f.name
}

// Labels returns the factor's row labels, or nil for an unlabelled factor.
func (f *FactorMatrix) Labels() []string {
	return f.labels
}

// IsLabelled reports whether the factor carries row labels.
func (f *FactorMatrix) IsLabelled() bool {
	return f.labels != nil
}

// allLabelled reports whether every factor in the sequence carries row labels.
func allLabelled(factors []*FactorMatrix) bool {
	for _, f := range factors {
		if !f.IsLabelled() {
			return false
		}
	}
	return true
}

// labelledAxes builds one result axis per factor, in factor order: the name
// comes from the factor's declared name, else "Mode {i}"; the coordinate
// labels come from the factor's row labels.
func labelledAxes(factors []*FactorMatrix) []tensor.Axis {
	axes := make([]tensor.Axis, len(factors))
	for i, f := range factors {
		name := f.name
		if name == "" {
			name = fmt.Sprintf("Mode %d", i)
		}
		axes[i] = tensor.Axis{Name: name, Labels: f.labels}
	}
	return axes
}
