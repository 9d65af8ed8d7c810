// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package decomp provides utilities for multi-way array (tensor)
// decompositions: unfolding a tensor along a mode, and reconstructing dense
// tensors from CP (Canonical Polyadic) and Tucker decompositions.
//
// All operations are pure: inputs are never mutated and every call allocates
// and returns a new array. Factor matrices may carry row labels, in which
// case reconstruction returns a labelled tensor.DataArray with one named,
// coordinate-carrying axis per mode.
//
// # CP reconstruction
//
//	weights := tensor.Ones(tensor.Shape{2})
//	a, _ := decomp.NewFactorMatrix(...) // shape (4, 2)
//	b, _ := decomp.NewFactorMatrix(...) // shape (5, 2)
//	full, err := decomp.CPToTensor(&decomp.CPTensor{
//	    Weights: weights,
//	    Factors: []*decomp.FactorMatrix{a, b},
//	}) // shape (4, 5)
//
// # Tucker reconstruction
//
//	full, err := decomp.TuckerToTensor(&decomp.TuckerTensor{
//	    Core:    core, // shape (2, 3)
//	    Factors: []*decomp.FactorMatrix{a, b}, // shapes (4, 2), (5, 3)
//	}) // shape (4, 5)
package decomp
