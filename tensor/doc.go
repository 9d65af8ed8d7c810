// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense row-major float64 tensors for the multiway
// toolkit, with optional axis labels.
//
// # Basic Usage
//
//	import "github.com/born-ml/multiway/tensor"
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
//	y, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	z, err := y.Moveaxis(1, 0) // Shape: [3, 2]
//
// # Labelled arrays
//
// A DataArray attaches a name and coordinate labels to each axis:
//
//	values, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	arr, err := tensor.NewDataArray(values, []tensor.Axis{
//	    {Name: "subject", Labels: []string{"s1", "s2"}},
//	    {Name: "time", Labels: []string{"t1", "t2"}},
//	})
//
// # Gonum interop
//
// Two-dimensional tensors convert to and from gonum matrices:
//
//	m, err := y.ToMat()          // *mat.Dense copy
//	back := tensor.FromMat(m)    // *tensor.Dense copy
package tensor
