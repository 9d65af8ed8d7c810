// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"fmt"

	"github.com/born-ml/multiway/internal/tensor"
)

// Unfold matricizes x along the given mode: the result has shape
// (x.Shape()[mode], product of the other axis sizes), with the target axis
// moved to the front and the remaining axes flattened in their original
// relative order.
//
// A labelled input is coerced to its plain values first; the unfolded
// matrix carries no labels.
func Unfold(x tensor.Array, mode int) (*tensor.Dense, error) {
	d := x.AsDense()
	ndim := d.NumDims()
	if mode < 0 || mode >= ndim {
		return nil, fmt.Errorf("unfold: mode %d out of range for order-%d tensor", mode, ndim)
	}

	moved, err := d.Moveaxis(mode, 0)
	if err != nil {
		return nil, err
	}
	rows := d.Shape()[mode]
	return moved.Reshape(tensor.Shape{rows, d.NumElements() / rows})
}

// UnfoldOptions selects the unfold target axis. Mode and Axis are
// equivalent; Axis exists for callers used to axis naming. Exactly one must
// be set, or both set to the same value.
type UnfoldOptions struct {
	Mode *int
	Axis *int
}

// UnfoldTensor unfolds x along the axis selected by opts.
//
// Returns ErrModeRequired when neither Mode nor Axis is set and
// ErrModeAxisConflict when both are set with different values.
func UnfoldTensor(x tensor.Array, opts UnfoldOptions) (*tensor.Dense, error) {
	switch {
	case opts.Mode == nil && opts.Axis == nil:
		return nil, fmt.Errorf("unfold: %w", ErrModeRequired)
	case opts.Mode != nil && opts.Axis != nil && *opts.Mode != *opts.Axis:
		return nil, fmt.Errorf("unfold: %w: mode=%d axis=%d", ErrModeAxisConflict, *opts.Mode, *opts.Axis)
	}

	mode := opts.Axis
	if opts.Mode != nil {
		mode = opts.Mode
	}
	return Unfold(x, *mode)
}

// Fold is the inverse of Unfold: it restores a matrix produced by
// Unfold(x, mode) to a tensor of the given shape.
func Fold(m *tensor.Dense, mode int, shape tensor.Shape) (*tensor.Dense, error) {
	if m.NumDims() != 2 {
		return nil, fmt.Errorf("fold: order-%d tensor is not a matrix", m.NumDims())
	}
	if mode < 0 || mode >= len(shape) {
		return nil, fmt.Errorf("fold: mode %d out of range for order-%d shape", mode, len(shape))
	}
	if m.Shape()[0] != shape[mode] {
		return nil, fmt.Errorf("fold: %d rows for target axis of size %d", m.Shape()[0], shape[mode])
	}
	if m.NumElements() != shape.NumElements() {
		return nil, fmt.Errorf("fold: %d elements for shape %v", m.NumElements(), shape)
	}

	// Undo the unfold: reshape to (target axis, remaining axes in their
	// original order), then move the target axis back into place.
	inter := make(tensor.Shape, 0, len(shape))
	inter = append(inter, shape[mode])
	for i, s := range shape {
		if i != mode {
			inter = append(inter, s)
		}
	}
	r, err := m.Reshape(inter)
	if err != nil {
		return nil, err
	}
	return r.Moveaxis(0, mode)
}
