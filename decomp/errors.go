// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import "errors"

// MaxModes is the maximum number of modes a decomposition may have.
// It mirrors the 26-letter index alphabet of einsum notation; the
// contraction engine itself is unbounded, the limit is kept here for
// parity with established tooling.
const MaxModes = 26

// Common errors.
var (
	ErrModeRequired         = errors.New("either mode or axis must be given")
	ErrModeAxisConflict     = errors.New("mode and axis given with conflicting values")
	ErrTooManyModes         = errors.New("too many modes")
	ErrInvalidDecomposition = errors.New("invalid decomposition")
)
