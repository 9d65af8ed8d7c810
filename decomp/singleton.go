// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp

import (
	"fmt"

	"github.com/born-ml/multiway/internal/tensor"
)

// ExtractSingleton returns the single element of x as a scalar. Any shape
// holding exactly one element is accepted: an order-0 scalar, a length-1
// vector, a 1x1 matrix, and so on.
func ExtractSingleton(x tensor.Array) (float64, error) {
	d := x.AsDense()
	if n := d.NumElements(); n != 1 {
		return 0, fmt.Errorf("extract singleton: %d elements, want exactly 1", n)
	}
	return d.Data()[0], nil
}
