package tensor

import "testing"

// TestReshape tests element-preserving reshape and its rejection paths.
func TestReshape(t *testing.T) {
	d := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{6})

	m, err := d.Reshape(Shape{2, 3})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !m.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", m.Shape())
	}
	if !sliceEqual(m.Data(), d.Data()) {
		t.Errorf("Reshape changed data order: %v", m.Data())
	}

	// The result must not alias the original.
	m.Set(99, 0, 0)
	if d.At(0) != 1 {
		t.Errorf("mutating reshape result changed original")
	}

	if _, err := d.Reshape(Shape{4}); err == nil {
		t.Error("Reshape accepted an incompatible shape")
	}
	if _, err := d.Reshape(Shape{-1, 6}); err == nil {
		t.Error("Reshape accepted a negative dimension")
	}
}

// TestTranspose tests dimension permutation.
func TestTranspose(t *testing.T) {
	d := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	t.Run("default reverses dims", func(t *testing.T) {
		m, err := d.Transpose()
		if err != nil {
			t.Fatalf("Transpose failed: %v", err)
		}
		if !m.Shape().Equal(Shape{3, 2}) {
			t.Errorf("Shape() = %v, want [3 2]", m.Shape())
		}
		if !sliceEqual(m.Data(), []float64{1, 4, 2, 5, 3, 6}) {
			t.Errorf("Transpose data = %v", m.Data())
		}
	})

	t.Run("explicit permutation", func(t *testing.T) {
		x := mustFromSlice(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, Shape{2, 2, 2})
		m, err := x.Transpose(2, 0, 1)
		if err != nil {
			t.Fatalf("Transpose failed: %v", err)
		}
		// m[i,j,k] = x[j,k,i]
		if m.At(1, 0, 1) != x.At(0, 1, 1) {
			t.Errorf("At(1,0,1) = %v, want %v", m.At(1, 0, 1), x.At(0, 1, 1))
		}
	})

	t.Run("rejections", func(t *testing.T) {
		if _, err := d.Transpose(0); err == nil {
			t.Error("Transpose accepted wrong axes length")
		}
		if _, err := d.Transpose(0, 2); err == nil {
			t.Error("Transpose accepted out-of-range axis")
		}
		if _, err := d.Transpose(0, 0); err == nil {
			t.Error("Transpose accepted duplicate axis")
		}
	})
}

// TestMoveaxis tests axis relocation, including the identity move.
func TestMoveaxis(t *testing.T) {
	x := Zeros(Shape{2, 3, 4})

	tests := []struct {
		name     string
		src, dst int
		want     Shape
	}{
		{"to front", 2, 0, Shape{4, 2, 3}},
		{"to back", 0, 2, Shape{3, 4, 2}},
		{"middle", 0, 1, Shape{3, 2, 4}},
		{"identity", 1, 1, Shape{2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := x.Moveaxis(tt.src, tt.dst)
			if err != nil {
				t.Fatalf("Moveaxis failed: %v", err)
			}
			if !m.Shape().Equal(tt.want) {
				t.Errorf("Shape() = %v, want %v", m.Shape(), tt.want)
			}
		})
	}

	t.Run("values", func(t *testing.T) {
		d := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
		m, err := d.Moveaxis(1, 0)
		if err != nil {
			t.Fatalf("Moveaxis failed: %v", err)
		}
		// m[j,i] = d[i,j]
		if !sliceEqual(m.Data(), []float64{1, 4, 2, 5, 3, 6}) {
			t.Errorf("Moveaxis data = %v", m.Data())
		}
	})

	t.Run("rejections", func(t *testing.T) {
		if _, err := x.Moveaxis(3, 0); err == nil {
			t.Error("Moveaxis accepted out-of-range source")
		}
		if _, err := x.Moveaxis(0, -1); err == nil {
			t.Error("Moveaxis accepted out-of-range destination")
		}
	})
}
