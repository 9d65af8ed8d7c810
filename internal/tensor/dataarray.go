package tensor

import "fmt"

// Axis describes one labelled dimension of a DataArray: a name and one
// coordinate label per position along the dimension.
type Axis struct {
	Name   string
	Labels []string
}

// DataArray is a dense tensor whose axes may carry names and coordinate
// labels. It is the labelled counterpart of Dense: a DataArray with no axes
// behaves exactly like the plain values it wraps.
type DataArray struct {
	values *Dense
	axes   []Axis
}

// NewDataArray wraps values in a DataArray with the given axes.
// Passing nil axes produces a plain (unlabelled) array. Otherwise one Axis
// is required per dimension and every label slice must match its axis size.
func NewDataArray(values *Dense, axes []Axis) (*DataArray, error) {
	if values == nil {
		return nil, fmt.Errorf("data array: nil values")
	}
	if axes != nil {
		if len(axes) != values.NumDims() {
			return nil, fmt.Errorf("data array: %d axes for order-%d tensor", len(axes), values.NumDims())
		}
		for i, ax := range axes {
			if len(ax.Labels) != values.Shape()[i] {
				return nil, fmt.Errorf("data array: axis %d (%q) has %d labels for size %d",
					i, ax.Name, len(ax.Labels), values.Shape()[i])
			}
		}
	}

	return &DataArray{values: values, axes: axes}, nil
}

// AsDense returns the plain dense values, dropping any axis labels.
// It implements the Array interface.
func (a *DataArray) AsDense() *Dense {
	return a.values
}

// Shape returns the array's shape.
func (a *DataArray) Shape() Shape {
	return a.values.Shape()
}

// IsLabelled reports whether the array carries axis labels.
func (a *DataArray) IsLabelled() bool {
	return a.axes != nil
}

// Axes returns the array's axes, or nil for a plain array.
func (a *DataArray) Axes() []Axis {
	return a.axes
}

// Axis returns the i-th axis. Panics if the array is plain or i is out of range.
func (a *DataArray) Axis(i int) Axis {
	return a.axes[i]
}

// At returns the element at the given indices. Panics if indices are out of bounds.
func (a *DataArray) At(indices ...int) float64 {
	return a.values.At(indices...)
}

// String returns a human-readable representation of the array.
func (a *DataArray) String() string {
	if !a.IsLabelled() {
		return a.values.String()
	}
	names := make([]string, len(a.axes))
	for i, ax := range a.axes {
		names[i] = ax.Name
	}
	return fmt.Sprintf("DataArray%v%v", names, a.values.Shape())
}
