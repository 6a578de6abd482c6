package core

import "slices"

// Field stores a 2D grid of float64 samples in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a zeroed field with the given dimensions.
func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// NewFilledField allocates a field with every sample set to v.
func NewFilledField(w, h int, v float64) *Field {
	f := NewField(w, h)
	f.Fill(v)
	return f
}

// Cells exposes the backing slice so callers can read/write values directly.
func (f *Field) Cells() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// In reports whether (x, y) lies inside the field.
func (f *Field) In(x, y int) bool { return x >= 0 && x < f.W && y >= 0 && y < f.H }

// At returns the sample at (x, y). Coordinates are not bounds checked beyond
// the slice access itself.
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set writes the sample at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// Clear fills the field with zeros.
func (f *Field) Clear() { clear(f.data) }

// Fill sets every sample to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	return &Field{W: f.W, H: f.H, data: slices.Clone(f.data)}
}

// Equal reports whether both fields have the same shape and identical samples.
func (f *Field) Equal(o *Field) bool {
	if o == nil {
		return false
	}
	return f.W == o.W && f.H == o.H && slices.Equal(f.data, o.data)
}

// Window copies the half-open region [x0,x1)×[y0,y1) into a new row-major
// slice of (x1-x0)*(y1-y0) samples.
func (f *Field) Window(x0, x1, y0, y1 int) []float64 {
	w := x1 - x0
	if w <= 0 || y1 <= y0 {
		return nil
	}
	out := make([]float64, 0, w*(y1-y0))
	for y := y0; y < y1; y++ {
		row := y * f.W
		out = append(out, f.data[row+x0:row+x1]...)
	}
	return out
}
