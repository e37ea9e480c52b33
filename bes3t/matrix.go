package bes3t

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	binreader "github.com/TheresiaQuintes/spektro-db/internal/binary"
)

// Matrix is the decoded measurement array. Values are stored flat in (Z,Y,X)
// order with the X axis varying fastest; Shape lists the sizes of the axes
// that survived the squeeze of size-1 dimensions. Imag is nil for real data
// and parallel to Real for complex data.
type Matrix struct {
	Shape []int
	Real  []float64
	Imag  []float64
}

// Len returns the number of logical samples.
func (m *Matrix) Len() int {
	return len(m.Real)
}

// IsComplex reports whether the matrix carries an imaginary channel.
func (m *Matrix) IsComplex() bool {
	return m.Imag != nil
}

// At returns the k-th sample in storage order. Real data is returned with a
// zero imaginary part.
func (m *Matrix) At(k int) complex128 {
	if m.Imag == nil {
		return complex(m.Real[k], 0)
	}
	return complex(m.Real[k], m.Imag[k])
}

func (m *Matrix) div(x float64) {
	for i := range m.Real {
		m.Real[i] /= x
	}
	for i := range m.Imag {
		m.Imag[i] /= x
	}
}

func (m *Matrix) mul(x float64) {
	for i := range m.Real {
		m.Real[i] *= x
	}
	for i := range m.Imag {
		m.Imag[i] *= x
	}
}

// readMatrix reads the raw binary samples from the data file and reshapes
// them according to the resolved format. Complex channels are read as pairs
// of the base real element type and deinterleaved afterwards.
func readMatrix(path string, f *Format, diags *Diagnostics) (*Matrix, error) {
	total := f.Dims.Total()
	if total == 0 {
		return &Matrix{}, nil
	}

	isComplex := f.AnyComplex()
	want := total
	if isComplex {
		want *= 2
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: data file %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: data file %s: %v", ErrIO, path, err)
	}

	r := binreader.NewReader(buf, f.ByteOrder)
	avail := r.Remaining(f.Element)
	if avail < want {
		return nil, fmt.Errorf("%w: expected %d %s values in %s, got %d",
			ErrIO, want, f.Element, path, avail)
	}
	if avail > want {
		diags.add(CodeTruncated,
			"read more data points (%d) than expected (%d) from %s, truncating", avail, want, path)
	}
	raw, err := r.ReadSamples(f.Element, want)
	if err != nil {
		return nil, fmt.Errorf("%w: data file %s: %v", ErrIO, path, err)
	}

	m := &Matrix{}
	if isComplex {
		m.Real = make([]float64, len(raw)/2)
		m.Imag = make([]float64, len(raw)/2)
		for k := range m.Real {
			m.Real[k] = raw[2*k]
			m.Imag[k] = raw[2*k+1]
		}
	} else {
		m.Real = raw
	}

	m.Shape = squeezedShape(f.Dims, total)
	if n := shapeLen(m.Shape); n != len(m.Real) {
		return nil, fmt.Errorf("%w: cannot reshape %d points into shape %v (declared dims %dx%dx%d)",
			ErrFormat, len(m.Real), m.Shape, f.Dims.X, f.Dims.Y, f.Dims.Z)
	}
	return m, nil
}

// squeezedShape drops size-1 axes from the (Z,Y,X) storage order. A fully
// scalar result keeps a single dimension so the matrix is never
// zero-dimensional.
func squeezedShape(dims Dimensions, total int) []int {
	var shape []int
	for _, d := range [3]int{dims.Z, dims.Y, dims.X} {
		if d > 1 {
			shape = append(shape, d)
		}
	}
	if len(shape) == 0 {
		shape = []int{total}
	}
	return shape
}

func shapeLen(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
