package bes3t

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	binreader "github.com/TheresiaQuintes/spektro-db/internal/binary"
	"github.com/TheresiaQuintes/spektro-db/internal/dtype"
)

var axisLetters = [3]string{"X", "Y", "Z"}

// buildAbscissa reconstructs the physical coordinates of every axis with more
// than one point, in X, Y, Z order. It returns nil when no axis has a
// non-trivial size. Only the NTUP axis kind is fatal; every other failure
// falls back to a simpler axis with a diagnostic.
func buildAbscissa(d *Descriptor, f *Format, base string, upper bool, diags *Diagnostics) ([][]float64, error) {
	sizes := [3]int{f.Dims.X, f.Dims.Y, f.Dims.Z}

	var axes [][]float64
	for i, letter := range axisLetters {
		n := sizes[i]
		if n <= 1 {
			continue
		}
		axis, err := buildAxis(d, f, base, upper, letter, n, diags)
		if err != nil {
			return nil, err
		}
		if axis != nil {
			axes = append(axes, axis)
		}
	}
	return axes, nil
}

// buildAxis resolves one axis according to its {X}TYP key. An unknown axis
// type yields no axis at all, matching the instrument software's behavior.
func buildAxis(d *Descriptor, f *Format, base string, upper bool, letter string, n int, diags *Diagnostics) ([]float64, error) {
	typ, ok := d.Get(letter + "TYP")
	if !ok {
		typ = "IDX"
	}

	switch typ {
	case "IGD":
		if axis, ok := readCompanionAxis(d, f, base, upper, letter, n, diags); ok {
			return axis, nil
		}
		return linearAxis(d, letter, n, diags), nil
	case "IDX":
		return linearAxis(d, letter, n, diags), nil
	case "NTUP":
		return nil, fmt.Errorf("%w: cannot read data with NTUP axes", ErrUnsupported)
	default:
		return nil, nil
	}
}

// readCompanionAxis reads the explicit coordinates of a non-linear axis from
// the companion file <base>.{X}GF. Every failure reports ok=false so the
// caller can degrade to a linear axis.
func readCompanionAxis(d *Descriptor, f *Format, base string, upper bool, letter string, n int, diags *Diagnostics) ([]float64, bool) {
	code, ok := d.Get(letter + "FMT")
	if !ok {
		code = "D"
	}
	et, known := dtype.FromAxisCode(strings.ToUpper(strings.TrimSpace(code)))
	if !known {
		diags.add(CodeAxisFallback,
			"cannot read companion file format %q for axis %s, assuming linear", code, letter)
		return nil, false
	}

	suffix := "." + letter + "GF"
	if !upper {
		suffix = strings.ToLower(suffix)
	}
	path := base + suffix

	buf, err := os.ReadFile(path)
	if err != nil {
		diags.add(CodeAxisFallback,
			"companion file %s not readable for non-linear axis %s, assuming linear", path, letter)
		return nil, false
	}

	r := binreader.NewReader(buf, f.ByteOrder)
	if r.Remaining(et) < n {
		diags.add(CodeAxisFallback,
			"could not read expected %d values from companion file %s, assuming linear", n, path)
		return nil, false
	}
	axis, err := r.ReadSamples(et, n)
	if err != nil {
		diags.add(CodeAxisFallback,
			"error reading companion file %s: %v, assuming linear", path, err)
		return nil, false
	}
	return axis, true
}

// linearAxis builds n evenly spaced coordinates spanning [min, min+width]
// from {X}MIN and {X}WID. Missing or unparsable values, or a zero width,
// degrade to the index sequence 0..n-1.
func linearAxis(d *Descriptor, letter string, n int, diags *Diagnostics) []float64 {
	min, okMin := descFloat(d, letter+"MIN")
	wid, okWid := descFloat(d, letter+"WID")
	if !okMin || !okWid {
		diags.add(CodeAxisFallback,
			"could not read %sMIN/%sWID for axis %s, using index axis", letter, letter, letter)
		return indexAxis(n)
	}
	if wid == 0 {
		diags.add(CodeAxisFallback,
			"axis %s has zero width, using index axis", letter)
		return indexAxis(n)
	}

	axis := make([]float64, n)
	step := wid / float64(n-1)
	for i := range axis {
		axis[i] = min + step*float64(i)
	}
	// Both endpoints are inclusive; pin the last value against rounding.
	axis[n-1] = min + wid
	return axis
}

func indexAxis(n int) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i)
	}
	return axis
}

// descFloat parses a descriptor value as a float, reporting ok=false when the
// key is absent or unparsable.
func descFloat(d *Descriptor, key string) (float64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
