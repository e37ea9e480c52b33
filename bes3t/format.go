package bes3t

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/TheresiaQuintes/spektro-db/internal/dtype"
)

// Dimensions holds the declared point counts of the three measurement axes.
type Dimensions struct {
	X, Y, Z int
}

// Total returns the logical sample count nx*ny*nz.
func (d Dimensions) Total() int {
	return d.X * d.Y * d.Z
}

// Format describes the binary layout of the data stream, fully resolved from
// the descriptor before any axis or matrix is read.
type Format struct {
	Dims      Dimensions
	Element   dtype.ElementType
	ByteOrder binary.ByteOrder
	Complex   []bool // one flag per data channel
}

// AnyComplex reports whether any data channel stores interleaved complex
// samples.
func (f *Format) AnyComplex() bool {
	for _, c := range f.Complex {
		if c {
			return true
		}
	}
	return false
}

// resolveFormat derives dimensions, element type, byte order and complex
// flags from the descriptor. Values needed to locate or size the data are
// fatal when unresolvable; everything else degrades with a diagnostic.
func resolveFormat(d *Descriptor, diags *Diagnostics) (*Format, error) {
	f := &Format{}

	if v, ok := d.Get("IKKF"); ok {
		parts := strings.Split(v, ",")
		f.Complex = make([]bool, len(parts))
		for i, p := range parts {
			f.Complex[i] = strings.EqualFold(strings.TrimSpace(p), "CPLX")
		}
		if len(parts) > 1 {
			diags.add(CodeExtraChannels,
				"IKKF lists %d data values per point, only the first is read", len(parts))
		}
	} else {
		f.Complex = []bool{false}
		diags.add(CodeAssumedReal, "IKKF not found in descriptor, assuming real data")
	}

	var err error
	if f.Dims.X, err = dimension(d, "XPTS", 0); err != nil {
		return nil, err
	}
	if f.Dims.Y, err = dimension(d, "YPTS", 1); err != nil {
		return nil, err
	}
	if f.Dims.Z, err = dimension(d, "ZPTS", 1); err != nil {
		return nil, err
	}
	if f.Dims.X <= 0 {
		return nil, fmt.Errorf("%w: XPTS is missing or zero in descriptor", ErrFormat)
	}

	f.ByteOrder = binary.BigEndian
	if v, ok := d.Get("BSEQ"); ok {
		switch strings.ToUpper(v) {
		case "BIG":
			f.ByteOrder = binary.BigEndian
		case "LIT":
			f.ByteOrder = binary.LittleEndian
		default:
			return nil, fmt.Errorf("%w: unknown BSEQ value %q in descriptor", ErrFormat, v)
		}
	} else {
		diags.add(CodeAssumedBigEndian, "BSEQ not found in descriptor, assuming big-endian")
	}

	irfmt, ok := d.Get("IRFMT")
	if !ok {
		return nil, fmt.Errorf("%w: IRFMT keyword not found in descriptor", ErrFormat)
	}
	code := firstCode(irfmt)
	f.Element, err = dtype.FromDataCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: IRFMT: %v", ErrFormat, err)
	}

	// A differing imaginary-channel format is tolerated; the real-channel
	// format is used for both halves of each sample.
	if iifmt, ok := d.Get("IIFMT"); ok && f.AnyComplex() {
		if icode := firstCode(iifmt); icode != code {
			diags.add(CodeFormatMismatch,
				"IRFMT %q and IIFMT %q differ, using IRFMT for reading", code, icode)
		}
	}

	return f, nil
}

// dimension parses an axis point count, defaulting when the key is absent.
// Negative counts are rejected here so no downstream size computation can go
// negative.
func dimension(d *Descriptor, key string, def int) (int, error) {
	v, ok := d.Get(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %s value %q", ErrFormat, key, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s value %q is negative", ErrFormat, key, v)
	}
	return n, nil
}

// firstCode returns the first entry of a comma-separated format-code list,
// trimmed and upper-cased.
func firstCode(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.ToUpper(strings.TrimSpace(first))
}
