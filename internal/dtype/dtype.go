// Package dtype provides the element-type system for BES3T binary data.
//
// BES3T descriptor files declare binary layouts through single-letter format
// codes. Two fixed tables exist: one for the data stream (IRFMT/IIFMT) and a
// smaller one for companion axis files (XFMT/YFMT/ZFMT). This package maps
// both through an enumerated ElementType instead of open string comparisons.
package dtype

import "fmt"

// ElementType identifies the storage type of a single binary sample.
type ElementType int

const (
	Int8 ElementType = iota
	Int16
	Int32
	Float32
	Float64
)

// Size returns the width of one element in bytes.
func (t ElementType) Size() int {
	switch t {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32:
		return 4
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// String returns the conventional name of the element type.
func (t ElementType) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
}

// FromDataCode maps an IRFMT/IIFMT format code (already upper-cased and
// trimmed) to an element type. The codes "A", "0" and "N" mark ASCII or
// absent data and are rejected alongside unknown codes.
func FromDataCode(code string) (ElementType, error) {
	switch code {
	case "C":
		return Int8, nil
	case "S":
		return Int16, nil
	case "I":
		return Int32, nil
	case "F":
		return Float32, nil
	case "D":
		return Float64, nil
	case "A", "0", "N":
		return 0, fmt.Errorf("format code %q carries no binary data", code)
	default:
		return 0, fmt.Errorf("unknown format code %q", code)
	}
}

// FromAxisCode maps a companion-axis format code (XFMT/YFMT/ZFMT) to an
// element type. The axis table is smaller than the data table; unknown codes
// report ok=false so the caller can fall back to a linear axis.
func FromAxisCode(code string) (ElementType, bool) {
	switch code {
	case "D":
		return Float64, true
	case "F":
		return Float32, true
	case "I":
		return Int32, true
	case "S":
		return Int16, true
	default:
		return 0, false
	}
}
