// Package binary provides low-level binary I/O operations for BES3T file parsing.
package binary

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/TheresiaQuintes/spektro-db/internal/dtype"
)

// Reader decodes typed samples from an in-memory buffer with a fixed byte
// order. BES3T files are decoded whole, so the reader owns the complete file
// contents rather than wrapping an io.Reader.
type Reader struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a sample reader over buf with the given byte order.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// Remaining returns how many complete samples of the given element type are
// left in the buffer. Trailing bytes that do not fill a whole sample are not
// counted.
func (r *Reader) Remaining(et dtype.ElementType) int {
	return (len(r.buf) - r.pos) / et.Size()
}

// ReadSamples decodes n samples of the given element type and widens each to
// float64. All supported element types fit in a float64 without loss.
func (r *Reader) ReadSamples(et dtype.ElementType, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample count %d is negative", n)
	}
	size := et.Size()
	need := n * size
	if len(r.buf)-r.pos < need {
		return nil, fmt.Errorf("need %d bytes for %d %s samples, have %d",
			need, n, et, len(r.buf)-r.pos)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = r.decode(et, r.buf[r.pos:r.pos+size])
		r.pos += size
	}
	return out, nil
}

// decode converts one raw sample to float64.
func (r *Reader) decode(et dtype.ElementType, b []byte) float64 {
	switch et {
	case dtype.Int8:
		return float64(int8(b[0]))
	case dtype.Int16:
		return float64(int16(r.order.Uint16(b)))
	case dtype.Int32:
		return float64(int32(r.order.Uint32(b)))
	case dtype.Float32:
		return float64(math.Float32frombits(r.order.Uint32(b)))
	case dtype.Float64:
		return math.Float64frombits(r.order.Uint64(b))
	default:
		return 0
	}
}
