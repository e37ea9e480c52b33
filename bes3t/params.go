package bes3t

import (
	"regexp"
	"strconv"
)

// numberPattern is the strict numeric-literal form accepted for float
// coercion. Anything looser (hex, inf, nan, underscores) stays a string.
var numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Parameters is the coerced form of a Descriptor: every value is an int64, a
// float64, or the original string. Keys keep their file order.
type Parameters struct {
	keys   []string
	values map[string]any
}

// Len returns the number of entries.
func (p *Parameters) Len() int {
	return len(p.keys)
}

// Keys returns the keys in file order.
func (p *Parameters) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Value returns the coerced value for key (int64, float64, or string).
func (p *Parameters) Value(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Int returns the value for key if it coerced to an integer.
func (p *Parameters) Int(key string) (int64, bool) {
	n, ok := p.values[key].(int64)
	return n, ok
}

// Float returns the value for key as a float64 when it coerced to a number,
// integer or floating point.
func (p *Parameters) Float(key string) (float64, bool) {
	switch v := p.values[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// String returns the value for key when it stayed a plain string.
func (p *Parameters) String(key string) (string, bool) {
	s, ok := p.values[key].(string)
	return s, ok
}

func (p *Parameters) set(key string, v any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// CoerceParameters converts every descriptor value to a numeric type where
// possible: integer parse first, then a strict numeric-literal float parse,
// otherwise the original string is kept.
func CoerceParameters(d *Descriptor) *Parameters {
	p := &Parameters{values: make(map[string]any, d.Len())}
	for _, key := range d.Keys() {
		v, _ := d.Get(key)
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.set(key, n)
			continue
		}
		if numberPattern.MatchString(v) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				p.set(key, f)
				continue
			}
		}
		p.set(key, v)
	}
	return p
}
