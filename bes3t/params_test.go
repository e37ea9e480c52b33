package bes3t

import (
	"reflect"
	"testing"
)

func TestCoerceParameters(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected any
	}{
		{"integer", "4096", int64(4096)},
		{"negative integer", "-12", int64(-12)},
		{"float", "3345.5", 3345.5},
		{"exponent", "9.6e9", 9.6e9},
		{"leading dot", ".5", 0.5},
		{"signed float", "-0.25", -0.25},
		{"word", "fieldCtrl", "fieldCtrl"},
		{"mixed", "80K", "80K"},
		{"hex stays string", "0x10", "0x10"},
		{"inf stays string", "inf", "inf"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CoerceParameters(testDescriptor(t, "KEY", tt.value))
			v, ok := p.Value("KEY")
			if !ok {
				t.Fatal("KEY missing after coercion")
			}
			if !reflect.DeepEqual(v, tt.expected) {
				t.Errorf("%q: expected %v (%T), got %v (%T)", tt.value, tt.expected, tt.expected, v, v)
			}
		})
	}
}

func TestCoerceParametersKeyOrder(t *testing.T) {
	d := testDescriptor(t, "BSEQ", "BIG", "XPTS", "4", "MWFQ", "9.6e9")

	p := CoerceParameters(d)
	want := []string{"BSEQ", "XPTS", "MWFQ"}
	if !reflect.DeepEqual(p.Keys(), want) {
		t.Errorf("expected key order %v, got %v", want, p.Keys())
	}
	if p.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", p.Len())
	}
}

func TestParametersTypedAccessors(t *testing.T) {
	p := CoerceParameters(testDescriptor(t, "AVGS", "10", "MWFQ", "9.6e9", "TITL", "sweep"))

	if n, ok := p.Int("AVGS"); !ok || n != 10 {
		t.Errorf("Int(AVGS): expected 10, got %d (ok=%v)", n, ok)
	}
	if f, ok := p.Float("MWFQ"); !ok || f != 9.6e9 {
		t.Errorf("Float(MWFQ): expected 9.6e9, got %g (ok=%v)", f, ok)
	}
	// Float also serves integer-valued keys.
	if f, ok := p.Float("AVGS"); !ok || f != 10 {
		t.Errorf("Float(AVGS): expected 10, got %g (ok=%v)", f, ok)
	}
	if s, ok := p.String("TITL"); !ok || s != "sweep" {
		t.Errorf("String(TITL): expected sweep, got %q (ok=%v)", s, ok)
	}
	if _, ok := p.Int("MWFQ"); ok {
		t.Error("Int(MWFQ): float value must not read as integer")
	}
	if _, ok := p.String("AVGS"); ok {
		t.Error("String(AVGS): numeric value must not read as string")
	}
	if _, ok := p.Value("MISSING"); ok {
		t.Error("Value(MISSING): expected absence")
	}
}
