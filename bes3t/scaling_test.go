package bes3t

import (
	"reflect"
	"testing"
)

func testMatrix(values ...float64) *Matrix {
	m := &Matrix{Shape: []int{len(values)}, Real: make([]float64, len(values))}
	copy(m.Real, values)
	return m
}

func TestScalingByScans(t *testing.T) {
	m := testMatrix(10, 20, 30)
	d := testDescriptor(t, "AVGS", "10")

	var diags Diagnostics
	applyScaling(m, d, "n", &diags)

	if !reflect.DeepEqual(m.Real, []float64{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", m.Real)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestScalingByScansPreAveraged(t *testing.T) {
	m := testMatrix(10, 20)
	d := testDescriptor(t, "AVGS", "10", "SctNorm", "true")

	var diags Diagnostics
	applyScaling(m, d, "n", &diags)

	if !reflect.DeepEqual(m.Real, []float64{10, 20}) {
		t.Errorf("pre-averaged data must stay unchanged, got %v", m.Real)
	}
	if !diags.Has(CodeScalingSkipped) {
		t.Errorf("expected scaling-skipped diagnostic, got %v", diags)
	}
}

func TestScalingByScansMissingAVGS(t *testing.T) {
	tests := []struct {
		name string
		d    *Descriptor
	}{
		{"absent", testDescriptor(t)},
		{"zero", testDescriptor(t, "AVGS", "0")},
		{"invalid", testDescriptor(t, "AVGS", "lots")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMatrix(10)
			var diags Diagnostics
			applyScaling(m, tt.d, "n", &diags)

			if m.Real[0] != 10 {
				t.Errorf("data must stay unchanged, got %v", m.Real)
			}
			if !diags.Has(CodeScalingSkipped) {
				t.Errorf("expected scaling-skipped diagnostic, got %v", diags)
			}
		})
	}
}

func TestScalingByReceiverGain(t *testing.T) {
	m := testMatrix(100)
	// 20 dB of gain is a factor of 10.
	d := testDescriptor(t, "RCAG", "20")

	var diags Diagnostics
	applyScaling(m, d, "G", &diags)

	if m.Real[0] != 10 {
		t.Errorf("expected 10, got %g", m.Real[0])
	}
}

func TestScalingByReceiverGainMissing(t *testing.T) {
	m := testMatrix(100)
	var diags Diagnostics
	applyScaling(m, testDescriptor(t), "G", &diags)

	if m.Real[0] != 100 {
		t.Errorf("data must stay unchanged, got %v", m.Real)
	}
	if !diags.Has(CodeScalingSkipped) {
		t.Errorf("expected scaling-skipped diagnostic, got %v", diags)
	}
}

func TestScalingByConversionTime(t *testing.T) {
	m := testMatrix(100)
	// 0.05 s sampling time is 50 ms.
	d := testDescriptor(t, "SPTP", "0.05")

	var diags Diagnostics
	applyScaling(m, d, "c", &diags)

	if m.Real[0] != 2 {
		t.Errorf("expected 2, got %g", m.Real[0])
	}
}

func TestScalingByMicrowavePower(t *testing.T) {
	m := testMatrix(100)
	// 0.1 W is 100 mW, sqrt gives 10.
	d := testDescriptor(t, "MWPW", "0.1")

	var diags Diagnostics
	applyScaling(m, d, "P", &diags)

	if m.Real[0] != 10 {
		t.Errorf("expected 10, got %g", m.Real[0])
	}
}

func TestScalingByPowerNonCW(t *testing.T) {
	m := testMatrix(100)
	d := testDescriptor(t, "EXPT", "PLS", "MWPW", "0.1")

	var diags Diagnostics
	applyScaling(m, d, "P", &diags)

	if m.Real[0] != 100 {
		t.Errorf("non-CW data must stay unchanged, got %v", m.Real)
	}
	if !diags.Has(CodeScalingSkipped) {
		t.Errorf("expected scaling-skipped diagnostic, got %v", diags)
	}
}

func TestCWOnlyCorrectionsSkippedSilentlyForNonCW(t *testing.T) {
	m := testMatrix(100)
	d := testDescriptor(t, "EXPT", "PLS", "RCAG", "20", "SPTP", "0.05")

	var diags Diagnostics
	applyScaling(m, d, "Gc", &diags)

	if m.Real[0] != 100 {
		t.Errorf("non-CW data must stay unchanged, got %v", m.Real)
	}
	if len(diags) != 0 {
		t.Errorf("G and c carry no non-CW warning, got %v", diags)
	}
}

func TestScalingByTemperature(t *testing.T) {
	m := testMatrix(2)
	d := testDescriptor(t, "STMP", "80")

	var diags Diagnostics
	applyScaling(m, d, "T", &diags)

	if m.Real[0] != 160 {
		t.Errorf("expected 160, got %g", m.Real[0])
	}
}

func TestScalingByZeroTemperature(t *testing.T) {
	m := testMatrix(2)
	d := testDescriptor(t, "STMP", "0")

	var diags Diagnostics
	applyScaling(m, d, "T", &diags)

	if m.Real[0] != 0 {
		t.Errorf("expected data zeroed, got %g", m.Real[0])
	}
	if !diags.Has(CodeZeroTemperature) {
		t.Errorf("expected zero-temperature diagnostic, got %v", diags)
	}
}

func TestScalingCombined(t *testing.T) {
	m := testMatrix(1000)
	d := testDescriptor(t, "AVGS", "10", "RCAG", "20", "STMP", "2")

	var diags Diagnostics
	applyScaling(m, d, "nGT", &diags)

	// 1000 / 10 / 10 * 2
	if m.Real[0] != 20 {
		t.Errorf("expected 20, got %g", m.Real[0])
	}
}

func TestScalingComplexData(t *testing.T) {
	m := &Matrix{Shape: []int{2}, Real: []float64{10, 20}, Imag: []float64{30, 40}}
	d := testDescriptor(t, "AVGS", "10")

	var diags Diagnostics
	applyScaling(m, d, "n", &diags)

	if !reflect.DeepEqual(m.Real, []float64{1, 2}) || !reflect.DeepEqual(m.Imag, []float64{3, 4}) {
		t.Errorf("both channels must be scaled, got real %v imag %v", m.Real, m.Imag)
	}
}

func TestScalingDivisionIsExact(t *testing.T) {
	m := testMatrix(1)
	d := testDescriptor(t, "AVGS", "3")

	var diags Diagnostics
	applyScaling(m, d, "n", &diags)

	// True division, not multiplication by a reciprocal.
	if m.Real[0] != 1.0/3.0 {
		t.Errorf("expected %v, got %v", 1.0/3.0, m.Real[0])
	}
}

func TestScalingEmptyRequest(t *testing.T) {
	m := testMatrix(10)
	d := testDescriptor(t, "AVGS", "10")

	var diags Diagnostics
	applyScaling(m, d, "", &diags)

	if m.Real[0] != 10 {
		t.Errorf("empty request must not scale, got %v", m.Real)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}
