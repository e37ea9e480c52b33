package bes3t

import (
	"math"
	"strconv"
	"strings"
)

// applyScaling applies the requested physical corrections to the matrix in
// place. Each single-character code is independent and order-insensitive;
// a correction whose descriptor values are missing, invalid, or zero is
// skipped with a diagnostic, never a fatal error.
//
//	n  divide by the number of accumulated scans (AVGS)
//	G  divide by the receiver gain 10^(RCAG/20)        (CW only)
//	c  divide by the sampling time in ms (SPTP * 1000) (CW only)
//	P  divide by sqrt of the microwave power in mW     (CW only)
//	T  multiply by the temperature in K (STMP)
func applyScaling(m *Matrix, d *Descriptor, scaling string, diags *Diagnostics) {
	if scaling == "" || m.Len() == 0 {
		return
	}

	expt, ok := d.Get("EXPT")
	if !ok {
		expt = "CW"
	}
	isCW := strings.EqualFold(expt, "CW")

	prescaled := false
	if v, ok := d.Get("SctNorm"); ok {
		prescaled = strings.EqualFold(v, "true")
	}

	if strings.ContainsRune(scaling, 'n') {
		if avgs, ok := descInt(d, "AVGS"); ok && avgs > 0 {
			if prescaled {
				diags.add(CodeScalingSkipped,
					"cannot scale by number of scans ('n'): data is already averaged (SctNorm=true, AVGS=%d)", avgs)
			} else {
				m.div(float64(avgs))
			}
		} else {
			diags.add(CodeScalingSkipped,
				"cannot scale by number of scans ('n'): AVGS missing, zero, or invalid")
		}
	}

	if isCW && strings.ContainsRune(scaling, 'G') {
		gainDB, ok := descFloat(d, "RCAG")
		gain := math.Pow(10, gainDB/20)
		if ok && gain != 0 {
			m.div(gain)
		} else {
			diags.add(CodeScalingSkipped,
				"cannot scale by receiver gain ('G'): RCAG missing or invalid")
		}
	}

	if isCW && strings.ContainsRune(scaling, 'c') {
		samplingS, ok := descFloat(d, "SPTP")
		samplingMS := samplingS * 1000
		if ok && samplingMS > 0 {
			m.div(samplingMS)
		} else {
			diags.add(CodeScalingSkipped,
				"cannot scale by conversion time ('c'): SPTP missing, zero, or invalid")
		}
	}

	if strings.ContainsRune(scaling, 'P') {
		if isCW {
			powerW, ok := descFloat(d, "MWPW")
			powerMW := powerW * 1000
			if ok && powerMW > 0 {
				m.div(math.Sqrt(powerMW))
			} else {
				diags.add(CodeScalingSkipped,
					"cannot scale by microwave power ('P'): MWPW missing, zero, or invalid")
			}
		} else {
			diags.add(CodeScalingSkipped,
				"microwave power scaling ('P') requested, but experiment is not CW")
		}
	}

	if strings.ContainsRune(scaling, 'T') {
		if temp, ok := descFloat(d, "STMP"); ok {
			if temp == 0 {
				diags.add(CodeZeroTemperature,
					"temperature (STMP) is zero, scaling by 'T' will zero the data")
			}
			m.mul(temp)
		} else {
			diags.add(CodeScalingSkipped,
				"cannot scale by temperature ('T'): STMP missing or invalid")
		}
	}
}

// descInt parses a descriptor value as an integer, reporting ok=false when
// the key is absent or unparsable.
func descInt(d *Descriptor, key string) (int64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
