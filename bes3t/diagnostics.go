package bes3t

import "fmt"

// Code classifies a non-fatal fallback or assumption made while decoding.
type Code string

const (
	// CodeAssumedReal: IKKF absent, one real channel assumed.
	CodeAssumedReal Code = "assumed-real"
	// CodeAssumedBigEndian: BSEQ absent, big-endian assumed.
	CodeAssumedBigEndian Code = "assumed-big-endian"
	// CodeExtraChannels: IKKF lists more than one data value per point.
	CodeExtraChannels Code = "extra-channels"
	// CodeFormatMismatch: IRFMT and IIFMT disagree; IRFMT wins.
	CodeFormatMismatch Code = "format-mismatch"
	// CodeAxisFallback: a non-linear or linear axis degraded to a simpler form.
	CodeAxisFallback Code = "axis-fallback"
	// CodeTruncated: the data file held more samples than declared.
	CodeTruncated Code = "truncated"
	// CodeScalingSkipped: a requested correction could not be applied.
	CodeScalingSkipped Code = "scaling-skipped"
	// CodeZeroTemperature: temperature scaling applied with STMP = 0.
	CodeZeroTemperature Code = "zero-temperature"
)

// Diagnostic is one non-fatal warning emitted during a Load call.
type Diagnostic struct {
	Code    Code
	Message string
}

func (d Diagnostic) String() string {
	return string(d.Code) + ": " + d.Message
}

// Diagnostics collects the warnings of one Load call in emission order.
type Diagnostics []Diagnostic

// Has reports whether any diagnostic carries the given code.
func (ds Diagnostics) Has(code Code) bool {
	for _, d := range ds {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (ds *Diagnostics) add(code Code, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Code: code, Message: fmt.Sprintf(format, args...)})
}
