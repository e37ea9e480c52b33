// Package bes3t decodes Bruker BES3T spectrometer file sets.
//
// A BES3T measurement consists of a textual descriptor file (.DSC) naming
// the layout of a flat binary data file (.DTA), plus optional companion axis
// files (.XGF/.YGF/.ZGF) carrying explicit coordinates for non-linear axes.
// Load parses the descriptor, resolves dimensions, element type, byte order
// and complex-channel flags, reconstructs the physical axes, reads and
// reshapes the data matrix, and applies the requested scaling corrections.
//
// Fatal conditions (anything needed to locate or size the data) abort with
// an error wrapping one of the sentinel errors in this package. Everything
// that only refines presentation degrades gracefully and is reported in
// Result.Diags.
package bes3t

import "unicode"

// Result holds everything decoded from one descriptor/data file pair.
type Result struct {
	// Data is the reshaped measurement array.
	Data *Matrix
	// Abscissa lists the physical coordinates of each axis with more than
	// one point, in X, Y, Z order. Nil when every dimension is trivial.
	Abscissa [][]float64
	// Params is the full descriptor with values coerced to numeric types.
	Params *Parameters
	// Diags collects the non-fatal warnings emitted while decoding.
	Diags Diagnostics
}

// XAxis returns the first abscissa, or nil if no axis was built.
func (r *Result) XAxis() []float64 {
	if len(r.Abscissa) == 0 {
		return nil
	}
	return r.Abscissa[0]
}

// Load decodes the BES3T file set rooted at base (a path without extension).
// ext is the extension of the file the caller originally saw (".DSC",
// ".dta", ...); its letter case selects upper- or lower-case names for the
// sidecar files. scaling lists the requested corrections, any subset of
// "nGcPT".
//
// The call is atomic: on error no partial result is returned.
func Load(base, ext, scaling string) (*Result, error) {
	upper := isUpper(ext)
	dscPath := base + pickCase(".dsc", upper)
	dtaPath := base + pickCase(".dta", upper)

	var diags Diagnostics

	desc, err := ParseDescriptor(dscPath)
	if err != nil {
		return nil, err
	}

	format, err := resolveFormat(desc, &diags)
	if err != nil {
		return nil, err
	}

	abscissa, err := buildAbscissa(desc, format, base, upper, &diags)
	if err != nil {
		return nil, err
	}

	data, err := readMatrix(dtaPath, format, &diags)
	if err != nil {
		return nil, err
	}

	applyScaling(data, desc, scaling, &diags)

	return &Result{
		Data:     data,
		Abscissa: abscissa,
		Params:   CoerceParameters(desc),
		Diags:    diags,
	}, nil
}

// isUpper reports whether s contains at least one letter and no lower-case
// letters. Bruker tooling writes the whole file set in a single case, so the
// extension the caller saw decides the case of every sidecar file.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func pickCase(lower string, upper bool) string {
	if !upper {
		return lower
	}
	out := []rune(lower)
	for i, r := range out {
		out[i] = unicode.ToUpper(r)
	}
	return string(out)
}
