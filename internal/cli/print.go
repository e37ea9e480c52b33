package cli

import (
	"fmt"
	"io"

	"github.com/TheresiaQuintes/spektro-db/bes3t"
)

// printResult writes a human-readable summary of a decoded BES3T file set.
// With verbose set, the full coerced parameter list is included.
func printResult(w io.Writer, res *bes3t.Result, verbose bool) {
	kind := "real"
	if res.Data.IsComplex() {
		kind = "complex"
	}
	fmt.Fprintf(w, "Data: %s, shape %v (%d points)\n", kind, res.Data.Shape, res.Data.Len())

	for i, axis := range res.Abscissa {
		fmt.Fprintf(w, "Axis %d: %d points, %g .. %g\n",
			i, len(axis), axis[0], axis[len(axis)-1])
	}
	if len(res.Abscissa) == 0 {
		fmt.Fprintln(w, "Axis: none")
	}

	fmt.Fprintf(w, "Parameters: %d\n", res.Params.Len())
	if verbose {
		for _, key := range res.Params.Keys() {
			v, _ := res.Params.Value(key)
			fmt.Fprintf(w, "  %-12s %v\n", key, v)
		}
	}

	for _, d := range res.Diags {
		fmt.Fprintf(w, "Warning: %s\n", d)
	}
}
