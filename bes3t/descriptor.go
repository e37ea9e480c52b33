package bes3t

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

// historyMarker terminates descriptor parsing. Everything below the
// manipulation history layer is free text appended by the instrument
// software and no longer follows the key/value grammar.
const historyMarker = "#MHL"

// Descriptor is the parsed key/value content of a .DSC file. Keys are
// case-sensitive and kept in file order. A Descriptor is immutable once
// returned by ParseDescriptor.
type Descriptor struct {
	keys   []string
	values map[string]string
}

// Get returns the value for key and whether it is present.
func (d *Descriptor) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Descriptor) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in file order.
func (d *Descriptor) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries.
func (d *Descriptor) Len() int {
	return len(d.keys)
}

func (d *Descriptor) set(key, value string) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// ParseDescriptor reads a BES3T descriptor file into a Descriptor.
//
// Lines ending in a backslash are joined with the following line before
// splitting. Blank lines and lines whose first character is not a letter are
// skipped. Parsing stops at the manipulation history marker. Values wrapped
// in a single pair of quotes have them stripped. Axis name/unit keys are
// cross-populated into the generic XAXIS_NAME/XAXIS_UNIT (and Y) keys.
func ParseDescriptor(path string) (*Descriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: descriptor file %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: descriptor file %s: %v", ErrIO, path, err)
	}

	d := &Descriptor{values: make(map[string]string)}
	for _, line := range joinContinuations(splitLines(string(raw))) {
		if line == "" {
			continue
		}

		key, value := splitKeyValue(line)
		if strings.EqualFold(key, historyMarker) {
			break
		}
		if !startsWithLetter(key) {
			continue
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
			value = value[1 : len(value)-1]
		}
		d.set(key, value)
	}

	crossPopulateAliases(d)
	return d, nil
}

// splitLines breaks the file into trimmed physical lines.
func splitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// joinContinuations merges physical lines ending in a backslash with their
// successors and resolves escaped newlines left by the instrument software.
func joinContinuations(lines []string) []string {
	var out []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		for strings.HasSuffix(line, "\\") {
			line = line[:len(line)-1]
			if i+1 < len(lines) {
				i++
				line += lines[i]
			}
		}
		out = append(out, strings.ReplaceAll(line, "\\n", "\n"))
	}
	return out
}

// splitKeyValue splits a logical line into its first whitespace-delimited
// token and the remainder.
func splitKeyValue(line string) (key, value string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	key = fields[0]
	return key, strings.TrimSpace(strings.TrimPrefix(line, key))
}

func startsWithLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}

// crossPopulateAliases normalizes dialect-specific axis keys into the
// canonical axis name/unit keys.
func crossPopulateAliases(d *Descriptor) {
	aliases := [...]struct{ from, to string }{
		{"XNAM", "XAXIS_NAME"},
		{"XUNI", "XAXIS_UNIT"},
		{"YNAM", "YAXIS_NAME"},
		{"YUNI", "YAXIS_UNIT"},
	}
	for _, a := range aliases {
		if v, ok := d.Get(a.from); ok {
			d.set(a.to, v)
		}
	}
}
