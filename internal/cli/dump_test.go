package cli

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDataPath(t *testing.T) {
	tests := []struct {
		path string
		base string
		ext  string
	}{
		{"/data/sample.DSC", "/data/sample", ".DSC"},
		{"/data/sample.dta", "/data/sample", ".dta"},
		{"/data/sample.YGF", "/data/sample", ".YGF"},
		{"/data/sample", "/data/sample", ".DSC"},
		{"/data/sample.txt", "/data/sample.txt", ".DSC"},
	}
	for _, tt := range tests {
		base, ext := splitDataPath(tt.path)
		assert.Equal(t, tt.base, base, "base of %q", tt.path)
		assert.Equal(t, tt.ext, ext, "ext of %q", tt.path)
	}
}

func TestDumpCommand(t *testing.T) {
	base := filepath.Join(t.TempDir(), "sweep")
	descriptor := "XPTS\t4\nIKKF\tREAL\nIRFMT\tF\nBSEQ\tLIT\nXMIN\t0\nXWID\t30\n"
	require.NoError(t, os.WriteFile(base+".DSC", []byte(descriptor), 0o644))

	var data bytes.Buffer
	require.NoError(t, binary.Write(&data, binary.LittleEndian, []float32{1, 2, 3, 4}))
	require.NoError(t, os.WriteFile(base+".DTA", data.Bytes(), 0o644))

	cmd := NewDumpCommand(&RootOptions{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{base + ".DSC"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Data: real, shape [4] (4 points)")
	assert.Contains(t, out.String(), "Axis 0: 4 points, 0 .. 30")
	assert.Contains(t, out.String(), "Parameters: 6")
}

func TestDumpCommandMissingFile(t *testing.T) {
	cmd := NewDumpCommand(&RootOptions{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.DSC")})

	assert.Error(t, cmd.Execute())
}
