package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheresiaQuintes/spektro-db/bes3t"
)

// NewDumpCommand creates the dump command, which decodes an arbitrary BES3T
// file set outside the archive.
func NewDumpCommand(opts *RootOptions) *cobra.Command {
	var scaling string

	cmd := &cobra.Command{
		Use:   "dump <file-or-base-path>",
		Short: "Decode a BES3T file set and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ext := splitDataPath(args[0])
			res, err := bes3t.Load(base, ext, scaling)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res, opts.Verbose)
			return nil
		},
	}

	cmd.Flags().StringVar(&scaling, "scaling", "", "scaling corrections to apply (any of nGcPT)")
	return cmd
}

// splitDataPath accepts either a bare base path or the path of any file of
// the set, and returns the base plus the extension whose case picks the
// sidecar file names.
func splitDataPath(path string) (base, ext string) {
	ext = filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".dsc", ".dta", ".xgf", ".ygf", ".zgf":
		return strings.TrimSuffix(path, ext), ext
	}
	return path, ".DSC"
}
