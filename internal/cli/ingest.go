package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TheresiaQuintes/spektro-db/bes3t"
	"github.com/TheresiaQuintes/spektro-db/internal/archive"
)

// NewIngestCommand creates the ingest command, which stages a BES3T file set
// into a measurement's raw folder and verifies it decodes.
func NewIngestCommand(opts *RootOptions) *cobra.Command {
	var scaling string

	cmd := &cobra.Command{
		Use:   "ingest <measurement-id> <base-path>",
		Short: "Stage raw BES3T data into the archive",
		Long: `Copies the .DSC/.DTA pair (and an optional .YGF companion) at the given
base path into the measurement's raw folder, then decodes the staged copy to
verify it is readable.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid measurement id %q", args[0])
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			arch := archive.New(cfg.BasePath)

			if err := arch.StageRawData(id, args[1]); err != nil {
				return err
			}

			base, ext, err := arch.RawBasePath(id)
			if err != nil {
				return err
			}
			res, err := bes3t.Load(base, ext, scaling)
			if err != nil {
				return fmt.Errorf("staged data does not decode: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Raw data staged for M%d\n", id)
			printResult(cmd.OutOrStdout(), res, opts.Verbose)
			return nil
		},
	}

	cmd.Flags().StringVar(&scaling, "scaling", "n", "scaling corrections to apply (any of nGcPT)")
	return cmd
}
