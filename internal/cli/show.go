package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TheresiaQuintes/spektro-db/bes3t"
	"github.com/TheresiaQuintes/spektro-db/internal/archive"
	"github.com/TheresiaQuintes/spektro-db/internal/catalog"
)

// NewShowCommand creates the show command, which prints a measurement's
// catalog entry and decodes its staged raw data.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	var scaling string

	cmd := &cobra.Command{
		Use:   "show <measurement-id>",
		Short: "Show a measurement and decode its raw data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid measurement id %q", args[0])
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := catalog.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			m, err := store.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "M%d: %s, %s, %g K\n", m.ID, m.Molecule, m.Method, m.Temperature)
			if m.Date != "" {
				fmt.Fprintf(out, "Measured: %s by %s\n", m.Date, m.MeasuredBy)
			}
			fmt.Fprintf(out, "Corrected: %v, evaluated: %v\n", m.Corrected, m.Evaluated)

			arch := archive.New(cfg.BasePath)
			base, ext, err := arch.RawBasePath(id)
			if err != nil {
				fmt.Fprintf(out, "No raw data staged (%v)\n", err)
				return nil
			}
			res, err := bes3t.Load(base, ext, scaling)
			if err != nil {
				return err
			}
			printResult(out, res, opts.Verbose)
			return nil
		},
	}

	cmd.Flags().StringVar(&scaling, "scaling", "", "scaling corrections to apply (any of nGcPT)")
	return cmd
}
