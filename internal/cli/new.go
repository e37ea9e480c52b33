package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheresiaQuintes/spektro-db/internal/archive"
	"github.com/TheresiaQuintes/spektro-db/internal/catalog"
)

// NewNewCommand creates the new command, which registers a measurement in
// the catalog and creates its archive folder tree.
func NewNewCommand(opts *RootOptions) *cobra.Command {
	m := &catalog.Measurement{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Register a new measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := catalog.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			id, err := store.Insert(ctx, m)
			if err != nil {
				return err
			}

			arch := archive.New(cfg.BasePath)
			dir, err := arch.CreateMeasurement(id)
			if err != nil {
				return err
			}
			if err := store.SetPath(ctx, id, dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Measurement M%d created at %s\n", id, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&m.Molecule, "molecule", "", "molecule name")
	cmd.Flags().StringVar(&m.Method, "method", "", "measurement method (cwepr, trepr, pulseepr, ...)")
	cmd.Flags().Float64Var(&m.Temperature, "temperature", 0, "temperature in K")
	cmd.Flags().StringVar(&m.Solvent, "solvent", "", "solvent")
	cmd.Flags().StringVar(&m.Concentration, "concentration", "", "sample concentration")
	cmd.Flags().StringVar(&m.Date, "date", "", "measurement date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&m.MeasuredBy, "measured-by", "", "operator")
	cmd.Flags().StringVar(&m.Location, "location", "", "lab or site")
	cmd.Flags().StringVar(&m.Device, "device", "", "spectrometer")
	cmd.Flags().StringVar(&m.Series, "series", "", "measurement series")
	cobra.CheckErr(cmd.MarkFlagRequired("molecule"))
	cobra.CheckErr(cmd.MarkFlagRequired("method"))
	cobra.CheckErr(cmd.MarkFlagRequired("temperature"))

	return cmd
}
