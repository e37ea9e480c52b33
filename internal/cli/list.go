package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TheresiaQuintes/spektro-db/internal/catalog"
)

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var filter catalog.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued measurements",
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

			measurements, err := store.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMOLECULE\tMETHOD\tT/K\tDATE\tFLAGS")
			for _, m := range measurements {
				flags := ""
				if m.Corrected {
					flags += "c"
				}
				if m.Evaluated {
					flags += "e"
				}
				fmt.Fprintf(w, "M%d\t%s\t%s\t%g\t%s\t%s\n",
					m.ID, m.Molecule, m.Method, m.Temperature, m.Date, flags)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filter.Molecule, "molecule", "", "filter by molecule")
	cmd.Flags().StringVar(&filter.Method, "method", "", "filter by method")
	cmd.Flags().StringVar(&filter.Device, "device", "", "filter by device")
	cmd.Flags().StringVar(&filter.OrderBy, "order", "", "order by column (id, molecule, method, temperature, date)")
	cmd.Flags().BoolVar(&filter.Desc, "desc", false, "descending order")

	return cmd
}
