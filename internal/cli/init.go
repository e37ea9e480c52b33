package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/TheresiaQuintes/spektro-db/internal/catalog"
)

// NewInitCommand creates the init command.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the archive root and catalog database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Join(cfg.BasePath, "data"), 0o755); err != nil {
				return fmt.Errorf("creating archive root: %w", err)
			}

			store, err := catalog.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Archive at %s, catalog at %s\n",
				cfg.BasePath, cfg.Database)
			return nil
		},
	}
}
