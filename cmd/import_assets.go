package cmd

import (
	"fmt"
	"os"

	"investmentplanner/internal"

	"github.com/spf13/cobra"
)

func newImportAssetsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-assets",
		Short: "Insert assets from a csv file (name,apr,risk,location_id) in one transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			ctx := cmd.Context()
			apiHandler, err := InitializeDependencies(ctx, *cfg)
			if err != nil {
				return err
			}
			defer CloseDependencies(apiHandler)

			ids, err := internal.IngestAssets(ctx, f, apiHandler.AssetService)
			if err != nil {
				return err
			}

			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "csv file to import")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
