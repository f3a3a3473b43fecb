package cmd

import (
	"investmentplanner/internal/db"
	"investmentplanner/internal/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the planner tables in the configured schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			dbConn, err := OpenDb(ctx, cfg.Db)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			if err := db.Migrate(ctx, dbConn, cfg.Db.Schema); err != nil {
				return err
			}

			logger.FromContext(ctx).Infof("migrated schema %s", cfg.Db.Schema)
			return nil
		},
	}
}
