package cmd

import (
	"context"
	"os"

	"investmentplanner/internal/logger"
	"investmentplanner/internal/util"

	"github.com/spf13/cobra"
)

var configPath string

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Investment planning REST backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file (default $"+util.ConfigPathEnvVar+")")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newImportAssetsCommand(),
	)

	return root
}

func Execute() {
	lg := logger.New()
	ctx := logger.WithLogger(context.Background(), lg)

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		lg.Error(err)
		_ = lg.Sync()
		os.Exit(1)
	}
}

func loadConfig() (*util.Config, error) {
	return util.LoadConfig(configPath)
}
