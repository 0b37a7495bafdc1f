package cli

import (
	"os"

	"github.com/spf13/cobra"

	"wishlist/internal/config"
	"wishlist/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "wishlist",
		Short:        "Wishlist catalog API",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults to $CONFIG_FILE)")

	load := func() (config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
		logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		return cfg, nil
	}

	cmd.AddCommand(
		serveCmd(load),
		migrateCmd(load),
		adminCmd(load),
		tokenCmd(load),
	)
	return cmd
}

type loader func() (config.Config, error)
