package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"deskcalc/internal/app"
	"deskcalc/internal/config"
	"deskcalc/internal/httpapi"
	"deskcalc/internal/logging"
)

func main() {
	var configPath string
	root := &cobra.Command{
		Use:          "calcd",
		Short:        "Stateless HTTP evaluation service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/deskcalc/config.yaml)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(path string) error {
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path == "" {
		path = config.DefaultPath()
	}
	conf, err := config.Load(path)
	if err != nil {
		return err
	}

	closer := logging.Init(conf.Logging, os.Stderr)
	defer closer.Close()

	a, err := app.Wire(app.Config{Settings: conf})
	if err != nil {
		return fmt.Errorf("wiring app: %w", err)
	}

	router := httpapi.NewRouter(a)

	// Start the server
	slog.Info("Starting calcd", slog.String("port", conf.Server.Port))
	if err := router.Run(":" + conf.Server.Port); err != nil {
		slog.Error("Exited calcd", slog.String("error", err.Error()))
		return err
	}
	return nil
}
