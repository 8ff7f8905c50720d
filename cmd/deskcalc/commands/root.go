package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"deskcalc/internal/app"
	"deskcalc/internal/config"
	"deskcalc/internal/logging"
)

var (
	configPath string
	logLevel   string
	settings   config.Config
	appCtx     *app.App
	logCloser  io.Closer
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	configPath, logLevel = "", ""
	root := &cobra.Command{
		Use:           "deskcalc",
		Short:         "Desk calculator with a terminal keypad",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv(config.EnvConfigPath)
			}
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			cfg, loadErr := config.Load(configPath)
			if loadErr != nil {
				if !isConfigInit(cmd) {
					return loadErr
				}
				// config init rewrites the file, so a broken one must not block it
				cfg = config.Default()
				cfg.ApplyEnv()
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("--log-level: %w", err)
				}
			}
			// The keypad owns the terminal.
			if isKeypad(cmd) && cfg.Logging.Output == config.OutputStderr {
				cfg.Logging.Output = config.OutputDiscard
			}
			settings = cfg
			logCloser = logging.Init(cfg.Logging, cmd.ErrOrStderr())
			if loadErr != nil {
				slog.Warn("ignoring unreadable config", slog.String("error", loadErr.Error()))
			}

			var err error
			appCtx, err = app.Wire(app.Config{Settings: cfg})
			if err != nil {
				return fmt.Errorf("wiring app: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeypad(cmd)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/deskcalc/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(tuiCmd(), evalCmd(), pressCmd(), configCmd())
	return root
}

func isConfigInit(cmd *cobra.Command) bool {
	return cmd.Name() == "init" && cmd.HasParent() && cmd.Parent().Name() == "config"
}

func isKeypad(cmd *cobra.Command) bool {
	return cmd.Name() == "tui" || !cmd.HasParent()
}
