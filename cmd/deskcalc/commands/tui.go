package commands

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"deskcalc/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal keypad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeypad(cmd)
		},
	}
}

func runKeypad(cmd *cobra.Command) error {
	_, err := tea.NewProgram(newKeypad(cmd), tea.WithAltScreen()).Run()
	return err
}

// newKeypad builds the keypad model over a fresh controller.
func newKeypad(cmd *cobra.Command) tui.Model {
	appCtx.Log.Debug("starting keypad", slog.String("command", cmd.Name()))
	return tui.New(appCtx.NewController())
}
