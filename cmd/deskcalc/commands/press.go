package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskcalc/internal/domain"
)

// press <keys...>: replay keys through a fresh controller.
func pressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press <keys...>",
		Short: "Feed keys through a fresh controller and print the display",
		Example: `  deskcalc press 12+3=
  deskcalc press 5 6 CE 7 =
  deskcalc press 9 neg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := domain.ParseKeys(args)
			if err != nil {
				return err
			}
			ctrl := appCtx.NewController()
			d := ctrl.Display()
			for _, k := range keys {
				d = ctrl.Press(k)
			}

			out := cmd.OutOrStdout()
			if d.Expression != "" {
				fmt.Fprintln(out, d.Expression)
			}
			fmt.Fprintln(out, d.Current)
			if d.Error != "" {
				fmt.Fprintln(out, d.Error)
			}
			return nil
		},
	}
}
