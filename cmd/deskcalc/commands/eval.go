package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// eval <expression...>: evaluate and print the formatted result.
func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate an arithmetic expression",
		Example: `  deskcalc eval 12+3
  deskcalc eval "200 + 10%"
  deskcalc eval -- -5+3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := appCtx.Evaluator.Evaluate(strings.Join(args, " "))
			if !res.OK() {
				return fmt.Errorf("%s (%w)", res.Err.Kind.Message(), res.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), appCtx.Formatter.Format(res.Value))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before an expression that starts with '-')", err)
	})
	return cmd
}
