package cli

import (
	"fmt"

	"github.com/alexanderramin/launchweek/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDaysCmd(app *App) *cobra.Command {
	var keysOnly bool

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the days of the plan in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if keysOnly {
				for _, k := range app.Store.Keys() {
					fmt.Fprintln(out, k)
				}
				return nil
			}
			fmt.Fprint(out, formatter.FormatDayList(app.Store.Days()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keysOnly, "keys", false, "Print only the day keys, one per line")

	return cmd
}
