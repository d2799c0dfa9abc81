package cli

import (
	"fmt"

	"github.com/alexanderramin/launchweek/internal/cli/formatter"
	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/spf13/cobra"
)

// doughnutRows is the terminal height of the doughnut in printed output.
const doughnutRows = 9

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [day]",
		Short: "Print a day's objective, tasks and task split",
		Long: `Print one day of the plan. Without an argument an interactive terminal
offers a day picker; otherwise the start day (--day, or the first day) is shown.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDayKeys(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			// An explicit day replaces the start day rather than following it.
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			ctrl, err := app.controller(start)
			if err != nil {
				return err
			}

			if start == "" && app.interactive() {
				day, err := app.pickDay(ctrl.Selected())
				if err != nil {
					return err
				}
				if err := ctrl.SelectDay(day); err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(ctrl.Current(), doughnutRows))
			return nil
		},
	}
}

// completeDayKeys offers the built-in day keys for shell completion. The
// plan file is not loaded during completion.
func completeDayKeys(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		store := app.Store
		if store == nil {
			store = plan.Default()
		}
		return store.Keys(), cobra.ShellCompDirectiveNoFileComp
	}
}
