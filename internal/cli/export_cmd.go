package cli

import (
	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the active plan as YAML",
		Long: `Print the active plan in the format read by --plan. Redirect it to a
file to start a custom plan from the built-in one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := plan.Marshal(app.Store)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
