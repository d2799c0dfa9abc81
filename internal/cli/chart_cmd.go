package cli

import (
	"fmt"

	"github.com/alexanderramin/launchweek/internal/chart"
	"github.com/alexanderramin/launchweek/internal/cli/formatter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChartCmd(app *App) *cobra.Command {
	var out string
	var width, height int

	cmd := &cobra.Command{
		Use:               "chart [day]",
		Short:             "Write a day's task split as a PNG doughnut",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDayKeys(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			ctrl, err := app.controller(start)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = app.Config.ChartWidth
			}
			if height <= 0 {
				height = app.Config.ChartHeight
			}
			png := chart.NewPNG(width, height)
			binding, err := chart.Bind(ctrl, png, app.Logger)
			if err != nil {
				return err
			}
			defer binding.Close()

			day := ctrl.Current()
			path := out
			if path == "" {
				path = day.Key + ".png"
			}
			if err := png.WriteFile(binding.Handle(), path); err != nil {
				return fmt.Errorf("%s: %w", day.Key, err)
			}

			app.Logger.Info("chart written",
				zap.String("day", day.Key),
				zap.String("path", path),
				zap.Int("width", width),
				zap.Int("height", height),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleAmber.Render("✔"),
				fmt.Sprintf("%s → %s (%d técnicas, %d marketing)", day.Title, path, day.TechnicalCount(), day.MarketingCount()),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PNG path (default: <day>.png)")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default: chart_width setting)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels (default: chart_height setting)")

	return cmd
}
