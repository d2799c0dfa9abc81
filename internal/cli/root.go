package cli

import (
	"fmt"

	"github.com/alexanderramin/launchweek/internal/cli/formatter"
	"github.com/alexanderramin/launchweek/internal/config"
	"github.com/alexanderramin/launchweek/internal/logging"
	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/alexanderramin/launchweek/internal/viewstate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the dependencies shared by every command. Fields left nil are
// resolved from configuration before a command runs.
type App struct {
	Config config.Config
	Logger *zap.Logger
	Store  *plan.Store

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// RunProgram runs the dashboard model. Nil runs a bubbletea program on
	// the alternate screen.
	RunProgram func(tea.Model) error

	// PickDay asks the user for a day. Nil uses a huh select form.
	PickDay func(store *plan.Store, initial string) (string, error)

	flush func()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// setup loads configuration, the logger and the plan for the command being run.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.Config = cfg

	if a.Logger == nil {
		logger, flush, err := logging.New(cfg)
		if err != nil {
			return err
		}
		a.Logger = logger
		a.flush = flush
	}

	if a.Store == nil {
		store := plan.Default()
		if cfg.PlanFile != "" {
			store, err = plan.LoadFile(cfg.PlanFile)
			if err != nil {
				return fmt.Errorf("loading plan: %w", err)
			}
		}
		a.Store = store
	}

	a.Logger.Debug("launchweek ready",
		zap.String("command", cmd.Name()),
		zap.String("plan_file", cfg.PlanFile),
		zap.String("config_file", cfg.ConfigFile),
		zap.Int("days", a.Store.Len()),
	)
	return nil
}

func (a *App) teardown() {
	if a.flush != nil {
		a.flush()
		a.flush = nil
	}
}

// controller creates a view-state controller positioned on day, or on the
// configured start day when day is empty.
func (a *App) controller(day string) (*viewstate.Controller, error) {
	if day == "" {
		day = a.Config.StartDay
	}
	return viewstate.New(a.Store, viewstate.WithStartDay(day), viewstate.WithLogger(a.Logger))
}

// NewRootCmd creates the top-level "launchweek" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "launchweek",
		Short: "Launch-week plan dashboard",
		Long: `Browse the seven-day launch plan: pick a day to see its objective,
technical and marketing tasks, and a doughnut of how the work splits.

Run without a subcommand on a terminal to open the interactive dashboard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(app)
			}
			ctrl, err := app.controller("")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(ctrl.Current(), doughnutRows))
			return nil
		},
	}

	root.PersistentFlags().String("plan", "", "Plan YAML file (default: built-in launch week)")
	root.PersistentFlags().String("day", "", "Day key to start on (default: first day of the plan)")

	root.AddCommand(
		newDaysCmd(app),
		newShowCmd(app),
		newChartCmd(app),
		newExportCmd(app),
	)

	return root
}

// Execute runs the root command and flushes logs even when it fails.
func Execute(app *App, args []string) error {
	root := NewRootCmd(app)
	if args != nil {
		root.SetArgs(args)
	}
	defer app.teardown()
	return root.Execute()
}
