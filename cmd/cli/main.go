package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/cmd/cli/commands"
	"github.com/marcus-sonestedt/t13activityweb-cli/internal/config"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/clients/clubclient"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/db"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "t13cli",
		Short: "T13 activity CLI - book, delegate and review volunteer activities",
		Long: `A CLI client for the club's activity-booking backend. Claim activities
for yourself or your proxies, drive delist requests through staff approval,
confirm attendance and report double-bookings. The backend stays the single
source of truth; this tool mirrors and drives its rules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.History != nil {
					app.History.Close()
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ClaimActivityCmd(appRef()))
	rootCmd.AddCommand(commands.ReleaseProxyCmd(appRef()))
	rootCmd.AddCommand(commands.ShowActivityCmd(appRef()))
	rootCmd.AddCommand(commands.RequestDelistCmd(appRef()))
	rootCmd.AddCommand(commands.CancelDelistCmd(appRef()))
	rootCmd.AddCommand(commands.ApproveDelistCmd(appRef()))
	rootCmd.AddCommand(commands.RejectDelistCmd(appRef()))
	rootCmd.AddCommand(commands.PurgeDelistCmd(appRef()))
	rootCmd.AddCommand(commands.SetCompletedCmd(appRef()))
	rootCmd.AddCommand(commands.DoubleBookedCmd(appRef()))
	rootCmd.AddCommand(commands.ListDecisionsCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef hands commands the shared context before initApp has filled it.
// Command constructors only store the pointer; PersistentPreRunE populates
// it before any RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, backend client and the local history store
func initApp() error {
	appRef()
	app.Ctx = context.Background()

	var err error
	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Client = clubclient.NewClient(app.Cfg, app.Logger)
	app.Logger.Debug("Backend client initialized", zap.String("base_url", app.Cfg.BaseURL))

	app.Logger.Info("Opening history store", zap.String("path", app.Cfg.HistoryDBPath))
	app.History, err = db.Open(app.Cfg.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	if err := app.History.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to migrate history store: %w", err)
	}
	app.Logger.Info("History store ready")

	return nil
}
