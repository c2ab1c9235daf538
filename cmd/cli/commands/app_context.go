package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/internal/config"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/clients/clubclient"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Client  *clubclient.Client
	History *db.DB
	Logger  *zap.Logger
	Ctx     context.Context
}

// actingMember resolves the member an operation acts as: the --as flag
// when given, the configured member otherwise
func (app *AppContext) actingMember(cmd *cobra.Command) string {
	memberID, _ := cmd.Flags().GetString("as")
	if memberID != "" {
		return memberID
	}
	return app.Cfg.MemberID
}
