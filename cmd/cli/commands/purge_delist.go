package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// PurgeDelistCmd creates the purgeDelist command
func PurgeDelistCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "purgeDelist <activity_id>",
		Short: "Delete a decided delist request as history cleanup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]

			app.Logger.Debug("purgeDelist command", zap.String("activity_id", activityID))

			requestID, err := services.PurgeDelist(app.Ctx, app.Client, app.Logger, activityID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Delist request %s purged.\n", requestID)
			return nil
		},
	}
}
