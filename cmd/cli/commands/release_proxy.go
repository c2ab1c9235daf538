package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// ReleaseProxyCmd creates the releaseProxy command
func ReleaseProxyCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "releaseProxy <activity_id>",
		Short: "Withdraw an activity you claimed for one of your proxies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]
			proxyID, _ := cmd.Flags().GetString("proxy")

			app.Logger.Debug("releaseProxy command",
				zap.String("activity_id", activityID),
				zap.String("proxy_id", proxyID))

			result, err := services.ReleaseProxy(
				app.Ctx,
				app.Client,
				app.Logger,
				activityID,
				app.actingMember(cmd),
				proxyID,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Proxy assignment released.\n\n")
			printActivity(result.Activity)
			return nil
		},
	}

	cmd.Flags().String("proxy", "", "The proxy member ID holding the activity (required)")
	cmd.Flags().String("as", "", "Act as this member ID (defaults to the configured member)")
	cmd.MarkFlagRequired("proxy")

	return cmd
}
