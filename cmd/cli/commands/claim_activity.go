package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// ClaimActivityCmd creates the claimActivity command
func ClaimActivityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claimActivity <activity_id>",
		Short: "Claim a bookable activity for yourself or one of your proxies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]
			proxyID, _ := cmd.Flags().GetString("proxy")

			app.Logger.Debug("claimActivity command",
				zap.String("activity_id", activityID),
				zap.String("proxy_id", proxyID))

			result, err := services.ClaimActivity(
				app.Ctx,
				app.Client,
				app.Cfg,
				app.Logger,
				activityID,
				app.actingMember(cmd),
				proxyID,
			)
			if err != nil {
				return err
			}

			if result.Conflict {
				holder := "another member"
				if result.Activity.Assigned != nil {
					holder = result.Activity.Assigned.FullName
				}
				fmt.Printf("\n⚠️  Someone else booked this already: %s\n", holder)
				fmt.Println("The claim was not applied. Pick another activity instead of retrying.")
				return nil
			}

			fmt.Printf("\n✓ Activity claimed!\n\n")
			printActivity(result.Activity)
			if result.ViaProxy {
				fmt.Println("Claimed via proxy.")
			}
			return nil
		},
	}

	cmd.Flags().String("proxy", "", "Claim on behalf of this proxy member ID")
	cmd.Flags().String("as", "", "Act as this member ID (defaults to the configured member)")

	return cmd
}
