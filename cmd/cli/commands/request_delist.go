package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// RequestDelistCmd creates the requestDelist command
func RequestDelistCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requestDelist <activity_id>",
		Short: "Request to be released from a held activity (needs staff approval)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]
			reason, _ := cmd.Flags().GetString("reason")

			app.Logger.Debug("requestDelist command",
				zap.String("activity_id", activityID))

			result, err := services.RequestDelist(
				app.Ctx,
				app.Client,
				app.Logger,
				activityID,
				app.actingMember(cmd),
				reason,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Delist request created - awaiting staff decision.\n\n")
			printDelistRequest(result.Request)
			return nil
		},
	}

	cmd.Flags().String("reason", "", "Why you need to be released (required)")
	cmd.Flags().String("as", "", "Act as this member ID (defaults to the configured member)")
	cmd.MarkFlagRequired("reason")

	return cmd
}
