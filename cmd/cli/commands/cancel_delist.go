package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// CancelDelistCmd creates the cancelDelist command
func CancelDelistCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancelDelist <activity_id>",
		Short: "Withdraw your pending delist request (the commitment is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]
			confirmed, _ := cmd.Flags().GetBool("yes")

			app.Logger.Debug("cancelDelist command",
				zap.String("activity_id", activityID),
				zap.Bool("confirmed", confirmed))

			result, err := services.CancelDelist(
				app.Ctx,
				app.Client,
				app.Logger,
				activityID,
				app.actingMember(cmd),
				confirmed,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Delist request %s cancelled - you keep the activity.\n\n", result.CancelledRequestID)
			printActivity(result.Activity)
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "Confirm the cancellation (required; the request is deleted)")
	cmd.Flags().String("as", "", "Act as this member ID (defaults to the configured member)")

	return cmd
}
