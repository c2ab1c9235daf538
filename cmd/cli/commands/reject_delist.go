package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// RejectDelistCmd creates the rejectDelist command
func RejectDelistCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rejectDelist <activity_id>",
		Short: "Reject a pending delist request; the member keeps the activity (staff only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]
			reason, _ := cmd.Flags().GetString("reason")

			app.Logger.Debug("rejectDelist command", zap.String("activity_id", activityID))

			result, err := services.RejectDelist(
				app.Ctx,
				app.Client,
				app.History,
				app.Logger,
				activityID,
				app.actingMember(cmd),
				reason,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Delist request rejected.\n\n")
			printDelistRequest(result.Request)
			fmt.Println()
			printActivity(result.Activity)
			return nil
		},
	}

	cmd.Flags().String("reason", "", "Why the request is rejected (required)")
	cmd.Flags().String("as", "", "Act as this member ID (defaults to the configured member)")
	cmd.MarkFlagRequired("reason")

	return cmd
}
