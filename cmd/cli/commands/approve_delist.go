package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// ApproveDelistCmd creates the approveDelist command
func ApproveDelistCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approveDelist <activity_id>",
		Short: "Approve a pending delist request and release the activity (staff only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]

			app.Logger.Debug("approveDelist command", zap.String("activity_id", activityID))

			result, err := services.ApproveDelist(
				app.Ctx,
				app.Client,
				app.History,
				app.Logger,
				activityID,
				app.actingMember(cmd),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Delist request approved.\n\n")
			printDelistRequest(result.Request)
			fmt.Println()
			printActivity(result.Activity)
			if result.Released {
				fmt.Println("\nThe activity is back in the unassigned pool.")
			}
			return nil
		},
	}

	cmd.Flags().String("as", "", "Act as this member ID (defaults to the configured member)")

	return cmd
}
