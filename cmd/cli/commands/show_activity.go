package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ShowActivityCmd creates the showActivity command
func ShowActivityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showActivity <activity_id>",
		Short: "Show a fresh snapshot of an activity and its delist request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]

			app.Logger.Debug("showActivity command", zap.String("activity_id", activityID))

			activity, err := app.Client.GetActivity(app.Ctx, activityID)
			if err != nil {
				return err
			}

			fmt.Println()
			printActivity(activity)

			if ref, ok := activity.DelistRequest.Value(); ok && ref != nil {
				request, err := app.Client.GetDelistRequestForActivity(app.Ctx, activityID)
				if err != nil {
					return err
				}
				if request != nil {
					fmt.Println()
					printDelistRequest(request)
				}
			}

			return nil
		},
	}
}
