package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// SetCompletedCmd creates the setCompleted command
func SetCompletedCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setCompleted <activity_id> <attended|missed|unconfirmed>",
		Short: "Record attendance for a concluded activity (staff only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]

			var state model.CompletionState
			switch args[1] {
			case "attended":
				state = model.CompletionAttended
			case "missed":
				state = model.CompletionMissed
			case "unconfirmed":
				state = model.CompletionUnconfirmed
			default:
				return fmt.Errorf("completion state must be attended, missed or unconfirmed, got %q", args[1])
			}

			app.Logger.Debug("setCompleted command",
				zap.String("activity_id", activityID),
				zap.String("state", state.String()))

			activity, err := services.ConfirmCompletion(
				app.Ctx,
				app.Client,
				app.Logger,
				activityID,
				app.actingMember(cmd),
				state,
				time.Now(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Attendance recorded.\n\n")
			printActivity(activity)
			return nil
		},
	}

	cmd.Flags().String("as", "", "Act as this member ID (defaults to the configured member)")

	return cmd
}
