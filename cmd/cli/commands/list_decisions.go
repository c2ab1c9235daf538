package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListDecisionsCmd creates the listDecisions command
func ListDecisionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listDecisions",
		Short: "List locally recorded delist decisions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("listDecisions command")

			decisions, err := app.History.ListDelistDecisions(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list decisions: %w", err)
			}

			if len(decisions) == 0 {
				fmt.Println("\nNo delist decisions recorded yet.")
				return nil
			}

			fmt.Printf("\nFound %d recorded decisions:\n\n", len(decisions))
			for _, d := range decisions {
				outcome := "✓ approved"
				if !d.Approved {
					outcome = fmt.Sprintf("✗ rejected (%s)", d.RejectReason)
				}
				fmt.Printf("- %s  activity %s, member %s, by %s: %s\n",
					d.DecidedAt.Format("2006-01-02 15:04"),
					d.ActivityID,
					d.MemberID,
					d.ApproverID,
					outcome)
			}

			return nil
		},
	}
}
