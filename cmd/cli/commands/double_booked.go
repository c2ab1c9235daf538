package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/services"
)

// DoubleBookedCmd creates the doubleBooked command
func DoubleBookedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doubleBooked",
		Short: "Report members with overlapping or duplicate commitments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("doubleBooked command")

			result, err := services.DoubleBookedReport(
				app.Ctx,
				app.Client,
				app.History,
				app.Cfg,
				app.Logger,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n📋 Double-Booking Report (run %s)\n\n", result.RunID)
			fmt.Printf("Assignments analysed: %d\n", result.AssignmentCount)
			fmt.Printf("Conflicts flagged:    %d\n\n", len(result.Conflicts))

			if len(result.Conflicts) == 0 {
				fmt.Println("✓ No double-bookings found.")
				return nil
			}

			for _, c := range result.Conflicts {
				fmt.Printf("⚠️  %s (%s) [%s]\n", c.MemberName, c.MemberID, c.Kind)
				fmt.Printf("    %s vs %s\n", c.First.ActivityName, c.Second.ActivityName)
				fmt.Printf("    %s\n\n", c.Description)
			}

			fmt.Println("Resolve conflicts manually by reassigning the affected activities.")
			return nil
		},
	}
}
