package commands

import (
	"fmt"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// printActivity renders one activity snapshot for the terminal
func printActivity(activity *model.Activity) {
	fmt.Printf("Activity:   %s (%s)\n", activity.Name, activity.ID)
	fmt.Printf("Event:      %s, %s - %s\n",
		activity.Event.Name,
		activity.Event.StartDate.Format("2006-01-02 15:04"),
		activity.Event.EndDate.Format("2006-01-02 15:04"))
	fmt.Printf("Weight:     %d\n", activity.Weight)

	switch {
	case activity.Assigned != nil:
		fmt.Printf("Holder:     %s (%s)\n", activity.Assigned.FullName, activity.Assigned.ID)
	case activity.Cancelled:
		fmt.Println("Holder:     — (cancelled)")
	default:
		fmt.Println("Holder:     — (unassigned)")
	}

	if grantor, ok := activity.AssignedForProxy.Value(); ok && grantor != nil {
		fmt.Printf("For proxy:  %s (%s)\n", grantor.FullName, grantor.ID)
	}

	if activity.EarliestBookableDate != nil {
		fmt.Printf("Opens:      %s\n", activity.EarliestBookableDate.Format("2006-01-02"))
	}
	fmt.Printf("Bookable:   %t\n", activity.Bookable)

	if ref, ok := activity.DelistRequest.Value(); ok && ref != nil {
		fmt.Printf("Delist:     %s (request %s)\n", ref.State, ref.ID)
	}

	fmt.Printf("Completed:  %s\n", activity.Completed)
}

// printDelistRequest renders one delist request for the terminal
func printDelistRequest(request *model.DelistRequest) {
	fmt.Printf("Request:    %s\n", request.ID)
	fmt.Printf("Member:     %s\n", request.MemberID)
	fmt.Printf("Activity:   %s\n", request.ActivityID)
	fmt.Printf("Reason:     %s\n", request.Reason)
	fmt.Printf("State:      %s\n", request.State)
	if request.ApproverID != "" {
		fmt.Printf("Approver:   %s\n", request.ApproverID)
	}
	if request.RejectReason != "" {
		fmt.Printf("Rejected:   %s\n", request.RejectReason)
	}
}
