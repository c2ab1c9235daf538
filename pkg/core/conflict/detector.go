// Package conflict implements the double-booking detector: a batch
// analysis over a period's (member, activity) assignment pairs that flags
// members holding overlapping or duplicate commitments. The detector only
// surfaces conflicts; resolution stays a manual staff action.
package conflict

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Kind classifies a detected conflict
type Kind string

const (
	// KindOverlap flags two assignments whose event windows overlap in time
	KindOverlap Kind = "overlap"

	// KindDuplicateComment flags two assignments carrying the same
	// identifying comment, which makes them indistinguishable on the schedule
	KindDuplicateComment Kind = "duplicate_comment"

	// KindBlankComment flags two assignments that both lack an identifying
	// comment for the same member
	KindBlankComment Kind = "blank_comment"
)

// Assignment is one (member, activity) pair under analysis
type Assignment struct {
	MemberID     string
	MemberName   string
	ActivityID   string
	ActivityName string
	Comment      string
	Start        time.Time
	End          time.Time
}

// Conflict is one flagged pair of assignments held by the same member
type Conflict struct {
	MemberID    string
	MemberName  string
	Kind        Kind
	First       Assignment
	Second      Assignment
	Description string
}

// Detect groups assignments by member, orders each member's assignments
// by event start and flags overlapping windows and comment collisions.
// The input order does not matter; the output is ordered by member then
// first event start so reports are stable.
func Detect(assignments []Assignment) []Conflict {
	byMember := make(map[string][]Assignment)
	for _, a := range assignments {
		byMember[a.MemberID] = append(byMember[a.MemberID], a)
	}

	memberIDs := make([]string, 0, len(byMember))
	for id := range byMember {
		memberIDs = append(memberIDs, id)
	}
	sort.Strings(memberIDs)

	var conflicts []Conflict
	for _, memberID := range memberIDs {
		held := byMember[memberID]
		if len(held) < 2 {
			continue
		}

		sort.Slice(held, func(i, j int) bool {
			if !held[i].Start.Equal(held[j].Start) {
				return held[i].Start.Before(held[j].Start)
			}
			return held[i].ActivityID < held[j].ActivityID
		})

		conflicts = append(conflicts, detectOverlaps(held)...)
		conflicts = append(conflicts, detectCommentCollisions(held)...)
	}

	return conflicts
}

// detectOverlaps scans a member's start-ordered assignments for pairs
// whose event windows intersect
func detectOverlaps(held []Assignment) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(held); i++ {
		for j := i + 1; j < len(held); j++ {
			if !overlaps(held[i], held[j]) {
				// held is ordered by start, so later entries cannot
				// overlap held[i] either
				break
			}
			conflicts = append(conflicts, Conflict{
				MemberID:   held[i].MemberID,
				MemberName: held[i].MemberName,
				Kind:       KindOverlap,
				First:      held[i],
				Second:     held[j],
				Description: fmt.Sprintf("%s and %s overlap between %s and %s",
					held[i].ActivityName, held[j].ActivityName,
					held[j].Start.Format(time.RFC3339), minTime(held[i].End, held[j].End).Format(time.RFC3339)),
			})
		}
	}
	return conflicts
}

// detectCommentCollisions flags duplicate and blank identifying comments
// within one member's assignments
func detectCommentCollisions(held []Assignment) []Conflict {
	var conflicts []Conflict
	byComment := make(map[string][]Assignment)
	for _, a := range held {
		byComment[normalizeComment(a.Comment)] = append(byComment[normalizeComment(a.Comment)], a)
	}

	comments := make([]string, 0, len(byComment))
	for comment := range byComment {
		comments = append(comments, comment)
	}
	sort.Strings(comments)

	for _, comment := range comments {
		group := byComment[comment]
		if len(group) < 2 {
			continue
		}
		kind := KindDuplicateComment
		description := fmt.Sprintf("assignments share the comment %q", comment)
		if comment == "" {
			kind = KindBlankComment
			description = "assignments have no identifying comment"
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				conflicts = append(conflicts, Conflict{
					MemberID:    group[i].MemberID,
					MemberName:  group[i].MemberName,
					Kind:        kind,
					First:       group[i],
					Second:      group[j],
					Description: description,
				})
			}
		}
	}
	return conflicts
}

func overlaps(a, b Assignment) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func normalizeComment(comment string) string {
	return strings.ToLower(strings.TrimSpace(comment))
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
