package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour int) time.Time {
	return time.Date(2026, 6, day, hour, 0, 0, 0, time.UTC)
}

func TestDetect_NoAssignments(t *testing.T) {
	assert.Empty(t, Detect(nil))
}

func TestDetect_SingleAssignmentPerMember(t *testing.T) {
	assignments := []Assignment{
		{MemberID: "m-1", ActivityID: "a-1", Comment: "gate", Start: at(1, 9), End: at(1, 12)},
		{MemberID: "m-2", ActivityID: "a-2", Comment: "kiosk", Start: at(1, 9), End: at(1, 12)},
	}

	assert.Empty(t, Detect(assignments))
}

func TestDetect_OverlappingWindows(t *testing.T) {
	assignments := []Assignment{
		{MemberID: "m-1", MemberName: "Anna Ek", ActivityID: "a-1", ActivityName: "Gate duty",
			Comment: "gate", Start: at(1, 9), End: at(1, 12)},
		{MemberID: "m-1", MemberName: "Anna Ek", ActivityID: "a-2", ActivityName: "Kiosk",
			Comment: "kiosk", Start: at(1, 11), End: at(1, 14)},
	}

	conflicts := Detect(assignments)
	require.Len(t, conflicts, 1)
	assert.Equal(t, KindOverlap, conflicts[0].Kind)
	assert.Equal(t, "m-1", conflicts[0].MemberID)
	assert.Equal(t, "a-1", conflicts[0].First.ActivityID)
	assert.Equal(t, "a-2", conflicts[0].Second.ActivityID)
}

func TestDetect_BackToBackIsNotOverlap(t *testing.T) {
	assignments := []Assignment{
		{MemberID: "m-1", ActivityID: "a-1", Comment: "gate", Start: at(1, 9), End: at(1, 12)},
		{MemberID: "m-1", ActivityID: "a-2", Comment: "kiosk", Start: at(1, 12), End: at(1, 14)},
	}

	assert.Empty(t, Detect(assignments))
}

func TestDetect_DuplicateComments(t *testing.T) {
	assignments := []Assignment{
		{MemberID: "m-1", ActivityID: "a-1", Comment: "Lap counter", Start: at(1, 9), End: at(1, 10)},
		{MemberID: "m-1", ActivityID: "a-2", Comment: "lap counter", Start: at(2, 9), End: at(2, 10)},
	}

	conflicts := Detect(assignments)
	require.Len(t, conflicts, 1)
	assert.Equal(t, KindDuplicateComment, conflicts[0].Kind)
	assert.Contains(t, conflicts[0].Description, "lap counter")
}

func TestDetect_BlankComments(t *testing.T) {
	assignments := []Assignment{
		{MemberID: "m-1", ActivityID: "a-1", Comment: "", Start: at(1, 9), End: at(1, 10)},
		{MemberID: "m-1", ActivityID: "a-2", Comment: "   ", Start: at(2, 9), End: at(2, 10)},
	}

	conflicts := Detect(assignments)
	require.Len(t, conflicts, 1)
	assert.Equal(t, KindBlankComment, conflicts[0].Kind)
}

func TestDetect_CollisionsAcrossMembersAreFine(t *testing.T) {
	// Same window and same comment, but different members
	assignments := []Assignment{
		{MemberID: "m-1", ActivityID: "a-1", Comment: "gate", Start: at(1, 9), End: at(1, 12)},
		{MemberID: "m-2", ActivityID: "a-2", Comment: "gate", Start: at(1, 9), End: at(1, 12)},
	}

	assert.Empty(t, Detect(assignments))
}

func TestDetect_ThreeWayOverlap(t *testing.T) {
	assignments := []Assignment{
		{MemberID: "m-1", ActivityID: "a-1", Comment: "x1", Start: at(1, 9), End: at(1, 15)},
		{MemberID: "m-1", ActivityID: "a-2", Comment: "x2", Start: at(1, 10), End: at(1, 12)},
		{MemberID: "m-1", ActivityID: "a-3", Comment: "x3", Start: at(1, 11), End: at(1, 13)},
	}

	conflicts := Detect(assignments)
	assert.Len(t, conflicts, 3, "every overlapping pair is flagged")
	for _, c := range conflicts {
		assert.Equal(t, KindOverlap, c.Kind)
	}
}

func TestDetect_OutputOrderIsStable(t *testing.T) {
	assignments := []Assignment{
		{MemberID: "m-2", ActivityID: "a-3", Comment: "c1", Start: at(1, 9), End: at(1, 12)},
		{MemberID: "m-2", ActivityID: "a-4", Comment: "c2", Start: at(1, 10), End: at(1, 13)},
		{MemberID: "m-1", ActivityID: "a-1", Comment: "c3", Start: at(1, 9), End: at(1, 12)},
		{MemberID: "m-1", ActivityID: "a-2", Comment: "c4", Start: at(1, 10), End: at(1, 13)},
	}

	first := Detect(assignments)
	second := Detect([]Assignment{assignments[3], assignments[1], assignments[2], assignments[0]})

	require.Equal(t, first, second)
	assert.Equal(t, "m-1", first[0].MemberID, "ordered by member")
}
