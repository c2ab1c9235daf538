package services

import (
	"context"
	"fmt"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/clients/clubclient"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/db"
)

// fakeBackend implements the narrow service client interfaces against
// in-memory state. Mutation hooks let each test script the backend's
// side of a call, including losing a claim race.
type fakeBackend struct {
	activities map[string]*model.Activity
	members    map[string]*model.Member
	requests   map[string]*model.DelistRequest // keyed by activity ID

	enlistFunc       func(activityID string) error
	claimProxyFunc   func(activityID, proxyID string) error
	releaseProxyFunc func(activityID, proxyID string) error
	createDelistFunc func(input clubclient.CreateDelistRequestInput) error
	approveFunc      func(requestID, approverID string) error
	rejectFunc       func(requestID, approverID, rejectReason string) error
	deleteFunc       func(requestID string) error
	setCompletedFunc func(activityID string, state model.CompletionState) error

	doubleBooked    []clubclient.DoubleBookedEntry
	doubleBookedErr error

	enlistCalls       int
	createDelistCalls int
	deleteCalls       int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		activities: map[string]*model.Activity{},
		members:    map[string]*model.Member{},
		requests:   map[string]*model.DelistRequest{},
	}
}

func (f *fakeBackend) GetActivity(_ context.Context, activityID string) (*model.Activity, error) {
	activity, ok := f.activities[activityID]
	if !ok {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}
	snapshot := *activity
	return &snapshot, nil
}

func (f *fakeBackend) GetMember(_ context.Context, memberID string) (*model.Member, error) {
	member, ok := f.members[memberID]
	if !ok {
		return nil, fmt.Errorf("member %s not found", memberID)
	}
	snapshot := *member
	return &snapshot, nil
}

func (f *fakeBackend) EnlistActivity(_ context.Context, activityID string) error {
	f.enlistCalls++
	if f.enlistFunc != nil {
		return f.enlistFunc(activityID)
	}
	return nil
}

func (f *fakeBackend) ClaimForProxy(_ context.Context, activityID, proxyID string) error {
	if f.claimProxyFunc != nil {
		return f.claimProxyFunc(activityID, proxyID)
	}
	return nil
}

func (f *fakeBackend) ReleaseForProxy(_ context.Context, activityID, proxyID string) error {
	if f.releaseProxyFunc != nil {
		return f.releaseProxyFunc(activityID, proxyID)
	}
	return nil
}

func (f *fakeBackend) CreateDelistRequest(_ context.Context, input clubclient.CreateDelistRequestInput) error {
	f.createDelistCalls++
	if f.createDelistFunc != nil {
		return f.createDelistFunc(input)
	}
	return nil
}

func (f *fakeBackend) GetDelistRequestForActivity(_ context.Context, activityID string) (*model.DelistRequest, error) {
	request, ok := f.requests[activityID]
	if !ok {
		return nil, nil
	}
	snapshot := *request
	return &snapshot, nil
}

func (f *fakeBackend) DeleteDelistRequest(_ context.Context, requestID string) error {
	f.deleteCalls++
	if f.deleteFunc != nil {
		return f.deleteFunc(requestID)
	}
	return nil
}

func (f *fakeBackend) ApproveDelistRequest(_ context.Context, requestID, approverID string) error {
	if f.approveFunc != nil {
		return f.approveFunc(requestID, approverID)
	}
	return nil
}

func (f *fakeBackend) RejectDelistRequest(_ context.Context, requestID, approverID, rejectReason string) error {
	if f.rejectFunc != nil {
		return f.rejectFunc(requestID, approverID, rejectReason)
	}
	return nil
}

func (f *fakeBackend) SetCompleted(_ context.Context, activityID string, state model.CompletionState) error {
	if f.setCompletedFunc != nil {
		return f.setCompletedFunc(activityID, state)
	}
	return nil
}

func (f *fakeBackend) GetDoubleBookedAll(_ context.Context, _ int) ([]clubclient.DoubleBookedEntry, error) {
	if f.doubleBookedErr != nil {
		return nil, f.doubleBookedErr
	}
	return f.doubleBooked, nil
}

// fakeHistoryStore implements db.HistoryStore in memory
type fakeHistoryStore struct {
	decisions []db.DelistDecision
	runs      []db.ConflictRun
	records   []db.ConflictRecord
	insertErr error
}

func (s *fakeHistoryStore) InsertDelistDecision(_ context.Context, decision db.DelistDecision) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.decisions = append(s.decisions, decision)
	return nil
}

func (s *fakeHistoryStore) ListDelistDecisions(_ context.Context) ([]db.DelistDecision, error) {
	return s.decisions, nil
}

func (s *fakeHistoryStore) InsertConflictRun(_ context.Context, run db.ConflictRun, records []db.ConflictRecord) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.runs = append(s.runs, run)
	s.records = append(s.records, records...)
	return nil
}

func (s *fakeHistoryStore) ListConflictsForRun(_ context.Context, runID string) ([]db.ConflictRecord, error) {
	var out []db.ConflictRecord
	for _, record := range s.records {
		if record.RunID == runID {
			out = append(out, record)
		}
	}
	return out, nil
}
