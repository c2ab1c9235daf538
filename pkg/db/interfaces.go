package db

import "context"

// DecisionStore defines the history operations for staff delist rulings
type DecisionStore interface {
	InsertDelistDecision(ctx context.Context, decision DelistDecision) error
	ListDelistDecisions(ctx context.Context) ([]DelistDecision, error)
}

// ConflictStore defines the history operations for double-booking report runs
type ConflictStore interface {
	InsertConflictRun(ctx context.Context, run ConflictRun, records []ConflictRecord) error
	ListConflictsForRun(ctx context.Context, runID string) ([]ConflictRecord, error)
}

// HistoryStore is the full local history surface backed by db.DB
type HistoryStore interface {
	DecisionStore
	ConflictStore
}
