package db

import (
	"context"
	"fmt"
	"time"
)

// InsertDelistDecision stores one staff ruling
func (db *DB) InsertDelistDecision(ctx context.Context, decision DelistDecision) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO delist_decisions
			(id, request_id, activity_id, member_id, approver_id, approved, reject_reason, decided_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		decision.ID,
		decision.RequestID,
		decision.ActivityID,
		decision.MemberID,
		decision.ApproverID,
		decision.Approved,
		decision.RejectReason,
		decision.DecidedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert delist decision: %w", err)
	}
	return nil
}

// ListDelistDecisions returns all recorded rulings, newest first
func (db *DB) ListDelistDecisions(ctx context.Context) ([]DelistDecision, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, request_id, activity_id, member_id, approver_id, approved, reject_reason, decided_at
		FROM delist_decisions
		ORDER BY decided_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query delist decisions: %w", err)
	}
	defer rows.Close()

	var decisions []DelistDecision
	for rows.Next() {
		var d DelistDecision
		var decidedAt string
		if err := rows.Scan(&d.ID, &d.RequestID, &d.ActivityID, &d.MemberID,
			&d.ApproverID, &d.Approved, &d.RejectReason, &decidedAt); err != nil {
			return nil, fmt.Errorf("failed to scan delist decision: %w", err)
		}
		d.DecidedAt, err = time.Parse(time.RFC3339, decidedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse decided_at: %w", err)
		}
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delist decisions: %w", err)
	}
	return decisions, nil
}

// InsertConflictRun stores one double-booking report run with its
// flagged conflicts in a single transaction
func (db *DB) InsertConflictRun(ctx context.Context, run ConflictRun, records []ConflictRecord) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO conflict_runs (id, ran_at, assignment_count, conflict_count)
		VALUES (?, ?, ?, ?)`,
		run.ID,
		run.RanAt.UTC().Format(time.RFC3339),
		run.AssignmentCount,
		run.ConflictCount,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert conflict run: %w", err)
	}

	for _, record := range records {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO conflicts
				(id, run_id, member_id, member_name, kind, first_activity_id, second_activity_id, description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ID,
			record.RunID,
			record.MemberID,
			record.MemberName,
			record.Kind,
			record.FirstActivityID,
			record.SecondActivityID,
			record.Description,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert conflict record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit conflict run: %w", err)
	}
	return nil
}

// ListConflictsForRun returns the flagged conflicts of one report run
func (db *DB) ListConflictsForRun(ctx context.Context, runID string) ([]ConflictRecord, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, run_id, member_id, member_name, kind, first_activity_id, second_activity_id, description
		FROM conflicts
		WHERE run_id = ?
		ORDER BY member_id, first_activity_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}
	defer rows.Close()

	var records []ConflictRecord
	for rows.Next() {
		var r ConflictRecord
		if err := rows.Scan(&r.ID, &r.RunID, &r.MemberID, &r.MemberName,
			&r.Kind, &r.FirstActivityID, &r.SecondActivityID, &r.Description); err != nil {
			return nil, fmt.Errorf("failed to scan conflict record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conflicts: %w", err)
	}
	return records, nil
}
