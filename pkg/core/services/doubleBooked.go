package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/internal/config"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/clients/clubclient"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/conflict"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/db"
)

// DoubleBookedClient defines the backend operations needed for the
// double-booking report
type DoubleBookedClient interface {
	GetDoubleBookedAll(ctx context.Context, pageSize int) ([]clubclient.DoubleBookedEntry, error)
}

// DoubleBookedResult contains the analysed report
type DoubleBookedResult struct {
	RunID           string
	AssignmentCount int
	Conflicts       []conflict.Conflict
}

// DoubleBookedReport fetches the period's assignment pairs, runs the
// double-booking detector over them and archives the outcome in the local
// history store. The report only surfaces conflicts; staff resolve them
// manually by reassigning.
func DoubleBookedReport(
	ctx context.Context,
	client DoubleBookedClient,
	store db.ConflictStore,
	cfg *config.Config,
	logger *zap.Logger,
) (*DoubleBookedResult, error) {
	logger.Debug("Starting doubleBookedReport", zap.Int("page_size", cfg.PageSize))

	entries, err := client.GetDoubleBookedAll(ctx, cfg.PageSize)
	if err != nil {
		return nil, err
	}
	logger.Debug("Fetched assignment pairs", zap.Int("count", len(entries)))

	assignments := make([]conflict.Assignment, len(entries))
	for i, entry := range entries {
		assignments[i] = conflict.Assignment{
			MemberID:     entry.MemberID,
			MemberName:   entry.MemberName,
			ActivityID:   entry.ActivityID,
			ActivityName: entry.ActivityName,
			Comment:      entry.Comment,
			Start:        entry.EventStart,
			End:          entry.EventEnd,
		}
	}

	conflicts := conflict.Detect(assignments)
	logger.Info("Double-booking detection completed",
		zap.Int("assignments", len(assignments)),
		zap.Int("conflicts", len(conflicts)))

	run := db.ConflictRun{
		ID:              uuid.New().String(),
		RanAt:           time.Now(),
		AssignmentCount: len(assignments),
		ConflictCount:   len(conflicts),
	}
	records := make([]db.ConflictRecord, len(conflicts))
	for i, c := range conflicts {
		records[i] = db.ConflictRecord{
			ID:               uuid.New().String(),
			RunID:            run.ID,
			MemberID:         c.MemberID,
			MemberName:       c.MemberName,
			Kind:             string(c.Kind),
			FirstActivityID:  c.First.ActivityID,
			SecondActivityID: c.Second.ActivityID,
			Description:      c.Description,
		}
	}

	if err := store.InsertConflictRun(ctx, run, records); err != nil {
		// Archiving is a local convenience, not part of the report
		logger.Warn("Failed to archive report run locally", zap.Error(err))
	}

	return &DoubleBookedResult{
		RunID:           run.ID,
		AssignmentCount: len(assignments),
		Conflicts:       conflicts,
	}, nil
}
