package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rpggio/projectboard/internal/domain/project"
)

// Logger records activity entries.
type Logger interface {
	LogActivity(ctx context.Context, entry *ActivityEntry) error
}

// Recorder derives activity entries from consecutive store snapshots. Pass
// its Listen method to project.Store.AddListener; the store serializes calls.
type Recorder struct {
	log    Logger
	logger *slog.Logger
	seen   map[string]project.Status
}

// NewRecorder creates a recorder writing to log.
func NewRecorder(log Logger, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		log:    log,
		logger: logger,
		seen:   make(map[string]project.Status),
	}
}

// Listen compares the snapshot with the previous one and logs additions and
// status changes. Failures are logged and dropped.
func (r *Recorder) Listen(projects []*project.Project) {
	ctx := context.Background()
	for _, p := range projects {
		id, status := p.ID(), p.Status()
		prev, known := r.seen[id]
		r.seen[id] = status

		var entry *ActivityEntry
		switch {
		case !known:
			entry = &ActivityEntry{
				ProjectID:    id,
				ActivityType: TypeProjectAdded,
				Summary:      fmt.Sprintf("added project %q", p.Title()),
				ToStatus:     status,
			}
		case prev != status:
			entry = &ActivityEntry{
				ProjectID:    id,
				ActivityType: TypeProjectMoved,
				Summary:      fmt.Sprintf("moved project %q to %s", p.Title(), status),
				FromStatus:   prev,
				ToStatus:     status,
			}
		default:
			continue
		}

		if err := r.log.LogActivity(ctx, entry); err != nil {
			r.logger.Error("failed to record activity", "project_id", id, "type", entry.ActivityType, "error", err)
		}
	}
}
