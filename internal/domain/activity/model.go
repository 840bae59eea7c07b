package activity

import (
	"time"

	"github.com/rpggio/projectboard/internal/domain/project"
)

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeProjectAdded ActivityType = "project_added"
	TypeProjectMoved ActivityType = "project_moved"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64          `json:"id"`
	ProjectID    string         `json:"project_id"`
	ActivityType ActivityType   `json:"type"`
	Summary      string         `json:"summary"`
	FromStatus   project.Status `json:"from_status,omitempty"`
	ToStatus     project.Status `json:"to_status"`
	CreatedAt    time.Time      `json:"created_at"`
}
