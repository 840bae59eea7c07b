package mcp

import (
	"time"

	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
)

type AddProjectParams struct {
	Title       string `json:"title" jsonschema:"Project title"`
	Description string `json:"description" jsonschema:"Project description, at least 5 characters"`
	People      int    `json:"people" jsonschema:"Number of people assigned, 1 to 5"`
}

type MoveProjectParams struct {
	ID     string `json:"id" jsonschema:"Project ID"`
	Status string `json:"status" jsonschema:"Target status: active or finished"`
}

type ListProjectsParams struct {
	Status string `json:"status,omitempty" jsonschema:"Only list projects with this status"`
}

type GetRecentActivityParams struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"Only list activity for this project"`
	Type      string `json:"type,omitempty" jsonschema:"Only list this activity type: project_added or project_moved"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
	Offset    int    `json:"offset,omitempty" jsonschema:"Offset for pagination"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
}

type AddProjectResponse struct {
	Project ProjectResponse `json:"project"`
}

type MoveProjectResponse struct {
	Changed bool `json:"changed"`
}

type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type GetRecentActivityResponse struct {
	Activity []ActivityEntryResponse `json:"activity"`
}

type ActivityEntryResponse struct {
	Timestamp  string `json:"timestamp"`
	Type       string `json:"type"`
	ProjectID  string `json:"project_id"`
	Summary    string `json:"summary"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
}

func projectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		People:      p.People(),
		Status:      string(p.Status()),
	}
}

func activityEntryResponse(e activity.ActivityEntry) ActivityEntryResponse {
	return ActivityEntryResponse{
		Timestamp:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
		Type:       string(e.ActivityType),
		ProjectID:  e.ProjectID,
		Summary:    e.Summary,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
	}
}
