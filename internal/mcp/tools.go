package mcp

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projectboard/internal/board"
	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
)

func registerTools(server *sdkmcp.Server, services Services, logger *slog.Logger) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_project",
		Description: "Add a new active project to the board",
	}, addProjectHandler(services.Projects))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_project",
		Description: "Move a project to the active or finished list",
	}, moveProjectHandler(services.Projects, logger))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects on the board in insertion order, optionally filtered by status",
	}, listProjectsHandler(services.Projects))

	if services.Activity != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "get_recent_activity",
			Description: "List recent board activity, newest first",
		}, recentActivityHandler(services.Activity))
	}
}

func addProjectHandler(store ProjectStore) sdkmcp.ToolHandlerFor[AddProjectParams, AddProjectResponse] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in AddProjectParams) (*sdkmcp.CallToolResult, AddProjectResponse, error) {
		if err := board.CheckInput(in.Title, in.Description, in.People); err != nil {
			return nil, AddProjectResponse{}, toolError("add project", err)
		}
		p := store.Add(in.Title, in.Description, in.People)
		return nil, AddProjectResponse{Project: projectResponse(p)}, nil
	}
}

func moveProjectHandler(store ProjectStore, logger *slog.Logger) sdkmcp.ToolHandlerFor[MoveProjectParams, MoveProjectResponse] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in MoveProjectParams) (*sdkmcp.CallToolResult, MoveProjectResponse, error) {
		status, err := project.ParseStatus(in.Status)
		if err != nil {
			return nil, MoveProjectResponse{}, toolError("move project", err)
		}
		changed := store.Move(in.ID, status)
		if !changed {
			logger.Debug("move_project changed nothing", "project_id", in.ID, "status", status)
		}
		return nil, MoveProjectResponse{Changed: changed}, nil
	}
}

func listProjectsHandler(store ProjectStore) sdkmcp.ToolHandlerFor[ListProjectsParams, ListProjectsResponse] {
	return func(_ context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResponse, error) {
		var filter project.Status
		if in.Status != "" {
			status, err := project.ParseStatus(in.Status)
			if err != nil {
				return nil, ListProjectsResponse{}, toolError("list projects", err)
			}
			filter = status
		}

		resp := ListProjectsResponse{Projects: []ProjectResponse{}}
		for _, p := range store.Projects() {
			if filter != "" && p.Status() != filter {
				continue
			}
			resp.Projects = append(resp.Projects, projectResponse(p))
		}
		return nil, resp, nil
	}
}

func recentActivityHandler(svc ActivityService) sdkmcp.ToolHandlerFor[GetRecentActivityParams, GetRecentActivityResponse] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetRecentActivityParams) (*sdkmcp.CallToolResult, GetRecentActivityResponse, error) {
		opts := activity.ListActivityOptions{
			ProjectID: in.ProjectID,
			Limit:     in.Limit,
			Offset:    in.Offset,
		}
		if in.Type != "" {
			t := activity.ActivityType(in.Type)
			switch t {
			case activity.TypeProjectAdded, activity.TypeProjectMoved:
			default:
				return nil, GetRecentActivityResponse{}, fmt.Errorf("unknown activity type %q", in.Type)
			}
			opts.ActivityType = &t
		}

		entries, err := svc.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, GetRecentActivityResponse{}, toolError("get recent activity", err)
		}

		resp := GetRecentActivityResponse{Activity: make([]ActivityEntryResponse, 0, len(entries))}
		for _, e := range entries {
			resp.Activity = append(resp.Activity, activityEntryResponse(e))
		}
		return nil, resp, nil
	}
}
