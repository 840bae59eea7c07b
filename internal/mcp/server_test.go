package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
)

type activityStub struct {
	opts    activity.ListActivityOptions
	entries []activity.ActivityEntry
	err     error
}

func (a *activityStub) GetRecentActivity(_ context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	a.opts = opts
	return a.entries, a.err
}

func newStore() *project.Store {
	n := 0
	return project.NewStore(nil, project.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}))
}

func connect(t *testing.T, services Services) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(Config{Services: services})
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	session, err := client.Connect(clientCtx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool[T any](t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) T {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s failed: %v", name, res.Content)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// callToolError accepts either a protocol error or an error result.
func callToolError(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return err.Error()
	}
	require.True(t, res.IsError, "expected %s to fail", name)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServer_ListsToolsAndDocs(t *testing.T) {
	session := connect(t, Services{Projects: newStore(), Activity: &activityStub{}})
	ctx := context.Background()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{"add_project", "move_project", "list_projects", "get_recent_activity"}, names)

	res, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "board://docs/guide"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "# Project board guide")
}

func TestServer_ActivityToolIsOptional(t *testing.T) {
	session := connect(t, Services{Projects: newStore()})

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	for _, tool := range tools.Tools {
		require.NotEqual(t, "get_recent_activity", tool.Name)
	}
}

func TestServer_AddMoveList(t *testing.T) {
	store := newStore()
	session := connect(t, Services{Projects: store})

	added := callTool[AddProjectResponse](t, session, "add_project", map[string]any{
		"title":       "Build API",
		"description": "Design and implement",
		"people":      3,
	})
	require.Equal(t, "p1", added.Project.ID)
	require.Equal(t, "active", added.Project.Status)

	moved := callTool[MoveProjectResponse](t, session, "move_project", map[string]any{"id": "p1", "status": "finished"})
	require.True(t, moved.Changed)

	again := callTool[MoveProjectResponse](t, session, "move_project", map[string]any{"id": "p1", "status": "finished"})
	require.False(t, again.Changed)

	missing := callTool[MoveProjectResponse](t, session, "move_project", map[string]any{"id": "nope", "status": "active"})
	require.False(t, missing.Changed)

	callTool[AddProjectResponse](t, session, "add_project", map[string]any{
		"title":       "Write docs",
		"description": "Document the API",
		"people":      1,
	})

	all := callTool[ListProjectsResponse](t, session, "list_projects", map[string]any{})
	require.Len(t, all.Projects, 2)
	require.Equal(t, "p1", all.Projects[0].ID)
	require.Equal(t, "p2", all.Projects[1].ID)

	active := callTool[ListProjectsResponse](t, session, "list_projects", map[string]any{"status": "active"})
	require.Len(t, active.Projects, 1)
	require.Equal(t, "p2", active.Projects[0].ID)

	require.Equal(t, project.StatusFinished, store.Projects()[0].Status())
}

func TestServer_AddProjectRejectsInvalidInput(t *testing.T) {
	store := newStore()
	session := connect(t, Services{Projects: store})

	msg := callToolError(t, session, "add_project", map[string]any{
		"title":       "Build API",
		"description": "Do",
		"people":      3,
	})
	require.Contains(t, msg, "INVALID_INPUT")

	msg = callToolError(t, session, "add_project", map[string]any{
		"title":       "Build API",
		"description": "Design and implement",
		"people":      9,
	})
	require.Contains(t, msg, "INVALID_INPUT")
	require.Empty(t, store.Projects())
}

func TestServer_MoveProjectRejectsUnknownStatus(t *testing.T) {
	store := newStore()
	store.Add("Build API", "Design and implement", 3)
	session := connect(t, Services{Projects: store})

	msg := callToolError(t, session, "move_project", map[string]any{"id": "p1", "status": "archived"})
	require.Contains(t, msg, "INVALID_STATUS")
	require.Equal(t, project.StatusActive, store.Projects()[0].Status())
}

func TestServer_GetRecentActivity(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := &activityStub{entries: []activity.ActivityEntry{{
		ID:           2,
		ProjectID:    "p1",
		ActivityType: activity.TypeProjectMoved,
		Summary:      `moved project "Build API" to finished`,
		FromStatus:   project.StatusActive,
		ToStatus:     project.StatusFinished,
		CreatedAt:    created,
	}}}
	session := connect(t, Services{Projects: newStore(), Activity: stub})

	got := callTool[GetRecentActivityResponse](t, session, "get_recent_activity", map[string]any{
		"project_id": "p1",
		"type":       "project_moved",
		"limit":      10,
	})
	require.Len(t, got.Activity, 1)
	require.Equal(t, "project_moved", got.Activity[0].Type)
	require.Equal(t, "active", got.Activity[0].FromStatus)
	require.Equal(t, "finished", got.Activity[0].ToStatus)
	require.Equal(t, "2026-01-02T03:04:05Z", got.Activity[0].Timestamp)

	require.Equal(t, "p1", stub.opts.ProjectID)
	require.Equal(t, 10, stub.opts.Limit)
	require.NotNil(t, stub.opts.ActivityType)
	require.Equal(t, activity.TypeProjectMoved, *stub.opts.ActivityType)

	msg := callToolError(t, session, "get_recent_activity", map[string]any{"type": "project_deleted"})
	require.Contains(t, msg, "unknown activity type")

	stub.err = errors.New("db down")
	msg = callToolError(t, session, "get_recent_activity", map[string]any{})
	require.Contains(t, msg, "db down")
}

func TestMapError(t *testing.T) {
	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(errors.New("other")))

	_, err := project.ParseStatus("archived")
	require.Equal(t, "INVALID_STATUS", MapError(err).Code)
}
