package testserver_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
	"github.com/rpggio/projectboard/internal/testserver"
)

func postJSON(t *testing.T, ts *testserver.TestServer, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL(path), "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getActivity(t *testing.T, ts *testserver.TestServer) []activity.ActivityEntry {
	t.Helper()
	resp, err := http.Get(ts.URL("/activity"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []activity.ActivityEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	return entries
}

func TestFunctional_AddDragDropAndJournal(t *testing.T) {
	ts := testserver.New(t, "")

	resp := postJSON(t, ts, "/projects", `{"title":"Build API","description":"Design and implement","people":"3"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = postJSON(t, ts, "/projects/"+created.ID+"/dragstart", ``)
	var payload struct {
		Types []string          `json:"types"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	drop, err := json.Marshal(payload)
	require.NoError(t, err)
	resp = postJSON(t, ts, "/lists/finished/drop", string(drop))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	projects := ts.Store.Projects()
	require.Len(t, projects, 1)
	require.Equal(t, project.StatusFinished, projects[0].Status())
	require.Empty(t, ts.Board.Active.Items())
	require.Len(t, ts.Board.Finished.Items(), 1)

	entries := getActivity(t, ts)
	require.Len(t, entries, 2)
	require.Equal(t, activity.TypeProjectMoved, entries[0].ActivityType)
	require.Equal(t, project.StatusActive, entries[0].FromStatus)
	require.Equal(t, project.StatusFinished, entries[0].ToStatus)
	require.Equal(t, activity.TypeProjectAdded, entries[1].ActivityType)
	require.Equal(t, created.ID, entries[1].ProjectID)

	page, err := http.Get(ts.URL("/"))
	require.NoError(t, err)
	defer page.Body.Close()
	body, err := io.ReadAll(page.Body)
	require.NoError(t, err)
	html := string(body)
	finished := strings.Index(html, `id="finished-projects"`)
	require.Greater(t, strings.Index(html, "Build API"), finished)
}

func TestFunctional_InvalidInputChangesNothing(t *testing.T) {
	ts := testserver.New(t, "")

	resp := postJSON(t, ts, "/projects", `{"title":"","description":"Design and implement","people":"3"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	require.Empty(t, ts.Store.Projects())
	require.Empty(t, getActivity(t, ts))
}

func TestFunctional_LiveUpdates(t *testing.T) {
	ts := testserver.New(t, "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL("/events"), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Eventually(t, func() bool { return ts.Hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	p := ts.Store.Add("Build API", "Design and implement", 3)
	ts.Store.Move(p.ID(), project.StatusFinished)

	reader := bufio.NewReader(resp.Body)
	var events []string
	dataByEvent := map[string][]string{}
	current := ""
	for len(events) < 4 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
			events = append(events, current)
		case strings.HasPrefix(line, "data: "):
			dataByEvent[current] = append(dataByEvent[current], strings.TrimPrefix(line, "data: "))
		}
	}

	require.Equal(t, []string{"list:active", "list:finished", "list:active", "list:finished"}, events)
	// Drain the data line of the last event.
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	dataByEvent[current] = append(dataByEvent[current], strings.TrimPrefix(strings.TrimRight(line, "\n"), "data: "))

	require.Contains(t, dataByEvent["list:active"][0], p.ID())
	require.Empty(t, dataByEvent["list:active"][1])
	require.Empty(t, dataByEvent["list:finished"][0])
	require.Contains(t, dataByEvent["list:finished"][1], p.ID())
}

func TestFunctional_MCPAuthentication(t *testing.T) {
	ts := testserver.New(t, "token")

	req, err := http.NewRequest(http.MethodPost, ts.URL("/mcp"), bytes.NewBufferString(`{"jsonrpc":"2.0","method":"tools/list","id":1}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The board stays open.
	page, err := http.Get(ts.URL("/"))
	require.NoError(t, err)
	defer page.Body.Close()
	require.Equal(t, http.StatusOK, page.StatusCode)
}

func TestFunctional_MCPDrivesBoard(t *testing.T) {
	ts := testserver.New(t, "token")
	session := ts.MCPClient(t)
	ctx := context.Background()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name: "add_project",
		Arguments: map[string]any{
			"title":       "Build API",
			"description": "Design and implement",
			"people":      2,
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	projects := ts.Store.Projects()
	require.Len(t, projects, 1)
	id := projects[0].ID()
	require.Len(t, ts.Board.Active.Items(), 1)

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "move_project",
		Arguments: map[string]any{"id": id, "status": "finished"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, ts.Board.Finished.Items(), 1)

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_recent_activity",
		Arguments: map[string]any{"project_id": id},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var recent struct {
		Activity []struct {
			Type string `json:"type"`
		} `json:"activity"`
	}
	require.NoError(t, json.Unmarshal(data, &recent))
	require.Len(t, recent.Activity, 2)
	require.Equal(t, "project_moved", recent.Activity[0].Type)
	require.Equal(t, "project_added", recent.Activity[1].Type)
}
