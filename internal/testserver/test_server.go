// Package testserver runs the whole board stack on an httptest server.
package testserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projectboard/internal/board"
	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
	"github.com/rpggio/projectboard/internal/mcp"
	"github.com/rpggio/projectboard/internal/sqlite"
	"github.com/rpggio/projectboard/internal/transport"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Store    *project.Store
	Board    *board.Board
	Hub      *transport.Hub
	Activity *activity.Service
	Token    string
}

// New starts a server whose MCP endpoint requires token. An empty token
// disables auth.
func New(t *testing.T, token string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)

	store := project.NewStore(nil)
	store.AddListener(activity.NewRecorder(activitySvc, nil).Listen)

	hub := transport.NewHub(nil)
	b := board.New(store, hub, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects: store,
			Activity: activitySvc,
		},
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)

	var auth func(http.Handler) http.Handler
	if token != "" {
		auth = transport.AuthMiddleware(transport.StaticToken(token))
	}

	server := httptest.NewServer(transport.NewServer(transport.Deps{
		Store:    store,
		Board:    b,
		Hub:      hub,
		Activity: activitySvc,
		MCP:      mcpHandler,
	}, auth))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Store:    store,
		Board:    b,
		Hub:      hub,
		Activity: activitySvc,
		Token:    token,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// URL returns the absolute URL for path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// MCPClient connects an MCP client to the streamable endpoint, sending the
// bearer token when one is configured.
func (ts *TestServer) MCPClient(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	httpClient := ts.Server.Client()
	if ts.Token != "" {
		httpClient = &http.Client{Transport: bearerTransport{token: ts.Token, base: http.DefaultTransport}}
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(t.Context(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.URL("/mcp"),
		HTTPClient: httpClient,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b bearerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(r)
}
