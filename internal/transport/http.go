package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/rpggio/projectboard/internal/board"
	"github.com/rpggio/projectboard/internal/domain/activity"
	"github.com/rpggio/projectboard/internal/domain/project"
)

// ActivityService lists journal entries.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Deps are the collaborators of the HTTP server. Activity and MCP are
// optional.
type Deps struct {
	Store    *project.Store
	Board    *board.Board
	Hub      *Hub
	Activity ActivityService
	MCP      http.Handler
	Logger   *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	store    *project.Store
	board    *board.Board
	hub      *Hub
	activity ActivityService
	logger   *slog.Logger
}

// NewServer creates the board router. authMiddleware, when set, guards the
// MCP endpoint only.
func NewServer(deps Deps, authMiddleware func(http.Handler) http.Handler) *chi.Mux {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{
		store:    deps.Store,
		board:    deps.Board,
		hub:      deps.Hub,
		activity: deps.Activity,
		logger:   logger,
	}

	r := chi.NewRouter()

	r.Get("/health", srv.handleHealth)
	r.Method(http.MethodGet, "/", templ.Handler(deps.Board))
	r.Get("/static/board.js", srv.handleScript)

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", srv.handleListProjects)
		r.Post("/", srv.handleAddProject)
		r.Post("/{id}/status", srv.handleSetStatus)
		r.Post("/{id}/dragstart", srv.handleDragStart)
		r.Post("/{id}/dragend", srv.handleDragEnd)
	})
	r.Post("/lists/{status}/{event}", srv.handleListEvent)

	if deps.Hub != nil {
		r.Get("/events", srv.handleEvents)
	}
	if deps.Activity != nil {
		r.Get("/activity", srv.handleActivity)
	}

	if deps.MCP != nil {
		mcpHandler := deps.MCP
		if authMiddleware != nil {
			mcpHandler = authMiddleware(mcpHandler)
		}
		r.Handle("/mcp", mcpHandler)
		r.Handle("/mcp/*", mcpHandler)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write(board.Script)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	var filter project.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := project.ParseStatus(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter = status
	}

	projects := make([]project.Project, 0)
	for _, p := range s.store.Projects() {
		if filter == "" || p.Status() == filter {
			projects = append(projects, p)
		}
	}
	WriteJSON(w, http.StatusOK, projects)
}

func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	isForm := isFormRequest(r)

	var in board.Input
	if isForm {
		if err := r.ParseForm(); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid form")
			return
		}
		in = board.Input{
			Title:       r.PostForm.Get("title"),
			Description: r.PostForm.Get("description"),
			People:      r.PostForm.Get("people"),
		}
	} else if err := decodeJSON(r.Body, &in); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	p, err := s.board.Input.Submit(in)
	if err != nil {
		if errors.Is(err, board.ErrInvalidInput) {
			WriteError(w, http.StatusUnprocessableEntity, board.AlertMessage)
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if isForm {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	WriteJSON(w, http.StatusCreated, p)
}

type statusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	Changed bool `json:"changed"`
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	status, err := project.ParseStatus(req.Status)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	changed := s.store.Move(chi.URLParam(r, "id"), status)
	WriteJSON(w, http.StatusOK, statusResponse{Changed: changed})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	opts := activity.ListActivityOptions{
		ProjectID: r.URL.Query().Get("project_id"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = limit
	}

	entries, err := s.activity.GetRecentActivity(r.Context(), opts)
	if err != nil {
		s.logger.Error("failed to list activity", "error", err)
		WriteError(w, http.StatusInternalServerError, "failed to list activity")
		return
	}
	if entries == nil {
		entries = []activity.ActivityEntry{}
	}
	WriteJSON(w, http.StatusOK, entries)
}

func isFormRequest(r *http.Request) bool {
	switch mediaType(r.Header.Get("Content-Type")) {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return true
	default:
		return false
	}
}
