package board

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rpggio/projectboard/internal/dnd"
	"github.com/rpggio/projectboard/internal/domain/project"
)

var _ dnd.DragTarget = (*ProjectList)(nil)

// ProjectList shows the projects of one status and accepts drops that move
// projects into it.
type ProjectList struct {
	status    project.Status
	store     *project.Store
	publisher Publisher
	logger    *slog.Logger

	mu      sync.RWMutex
	items   []*ProjectItem
	heading string
	listID  string
}

// NewProjectList creates the list for status and subscribes it to the store.
func NewProjectList(store *project.Store, status project.Status, publisher Publisher, logger *slog.Logger) *ProjectList {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l := &ProjectList{
		status:    status,
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
	l.Configure()
	l.RenderContent()
	return l
}

// Status returns the status this list shows and assigns on drop.
func (l *ProjectList) Status() project.Status {
	return l.status
}

// ElementID is the id of the list section.
func (l *ProjectList) ElementID() string {
	return string(l.status) + "-projects"
}

// EventName is the live update event carrying this list's items.
func (l *ProjectList) EventName() string {
	return "list:" + string(l.status)
}

// AcceptKind is the payload channel the list takes drops from.
func (l *ProjectList) AcceptKind() dnd.Kind {
	return dnd.KindPlainText
}

// Configure subscribes the list to store changes.
func (l *ProjectList) Configure() {
	l.store.AddListener(l.assignProjects)
}

// RenderContent sets the heading and list element id.
func (l *ProjectList) RenderContent() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listID = string(l.status) + "-projects-list"
	l.heading = strings.ToUpper(string(l.status)) + " PROJECTS"
}

// Items returns the items currently shown.
func (l *ProjectList) Items() []*ProjectItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	items := make([]*ProjectItem, len(l.items))
	copy(items, l.items)
	return items
}

// Item finds a shown item by project id.
func (l *ProjectList) Item(id string) (*ProjectItem, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if item.project.ID() == id {
			return item, true
		}
	}
	return nil, false
}

// Render writes the whole list section.
func (l *ProjectList) Render(ctx context.Context, w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return listView(l.ElementID(), l.listID, l.heading, l.status, l.AcceptKind(), l.items).Render(ctx, w)
}

// RenderItems writes only the list items.
func (l *ProjectList) RenderItems(ctx context.Context, w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return itemsView(l.items).Render(ctx, w)
}

// assignProjects is the store listener. It runs with the store locked, so it
// copies what it needs out of the shared projects before returning.
func (l *ProjectList) assignProjects(projects []*project.Project) {
	items := make([]*ProjectItem, 0, len(projects))
	for _, p := range projects {
		if p.Status() != l.status {
			continue
		}
		items = append(items, NewProjectItem(*p, l.logger))
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()

	var buf bytes.Buffer
	if err := l.RenderItems(context.Background(), &buf); err != nil {
		l.logger.Error("failed to render project list", "status", l.status, "error", err)
		return
	}
	l.publisher.Publish(l.EventName(), buf.Bytes())
}

// DragOver accepts plain-text payloads and marks the surface droppable.
// Anything else is left alone so the drop is refused.
func (l *ProjectList) DragOver(e *dnd.DragEvent) {
	if !e.Transfer.Has(l.AcceptKind()) {
		return
	}
	e.PreventDefault()
	e.MarkDroppable()
}

// DragLeave removes the droppable marker.
func (l *ProjectList) DragLeave(e *dnd.DragEvent) {
	e.ClearDroppable()
}

// Drop moves the dragged project into this list. Stale ids are ignored by
// the store.
func (l *ProjectList) Drop(e *dnd.DragEvent) {
	e.ClearDroppable()
	id, ok := e.Transfer.Data(l.AcceptKind())
	if !ok {
		return
	}
	e.PreventDefault()
	if !l.store.Move(id, l.status) {
		l.logger.Debug("drop did not change project", "project_id", id, "status", l.status)
	}
}
