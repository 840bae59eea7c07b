package board

import (
	"context"
	"io"
	"log/slog"

	"github.com/rpggio/projectboard/internal/domain/project"
)

const appHostID = "app"

var (
	_ Component = (*ProjectInput)(nil)
	_ Component = (*ProjectList)(nil)
	_ Component = (*ProjectItem)(nil)
)

// Board assembles the form and both lists around one store.
type Board struct {
	Input    *ProjectInput
	Active   *ProjectList
	Finished *ProjectList

	host *Host
}

// New builds the board views and registers the lists with store.
func New(store *project.Store, publisher Publisher, logger *slog.Logger) *Board {
	b := &Board{
		Input:    NewProjectInput(store, logger),
		Active:   NewProjectList(store, project.StatusActive, publisher, logger),
		Finished: NewProjectList(store, project.StatusFinished, publisher, logger),
		host:     NewHost(appHostID),
	}

	Attach(b.host, AfterBegin, b.Input)
	Attach(b.host, BeforeEnd, b.Active)
	Attach(b.host, BeforeEnd, b.Finished)

	return b
}

// List returns the list for status.
func (b *Board) List(status project.Status) (*ProjectList, bool) {
	switch status {
	case project.StatusActive:
		return b.Active, true
	case project.StatusFinished:
		return b.Finished, true
	default:
		return nil, false
	}
}

// Item finds the rendered item for a project in either list.
func (b *Board) Item(id string) (*ProjectItem, bool) {
	if item, ok := b.Active.Item(id); ok {
		return item, true
	}
	return b.Finished.Item(id)
}

// Render writes the full page.
func (b *Board) Render(ctx context.Context, w io.Writer) error {
	return pageView(b.host).Render(ctx, w)
}
