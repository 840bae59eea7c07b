package board

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rpggio/projectboard/internal/dnd"
	"github.com/rpggio/projectboard/internal/domain/project"
)

var _ dnd.Draggable = (*ProjectItem)(nil)

// ProjectItem renders one project inside a list and starts drags for it.
type ProjectItem struct {
	project project.Project
	logger  *slog.Logger

	elementID   string
	peopleLabel string
}

// NewProjectItem creates an item view from a copy of the project.
func NewProjectItem(p project.Project, logger *slog.Logger) *ProjectItem {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	item := &ProjectItem{project: p, logger: logger}
	item.Configure()
	item.RenderContent()
	return item
}

// Project returns the project as it was when the item was built.
func (i *ProjectItem) Project() project.Project {
	return i.project
}

// Configure derives the element id from the project id.
func (i *ProjectItem) Configure() {
	i.elementID = i.project.ID()
}

// RenderContent refreshes the people label.
func (i *ProjectItem) RenderContent() {
	i.peopleLabel = peopleLabel(i.project.People())
}

// People returns the assignment label, e.g. "2 people assigned".
func (i *ProjectItem) People() string {
	return i.peopleLabel
}

// Render writes the list element.
func (i *ProjectItem) Render(ctx context.Context, w io.Writer) error {
	return itemView(i).Render(ctx, w)
}

// DragStart puts the project id on the plain-text channel and allows a move.
func (i *ProjectItem) DragStart(e *dnd.DragEvent) {
	if e.Transfer == nil {
		return
	}
	e.Transfer.SetData(dnd.KindPlainText, i.project.ID())
	e.Transfer.EffectAllowed = dnd.EffectMove
}

// DragEnd only records the gesture.
func (i *ProjectItem) DragEnd(e *dnd.DragEvent) {
	dropEffect := dnd.EffectNone
	if e.Transfer != nil {
		dropEffect = e.Transfer.DropEffect
	}
	i.logger.Debug("drag ended", "project_id", i.project.ID(), "drop_effect", dropEffect)
}

// Payload returns the transfer a drag of this item starts with.
func (i *ProjectItem) Payload() *dnd.DataTransfer {
	e := &dnd.DragEvent{Transfer: dnd.NewDataTransfer()}
	i.DragStart(e)
	return e.Transfer
}

func peopleLabel(count int) string {
	if count > 1 {
		return fmt.Sprintf("%d people assigned", count)
	}
	return fmt.Sprintf("%d person assigned", count)
}
