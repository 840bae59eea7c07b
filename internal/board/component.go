// Package board holds the views of the project board: the input form, the
// active and finished lists and their items. Views talk to the project
// store directly and render themselves as templ components.
package board

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"
)

// Component is implemented by every board view. Configure wires the view to
// its collaborators; RenderContent refreshes the view state that Render
// writes out.
type Component interface {
	templ.Component
	Configure()
	RenderContent()
}

// Position says where Attach places a component inside its host.
type Position int

const (
	AfterBegin Position = iota
	BeforeEnd
)

// Host is a page region that renders attached components in order.
type Host struct {
	id string

	mu       sync.RWMutex
	children []templ.Component
}

// NewHost creates an empty host region.
func NewHost(id string) *Host {
	return &Host{id: id}
}

// ID returns the host element id.
func (h *Host) ID() string {
	return h.id
}

// Attach places c at the start or the end of host.
func Attach(host *Host, pos Position, c templ.Component) {
	host.mu.Lock()
	defer host.mu.Unlock()

	if pos == AfterBegin {
		host.children = append([]templ.Component{c}, host.children...)
		return
	}
	host.children = append(host.children, c)
}

// Render writes the host element and its children.
func (h *Host) Render(ctx context.Context, w io.Writer) error {
	h.mu.RLock()
	children := make([]templ.Component, len(h.children))
	copy(children, h.children)
	h.mu.RUnlock()

	return hostView(h.id, children).Render(ctx, w)
}

// Publisher receives rendered fragments for live page updates.
type Publisher interface {
	Publish(event string, data []byte)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, []byte) {}
