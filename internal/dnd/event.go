package dnd

import "slices"

// DroppableClass marks a drop surface that will accept the current drag.
const DroppableClass = "droppable"

// Surface is the visual element a target decorates during a drag.
type Surface interface {
	AddClass(name string)
	RemoveClass(name string)
}

// DragEvent is one gesture event delivered to a Draggable or DragTarget.
type DragEvent struct {
	// Transfer is nil when the gesture carried no payload.
	Transfer *DataTransfer
	Surface  Surface

	defaultPrevented bool
}

// PreventDefault signals that the handler accepted the event. For drag-over
// this is what allows a drop.
func (e *DragEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *DragEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

func (e *DragEvent) addClass(name string) {
	if e.Surface != nil {
		e.Surface.AddClass(name)
	}
}

func (e *DragEvent) removeClass(name string) {
	if e.Surface != nil {
		e.Surface.RemoveClass(name)
	}
}

// MarkDroppable adds DroppableClass to the event surface, if any.
func (e *DragEvent) MarkDroppable() { e.addClass(DroppableClass) }

// ClearDroppable removes DroppableClass from the event surface, if any.
func (e *DragEvent) ClearDroppable() { e.removeClass(DroppableClass) }

// Draggable is implemented by items that can start a drag.
type Draggable interface {
	DragStart(e *DragEvent)
	DragEnd(e *DragEvent)
}

// DragTarget is implemented by containers that accept drops.
type DragTarget interface {
	DragOver(e *DragEvent)
	DragLeave(e *DragEvent)
	Drop(e *DragEvent)
}

// ClassDelta is a Surface that records class changes so they can be
// replayed on a remote element.
type ClassDelta struct {
	Added   []string `json:"add"`
	Removed []string `json:"remove"`
}

// AddClass records an added class.
func (d *ClassDelta) AddClass(name string) {
	d.Removed = slices.DeleteFunc(d.Removed, func(v string) bool { return v == name })
	if !slices.Contains(d.Added, name) {
		d.Added = append(d.Added, name)
	}
}

// RemoveClass records a removed class.
func (d *ClassDelta) RemoveClass(name string) {
	d.Added = slices.DeleteFunc(d.Added, func(v string) bool { return v == name })
	if !slices.Contains(d.Removed, name) {
		d.Removed = append(d.Removed, name)
	}
}
