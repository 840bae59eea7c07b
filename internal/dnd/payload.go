// Package dnd defines the drag-and-drop contract between draggable items and
// drop targets. Browser event data is converted into these types at the
// transport boundary; everything past that works with typed payloads.
package dnd

import "strings"

// Kind identifies a payload channel.
type Kind int

const (
	KindUnknown Kind = iota
	KindPlainText
	KindURIList
	KindHTML
)

var kindMIME = map[Kind]string{
	KindPlainText: "text/plain",
	KindURIList:   "text/uri-list",
	KindHTML:      "text/html",
}

// ParseKind maps a MIME type string to a Kind.
func ParseKind(mime string) Kind {
	mime = strings.ToLower(strings.TrimSpace(mime))
	// Browsers report the legacy "text" alias for plain text.
	if mime == "text" {
		return KindPlainText
	}
	for kind, name := range kindMIME {
		if name == mime {
			return kind
		}
	}
	return KindUnknown
}

// MIME returns the MIME type for the kind, or "" for KindUnknown.
func (k Kind) MIME() string {
	return kindMIME[k]
}

func (k Kind) String() string {
	if name, ok := kindMIME[k]; ok {
		return name
	}
	return "unknown"
}

// Effect is the drag operation hint.
type Effect string

const (
	EffectNone          Effect = "none"
	EffectCopy          Effect = "copy"
	EffectMove          Effect = "move"
	EffectLink          Effect = "link"
	EffectCopyMove      Effect = "copyMove"
	EffectCopyLink      Effect = "copyLink"
	EffectLinkMove      Effect = "linkMove"
	EffectAll           Effect = "all"
	EffectUninitialized Effect = "uninitialized"
)

// ParseEffect maps a browser effect string to an Effect. Unknown values
// become EffectUninitialized.
func ParseEffect(value string) Effect {
	switch e := Effect(value); e {
	case EffectNone, EffectCopy, EffectMove, EffectLink,
		EffectCopyMove, EffectCopyLink, EffectLinkMove, EffectAll:
		return e
	default:
		return EffectUninitialized
	}
}

type item struct {
	kind Kind
	data string
}

// DataTransfer carries the payload of one drag gesture.
type DataTransfer struct {
	items         []item
	EffectAllowed Effect
	DropEffect    Effect
}

// NewDataTransfer returns an empty transfer.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{
		EffectAllowed: EffectUninitialized,
		DropEffect:    EffectNone,
	}
}

// SetData stores data on the given channel, replacing earlier data for it.
// KindUnknown is ignored.
func (t *DataTransfer) SetData(kind Kind, data string) {
	if kind == KindUnknown {
		return
	}
	for i := range t.items {
		if t.items[i].kind == kind {
			t.items[i].data = data
			return
		}
	}
	t.items = append(t.items, item{kind: kind, data: data})
}

// Data returns the data stored on the channel.
func (t *DataTransfer) Data(kind Kind) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, it := range t.items {
		if it.kind == kind {
			return it.data, true
		}
	}
	return "", false
}

// Has reports whether the transfer carries the channel.
func (t *DataTransfer) Has(kind Kind) bool {
	_, ok := t.Data(kind)
	return ok
}

// Kinds lists channels in the order they were set.
func (t *DataTransfer) Kinds() []Kind {
	if t == nil {
		return nil
	}
	kinds := make([]Kind, 0, len(t.items))
	for _, it := range t.items {
		kinds = append(kinds, it.kind)
	}
	return kinds
}
