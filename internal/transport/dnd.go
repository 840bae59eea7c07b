package transport

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/projectboard/internal/dnd"
	"github.com/rpggio/projectboard/internal/domain/project"
)

// transferRequest is the browser DataTransfer as posted by the page script.
// During dragover browsers expose only the types, so data may be missing.
type transferRequest struct {
	Types         []string          `json:"types"`
	Data          map[string]string `json:"data"`
	EffectAllowed string            `json:"effect_allowed,omitempty"`
	DropEffect    string            `json:"drop_effect,omitempty"`
}

// transfer converts the request, returning nil when no payload was carried.
func (t transferRequest) transfer() *dnd.DataTransfer {
	if len(t.Types) == 0 && len(t.Data) == 0 {
		return nil
	}
	dt := dnd.NewDataTransfer()
	for _, typ := range t.Types {
		dt.SetData(dnd.ParseKind(typ), t.Data[typ])
	}
	for typ, data := range t.Data {
		kind := dnd.ParseKind(typ)
		if !dt.Has(kind) {
			dt.SetData(kind, data)
		}
	}
	if t.EffectAllowed != "" {
		dt.EffectAllowed = dnd.ParseEffect(t.EffectAllowed)
	}
	if t.DropEffect != "" {
		dt.DropEffect = dnd.ParseEffect(t.DropEffect)
	}
	return dt
}

func transferResponse(dt *dnd.DataTransfer) transferRequest {
	resp := transferRequest{
		Types: []string{},
		Data:  map[string]string{},
	}
	if dt == nil {
		return resp
	}
	for _, kind := range dt.Kinds() {
		data, _ := dt.Data(kind)
		resp.Types = append(resp.Types, kind.MIME())
		resp.Data[kind.MIME()] = data
	}
	resp.EffectAllowed = string(dt.EffectAllowed)
	resp.DropEffect = string(dt.DropEffect)
	return resp
}

// dropResult reports what the target did with one gesture event.
type dropResult struct {
	Accepted bool `json:"accepted"`
	dnd.ClassDelta
}

func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	item, ok := s.board.Item(chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, http.StatusNotFound, "project not found")
		return
	}
	e := &dnd.DragEvent{Transfer: dnd.NewDataTransfer()}
	item.DragStart(e)
	WriteJSON(w, http.StatusOK, transferResponse(e.Transfer))
}

func (s *Server) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if item, ok := s.board.Item(chi.URLParam(r, "id")); ok {
		item.DragEnd(&dnd.DragEvent{Transfer: req.transfer()})
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListEvent(w http.ResponseWriter, r *http.Request) {
	status, err := project.ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	list, ok := s.board.List(status)
	if !ok {
		WriteError(w, http.StatusNotFound, "list not found")
		return
	}

	var req transferRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	var delta dnd.ClassDelta
	e := &dnd.DragEvent{Transfer: req.transfer(), Surface: &delta}

	switch chi.URLParam(r, "event") {
	case "dragover":
		list.DragOver(e)
	case "dragleave":
		list.DragLeave(e)
	case "drop":
		list.Drop(e)
	default:
		WriteError(w, http.StatusNotFound, "unknown drag event")
		return
	}

	if delta.Added == nil {
		delta.Added = []string{}
	}
	if delta.Removed == nil {
		delta.Removed = []string{}
	}
	WriteJSON(w, http.StatusOK, dropResult{Accepted: e.DefaultPrevented(), ClassDelta: delta})
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}
