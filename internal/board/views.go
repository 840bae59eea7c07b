package board

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/rpggio/projectboard/internal/dnd"
	"github.com/rpggio/projectboard/internal/domain/project"
)

const pageTitle = "Project Board"

func esc(s string) string {
	return templ.EscapeString(s)
}

func pageView(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><title>`+esc(pageTitle)+`</title><script src="/static/board.js" defer></script></head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func hostView(id string, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s">`, esc(id)); err != nil {
			return err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func inputView() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form id="user-input" method="post" action="/projects">`+
			`<div class="form-control"><label for="title">Title</label><input type="text" id="title" name="title"></div>`+
			`<div class="form-control"><label for="description">Description</label><textarea id="description" name="description" rows="3"></textarea></div>`+
			`<div class="form-control"><label for="people">People</label><input type="number" id="people" name="people" step="1" min="%d" max="%d"></div>`+
			`<button type="submit">ADD PROJECT</button></form>`, minPeople, maxPeople)
		return err
	})
}

func listView(sectionID, listID, heading string, status project.Status, accept dnd.Kind, items []*ProjectItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="%s" class="projects" data-status="%s" data-accept="%s"><header><h2>%s</h2></header><ul id="%s">`,
			esc(sectionID), esc(string(status)), esc(accept.MIME()), esc(heading), esc(listID)); err != nil {
			return err
		}
		if err := itemsView(items).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</ul></section>`)
		return err
	})
}

func itemsView(items []*ProjectItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, item := range items {
			if err := itemView(item).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func itemView(item *ProjectItem) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		payload := item.Payload()
		data, _ := payload.Data(dnd.KindPlainText)
		p := item.Project()
		_, err := fmt.Fprintf(w, `<li id="%s" draggable="true" data-drag-type="%s" data-drag-data="%s" data-effect-allowed="%s"><h2>%s</h2><h3>%s</h3><p>%s</p></li>`,
			esc(item.elementID),
			esc(dnd.KindPlainText.MIME()),
			esc(data),
			esc(string(payload.EffectAllowed)),
			esc(p.Title()),
			esc(item.People()),
			esc(p.Description()),
		)
		return err
	})
}
