package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `projectboard is a two-list project board: every project is either active or finished.

Tools:
- add_project(title, description, people): adds an active project. Title is required, description needs at least 5 characters, people must be 1 to 5.
- move_project(id, status): moves a project to "active" or "finished". Unknown ids and unchanged statuses report changed=false.
- list_projects(status?): lists projects in the order they were added.
- get_recent_activity(project_id?, type?, limit?, offset?): additions and moves, newest first.

Changes show up immediately on the web board. Read board://docs/guide for details.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "board://docs/guide",
		Name:        "docs_guide",
		Title:       "Project board guide",
		Description: "How projects, lists, drag and drop, and the activity journal fit together.",
		Content: `# Project board guide

## Projects

A project has an id, a title, a description, a number of people (1 to 5) and a status.
New projects are always **active**. The only change a project ever sees is its status.

## Lists

The board shows two lists, ACTIVE PROJECTS and FINISHED PROJECTS. Each list shows the
projects with its status, in the order they were added. Moving a project re-renders
both lists for every open browser.

## Drag and drop

Items carry their project id on the ` + "`text/plain`" + ` channel with the "move" effect.
A list accepts a drag only when that channel is present and highlights itself while
the drag hovers. Dropping moves the project into the list. Drops with no payload or
with an id that no longer exists change nothing.

## Activity

Every addition and every status change is written to the activity journal.
Use ` + "`get_recent_activity`" + ` with a ` + "`limit`" + ` to keep responses small.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
