package project

// Listener receives the full collection after every change. The slice is
// owned by the listener; the projects it points to are shared with the store
// and must not be retained for reading outside the call.
type Listener func(projects []*Project)

// IDGenerator produces identifiers for new projects.
type IDGenerator func() string
