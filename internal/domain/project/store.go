package project

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Store owns the project collection and the listeners watching it.
//
// A process builds exactly one Store with NewStore and hands it to every
// view. The mutex guards the projects and listeners together and is held
// while listeners run, so each listener sees changes one at a time and in
// order. Listeners must not call back into the Store.
type Store struct {
	mu        sync.Mutex
	projects  []*Project
	listeners []Listener

	newID  IDGenerator
	logger *slog.Logger
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewStore creates the project store.
func NewStore(logger *slog.Logger, opts ...StoreOption) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		newID:  uuid.NewString,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new active project and notifies listeners. Input is expected
// to be validated by the caller.
func (s *Store) Add(title, description string, people int) Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj := &Project{
		id:          s.newID(),
		title:       title,
		description: description,
		people:      people,
		status:      StatusActive,
	}
	s.projects = append(s.projects, proj)
	s.logger.Debug("project added", "project_id", proj.id, "people", people)

	s.notify()
	return *proj
}

// Move sets the status of the project with the given id. Unknown ids and
// unchanged statuses are no-ops and notify nobody. It reports whether the
// project changed.
func (s *Store) Move(id string, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var proj *Project
	for _, p := range s.projects {
		if p.id == id {
			proj = p
			break
		}
	}
	if proj == nil {
		s.logger.Debug("move ignored, unknown project", "project_id", id)
		return false
	}
	if proj.status == status {
		s.logger.Debug("move ignored, status unchanged", "project_id", id, "status", status)
		return false
	}

	from := proj.status
	proj.status = status
	s.logger.Debug("project moved", "project_id", id, "from", from, "to", status)

	s.notify()
	return true
}

// AddListener registers fn for change notifications. Registration order is
// notification order.
func (s *Store) AddListener(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Projects returns value copies of the collection in insertion order.
func (s *Store) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, *p)
	}
	return out
}

// notify must be called with s.mu held.
func (s *Store) notify() {
	for _, fn := range s.listeners {
		snapshot := make([]*Project, len(s.projects))
		copy(snapshot, s.projects)
		fn(snapshot)
	}
}
