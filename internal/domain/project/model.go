package project

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the board column a project belongs to.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

// ParseStatus converts user-supplied text into a Status.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return status, nil
}

// Project is a unit of work tracked by the board. Fields are read-only
// outside this package; status only changes through Store.Move.
type Project struct {
	id          string
	title       string
	description string
	people      int
	status      Status
}

func (p Project) ID() string { return p.id }
func (p Project) Title() string { return p.title }
func (p Project) Description() string { return p.description }
func (p Project) People() int { return p.people }

// Status returns the current status. Snapshots share Project pointers with
// the store, so this reflects later moves too. Outside a listener call use
// Store.Projects to read without racing a writer.
func (p Project) Status() Status { return p.status }

type projectJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      Status `json:"status"`
}

// MarshalJSON encodes the project for API responses.
func (p Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(projectJSON{
		ID:          p.id,
		Title:       p.title,
		Description: p.description,
		People:      p.people,
		Status:      p.status,
	})
}
