package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rpggio/projectboard/internal/domain/project"
	"github.com/rpggio/projectboard/internal/validation"
)

// AlertMessage is shown to the user when a submission is rejected.
const AlertMessage = "Invalid input, please try again!"

// ErrInvalidInput indicates a rejected project submission.
var ErrInvalidInput = errors.New("invalid project input")

const (
	minDescriptionLength = 5
	minPeople            = 1
	maxPeople            = 5
)

// Input holds raw form values as typed by the user.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      string `json:"people"`
}

// CheckInput applies the board's submission rules.
func CheckInput(title, description string, people int) error {
	titleValid := validation.Validatable{
		Value:    validation.Text(title),
		Required: true,
	}
	descValid := validation.Validatable{
		Value:     validation.Text(description),
		Required:  true,
		MinLength: validation.Int(minDescriptionLength),
	}
	peopleValid := validation.Validatable{
		Value:    validation.Number(float64(people)),
		Required: true,
		Min:      validation.Float(minPeople),
		Max:      validation.Float(maxPeople),
	}

	switch {
	case !validation.Validate(titleValid):
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case !validation.Validate(descValid):
		return fmt.Errorf("%w: description needs at least %d characters", ErrInvalidInput, minDescriptionLength)
	case !validation.Validate(peopleValid):
		return fmt.Errorf("%w: people must be between %d and %d", ErrInvalidInput, minPeople, maxPeople)
	}
	return nil
}

// ProjectInput is the form that creates projects.
type ProjectInput struct {
	store  *project.Store
	logger *slog.Logger
}

// NewProjectInput creates the form view.
func NewProjectInput(store *project.Store, logger *slog.Logger) *ProjectInput {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	in := &ProjectInput{store: store, logger: logger}
	in.Configure()
	return in
}

// Configure is a no-op; submissions arrive through Submit.
func (in *ProjectInput) Configure() {}

// RenderContent is a no-op; the form has no dynamic content.
func (in *ProjectInput) RenderContent() {}

// Render writes the empty form.
func (in *ProjectInput) Render(ctx context.Context, w io.Writer) error {
	return inputView().Render(ctx, w)
}

// Submit validates raw form values and adds the project. Nothing reaches the
// store when validation fails.
func (in *ProjectInput) Submit(raw Input) (project.Project, error) {
	title, description, people, err := gatherInput(raw)
	if err != nil {
		in.logger.Debug("project input rejected", "error", err)
		return project.Project{}, err
	}
	return in.store.Add(title, description, people), nil
}

func gatherInput(raw Input) (string, string, int, error) {
	// Unparseable headcounts become 0 and fail the minimum.
	people, err := strconv.Atoi(strings.TrimSpace(raw.People))
	if err != nil {
		people = 0
	}
	if err := CheckInput(raw.Title, raw.Description, people); err != nil {
		return "", "", 0, err
	}
	return raw.Title, raw.Description, people, nil
}
