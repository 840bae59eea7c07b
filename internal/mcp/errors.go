package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/projectboard/internal/board"
	"github.com/rpggio/projectboard/internal/domain/project"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, board.ErrInvalidInput):
		return &APIError{
			Code:         "INVALID_INPUT",
			Message:      board.AlertMessage,
			Details:      err.Error(),
			RecoveryHint: "title is required, description needs 5+ characters, people must be 1 to 5",
		}
	case errors.Is(err, project.ErrInvalidStatus):
		return &APIError{Code: "INVALID_STATUS", Message: "unknown project status", RecoveryHint: "Use active or finished"}
	default:
		return nil
	}
}

func toolError(op string, err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return fmt.Errorf("%s: %w", op, err)
}
