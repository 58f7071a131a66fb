package mcp

import (
	"errors"
	"fmt"

	"github.com/agencyops/agencydesk/internal/domain/project"
)

// ErrUnknownMethod reports a dispatch miss so transports can answer
// with a method-not-found code instead of an internal error.
var ErrUnknownMethod = errors.New("unknown method")

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Validation failures
// carry every field error in Details so a form can annotate each input.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var verr *project.ValidationError
	switch {
	case errors.As(err, &verr):
		return &APIError{
			Code:         "VALIDATION_FAILED",
			Message:      "project input failed validation",
			Details:      verr.Fields,
			RecoveryHint: "Correct the listed fields and resubmit",
		}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, project.ErrDuplicateID):
		return &APIError{Code: "DUPLICATE_ID", Message: "project id already in catalog"}
	default:
		return nil
	}
}
