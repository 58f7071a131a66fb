// Package form drives the record-creation lifecycle a presentation
// layer owns: Editing -> Submitting -> Accepted or Rejected -> Editing.
package form

import (
	"context"
	"errors"

	"github.com/agencyops/agencydesk/internal/domain/project"
)

// State names a point in the submission lifecycle.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateAccepted   State = "accepted"
	StateRejected   State = "rejected"
)

// Creator accepts raw input and either appends a validated project or
// reports field errors. *project.Service satisfies it.
type Creator interface {
	Create(ctx context.Context, in project.Input) (*project.Project, error)
}

// Form holds raw field values between edits and submissions. A failed
// submission keeps every entered value; a successful one restores the
// defaults.
type Form struct {
	defaults project.Input
	values   project.Input
	errors   []project.FieldError
	state    State
	outcome  State
}

// New creates a form in the editing state with the given defaults.
func New(defaults project.Input) *Form {
	return &Form{
		defaults: cloneInput(defaults),
		values:   cloneInput(defaults),
		state:    StateEditing,
	}
}

// Set records a raw field value.
func (f *Form) Set(field string, value any) {
	f.values[field] = value
}

// Value returns the current raw value for a field.
func (f *Form) Value(field string) any {
	return f.values[field]
}

// Values returns a copy of the current raw input.
func (f *Form) Values() project.Input {
	return cloneInput(f.values)
}

// Errors returns the field errors from the last rejected submission.
func (f *Form) Errors() []project.FieldError {
	return f.errors
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	return f.state
}

// LastOutcome reports how the most recent submission ended: Accepted,
// Rejected, or empty if the form has never been submitted.
func (f *Form) LastOutcome() State {
	return f.outcome
}

// Submit runs exactly one validation pass through the creator. On
// acceptance the new project is returned and the form resets to its
// defaults; on rejection the entered values stay put and the field
// errors are attached for per-input display. Either way the form ends
// back in the editing state, ready for the next attempt.
func (f *Form) Submit(ctx context.Context, creator Creator) (*project.Project, error) {
	f.state = StateSubmitting
	defer func() { f.state = StateEditing }()

	// Errors always describe the latest submission, never an earlier one.
	f.errors = nil

	proj, err := creator.Create(ctx, f.Values())
	if err != nil {
		f.outcome = StateRejected
		var verr *project.ValidationError
		if errors.As(err, &verr) {
			f.errors = verr.Fields
		}
		return nil, err
	}

	f.outcome = StateAccepted
	f.values = cloneInput(f.defaults)
	f.errors = nil
	return proj, nil
}

func cloneInput(in project.Input) project.Input {
	out := make(project.Input, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
