package venues

import (
	"errors"
	"fmt"

	"venueplan/internal/layout"
)

var (
	ErrInvalidEventID       = errors.New("invalid event ID")
	ErrInvalidTemplateID    = errors.New("invalid template ID")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrTemplateNameTaken    = errors.New("template name already exists")
	ErrConfirmationRequired = errors.New("confirmation_required")
	ErrUnsupportedEdit      = errors.New("edit not supported for this zone")
	ErrInvalidRequest       = errors.New("invalid request")
)

// ConfirmationError reports which destructive edit needs `confirm: true`.
type ConfirmationError struct {
	Reason layout.ConfirmReason
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("confirmation required: %s", e.Reason)
}

func (e *ConfirmationError) Unwrap() error { return ErrConfirmationRequired }

// ReasonReplaceLayout is asked before a template overwrites a non-empty layout.
const ReasonReplaceLayout layout.ConfirmReason = "replace_layout"
