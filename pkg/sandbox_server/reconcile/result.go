package reconcile

import (
	"fmt"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/compare"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

type Stage string

const (
	StageReceived            = Stage("RECEIVED")
	StageCounterpartLookedUp = Stage("COUNTERPART_LOOKED_UP")
	StageMapped              = Stage("MAPPED")
	StageCompared            = Stage("COMPARED")
	StageAccepted            = Stage("ACCEPTED")
	StageRejected            = Stage("REJECTED")
)

type ValidationResult struct {
	Valid  bool                 `json:"valid"`
	Stage  Stage                `json:"stage"`
	Errors []compare.FieldError `json:"errors"`
	// Processed reports whether this call moved the counterpart to processed.
	Processed bool `json:"processed"`
}

// ValidationError carries every field that did not match. It matches
// model.ErrValidationMismatch with errors.Is.
type ValidationError struct {
	Errors []compare.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Errors))
}

func (e *ValidationError) Is(target error) bool {
	return target == model.ErrValidationMismatch
}
