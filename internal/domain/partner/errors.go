package partner

import "fmt"

// DuplicateError reports a name collision during provisioning. It
// carries the conflicting partner so the caller can present it for
// disambiguation instead of a bare rejection.
type DuplicateError struct {
	Existing *TradingPartner
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a %s named %q already exists", e.Existing.Kind, e.Existing.Name)
}

// NewDuplicateError creates a DuplicateError for the existing record
func NewDuplicateError(existing *TradingPartner) *DuplicateError {
	return &DuplicateError{Existing: existing}
}
