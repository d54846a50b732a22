package servicerecord

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("record belongs to another user")
)

// RequiredFields is the canonical list reported to clients when a create
// request is missing required input.
var RequiredFields = []string{
	"date",
	"serviceType",
	"serviceTime",
	"equipmentId",
	"equipmentType",
	"technician",
	"serviceNotes",
}

// ValidationError reports missing or malformed client input. Required is
// populated only for missing-field failures.
type ValidationError struct {
	Message  string
	Required []string
}

func (e *ValidationError) Error() string {
	return e.Message
}
