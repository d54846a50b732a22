package servicerecord

import (
	"encoding/json"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// CreateRequest carries the client-supplied fields for a new record. The id,
// owner and timestamps are assigned server-side.
type CreateRequest struct {
	Date          *time.Time `json:"date,omitempty"`
	ServiceType   string     `json:"serviceType,omitempty"`
	ServiceTime   Hours      `json:"serviceTime,omitzero"`
	EquipmentID   string     `json:"equipmentId,omitempty"`
	EquipmentType string     `json:"equipmentType,omitempty"`
	Technician    string     `json:"technician,omitempty"`
	PartsUsed     *string    `json:"partsUsed,omitempty"`
	ServiceNotes  string     `json:"serviceNotes,omitempty"`
}

// UpdateRequest is a partial update: absent fields keep their stored value.
// PartsUsed is the one field where an explicit null or empty string differs
// from omission — it clears the stored value.
type UpdateRequest struct {
	Date          *time.Time     `json:"date,omitempty"`
	ServiceType   *string        `json:"serviceType,omitempty"`
	ServiceTime   Hours          `json:"serviceTime,omitzero"`
	EquipmentID   *string        `json:"equipmentId,omitempty"`
	EquipmentType *string        `json:"equipmentType,omitempty"`
	Technician    *string        `json:"technician,omitempty"`
	PartsUsed     OptionalString `json:"partsUsed,omitzero"`
	ServiceNotes  *string        `json:"serviceNotes,omitempty"`
}

// OptionalString distinguishes "field omitted" from "field set to null or a
// value". UnmarshalJSON only runs when the key is present, which is what
// flips Set.
type OptionalString struct {
	Set   bool
	Value *string
}

// IsZero makes an unset OptionalString eligible for the omitzero tag, so a
// partial update without the key never serializes as an explicit null.
func (o OptionalString) IsZero() bool { return !o.Set }

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func (o OptionalString) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeString, Nullable: true}
}
