package servicerecord

import "time"

// ServiceRecord is one maintenance event logged against a piece of equipment.
// Each record belongs to exactly one user; ownership is assigned at creation
// and never changes.
type ServiceRecord struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	ServiceType   string    `json:"serviceType"`
	ServiceTime   float64   `json:"serviceTime" doc:"Service duration in hours"`
	EquipmentID   string    `json:"equipmentId"`
	EquipmentType string    `json:"equipmentType"`
	Technician    string    `json:"technician"`
	PartsUsed     *string   `json:"partsUsed"`
	ServiceNotes  string    `json:"serviceNotes"`
	UserID        string    `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
