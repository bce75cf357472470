package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy,omitempty"` // UserID Reference, empty when unknown
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy,omitempty"`
}

// SoftDeleteFields marks a record as logically deleted. A nil DeletedAt means the record is active.
type SoftDeleteFields struct {
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string    `json:"deletedBy,omitempty"`
}

// IsDeleted reports whether the record has been soft-deleted.
func (s SoftDeleteFields) IsDeleted() bool {
	return s.DeletedAt != nil
}
