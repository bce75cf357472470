package models

import "time"

// AuditFields holds the audit columns shared by persisted tables.
// CreatedBy and LastUpdatedBy are nullable references to users.user_id.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     *string   `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy *string   `db:"last_updated_by"`
}
