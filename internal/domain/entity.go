package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditFields is the shared identity and audit shape embedded by every
// persisted entity. Soft-deleted rows keep their data; IsDeleted plus
// DeletedAt hide them from standard reads.
type AuditFields struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	CreatedBy  uuid.UUID  `json:"created_by" db:"created_by"`
	ModifiedAt time.Time  `json:"modified_at" db:"modified_at"`
	ModifiedBy uuid.UUID  `json:"modified_by" db:"modified_by"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	DeletedBy  *uuid.UUID `json:"deleted_by,omitempty" db:"deleted_by"`
	IsDeleted  bool       `json:"is_deleted" db:"is_deleted"`
}
