package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/casetrack/case-management-api/internal/auth"
)

// Base carries the identifier, soft-delete flag and audit fields shared by
// every persisted entity. Soft deletion is an explicit boolean column; every
// read path must filter on it (see database.NotDeleted) rather than relying
// on implicit query rewriting.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Deleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index" json:"createdBy"`
	UpdatedBy uuid.UUID `gorm:"type:uuid" json:"updatedBy"`
}

// BeforeCreate assigns the primary key and stamps CreatedBy from the request
// principal carried in the statement context. Ownership stamping happens here,
// exactly once, at persist time; services never pre-populate CreatedBy.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if p, ok := auth.FromContext(tx.Statement.Context); ok {
		b.CreatedBy = p.ID
		b.UpdatedBy = p.ID
	}
	return nil
}

// BeforeUpdate stamps UpdatedBy from the request principal.
func (b *Base) BeforeUpdate(tx *gorm.DB) error {
	if p, ok := auth.FromContext(tx.Statement.Context); ok {
		b.UpdatedBy = p.ID
	}
	return nil
}
