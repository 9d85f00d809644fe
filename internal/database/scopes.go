package database

import (
	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted rows. Every read path applies this
// explicitly; nothing relies on implicit query rewriting.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}

// Paginate applies a zero-based page window to a GORM query.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page * limit).Limit(limit)
	}
}
