package models

import (
	"fmt"
	"time"
)

type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "OPEN"
	CaseStatusInProgress CaseStatus = "IN_PROGRESS"
	CaseStatusCompleted  CaseStatus = "COMPLETED"
)

// ParseCaseStatus converts a request value into a CaseStatus, rejecting
// anything outside the closed set.
func ParseCaseStatus(value string) (CaseStatus, error) {
	switch CaseStatus(value) {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusCompleted:
		return CaseStatus(value), nil
	default:
		return "", fmt.Errorf("unknown case status %q", value)
	}
}

// Case is the tracked work item. Title is unique (case-insensitive) among the
// non-deleted cases of the same owner; the service checks it fail-fast and a
// partial unique index backs it on postgres.
type Case struct {
	Base
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      CaseStatus `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	Due         *time.Time `gorm:"index" json:"due"`
}
