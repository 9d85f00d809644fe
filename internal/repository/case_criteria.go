package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/casetrack/case-management-api/internal/models"
)

const (
	SortAsc  = "ASC"
	SortDesc = "DESC"

	DefaultPage   = 0
	DefaultLimit  = 10
	DefaultSortBy = "createdAt"
)

var (
	// ErrInvalidSortField rejects sortBy values outside the sortable set
	// instead of silently returning unsorted results.
	ErrInvalidSortField = errors.New("unknown sort field")
	ErrInvalidSortOrder = errors.New("unknown sort order")
)

// sortableColumns whitelists request-facing sort names against columns.
var sortableColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"status":      "status",
	"due":         "due",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"createdBy":   "created_by",
}

// CaseCriteria is the optional filter set for case search. Unset fields
// contribute no constraint; provided ones combine with AND, always together
// with the implicit live-rows predicate.
type CaseCriteria struct {
	Title       string
	Description string
	Status      *models.CaseStatus
	DueFrom     *time.Time
	DueTo       *time.Time
	CreatedBy   *uuid.UUID
	Page        int
	Limit       int
	SortBy      string
	SortOrder   string
}

// Normalize applies pagination and sort defaults and validates the sort
// request.
func (c *CaseCriteria) Normalize() error {
	if c.Page < 0 {
		c.Page = DefaultPage
	}
	if c.Limit < 1 {
		c.Limit = DefaultLimit
	}
	if c.SortBy == "" {
		c.SortBy = DefaultSortBy
	}
	if c.SortOrder == "" {
		c.SortOrder = SortDesc
	}
	c.SortOrder = strings.ToUpper(c.SortOrder)

	if _, ok := sortableColumns[c.SortBy]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSortField, c.SortBy)
	}
	if c.SortOrder != SortAsc && c.SortOrder != SortDesc {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, c.SortOrder)
	}

	return nil
}

// orderClause renders the validated sort with an id tie-break so equal sort
// keys paginate stably across requests.
func (c CaseCriteria) orderClause() string {
	column := sortableColumns[c.SortBy]
	return fmt.Sprintf("%s %s, id %s", column, c.SortOrder, c.SortOrder)
}
