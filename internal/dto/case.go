package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/casetrack/case-management-api/internal/models"
)

// CreateCaseRequest is the POST /case payload. Status is optional and
// defaults to OPEN in the service.
type CreateCaseRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Status      *models.CaseStatus `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS COMPLETED"`
	Due         *time.Time         `json:"due" binding:"required"`
}

// UpdateCaseRequest is the PUT /case payload. Nil fields leave the stored
// value unchanged.
type UpdateCaseRequest struct {
	ID          uuid.UUID          `json:"id" binding:"required"`
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *models.CaseStatus `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS COMPLETED"`
	Due         *time.Time         `json:"due"`
}

// CaseResponse is the wire shape of a single case.
type CaseResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.CaseStatus `json:"status"`
	Due         *time.Time        `json:"due"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	CreatedBy   uuid.UUID         `json:"createdBy"`
	UpdatedBy   uuid.UUID         `json:"updatedBy"`
}

// CaseData is the data payload for case endpoints: either one case or a page
// of cases with totals.
type CaseData struct {
	Task         *CaseResponse  `json:"task,omitempty"`
	Tasks        []CaseResponse `json:"tasks,omitempty"`
	TotalElement int64          `json:"totalElement,omitempty"`
	TotalPage    int            `json:"totalPage,omitempty"`
}

// ToCaseResponse maps the persisted entity to its wire shape.
func ToCaseResponse(c *models.Case) CaseResponse {
	return CaseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Status:      c.Status,
		Due:         c.Due,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CreatedBy:   c.CreatedBy,
		UpdatedBy:   c.UpdatedBy,
	}
}

// ToCaseResponses maps a result page.
func ToCaseResponses(cases []models.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		out = append(out, ToCaseResponse(&cases[i]))
	}
	return out
}
