package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/casetrack/case-management-api/internal/apperrors"
	"github.com/casetrack/case-management-api/internal/dto"
	"github.com/casetrack/case-management-api/internal/i18n"
	"github.com/casetrack/case-management-api/internal/middleware"
	"github.com/casetrack/case-management-api/internal/models"
	"github.com/casetrack/case-management-api/internal/repository"
	"github.com/casetrack/case-management-api/internal/services"
)

// dueFormats are the timestamp layouts accepted for dueFrom/dueTo query
// params, tried in order.
var dueFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type CaseHandler struct {
	caseService *services.CaseService
	msgs        *i18n.Messages
}

func NewCaseHandler(caseService *services.CaseService, msgs *i18n.Messages) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
		msgs:        msgs,
	}
}

// Search returns a page of cases matching the optional filter params.
func (h *CaseHandler) Search(c *gin.Context) {
	criteria, err := searchCriteria(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	data, err := h.caseService.Search(c.Request.Context(), criteria)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, "success.task.retrieved", data)
}

// Get returns a single case. Ownership was already checked by the route
// guard.
func (h *CaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.Validation(apperrors.FieldErrors{"id": "field.invalid"}))
		return
	}

	kase, err := h.caseService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := dto.ToCaseResponse(kase)
	h.respond(c, http.StatusOK, "success.task.retrieved", &dto.CaseData{Task: &resp})
}

// Create persists a new case owned by the request principal.
func (h *CaseHandler) Create(c *gin.Context) {
	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingErrors(err))
		return
	}

	kase, err := h.caseService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := dto.ToCaseResponse(kase)
	h.respond(c, http.StatusCreated, "success.task.created", &dto.CaseData{Task: &resp})
}

// Update overwrites the fields present in the request.
func (h *CaseHandler) Update(c *gin.Context) {
	var req dto.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingErrors(err))
		return
	}

	kase, err := h.caseService.Update(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := dto.ToCaseResponse(kase)
	h.respond(c, http.StatusOK, "success.task.updated", &dto.CaseData{Task: &resp})
}

// Delete soft-deletes a case.
func (h *CaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.Validation(apperrors.FieldErrors{"id": "field.invalid"}))
		return
	}

	if err := h.caseService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, "success.task.deleted", nil)
}

func (h *CaseHandler) respond(c *gin.Context, code int, messageCode string, data any) {
	dto.Respond(c, code, h.msgs.Get(middleware.RequestLocale(c), messageCode), data)
}

// searchCriteria parses the filter query params, collecting every malformed
// field into one validation error.
func searchCriteria(c *gin.Context) (repository.CaseCriteria, error) {
	criteria := repository.CaseCriteria{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
	}

	invalid := apperrors.FieldErrors{}

	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseCaseStatus(raw)
		if err != nil {
			invalid["status"] = "field.invalid"
		} else {
			criteria.Status = &status
		}
	}
	if raw := c.Query("dueFrom"); raw != "" {
		if t, ok := parseDue(raw); ok {
			criteria.DueFrom = &t
		} else {
			invalid["dueFrom"] = "field.invalid"
		}
	}
	if raw := c.Query("dueTo"); raw != "" {
		if t, ok := parseDue(raw); ok {
			criteria.DueTo = &t
		} else {
			invalid["dueTo"] = "field.invalid"
		}
	}
	if raw := c.Query("createdBy"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			invalid["createdBy"] = "field.invalid"
		} else {
			criteria.CreatedBy = &id
		}
	}

	criteria.Page = intQuery(c, "page", repository.DefaultPage, invalid)
	criteria.Limit = intQuery(c, "limit", repository.DefaultLimit, invalid)

	if len(invalid) > 0 {
		return criteria, apperrors.Validation(invalid)
	}
	return criteria, nil
}

func intQuery(c *gin.Context, name string, fallback int, invalid apperrors.FieldErrors) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		invalid[name] = "field.invalid"
		return fallback
	}
	return value
}

func parseDue(raw string) (time.Time, bool) {
	for _, layout := range dueFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
