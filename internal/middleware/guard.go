package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/casetrack/case-management-api/internal/apperrors"
	"github.com/casetrack/case-management-api/internal/services"
)

// RequireRole denies the request unless the resolved principal carries the
// given role. Anonymous requests are denied the same way.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || !p.HasRole(role) {
			abort(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireCaseOwner gates single-resource routes on ownership of the :id
// case. A case that does not exist and a case owned by someone else produce
// the identical denial.
func RequireCaseOwner(perm *services.PermissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			abort(c, apperrors.Validation(apperrors.FieldErrors{"id": "field.invalid"}))
			return
		}

		requireOwnership(c, perm, id)
	}
}

// RequireCaseOwnerFromBody gates body-addressed routes (PUT /case) on
// ownership of the id carried in the JSON body. The body is restored so the
// handler can bind it again.
func RequireCaseOwnerFromBody(perm *services.PermissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			abort(c, apperrors.Validation(apperrors.FieldErrors{"id": "id.required"}))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var probe struct {
			ID uuid.UUID `json:"id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil || probe.ID == uuid.Nil {
			abort(c, apperrors.Validation(apperrors.FieldErrors{"id": "id.required"}))
			return
		}

		requireOwnership(c, perm, probe.ID)
	}
}

func requireOwnership(c *gin.Context, perm *services.PermissionService, id uuid.UUID) {
	owner, err := perm.IsCaseOwner(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}
	if !owner {
		abort(c, apperrors.ErrForbidden)
		return
	}
	c.Next()
}
