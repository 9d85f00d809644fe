package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/casetrack/case-management-api/internal/apperrors"
)

// bindingErrors converts a gin binding failure into the field-level
// validation error the translator renders, so a client sees every offending
// field in one response.
func bindingErrors(err error) *apperrors.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validation(apperrors.FieldErrors{"body": "field.invalid"})
	}

	fields := make(apperrors.FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldName(fe.Field())
		fields[field] = messageCode(field, fe.Tag())
	}
	return apperrors.Validation(fields)
}

// jsonFieldName lower-cases the struct field name to match the JSON tags
// used across the DTOs.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func messageCode(field, tag string) string {
	if tag != "required" {
		return "field.invalid"
	}
	if field == "due" {
		return "due.date.required"
	}
	return field + ".required"
}
