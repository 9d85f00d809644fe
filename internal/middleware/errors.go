package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/casetrack/case-management-api/internal/apperrors"
	"github.com/casetrack/case-management-api/internal/dto"
	"github.com/casetrack/case-management-api/internal/i18n"
	"github.com/casetrack/case-management-api/internal/metrics"
)

// ErrorHandler is the single translator from the domain error taxonomy to
// HTTP responses. Handlers and middleware attach errors with c.Error and
// never write error bodies themselves. Unexpected errors are logged in full
// and surfaced as a generic message.
func ErrorHandler(log zerolog.Logger, msgs *i18n.Messages) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		err := last.Err
		locale := RequestLocale(c)
		msg := func(code string) string { return msgs.Get(locale, code) }

		var vErr *apperrors.ValidationError
		var dupErr *apperrors.DuplicateError

		switch {
		case errors.As(err, &vErr):
			fields := make(map[string]string, len(vErr.Fields))
			for field, code := range vErr.Fields {
				fields[field] = msg(code)
			}
			dto.Respond(c, http.StatusBadRequest, msg("error.field.validation.failed"),
				dto.ErrorData{Errors: fields})

		case errors.As(err, &dupErr):
			dto.Respond(c, http.StatusBadRequest, msg("error.field.validation.failed"),
				dto.ErrorData{Errors: map[string]string{dupErr.Field: msg(dupErr.Code)}})

		case errors.Is(err, apperrors.ErrBadCredentials):
			metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
			log.Info().Str("path", c.FullPath()).Msg("authentication rejected: bad credentials")
			dto.Respond(c, http.StatusUnauthorized, msg("error.general.issue"),
				dto.ErrorData{Error: msg("error.failed.authentication")})

		case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
			reason, code := "token_invalid", "error.token.invalid"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				reason, code = "token_expired", "error.token.expired"
			}
			metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
			log.Info().Str("path", c.FullPath()).Str("reason", reason).Msg("authentication rejected")
			dto.Respond(c, http.StatusUnauthorized, msg("error.general.issue"),
				dto.ErrorData{Error: msg(code)})

		case errors.Is(err, apperrors.ErrUserNotFound):
			metrics.AuthFailuresTotal.WithLabelValues("stale_subject").Inc()
			log.Info().Str("path", c.FullPath()).Msg("authentication rejected: stale subject")
			dto.Respond(c, http.StatusUnauthorized, msg("error.general.issue"),
				dto.ErrorData{Error: msg("error.user.not.found")})

		case errors.Is(err, apperrors.ErrForbidden):
			dto.Respond(c, http.StatusForbidden, msg("error.general.issue"),
				dto.ErrorData{Error: msg("error.authorization.denied")})

		case errors.Is(err, apperrors.ErrCaseNotFound):
			dto.Respond(c, http.StatusNotFound, msg("error.general.issue"),
				dto.ErrorData{Error: msg("error.case.not.found")})

		default:
			log.Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.FullPath()).
				Msg("unexpected error")
			dto.Respond(c, http.StatusInternalServerError, msg("error.general.issue"),
				dto.ErrorData{Error: msg("error.unexpected")})
		}
	}
}
