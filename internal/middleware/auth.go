package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/casetrack/case-management-api/internal/apperrors"
	"github.com/casetrack/case-management-api/internal/auth"
	"github.com/casetrack/case-management-api/internal/repository"
	"github.com/casetrack/case-management-api/internal/token"
)

const bearerScheme = "Bearer "

// Authenticate resolves the bearer token into a request principal. It is the
// only place the Authorization header is read. Requests without a bearer
// header continue anonymously; a present but bad token is rejected before any
// route logic runs.
func Authenticate(tokens *token.Service, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerScheme) {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(header, bearerScheme)

		subject, err := tokens.ExtractSubject(raw)
		if err != nil {
			abort(c, err)
			return
		}

		if err := tokens.Validate(raw); err != nil {
			abort(c, err)
			return
		}

		user, err := users.FindByID(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Stale or deleted subject id.
				abort(c, apperrors.ErrUserNotFound)
				return
			}
			abort(c, err)
			return
		}

		principal := auth.Principal{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			Lang:     user.Lang,
		}
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))

		c.Next()
	}
}

// GetPrincipal retrieves the principal resolved for this request, if any.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	return auth.FromContext(c.Request.Context())
}

// RequestLocale picks the locale for localized messages: explicit ?locale=
// param first, then the principal's preferred language.
func RequestLocale(c *gin.Context) string {
	if locale := c.Query("locale"); locale != "" {
		return locale
	}
	if p, ok := GetPrincipal(c); ok {
		return p.Lang
	}
	return ""
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
