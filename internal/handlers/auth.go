package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casetrack/case-management-api/internal/dto"
	"github.com/casetrack/case-management-api/internal/i18n"
	"github.com/casetrack/case-management-api/internal/middleware"
	"github.com/casetrack/case-management-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	msgs        *i18n.Messages
}

func NewAuthHandler(authService *services.AuthService, msgs *i18n.Messages) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		msgs:        msgs,
	}
}

// Login validates credentials and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingErrors(err))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	dto.Respond(c, http.StatusOK,
		h.msgs.Get(middleware.RequestLocale(c), "success.user.login"), resp)
}
