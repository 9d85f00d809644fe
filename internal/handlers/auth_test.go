package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/casetrack/case-management-api/internal/auth"
	"github.com/casetrack/case-management-api/internal/dto"
)

func TestLogin_Success(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", auth.RoleStaff)

	w := env.request(t, http.MethodPost, "/api/v2/auth",
		map[string]any{"username": "alice", "password": testPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	envl := decodeEnvelope(t, w)
	require.Equal(t, "User authenticated successfully", envl.Message)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(envl.Data, &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "Bearer", resp.TokenType)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", auth.RoleStaff)

	w := env.request(t, http.MethodPost, "/api/v2/auth",
		map[string]any{"username": "alice", "password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	data := decodeErrorData(t, w)
	require.Equal(t, "Invalid username or password", data.Error)
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", auth.RoleStaff)

	wrongPassword := env.request(t, http.MethodPost, "/api/v2/auth",
		map[string]any{"username": "alice", "password": "wrong"}, "")
	unknownUser := env.request(t, http.MethodPost, "/api/v2/auth",
		map[string]any{"username": "nobody", "password": testPassword}, "")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v2/auth", map[string]any{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	data := decodeErrorData(t, w)
	require.Contains(t, data.Errors, "username")
	require.Contains(t, data.Errors, "password")
}

func TestLogin_IssuedTokenGrantsAccess(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", auth.RoleStaff)

	w := env.request(t, http.MethodPost, "/api/v2/auth",
		map[string]any{"username": "alice", "password": testPassword}, "")
	require.Equal(t, http.StatusOK, w.Code)

	envl := decodeEnvelope(t, w)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(envl.Data, &resp))

	list := env.request(t, http.MethodGet, "/api/v2/case", nil, "Bearer "+resp.AccessToken)
	require.Equal(t, http.StatusOK, list.Code)
}

func TestProtectedRoute_ExpiredToken(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", auth.RoleStaff)

	token := env.expiredBearer(t, user)
	w := env.request(t, http.MethodGet, "/api/v2/case", nil, token)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	data := decodeErrorData(t, w)
	require.Equal(t, "Authentication token has expired", data.Error)
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v2/case", nil, "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	data := decodeErrorData(t, w)
	require.Equal(t, "Authentication token is invalid", data.Error)
}

func TestProtectedRoute_DeletedSubjectRejected(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", auth.RoleStaff)
	token := env.bearer(t, user)

	require.NoError(t, env.db.Model(user).Update("deleted", true).Error)

	w := env.request(t, http.MethodGet, "/api/v2/case", nil, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
