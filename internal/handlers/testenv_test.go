package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/casetrack/case-management-api/internal/auth"
	"github.com/casetrack/case-management-api/internal/database"
	"github.com/casetrack/case-management-api/internal/i18n"
	"github.com/casetrack/case-management-api/internal/middleware"
	"github.com/casetrack/case-management-api/internal/models"
	"github.com/casetrack/case-management-api/internal/repository"
	"github.com/casetrack/case-management-api/internal/services"
	"github.com/casetrack/case-management-api/internal/token"
)

const (
	testJWTSecret = "handler-test-secret"
	testPassword  = "supersecret"
)

// envelope mirrors the uniform response shape for decoding in tests.
type envelope struct {
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
}

type errorData struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *token.Service
	authService *services.AuthService
	caseService *services.CaseService
}

// setupTestEnv wires the full middleware chain and routes the way main does,
// backed by an in-memory database.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	caseRepo := repository.NewCaseRepository(db)

	tokens := token.NewService(testJWTSecret, 30*time.Minute)
	msgs := i18n.New("en")

	authService := services.NewAuthService(userRepo, tokens)
	caseService := services.NewCaseService(caseRepo)
	permService := services.NewPermissionService(caseRepo)

	authHandler := NewAuthHandler(authService, msgs)
	caseHandler := NewCaseHandler(caseService, msgs)

	r := gin.New()
	r.Use(
		middleware.ErrorHandler(zerolog.Nop(), msgs),
		middleware.Authenticate(tokens, userRepo),
	)

	api := r.Group("/api/v2")
	api.POST("/auth", authHandler.Login)

	cases := api.Group("/case")
	cases.Use(middleware.RequireRole(auth.RoleStaff))
	cases.GET("", caseHandler.Search)
	cases.POST("", caseHandler.Create)
	cases.GET("/:id", middleware.RequireCaseOwner(permService), caseHandler.Get)
	cases.PUT("", middleware.RequireCaseOwnerFromBody(permService), caseHandler.Update)
	cases.DELETE("/:id", middleware.RequireCaseOwner(permService), caseHandler.Delete)

	return &testEnv{
		db:          db,
		router:      r,
		tokens:      tokens,
		authService: authService,
		caseService: caseService,
	}
}

func (e *testEnv) createUser(t *testing.T, username, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Password: string(hash),
		Role:     role,
		Lang:     "en",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) bearer(t *testing.T, user *models.User) string {
	t.Helper()

	signed, err := e.tokens.Issue(user.ID, []string{user.Role})
	require.NoError(t, err)
	return "Bearer " + signed
}

// expiredBearer signs a token whose expiry already lies in the past.
func (e *testEnv) expiredBearer(t *testing.T, user *models.User) string {
	t.Helper()

	past := time.Now().Add(-2 * time.Hour)
	stale := token.NewService(testJWTSecret, time.Hour).WithClock(func() time.Time { return past })
	signed, err := stale.Issue(user.ID, []string{user.Role})
	require.NoError(t, err)
	return "Bearer " + signed
}

func (e *testEnv) request(t *testing.T, method, url string, body any, authz string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeErrorData(t *testing.T, w *httptest.ResponseRecorder) errorData {
	t.Helper()

	env := decodeEnvelope(t, w)
	var data errorData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}
