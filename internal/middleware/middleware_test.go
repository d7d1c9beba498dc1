package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
}

func protectedEngine(cfg *config.Config, roles ...models.Role) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user": UserID(c).String(),
			"role": UserRole(c),
		})
	})
	r.GET("/p", handlers...)
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: uuid.New(), Email: "a@example.com", Role: models.RoleManager}

	token, err := IssueToken(cfg, user)
	require.NoError(t, err)

	w := get(protectedEngine(cfg), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.String())
	assert.Contains(t, w.Body.String(), `"role":"MANAGER"`)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: uuid.New(), Role: models.RoleStaff}

	otherCfg := &config.Config{JWTSecret: "other", JWTExpiry: time.Hour}
	foreign, err := IssueToken(otherCfg, user)
	require.NoError(t, err)

	expiredCfg := &config.Config{JWTSecret: cfg.JWTSecret, JWTExpiry: -time.Minute}
	expired, err := IssueToken(expiredCfg, user)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             models.RoleStaff,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"garbage":        "Bearer not-a-token",
		"wrong secret":   "Bearer " + foreign,
		"expired":        "Bearer " + expired,
		"bad subject":    "Bearer " + badSubject,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := get(protectedEngine(cfg), header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	staff := &models.User{ID: uuid.New(), Role: models.RoleStaff}
	manager := &models.User{ID: uuid.New(), Role: models.RoleManager}

	staffToken, err := IssueToken(cfg, staff)
	require.NoError(t, err)
	managerToken, err := IssueToken(cfg, manager)
	require.NoError(t, err)

	r := protectedEngine(cfg, models.RoleManager)

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+managerToken).Code)

	w := get(r, "Bearer "+staffToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"forbidden"`)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://app.example.com"}))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/p", nil)
	req.Header.Set("Origin", "http://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	defer rl.Stop()

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(10, time.Hour)
	defer rl.Stop()

	rl.get("10.0.0.1")
	rl.get("10.0.0.2")
	require.Equal(t, 2, rl.size())

	rl.cleanup(time.Now().Add(3 * time.Hour))
	assert.Equal(t, 0, rl.size())
}
