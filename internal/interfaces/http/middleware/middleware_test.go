package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/interfaces/http/middleware"
	"github.com/romawatches/storefront/internal/pkg/auth"
	"github.com/romawatches/storefront/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:             "test-secret-that-is-at-least-32-characters",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: []string{"https://romawatches.vn", "*.romawatches.dev"},
			CORSAllowedMethods: []string{"GET", "POST"},
			CORSAllowedHeaders: []string{"Authorization", "Content-Type"},
		},
	}
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelopeCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Code
}

func bearer(t *testing.T, jwtManager *auth.JWTManager, userID uint, role string) map[string]string {
	t.Helper()
	token, err := jwtManager.GenerateAccessToken(userID, "an@example.com", role)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager(testConfig())

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(jwtManager), func(c *gin.Context) {
		id, ok := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok, "admin": middleware.IsAdminFromContext(c)})
	})

	w := perform(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", envelopeCode(t, w))

	w = perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	refresh, err := jwtManager.GenerateRefreshToken(7, "an@example.com")
	require.NoError(t, err)
	w = perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "refresh tokens are not accepted as access tokens")

	w = perform(r, http.MethodGet, "/me", bearer(t, jwtManager, 7, "user"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 7, "ok": true, "admin": false}`, w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager(testConfig())

	r := gin.New()
	r.GET("/admin", middleware.AuthMiddleware(jwtManager), middleware.AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := perform(r, http.MethodGet, "/admin", bearer(t, jwtManager, 7, "user"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", envelopeCode(t, w))

	w = perform(r, http.MethodGet, "/admin", bearer(t, jwtManager, 1, auth.RoleAdmin))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager(testConfig())

	r := gin.New()
	r.GET("/count", middleware.OptionalAuthMiddleware(jwtManager), func(c *gin.Context) {
		id, _ := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	w := perform(r, http.MethodGet, "/count", nil)
	assert.JSONEq(t, `{"id": 0}`, w.Body.String())

	w = perform(r, http.MethodGet, "/count", map[string]string{"Authorization": "Bearer expired"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 0}`, w.Body.String())

	w = perform(r, http.MethodGet, "/count", bearer(t, jwtManager, 9, "user"))
	assert.JSONEq(t, `{"id": 9}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	w := perform(r, http.MethodGet, "/", map[string]string{middleware.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))

	w = perform(r, http.MethodGet, "/", map[string]string{middleware.RequestIDHeader: strings.Repeat("x", 65)})
	assert.Len(t, w.Body.String(), 36)

	w = perform(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestLoggerPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger.Discard()))
	r.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	w := perform(r, http.MethodGet, "/fail", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS(testConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://romawatches.vn", true},
		{"https://shop.romawatches.dev", true},
		{"https://evilromawatches.dev", false},
		{"https://example.com", false},
	}
	for _, tt := range tests {
		w := perform(r, http.MethodGet, "/", map[string]string{"Origin": tt.origin})
		if tt.allowed {
			assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
		} else {
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
		}
	}

	w := perform(r, http.MethodOptions, "/", map[string]string{"Origin": "https://romawatches.vn"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := gin.New()
	r.Use(middleware.RateLimit(client, 2, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	perform(r, http.MethodGet, "/", nil)
	w = perform(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate_limited", envelopeCode(t, w))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	r := gin.New()
	r.Use(middleware.RateLimit(client, 1, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := perform(r, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestSizeLimit(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestSizeLimit(16))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 32)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "payload_too_large", envelopeCode(t, w))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Timeout(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/slow", nil)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, "timeout", envelopeCode(t, w))

	w = perform(r, http.MethodGet, "/fast", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
