package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/SscSPs/journal_engine/internal/middleware"
	"github.com/SscSPs/journal_engine/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const (
	secret = "middleware-test-secret"
	issuer = "journal-engine-test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoActor(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.Status(http.StatusTeapot)
		return
	}
	c.JSON(http.StatusOK, actor)
}

func request(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(secret, issuer), echoActor)

	manager := domain.Actor{UserID: "u-7", Username: "mona", Role: domain.RoleManager}
	valid, err := utils.GenerateJWT(manager, secret, time.Hour, issuer)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT(manager, secret, -time.Minute, issuer)
	require.NoError(t, err)
	badRole, err := utils.GenerateJWT(domain.Actor{UserID: "u-8", Role: domain.Role("Owner")}, secret, time.Hour, issuer)
	require.NoError(t, err)

	t.Run("valid token stores the actor", func(t *testing.T) {
		w := request(t, r, "Bearer "+valid)
		require.Equal(t, http.StatusOK, w.Code)
		var got domain.Actor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, manager, got)
	})

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic " + valid, "Authorization header format must be Bearer {token}"},
		{"expired", "Bearer " + expired, "Token has expired"},
		{"garbage", "Bearer not-a-jwt", "Invalid token"},
		{"unknown role", "Bearer " + badRole, "Invalid token claims"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(t, r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["error"])
		})
	}
}

func TestRateLimit_PerUser(t *testing.T) {
	rate, err := limiter.NewRateFromFormatted("1-H")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/whoami",
		middleware.AuthMiddleware(secret, issuer),
		middleware.RateLimit(limiter.New(memory.NewStore(), rate)),
		echoActor,
	)

	first, err := utils.GenerateJWT(domain.Actor{UserID: "u-1", Role: domain.RoleAccountant}, secret, time.Hour, issuer)
	require.NoError(t, err)
	second, err := utils.GenerateJWT(domain.Actor{UserID: "u-2", Role: domain.RoleAccountant}, secret, time.Hour, issuer)
	require.NoError(t, err)

	w := request(t, r, "Bearer "+first)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusTooManyRequests, request(t, r, "Bearer "+first).Code)
	assert.Equal(t, http.StatusOK, request(t, r, "Bearer "+second).Code)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/whoami", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "req-123", entry["request_id"])
		assert.Equal(t, "/whoami", entry["path"])
	}

	var completed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &completed))
	assert.Equal(t, "Request completed", completed["msg"])
	assert.EqualValues(t, http.StatusNoContent, completed["status"])
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
}
