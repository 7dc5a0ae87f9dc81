package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fluxora_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	var seenUserID string
	r := newTestRouter(AuthMiddleware(testSecret), func(c *gin.Context) {
		seenUserID, _ = GetUserIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	valid, _, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "test")
	require.NoError(t, err)
	expired, _, err := utils.GenerateJWT("user-42", testSecret, -time.Hour, "test")
	require.NoError(t, err)
	noSubject, _, err := utils.GenerateJWT("", testSecret, time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusNoContent},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", header: "Token " + valid, wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "garbage", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "missing subject", header: "Bearer " + noSubject, wantStatus: http.StatusUnauthorized, wantBody: "Invalid token claims"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
				assert.Empty(t, seenUserID)
			} else {
				assert.Equal(t, "user-42", seenUserID)
			}
		})
	}
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	var hasLogger bool
	r := newTestRouter(func(c *gin.Context) {
		hasLogger = GetLoggerFromCtx(c) != nil
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.True(t, hasLogger)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	lim, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)
	r := newTestRouter(RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewMemoryLimiter("five-per-minute")
	assert.Error(t, err)
}

func TestEventNameForRoute(t *testing.T) {
	assert.Equal(t, "get_planning_lists", EventNameForRoute("GET", "/api/v1/planning-lists"))
	assert.Equal(t, "patch_shopping_lists_items_checked", EventNameForRoute("PATCH", "/api/v1/shopping-lists/:list_id/items/:item_id/checked"))
	assert.Equal(t, "get_dashboard", EventNameForRoute("GET", "/api/v1/dashboard"))
	assert.Equal(t, "", EventNameForRoute("GET", ""))
}
