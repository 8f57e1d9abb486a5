package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "affiliate-ledger"
)

func signToken(t *testing.T, claims jwt.RegisteredClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.Use(mw...)
	r.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret, testIssuer))
	valid := jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + signToken(t, valid, testSecret), wantStatus: http.StatusOK, wantBody: "user-1"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "bad scheme", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, valid, "other"), wantStatus: http.StatusUnauthorized},
		{
			name: "wrong issuer",
			header: "Bearer " + signToken(t, jwt.RegisteredClaims{
				Subject: "user-1", Issuer: "someone-else", ExpiresAt: valid.ExpiresAt,
			}, testSecret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: "Bearer " + signToken(t, jwt.RegisteredClaims{
				Subject: "user-1", Issuer: testIssuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}, testSecret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing subject",
			header:     "Bearer " + signToken(t, jwt.RegisteredClaims{Issuer: testIssuer, ExpiresAt: valid.ExpiresAt}, testSecret),
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(middleware.RateLimit(lim))

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestCORS(t *testing.T) {
	r := newRouter(middleware.CORS([]string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
