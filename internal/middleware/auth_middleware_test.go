package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "etshub.test",
	})
}

func testToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.AdminUser{ID: 1, Email: "admin@etshub.app"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func protectedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authMw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/private", authMw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminId": AdminID(c)})
	})
	router.GET("/public", authMw.OptionalAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": IsAuthenticated(c)})
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	jwtService := testJWTService()
	router := protectedRouter(jwtService)
	token := testToken(t, jwtService)

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		wantStatus int
	}{
		{
			name:       "no token",
			setup:      func(req *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer header",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+token)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "session cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "garbage token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-a-token")
			},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRequireAdminExpiredToken(t *testing.T) {
	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "etshub.test",
	})
	router := protectedRouter(testJWTService())
	token := testToken(t, expiredService)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for an expired token", rec.Code)
	}
}

func TestOptionalAdmin(t *testing.T) {
	jwtService := testJWTService()
	router := protectedRouter(jwtService)
	token := testToken(t, jwtService)

	// Anonymous requests pass through.
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"authenticated":false}` {
		t.Errorf("anonymous body = %s", got)
	}

	// A valid token marks the request authenticated.
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Body.String(); got != `{"authenticated":true}` {
		t.Errorf("authenticated body = %s", got)
	}

	// An invalid token is ignored rather than rejected.
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("invalid-token status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"authenticated":false}` {
		t.Errorf("invalid-token body = %s", got)
	}
}
