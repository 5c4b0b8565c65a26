package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing field",
			err:         apperrors.NewMissingFieldError("title"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Missing required field: title",
		},
		{
			name:        "invalid email",
			err:         apperrors.NewInvalidEmailError("email"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email format: email",
		},
		{
			name:        "invalid credentials",
			err:         apperrors.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "unauthenticated",
			err:         apperrors.ErrUnauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
		{
			name:        "not found with message",
			err:         apperrors.NewNotFoundError("Job not found"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Job not found",
		},
		{
			name:        "conflict with message",
			err:         apperrors.NewConflictError("This email is already registered"),
			wantStatus:  http.StatusConflict,
			wantMessage: "This email is already registered",
		},
		{
			name:        "upstream failure",
			err:         apperrors.NewUpstreamError("Upload service unavailable"),
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Upload service unavailable",
		},
		{
			name:        "unknown error hides cause",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Error != tt.wantMessage {
				t.Errorf("error = %q, want %q", body.Error, tt.wantMessage)
			}
		})
	}
}
