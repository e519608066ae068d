package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/middleware"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		middleware.HandleAPIError(c, err, "Failed to do the thing")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	router.ServeHTTP(w, req)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
		detail string
	}{
		{"NotFound", apperrors.NewResourceNotFoundError("Query not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Query not found"},
		{"Unauthorized", apperrors.NewUnauthorizedError("Invalid consultant ID"), http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid consultant ID"},
		{"AdminPassword", apperrors.NewCustomError(apperrors.ErrInvalidAdminPassword, "Invalid admin password"), http.StatusUnauthorized, dto.ErrorCodeInvalidAdminSecret, "Invalid admin password"},
		{"BadRequest", apperrors.NewBadRequestError("Invalid status 'bogus'"), http.StatusBadRequest, dto.ErrorCodeBadRequest, "Invalid status 'bogus'"},
		{"Conflict", apperrors.NewCustomError(apperrors.ErrConsultantExists, "Consultant ID already exists"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Consultant ID already exists"},
		{"ConsultantMissing", apperrors.NewCustomError(apperrors.ErrConsultantNotFound, "Consultant not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Consultant not found"},
		{"Upstream", apperrors.NewUpstreamError("Failed to get response", errors.New("timeout")), http.StatusInternalServerError, dto.ErrorCodeExternalServiceError, "Failed to get response"},
		{"Unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Failed to do the thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.detail, body.Detail)
		})
	}
}

func TestBindQuery(t *testing.T) {
	router := gin.New()
	router.POST("/login", func(c *gin.Context) {
		var req dto.LoginRequest
		if !middleware.BindQuery(c, &req) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": req.UserID})
	})

	t.Run("Valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login?user_id=A&password=b", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login?user_id=A", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, dto.ErrorCodeValidationFailed, body.Code)
		assert.NotEmpty(t, body.Errors)
	})
}

func TestTimeout(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Timeout(50 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"has_deadline": ok, "in_future": time.Until(deadline) > 0})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"has_deadline":true,"in_future":true}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SRV_001")
}
