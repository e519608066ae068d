package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories/memstore"
	"github.com/eduadvisor/backoffice/internal/pkg/auth"
	"github.com/eduadvisor/backoffice/internal/pkg/llm"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
	"github.com/eduadvisor/backoffice/internal/pkg/validation"
	"github.com/eduadvisor/backoffice/internal/seed"
)

const adminSecret = "router-test-secret"

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(context.Context, string, string, string) (string, error) {
	return f.reply, f.err
}

type testApp struct {
	router    *gin.Engine
	completer *fakeCompleter
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Configure(logger.Config{Level: logger.Disabled})
	if err := validation.Register(); err != nil {
		panic(err)
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	stores := memstore.New()
	completer := &fakeCompleter{reply: "Consider B.Tech CSE."}
	deps := buildDependencies(stores, auth.NewSharedSecret(adminSecret, ""), completer, zerolog.Nop())

	ctx := context.Background()
	catalog, err := seed.LoadCatalog()
	require.NoError(t, err)
	require.NoError(t, stores.Catalog.Seed(ctx, catalog.Colleges, catalog.Courses))
	require.NoError(t, deps.CredentialService.Load(ctx, []models.Consultant{
		{UserID: "ASHA", Name: "Asha Sen", Password: "asha-pw"},
		{UserID: "RAVI", Name: "Ravi Das", Password: "ravi-pw"},
	}))

	return &testApp{router: newRouter([]string{"*"}, 5*time.Second, deps), completer: completer}
}

func (a *testApp) do(t *testing.T, method, path string, query url.Values, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func validReport(scope string) map[string]string {
	return map[string]string{
		"student_name":                "Meera",
		"contact_number":              "9000000001",
		"institution_name":            "DPS",
		"competitive_exam_preference": "JEE",
		"career_interest":             "Engineering",
		"interest_scope":              scope,
	}
}

func TestInquiryRoutes(t *testing.T) {
	app := newTestApp(t)

	w, body := app.do(t, http.MethodPost, "/api/queries", nil, map[string]string{
		"name":                "Kiran",
		"phone":               "9000000000",
		"email":               "kiran@example.com",
		"current_institution": "St. Xavier's",
		"course":              "B.Tech",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id, _ := body["query_id"].(string)
	require.NotEmpty(t, id)

	w, body = app.do(t, http.MethodGet, "/api/queries", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])

	w, _ = app.do(t, http.MethodPatch, "/api/queries/"+id+"/status", url.Values{"status": {"contacted"}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = app.do(t, http.MethodPatch, "/api/queries/"+id+"/status", url.Values{"status": {"archived"}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])

	w, body = app.do(t, http.MethodGet, "/api/queries/"+id, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	query := body["query"].(map[string]interface{})
	assert.Equal(t, "contacted", query["status"])

	w, body = app.do(t, http.MethodPatch, "/api/queries/"+id, nil, map[string]string{"message": "call after 5pm"})
	require.Equal(t, http.StatusOK, w.Code)
	query = body["query"].(map[string]interface{})
	assert.Equal(t, "call after 5pm", query["message"])
	assert.Equal(t, "Kiran", query["name"])

	w, _ = app.do(t, http.MethodDelete, "/api/queries/"+id, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = app.do(t, http.MethodDelete, "/api/queries/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RES_001", body["code"])

	t.Run("ValidationError", func(t *testing.T) {
		w, body := app.do(t, http.MethodPost, "/api/queries", nil, map[string]string{"name": "x", "email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VAL_001", body["code"])
		assert.NotEmpty(t, body["errors"])
	})
}

func TestConsultantRoutes(t *testing.T) {
	app := newTestApp(t)

	t.Run("Login", func(t *testing.T) {
		w, body := app.do(t, http.MethodPost, "/api/consultant/login", url.Values{"user_id": {"ASHA"}, "password": {"asha-pw"}}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Asha Sen", body["consultant_name"])

		w, body = app.do(t, http.MethodPost, "/api/consultant/login", url.Values{"user_id": {"ASHA"}, "password": {"wrong"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", body["detail"])
	})

	t.Run("ReportLogsSuccessfulCall", func(t *testing.T) {
		w, body := app.do(t, http.MethodPost, "/api/consultant/reports", url.Values{"consultant_id": {"ASHA"}}, validReport("ACTIVELY INTERESTED"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotEmpty(t, body["report_id"])

		w, body = app.do(t, http.MethodGet, "/api/consultant/calls/ASHA", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := body["stats"].(map[string]interface{})
		assert.EqualValues(t, 1, stats["total_calls"])
		assert.EqualValues(t, 1, stats["successful_calls"])

		w, body = app.do(t, http.MethodGet, "/api/consultant/reports/ASHA", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, body["count"])
	})

	t.Run("ReportRejections", func(t *testing.T) {
		w, body := app.do(t, http.MethodPost, "/api/consultant/reports", url.Values{"consultant_id": {"NOBODY"}}, validReport("ACTIVELY INTERESTED"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid consultant ID", body["detail"])

		w, _ = app.do(t, http.MethodPost, "/api/consultant/reports", url.Values{"consultant_id": {"ASHA"}}, validReport("MAYBE"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("LogCall", func(t *testing.T) {
		w, body := app.do(t, http.MethodPost, "/api/consultant/calls", url.Values{"consultant_id": {"RAVI"}}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, body["call_id"])

		w, _ = app.do(t, http.MethodPost, "/api/consultant/calls", url.Values{"consultant_id": {"RAVI"}, "call_type": {"voicemail"}}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, body = app.do(t, http.MethodGet, "/api/consultant/calls/RAVI", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := body["stats"].(map[string]interface{})
		assert.EqualValues(t, 1, stats["attempted_calls"])
	})
}

func TestAdminRoutes(t *testing.T) {
	app := newTestApp(t)

	t.Run("VerifyPassword", func(t *testing.T) {
		w, _ := app.do(t, http.MethodPost, "/api/admin/verify-password", url.Values{"password": {adminSecret}}, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, body := app.do(t, http.MethodPost, "/api/admin/verify-password", url.Values{"password": {"nope"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "AUTH_002", body["code"])
	})

	t.Run("ConsultantRoster", func(t *testing.T) {
		w, _ := app.do(t, http.MethodPost, "/api/admin/consultants", url.Values{"user_id": {"NEHA"}, "name": {"Neha Roy"}, "password": {"neha-pw"}}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = app.do(t, http.MethodPost, "/api/admin/consultants", url.Values{"user_id": {"NEHA"}, "name": {"Other"}, "password": {"x"}}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)

		w, _ = app.do(t, http.MethodPut, "/api/admin/consultants/NEHA", url.Values{"new_user_id": {"NEHA2"}}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, body := app.do(t, http.MethodPost, "/api/consultant/login", url.Values{"user_id": {"NEHA2"}, "password": {"neha-pw"}}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Neha Roy", body["consultant_name"])

		w, _ = app.do(t, http.MethodDelete, "/api/admin/consultants/NEHA2", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = app.do(t, http.MethodDelete, "/api/admin/consultants/NEHA2", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, body = app.do(t, http.MethodGet, "/api/admin/consultants", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, body["consultants"], 2)
	})

	t.Run("Admissions", func(t *testing.T) {
		w, body := app.do(t, http.MethodPost, "/api/admin/admissions", url.Values{
			"student_name":   {"Meera"},
			"course":         {"B.Tech CSE"},
			"college":        {"BITS Pilani"},
			"admission_date": {"2026-07-01"},
			"consultant_id":  {"ASHA"},
			"payout_amount":  {"15000"},
		}, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		id := body["admission_id"].(string)

		w, _ = app.do(t, http.MethodPut, "/api/admin/admissions/"+id, url.Values{"payout_status": {"credited"}}, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w, body = app.do(t, http.MethodGet, "/api/consultant/admissions/ASHA", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.EqualValues(t, 1, body["count"])
		admission := body["admissions"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "Asha Sen", admission["consultant_name"])

		w, _ = app.do(t, http.MethodPut, "/api/admin/admissions/"+id, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = app.do(t, http.MethodDelete, "/api/admin/admissions/"+id, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("BulkDelete", func(t *testing.T) {
		w, _ := app.do(t, http.MethodPost, "/api/consultant/reports", url.Values{"consultant_id": {"RAVI"}}, validReport("LESS INTERESTED"))
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = app.do(t, http.MethodPost, "/api/admin/bulk-delete", url.Values{"password": {"nope"}, "delete_type": {"all"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w, _ = app.do(t, http.MethodPost, "/api/admin/bulk-delete", url.Values{"password": {adminSecret}, "delete_type": {"everything"}}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = app.do(t, http.MethodPost, "/api/admin/bulk-delete", url.Values{"password": {adminSecret}, "delete_type": {"reports"}, "start_date": {"01/02/2026"}}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, body := app.do(t, http.MethodPost, "/api/admin/bulk-delete", url.Values{
			"password":      {adminSecret},
			"delete_type":   {"all"},
			"consultant_id": {"RAVI"},
		}, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		counts := body["deleted_counts"].(map[string]interface{})
		assert.EqualValues(t, 1, counts["reports"])
		assert.EqualValues(t, 1, counts["calls"])
		assert.EqualValues(t, 0, counts["queries"])
	})

	t.Run("ResetConsultantCalls", func(t *testing.T) {
		w, _ := app.do(t, http.MethodPost, "/api/consultant/calls", url.Values{"consultant_id": {"ASHA"}, "call_type": {"failed"}}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, body := app.do(t, http.MethodDelete, "/api/admin/calls/ASHA", url.Values{"password": {adminSecret}}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, body["deleted_count"])

		w, body = app.do(t, http.MethodGet, "/api/admin/calls", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		overall := body["overall_stats"].(map[string]interface{})
		assert.EqualValues(t, 0, overall["total_calls"])
	})

	t.Run("Export", func(t *testing.T) {
		w, _ := app.do(t, http.MethodGet, "/api/admin/export/reports", url.Values{"password": {adminSecret}}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "reports_")
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

		w, _ = app.do(t, http.MethodGet, "/api/admin/export/reports", url.Values{"password": {"nope"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w, _ = app.do(t, http.MethodGet, "/api/admin/export/invoices", url.Values{"password": {adminSecret}}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdvisorRoutes(t *testing.T) {
	app := newTestApp(t)

	w, body := app.do(t, http.MethodPost, "/api/edu-buddy/chat", nil, map[string]string{"message": "Which branch?", "session_id": "s-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Consider B.Tech CSE.", body["response"])
	assert.Equal(t, "s-1", body["session_id"])

	w, body = app.do(t, http.MethodGet, "/api/edu-buddy/popular-queries", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["queries"])

	w, body = app.do(t, http.MethodPost, "/api/edu-buddy/analyze-student", url.Values{
		"subjects":         {"PCM"},
		"marks_percentage": {"0"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	profile := body["student_profile"].(map[string]interface{})
	assert.Equal(t, "General", profile["category"])

	w, _ = app.do(t, http.MethodPost, "/api/edu-buddy/analyze-student", url.Values{
		"subjects":         {"PCM"},
		"marks_percentage": {"140"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	t.Run("UpstreamFailure", func(t *testing.T) {
		app.completer.err = errors.New("connection reset")
		w, body := app.do(t, http.MethodPost, "/api/edu-buddy/chat", nil, map[string]string{"message": "hi", "session_id": "s-2"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to get response", body["detail"])

		app.completer.err = llm.ErrMissingAPIKey
		w, body = app.do(t, http.MethodPost, "/api/edu-buddy/chat", nil, map[string]string{"message": "hi", "session_id": "s-2"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "LLM API key not configured", body["detail"])
	})
}

func TestCatalogAndHealthRoutes(t *testing.T) {
	app := newTestApp(t)

	w, body := app.do(t, http.MethodGet, "/api/colleges", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	colleges := body["colleges"].([]interface{})
	require.NotEmpty(t, colleges)
	firstID := colleges[0].(map[string]interface{})["id"].(string)

	w, _ = app.do(t, http.MethodGet, "/api/colleges/"+firstID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = app.do(t, http.MethodGet, "/api/colleges/no-such-college", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = app.do(t, http.MethodGet, "/api/courses", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := body["courses"].([]interface{})[0].(map[string]interface{})
	name := first["name"].(string)

	w, body = app.do(t, http.MethodGet, "/api/courses/"+strings.ToLower(name), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first["id"], body["course"].(map[string]interface{})["id"])

	w, body = app.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	w, _ = app.do(t, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
