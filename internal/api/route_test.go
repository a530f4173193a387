package api_test

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/testutil"
	"Pulseboard/internal/wire"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	cfg := &config.Config{
		Cors:  config.CorsConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Cron:  config.CronConfig{ReconcileSpec: "@daily"},
		Stats: config.StatsConfig{DefaultWindowDays: 30, CacheTTLMinutes: 60},
	}
	app, err := wire.BuildApplication(db, cfg)
	require.NoError(t, err)
	return app.Router, db
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestPlatformLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/platform-management", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(r, http.MethodPost, "/api/platform-management", `{"name":"Twitter","icon":"twitter","color":"#1DA1F2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created dto.PlatformDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Twitter", created.Name)

	w = doRequest(r, http.MethodGet, "/api/platform-management", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.PlatformDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	w = doRequest(r, http.MethodGet, "/api/stats/engagement", "")
	require.Equal(t, http.StatusOK, w.Code)
	var engagement []dto.EngagementDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &engagement))
	require.Len(t, engagement, 2)
	assert.Equal(t, int64(585), engagement[0].TotalEngagement)
	assert.Equal(t, int64(650), engagement[1].TotalEngagement)

	w = doRequest(r, http.MethodDelete, "/api/platform-management", `{"id":`+jsonNumber(created.ID)+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Platform Twitter deleted successfully"}`, w.Body.String())

	w = doRequest(r, http.MethodDelete, "/api/platform-management", `{"id":`+jsonNumber(created.ID)+`}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Platform not found"}`, w.Body.String())
}

func jsonNumber(v uint64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestValidationErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		method, path, body string
		want               string
	}{
		{http.MethodPost, "/api/platform-management", `{"name":"X","icon":"x"}`, `{"error":"Name, icon, and color are required"}`},
		{http.MethodPost, "/api/platform-management", `{"name":`, `{"error":"Invalid request parameters"}`},
		{http.MethodPost, "/api/platform-management", `{"name":1,"icon":"x","color":"#fff"}`, `{"error":"Invalid request parameters"}`},
		{http.MethodPost, "/api/platform-management", `{"name":"   ","icon":"x","color":"#fff"}`, `{"error":"Name, icon, and color are required"}`},
		{http.MethodDelete, "/api/platform-management", `{}`, `{"error":"Platform ID is required"}`},
		{http.MethodDelete, "/api/platform-management", "", `{"error":"Platform ID is required"}`},
		{http.MethodGet, "/api/stats/audience?startDate=2026-13-01", "", `{"error":"Dates must use the YYYY-MM-DD format"}`},
		{http.MethodGet, "/api/stats/performance?startDate=2026-10-10&endDate=2026-10-01", "", `{"error":"startDate must not be after endDate"}`},
		{http.MethodGet, "/api/stats/engagement?platform=abc", "", `{"error":"Invalid request parameters"}`},
		{http.MethodGet, "/api/stats/kpis?date=yesterday", "", `{"error":"Dates must use the YYYY-MM-DD format"}`},
	}
	for _, tc := range cases {
		w := doRequest(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.path)
		assert.JSONEq(t, tc.want, w.Body.String(), tc.path)
	}
}

func TestStatsReadsReturnArrays(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{
		"/api/stats/audience", "/api/stats/engagement", "/api/stats/performance",
		"/api/stats/trends", "/api/stats/kpis", "/api/stats/platform", "/api/stats/comparison",
	} {
		w := doRequest(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}

	w := doRequest(r, http.MethodGet, "/api/stats/engagement/series", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"platforms":[],"points":[]}`, w.Body.String())
}

func TestStoreFailureIsGeneric(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Migrator().DropTable(&model.DashboardKpi{}))

	w := doRequest(r, http.MethodGet, "/api/stats/kpis", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch dashboard KPIs"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "dashboard_kpis")
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/platform-management", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
