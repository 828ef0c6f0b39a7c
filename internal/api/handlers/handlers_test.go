package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microgrid-sim/internal/api/models"
	"microgrid-sim/internal/store"
)

func newTestRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sim := NewSimulateHandler(st)
	r.POST("/api/v1/simulate", sim.RunSimulation)
	r.POST("/api/v1/compare", NewCompareHandler().CompareStrategies)
	r.GET("/api/v1/strategies", NewStrategiesHandler().ListStrategies)
	r.GET("/api/v1/runs", NewRunsHandler(st).ListRuns)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func simulateBody(seed int64) map[string]any {
	return map[string]any{
		"config": map[string]any{
			"simulation": map[string]any{
				"duration_days": 1,
				"season":        "Summer",
				"seed":          seed,
			},
			"solar": map[string]any{"panel_peak_kw": 5.0},
			"load":  map[string]any{"base_load_kw": 0.5, "peak_load_kw": 3.0, "peak_start_hour": 18, "peak_end_hour": 21},
			"grid":  map[string]any{"export_limit_kw": 20.0, "cost_import_cents": 0.75, "price_export_cents": 0.90},
		},
	}
}

func TestRunSimulation_OK(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/api/v1/simulate", simulateBody(7))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 24, resp.Summary.Steps)
	assert.Equal(t, int64(7), resp.Summary.Seed)
	assert.Empty(t, resp.Steps)
	assert.Zero(t, resp.RunID)
}

func TestRunSimulation_IncludeSteps(t *testing.T) {
	r := newTestRouter(nil)

	body := simulateBody(7)
	body["include_steps"] = true
	w := postJSON(t, r, "/api/v1/simulate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Steps, 24)
}

func TestRunSimulation_SavesToStore(t *testing.T) {
	st, err := store.NewStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()
	r := newTestRouter(st)

	body := simulateBody(7)
	body["save"] = true
	w := postJSON(t, r, "/api/v1/simulate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.RunID)

	runs, err := st.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, resp.Summary.Strategy, runs[0].Strategy)
}

func TestRunSimulation_InvalidConfig(t *testing.T) {
	r := newTestRouter(nil)

	body := simulateBody(7)
	body["config"].(map[string]any)["strategy"] = map[string]any{"name": "YOLO_PRIORITY"}
	w := postJSON(t, r, "/api/v1/simulate", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CONFIG")
}

func TestRunSimulation_MalformedJSON(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestCompareStrategies_OK(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/api/v1/compare", simulateBody(11))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Seed)
	require.Len(t, resp.Outcomes, 3)
	for i := 1; i < len(resp.Outcomes); i++ {
		assert.LessOrEqual(t, resp.Outcomes[i-1].Summary.NetCostCents, resp.Outcomes[i].Summary.NetCostCents)
	}
}

func TestListStrategies(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Strategies []models.StrategyInfo `json:"strategies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Strategies, 3)
	for _, s := range resp.Strategies {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
	}
}

func TestListRuns_StoreDisabled(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "STORE_DISABLED")
}

func TestListRuns_BadLimit(t *testing.T) {
	st, err := store.NewStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()
	r := newTestRouter(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs?limit=zero", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}
