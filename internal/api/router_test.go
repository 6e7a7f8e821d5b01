package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ncaldwell/flightmap-backend-go/internal/config"
	"github.com/ncaldwell/flightmap-backend-go/internal/figure"
	"github.com/ncaldwell/flightmap-backend-go/internal/handler"
	"github.com/ncaldwell/flightmap-backend-go/internal/models"
	"github.com/ncaldwell/flightmap-backend-go/internal/repository"
	"github.com/ncaldwell/flightmap-backend-go/internal/service"
)

const scenarioCSV = `Year,city1,city2,airport_1,passengers,Geocoded_City1,Geocoded_City2
2020,Austin,Dallas,AUS,100,"30.0, -97.0","32.0, -96.0"
2021,Austin,Houston,AUS,50,"30.0, -97.0","29.7, -95.3"
`

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	csvPath := filepath.Join(t.TempDir(), "routes.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(scenarioCSV), 0o644))

	repo := repository.NewRouteRepository(db)
	datasetService := service.NewDatasetService(repo, csvPath)
	_, err = datasetService.Import()
	require.NoError(t, err)

	cfg := &config.Config{Port: ":8080", CSVPath: csvPath, JWTSecret: "test-secret"}
	return SetupRouter(cfg,
		handler.NewFigureHandler(service.NewFigureService(repo)),
		handler.NewDatasetHandler(datasetService))
}

func doRequest(t *testing.T, router *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, data interface{}) {
	t.Helper()
	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, 0, envelope.Code)
	require.NoError(t, json.Unmarshal(envelope.Data, data))
}

func TestDashboardPage(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "graph1")
}

func TestHealth(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFilterOptions(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var opts models.FilterOptions
	decodeData(t, w, &opts)
	assert.Equal(t, []int{2020, 2021}, opts.Years)
	assert.Equal(t, []string{"Austin"}, opts.Cities)
}

func TestGetFigureFilteredByYear(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/figure?year=2020", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fig figure.Figure
	decodeData(t, w, &fig)

	// One marker trace for Austin plus exactly one line trace.
	require.Len(t, fig.Data, 2)
	marker := fig.Data[0]
	require.Len(t, marker.Lon, 1)
	assert.Equal(t, -97.0, marker.Lon[0])
	assert.Equal(t, 30.0, marker.Lat[0])
	require.Len(t, marker.Text, 1)
	assert.Equal(t,
		"City: Austin<br>Total Flights: 1<br>Passengers: 100<br>Airport: AUS",
		marker.Text[0])

	line := fig.Data[1]
	assert.Equal(t, "lines", line.Mode)
	assert.Equal(t, []float64{-97.0, -96.0}, line.Lon)
	assert.Equal(t, []float64{30.0, 32.0}, line.Lat)
}

func TestGetFigureEmptySelectionEqualsFullSelection(t *testing.T) {
	router := newTestServer(t)

	unrestricted := doRequest(t, router, http.MethodGet, "/api/v1/figure", nil)
	explicit := doRequest(t, router, http.MethodGet,
		"/api/v1/figure?year=2020&year=2021&city=Austin", nil)

	require.Equal(t, http.StatusOK, unrestricted.Code)
	require.Equal(t, http.StatusOK, explicit.Code)
	assert.JSONEq(t, unrestricted.Body.String(), explicit.Body.String())
}

func TestGetFigureAllFilteredOut(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/figure?city=Nowhere", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fig figure.Figure
	decodeData(t, w, &fig)
	require.Len(t, fig.Data, 1)
	assert.Empty(t, fig.Data[0].Lon)
}

func TestGetFigureInvalidYear(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/figure?year=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRouteCounts(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/routes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Routes []models.RouteCount `json:"routes"`
		Count  int                 `json:"count"`
	}
	decodeData(t, w, &data)
	require.Equal(t, 2, data.Count)
	assert.Equal(t, "Austin", data.Routes[0].CityA)
	assert.Equal(t, "Dallas", data.Routes[0].CityB)
	assert.Equal(t, 1, data.Routes[0].FlightCount)
	assert.Greater(t, data.Routes[0].DistanceKm, 0.0)
}

func TestGetCitySummaries(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/cities?year=2021", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Cities []models.CitySummary `json:"cities"`
		Count  int                  `json:"count"`
	}
	decodeData(t, w, &data)
	require.Equal(t, 1, data.Count)
	assert.Equal(t, "Austin", data.Cities[0].City)
	assert.Equal(t, int64(50), data.Cities[0].Passengers)
}

func TestGetSummary(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/stats/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.DatasetSummary
	decodeData(t, w, &summary)
	assert.Equal(t, int64(2), summary.RecordCount)
	assert.Equal(t, 2020, summary.FirstYear)
	assert.Equal(t, 2021, summary.LastYear)
	assert.Equal(t, int64(150), summary.TotalPassengers)
	assert.Equal(t, 75.0, summary.MeanPassengers)
}

func TestAdminReloadRequiresToken(t *testing.T) {
	router := newTestServer(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/reload", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/admin/reload",
		map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminReload(t *testing.T) {
	router := newTestServer(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/reload",
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Imported int `json:"imported"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, 2, data.Imported)

	// Dataset still answers queries after the reload.
	w = doRequest(t, router, http.MethodGet, "/api/v1/filters", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
