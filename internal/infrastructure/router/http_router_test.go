package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/domain/repository"
	"ferry-schedule-service/internal/interface/handler"
	"ferry-schedule-service/internal/usecase"
	"ferry-schedule-service/pkg/logger"
	"ferry-schedule-service/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRoutes struct {
	routes []*entity.Route
}

func (m *memoryRoutes) List(ctx context.Context) ([]*entity.Route, error) {
	out := append([]*entity.Route(nil), m.routes...)
	sort.Slice(out, func(i, j int) bool { return out[i].FromCity < out[j].FromCity })
	return out, nil
}

func (m *memoryRoutes) FindByID(ctx context.Context, id string) (*entity.Route, error) {
	for _, r := range m.routes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryRoutes) Count(ctx context.Context) (int64, error) {
	return int64(len(m.routes)), nil
}

func (m *memoryRoutes) InsertMany(ctx context.Context, routes []*entity.Route) error {
	m.routes = append(m.routes, routes...)
	return nil
}

func newTestServer(t *testing.T, staticDir string) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	routes := usecase.DefaultRoutes()
	routes[0].ID = "rishra"
	routes[1].ID = "konnagar"

	m := metrics.NewMetrics("ferry")
	svc := usecase.NewScheduleService(&memoryRoutes{routes: routes}, time.UTC, m, logger.NewNopLogger())
	svc.SetClock(func() time.Time { return time.Date(2025, 6, 1, 12, 50, 0, 0, time.UTC) })

	h := handler.NewHandler(svc, logger.NewNopLogger())
	srv := httptest.NewServer(NewHTTPRouter(h, staticDir, logger.NewNopLogger(), m))
	t.Cleanup(srv.Close)
	return srv, m
}

func getJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestRouterServesAPI(t *testing.T) {
	srv, _ := newTestServer(t, "")

	var routes []entity.RouteSummary
	resp := getJSON(t, srv.URL+"/api/routes", &routes)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Len(t, routes, 2)
	assert.Equal(t, "Konnagar", routes[0].FromCity)

	var schedule entity.ScheduleResult
	resp = getJSON(t, srv.URL+"/api/schedule/rishra", &schedule)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.ServiceRunning, schedule.ServiceStatus)
	assert.Equal(t, "12:50 PM", schedule.CurrentTime)
	require.NotNil(t, schedule.NextDeparture)
	assert.Equal(t, 780, schedule.NextDeparture.MinutesOfDay)

	resp = getJSON(t, srv.URL+"/api/schedule/rishra?at=04:00", &schedule)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.ServiceBeforeStart, schedule.ServiceStatus)

	var detail handler.RouteDetail
	resp = getJSON(t, srv.URL+"/api/routes/konnagar", &detail)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, detail.IntervalMinutes)

	resp = getJSON(t, srv.URL+"/api/schedule/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouterHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t, "")

	resp := getJSON(t, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	getJSON(t, srv.URL+"/api/schedule/rishra", nil)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, `ferry_schedules_built_total{status="running"} 1`)
	assert.Contains(t, body, `ferry_http_requests_total{code="200",method="GET",route="/api/schedule/:id"} 1`)
}

func TestRouterStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("boat tracker"), 0o600))
	srv, _ := newTestServer(t, dir)

	resp, err := http.Get(srv.URL + "/some/page")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/nothing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouterWithoutStaticDir(t *testing.T) {
	srv, _ := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/some/page")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
