package metrics

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"snapgram/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type pushRecorder struct {
	mu      sync.Mutex
	methods []string
	paths   []string
}

func (r *pushRecorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		_, _ = io.Copy(io.Discard, req.Body)
		r.mu.Lock()
		r.methods = append(r.methods, req.Method)
		r.paths = append(r.paths, req.URL.Path)
		r.mu.Unlock()
		w.WriteHeader(status)
	}
}

func newTestParams(t *testing.T, cache config.CacheConfig, out io.Writer) (Params, *fxtest.Lifecycle) {
	t.Helper()
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{}
	cfg.Cache = cache

	return Params{
		Lc:     lc,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(out, nil)),
	}, lc
}

func registerCounters(t *testing.T, reg prometheus.Registerer) {
	t.Helper()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_requests_total", Help: "requests"}, []string{"result"})
	failures := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_failures_total", Help: "failures"})
	require.NoError(t, reg.Register(requests))
	require.NoError(t, reg.Register(failures))

	requests.WithLabelValues("hit").Add(2)
	requests.WithLabelValues("miss").Inc()
}

func TestNewRegistry_LogsSnapshotOnStop(t *testing.T) {
	var out bytes.Buffer
	params, lc := newTestParams(t, config.CacheConfig{Metrics: true}, &out)

	reg := NewRegistry(params)
	registerCounters(t, reg)

	lc.RequireStart()
	assert.Empty(t, out.String())
	lc.RequireStop()

	line := out.String()
	assert.Contains(t, line, `msg="Metrics snapshot"`)
	assert.Contains(t, line, "test_requests_total.hit=2")
	assert.Contains(t, line, "test_requests_total.miss=1")
	assert.Contains(t, line, "test_failures_total=0")
}

func TestNewRegistry_DisabledReportsNothing(t *testing.T) {
	var out bytes.Buffer
	rec := &pushRecorder{}
	srv := httptest.NewServer(rec.handler(http.StatusOK))
	defer srv.Close()
	params, lc := newTestParams(t, config.CacheConfig{PushGatewayURL: srv.URL}, &out)

	reg := NewRegistry(params)
	registerCounters(t, reg)
	lc.RequireStart().RequireStop()

	assert.Empty(t, out.String())
	assert.Empty(t, rec.methods)
}

func TestNewRegistry_PushesOnStop(t *testing.T) {
	rec := &pushRecorder{}
	srv := httptest.NewServer(rec.handler(http.StatusOK))
	defer srv.Close()
	params, lc := newTestParams(t, config.CacheConfig{Metrics: true, PushGatewayURL: srv.URL}, io.Discard)

	reg := NewRegistry(params)
	registerCounters(t, reg)
	lc.RequireStart().RequireStop()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{http.MethodPut}, rec.methods)
	assert.Equal(t, []string{"/metrics/job/" + JobName}, rec.paths)
}

func TestNewRegistry_PushFailureDoesNotFailStop(t *testing.T) {
	var out bytes.Buffer
	rec := &pushRecorder{}
	srv := httptest.NewServer(rec.handler(http.StatusInternalServerError))
	defer srv.Close()
	params, lc := newTestParams(t, config.CacheConfig{Metrics: true, PushGatewayURL: srv.URL}, &out)

	reg := NewRegistry(params)
	registerCounters(t, reg)
	lc.RequireStart().RequireStop()

	assert.Contains(t, out.String(), `msg="Failed to push metrics"`)
}

func TestPush_ReturnsGatewayError(t *testing.T) {
	rec := &pushRecorder{}
	srv := httptest.NewServer(rec.handler(http.StatusBadRequest))
	defer srv.Close()
	reg := prometheus.NewRegistry()
	registerCounters(t, reg)

	err := Push(context.Background(), reg, srv.URL)

	assert.Error(t, err)
}
