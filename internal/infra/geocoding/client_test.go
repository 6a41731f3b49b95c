package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"profile/config"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type clientFixtures struct {
	client  *Client
	metrics *Metrics
	hits    *atomic.Int32
}

func createTestClient(t *testing.T, maxRetries int, handler http.HandlerFunc) clientFixtures {
	t.Helper()

	hits := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	metrics := NewMetrics(prometheus.NewRegistry())
	cfg := &config.LocationConfig{
		BaseURL:      server.URL + "/",
		Timeout:      time.Second,
		MaxRetries:   maxRetries,
		RetryBackoff: time.Millisecond,
	}

	return clientFixtures{
		client:  NewClient(cfg, server.Client(), metrics, newDiscardLogger()),
		metrics: metrics,
		hits:    hits,
	}
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestClient_Resolve_Success(t *testing.T) {
	var gotPath, gotPincode string
	fx := createTestClient(t, 2, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPincode = r.URL.Query().Get("pincode")
		respond(http.StatusOK, `{"lat": 1.3521, "lng": 103.8198}`)(w, r)
	})

	coords, err := fx.client.Resolve(context.Background(), "560001")

	require.NoError(t, err)
	assert.InDelta(t, 1.3521, coords.Latitude, 1e-9)
	assert.InDelta(t, 103.8198, coords.Longitude, 1e-9)
	assert.Equal(t, "/location/coordinates", gotPath)
	assert.Equal(t, "560001", gotPincode)
	assert.Equal(t, int32(1), fx.hits.Load())
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.Resolutions.WithLabelValues(outcomeSuccess)), 0)
}

func TestClient_Resolve_EscapesPincode(t *testing.T) {
	var gotPincode string
	fx := createTestClient(t, 0, func(w http.ResponseWriter, r *http.Request) {
		gotPincode = r.URL.Query().Get("pincode")
		respond(http.StatusOK, `{"lat": 1, "lng": 2}`)(w, r)
	})

	_, err := fx.client.Resolve(context.Background(), "56 0&x=1")

	require.NoError(t, err)
	assert.Equal(t, "56 0&x=1", gotPincode)
}

func TestClient_Resolve_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "null body", body: "null"},
		{name: "missing lng", body: `{"lat": 1.0}`},
		{name: "null lat", body: `{"lat": null, "lng": 2.0}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClient(t, 2, respond(http.StatusOK, tt.body))

			_, err := fx.client.Resolve(context.Background(), "560001")

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrCoordinatesNotFound))
			assert.Equal(t, int32(1), fx.hits.Load(), "not found must not be retried")
			assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.Resolutions.WithLabelValues(outcomeNotFound)), 0)
		})
	}
}

func TestClient_Resolve_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantHits int32
	}{
		{name: "client error is not retried", status: http.StatusBadRequest, body: `{}`, wantHits: 1},
		{name: "not found status is not retried", status: http.StatusNotFound, body: ``, wantHits: 1},
		{name: "server error is retried", status: http.StatusBadGateway, body: ``, wantHits: 3},
		{name: "malformed json", status: http.StatusOK, body: `{"lat":`, wantHits: 1},
		{name: "out of range", status: http.StatusOK, body: `{"lat": 91, "lng": 0}`, wantHits: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClient(t, 2, respond(tt.status, tt.body))

			_, err := fx.client.Resolve(context.Background(), "560001")

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrLocationService))
			assert.False(t, errors.Is(err, domainerrors.ErrCoordinatesNotFound))
			assert.Equal(t, tt.wantHits, fx.hits.Load())
			assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.Resolutions.WithLabelValues(outcomeError)), 0)
		})
	}
}

func TestClient_Resolve_RecoversAfterServerError(t *testing.T) {
	var calls atomic.Int32
	fx := createTestClient(t, 2, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			respond(http.StatusServiceUnavailable, "")(w, r)

			return
		}
		respond(http.StatusOK, `{"lat": 12.97, "lng": 77.59}`)(w, r)
	})

	coords, err := fx.client.Resolve(context.Background(), "560001")

	require.NoError(t, err)
	assert.InDelta(t, 12.97, coords.Latitude, 1e-9)
	assert.Equal(t, int32(2), fx.hits.Load())
}

func TestClient_Resolve_TimeoutPerAttempt(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	fx := createTestClient(t, 1, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	fx.client.timeout = 20 * time.Millisecond

	start := time.Now()
	_, err := fx.client.Resolve(context.Background(), "560001")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationService))
	assert.Equal(t, int32(2), fx.hits.Load())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestClient_Resolve_CancelledContext(t *testing.T) {
	fx := createTestClient(t, 3, respond(http.StatusInternalServerError, ""))
	fx.client.retryBackoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := fx.client.Resolve(ctx, "560001")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationService))
	assert.Equal(t, int32(1), fx.hits.Load())
}

func TestClient_Resolve_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(&config.LocationConfig{
		BaseURL:      baseURL,
		Timeout:      time.Second,
		MaxRetries:   1,
		RetryBackoff: time.Millisecond,
	}, nil, nil, newDiscardLogger())

	_, err := client.Resolve(context.Background(), "560001")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationService))
}

func TestClient_Resolve_NoRetriesConfigured(t *testing.T) {
	fx := createTestClient(t, 0, respond(http.StatusBadGateway, ""))

	_, err := fx.client.Resolve(context.Background(), "560001")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationService))
	assert.Equal(t, int32(1), fx.hits.Load())
}

func TestLinearBackOff(t *testing.T) {
	b := &linearBackOff{step: 100 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, b.NextBackOff())
	assert.Equal(t, 200*time.Millisecond, b.NextBackOff())
	assert.Equal(t, 300*time.Millisecond, b.NextBackOff())

	b.Reset()
	assert.Equal(t, 100*time.Millisecond, b.NextBackOff())
}
