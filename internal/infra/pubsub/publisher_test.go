package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profile/config"
	"profile/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.ProfileEvent {
	return &service.ProfileEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.ProfileCreated,
		ProfileID:  "5f0c7a4e-8f7e-4c1a-9d51-0c6f0b1f3a11",
		Kind:       "merchant",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var (
		got       PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishProfileEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, "2026-01-02T03:04:05Z", got.Message.PublishTime)
	assert.Equal(t, map[string]string{
		"event_type": "profile.created",
		"profile_id": event.ProfileID,
		"kind":       "merchant",
		"request_id": "req-1",
	}, got.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.ProfileEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.ProfileID, decoded.ProfileID)
	assert.Equal(t, service.ProfileCreated, decoded.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishProfileEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "500")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "unset", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8090/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
			lc.RequireStart().RequireStop()
		})
	}
}
