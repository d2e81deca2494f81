package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lastseen/config"
	"lastseen/internal/domain/constants"
	"lastseen/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_RoundTrip(t *testing.T) {
	var received *service.LocationEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var msg PushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, constants.LocationEventLogged, msg.Message.Attributes["type"])
		assert.NotEmpty(t, msg.Message.MessageID)

		event, err := msg.DecodeLocationEvent()
		require.NoError(t, err)
		received = event
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	event := &service.LocationEvent{
		RequestID:  "req-1",
		Type:       constants.LocationEventLogged,
		OwnerID:    "3f1c1f7e-8d8e-4a3b-9a43-0c4c1d1b2a10",
		RecordID:   "7b0f2b9e-5d1d-4d3f-8f3e-2c1b0a9f8e7d",
		PlaceLabel: "Xinyi, Taipei",
	}
	require.NoError(t, publisher.PublishLocationEvent(context.Background(), event))
	require.NotNil(t, received)
	assert.Equal(t, event, received)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishLocationEvent(context.Background(), &service.LocationEvent{Type: constants.LocationEventCleared})
	assert.Error(t, err)
}

func TestPushMessage_DecodeLocationEvent_Invalid(t *testing.T) {
	var msg PushMessage
	msg.Message.Data = "%%%"
	_, err := msg.DecodeLocationEvent()
	assert.Error(t, err)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := NewEventPublisher(PublisherParams{Lc: lc, Ctx: context.Background(), Config: &config.Config{}, Logger: testLogger()})
	require.NoError(t, err)
	assert.NoError(t, publisher.PublishLocationEvent(context.Background(), &service.LocationEvent{}))

	_, err = NewEventPublisher(PublisherParams{Lc: lc, Ctx: context.Background(), Config: &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
	}, Logger: testLogger()})
	assert.Error(t, err, "local provider needs an endpoint")

	_, err = NewEventPublisher(PublisherParams{Lc: lc, Ctx: context.Background(), Config: &config.Config{
		PubSub: &config.PubSubConfig{Provider: "kafka"},
	}, Logger: testLogger()})
	assert.Error(t, err)
}
