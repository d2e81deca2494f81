package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lastseen/config"
	"lastseen/internal/domain/constants"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	mockUsecase "lastseen/internal/mocks/usecase"
	"lastseen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, audience string) (*PushHandler, *mockUsecase.MockNotifierUsecase) {
	t.Helper()

	notifier := mockUsecase.NewMockNotifierUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{PushAudience: audience}}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
		Notifier: notifier,
	}), notifier
}

func pushBody(t *testing.T, data string) string {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":      data,
			"messageId": "msg-1",
		},
		"subscription": "projects/p/subscriptions/location-events-sub",
	})
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event *service.LocationEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.LocationEvent{
		RequestID: "req-42",
		Type:      constants.LocationEventLogged,
		OwnerID:   "0b7c6a34-5f42-4a8e-9a55-0c3d7b0c2e11",
		RecordID:  "f3f0b2a8-11aa-4a3c-8d7e-6c54d8a1f9b0",
	}

	t.Run("delivers the decoded event", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, "")
		notifier.EXPECT().
			HandleLocationEvent(mock.Anything, mock.MatchedBy(func(got *service.LocationEvent) bool {
				return *got == *event
			})).
			Return(nil).Once()

		rec := doPush(h, pushBody(t, encodedEvent(t, event)), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid events are acknowledged", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, "")
		notifier.EXPECT().HandleLocationEvent(mock.Anything, mock.Anything).
			Return(errors.Wrap(usecase.ErrInvalidEvent, "type \"x\"")).Once()

		rec := doPush(h, pushBody(t, encodedEvent(t, event)), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("transient failures ask for redelivery", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, "")
		notifier.EXPECT().HandleLocationEvent(mock.Anything, mock.Anything).
			Return(errors.New("connection refused")).Once()

		rec := doPush(h, pushBody(t, encodedEvent(t, event)), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("undecodable data is acknowledged without processing", func(t *testing.T) {
		h, _ := newTestPushHandler(t, "")

		rec := doPush(h, pushBody(t, "%%% not base64"), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		h, _ := newTestPushHandler(t, "")

		rec := doPush(h, "{", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	const audience = "https://notifier.example/push"
	event := &service.LocationEvent{Type: constants.LocationEventCleared, OwnerID: "0b7c6a34-5f42-4a8e-9a55-0c3d7b0c2e11"}

	validator := func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
		if aud != audience {
			return nil, errors.New("audience mismatch")
		}
		switch token {
		case "google":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "other-issuer":
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		case "unverified":
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, nil
		default:
			return nil, errors.New("bad signature")
		}
	}

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "bad signature", authorization: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "foreign issuer", authorization: "Bearer other-issuer", wantStatus: http.StatusUnauthorized},
		{name: "unverified e-mail", authorization: "Bearer unverified", wantStatus: http.StatusUnauthorized},
		{name: "valid token", authorization: "Bearer google", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := newTestPushHandler(t, audience)
			h.WithTokenValidator(validator)
			if tt.wantStatus == http.StatusNoContent {
				notifier.EXPECT().HandleLocationEvent(mock.Anything, mock.Anything).Return(nil).Once()
			}

			rec := doPush(h, pushBody(t, encodedEvent(t, event)), tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
