package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"lastseen/config"
	deliverycontext "lastseen/internal/delivery/context"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/pubsub"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const bearerPrefix = "Bearer "

// TokenValidator verifies a Google-signed OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push deliveries of location events.
type PushHandler struct {
	audience      string
	validateToken TokenValidator
	logger        *slog.Logger
	notifier      usecase.NotifierUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier usecase.NotifierUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push authentication is
// enforced when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:      audience,
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		notifier:      params.Notifier,
	}
}

// WithTokenValidator replaces the OIDC validator.
func (h *PushHandler) WithTokenValidator(v TokenValidator) *PushHandler {
	h.validateToken = v

	return h
}

// HandlePush processes one pushed message. Pub/Sub redelivers on any non-2xx
// answer, so only failures worth retrying return 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeLocationEvent()
	if err != nil {
		// Acknowledge: a malformed payload will never decode.
		h.logger.Error("[Worker] Failed to decode location event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	requestID := h.extractRequestID(ctx, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing location event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("type", event.Type),
		slog.String("owner_id", event.OwnerID),
	)

	if err := h.notifier.HandleLocationEvent(ctx, event); err != nil {
		if errors.Is(err, usecase.ErrInvalidEvent) {
			reqLogger.Warn("[Worker] Dropping invalid location event", slog.Any("error", err))

			return c.NoContent(http.StatusNoContent)
		}

		reqLogger.Error("[Worker] Failed to process location event", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusNoContent)
}

// extractRequestID prefers the id carried by the event, then the one the
// request-id middleware assigned.
func (h *PushHandler) extractRequestID(ctx context.Context, event *service.LocationEvent) string {
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken checks the OIDC token Pub/Sub attaches to authenticated pushes.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), bearerPrefix)
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.validateToken(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
