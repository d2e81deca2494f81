package impl

import (
	"context"
	"fmt"
	"log/slog"

	"lastseen/internal/domain/constants"
	"lastseen/internal/domain/entity"
	"lastseen/internal/domain/repository"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/metrics"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
)

type notifierService struct {
	users           repository.UserRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	metrics         metrics.Recorder
	logger          *slog.Logger
}

// NewNotifierService creates the follower notification use case.
func NewNotifierService(
	users repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	recorder metrics.Recorder,
	logger *slog.Logger,
) usecase.NotifierUsecase {
	return &notifierService{
		users:           users,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		metrics:         recorder,
		logger:          logger,
	}
}

// HandleLocationEvent pushes the event to the active devices of every follower.
// Unlisted records are never announced. Tokens the provider rejects are removed.
func (s *notifierService) HandleLocationEvent(ctx context.Context, event *service.LocationEvent) error {
	if event == nil {
		return errors.Wrap(usecase.ErrInvalidEvent, "empty event")
	}
	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return errors.Wrapf(usecase.ErrInvalidEvent, "owner id %q", event.OwnerID)
	}
	if event.Type != constants.LocationEventLogged && event.Type != constants.LocationEventCleared {
		return errors.Wrapf(usecase.ErrInvalidEvent, "type %q", event.Type)
	}

	logger := s.logger.With(
		slog.String("request_id", event.RequestID),
		slog.String("owner_id", event.OwnerID),
		slog.String("type", event.Type),
	)

	if event.Visibility == entity.VisibilityUnlisted.String() {
		logger.DebugContext(ctx, "[Notifier] Skipping unlisted record")
		s.metrics.RecordPush(metrics.OutcomeSkipped, 0)

		return nil
	}

	owner, err := s.users.FindUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.WarnContext(ctx, "[Notifier] Owner no longer exists")
			return nil
		}

		return errors.Wrap(err, "find owner")
	}

	followers, err := s.users.FindFollowerIDs(ctx, ownerID)
	if err != nil {
		return errors.Wrap(err, "find followers")
	}
	if len(followers) == 0 {
		logger.DebugContext(ctx, "[Notifier] No followers")
		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUserIDs(ctx, followers)
	if err != nil {
		return errors.Wrap(err, "find follower devices")
	}
	if len(devices) == 0 {
		logger.DebugContext(ctx, "[Notifier] No active follower devices", slog.Int("followers", len(followers)))
		return nil
	}

	tokens := make([]string, 0, len(devices))
	byToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		if _, dup := byToken[device.FCMToken]; dup {
			continue
		}
		tokens = append(tokens, device.FCMToken)
		byToken[device.FCMToken] = device
	}

	result, err := s.notificationSvc.SendMulticast(ctx, tokens, buildPushMessage(owner, event))
	if err != nil {
		s.metrics.RecordPush(metrics.OutcomeFailure, len(tokens))
		return errors.Wrap(err, "send push notifications")
	}
	s.metrics.RecordPush(metrics.OutcomeSuccess, result.SuccessCount)
	s.metrics.RecordPush(metrics.OutcomeFailure, result.FailureCount)

	for _, token := range result.InvalidTokens {
		device, ok := byToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			logger.WarnContext(ctx, "[Notifier] Failed to remove invalid device", slog.String("device_id", device.ID.String()), slog.Any("error", err))
		}
	}

	logger.InfoContext(ctx, "[Notifier] Followers notified",
		slog.Int("followers", len(followers)),
		slog.Int("sent", result.SuccessCount),
		slog.Int("failed", result.FailureCount),
		slog.Int("invalid_tokens", len(result.InvalidTokens)),
	)

	return nil
}

func buildPushMessage(owner *entity.User, event *service.LocationEvent) service.PushMessage {
	name := owner.DisplayLabel()
	msg := service.PushMessage{
		Data: map[string]string{
			"type":     event.Type,
			"owner_id": event.OwnerID,
		},
	}

	switch event.Type {
	case constants.LocationEventCleared:
		msg.Title = name
		msg.Body = fmt.Sprintf("%s stopped sharing their location", name)
	default:
		msg.Title = name
		msg.Body = fmt.Sprintf("%s updated their location", name)
		if event.PlaceLabel != "" {
			msg.Body = fmt.Sprintf("%s was last seen near %s", name, event.PlaceLabel)
		}
		if event.RecordID != "" {
			msg.Data["record_id"] = event.RecordID
		}
	}

	return msg
}
