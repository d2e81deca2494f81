package impl

import (
	"context"
	"testing"

	"lastseen/internal/domain/constants"
	"lastseen/internal/domain/entity"
	"lastseen/internal/domain/repository"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/metrics"
	mockRepo "lastseen/internal/mocks/repository"
	mockService "lastseen/internal/mocks/service"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notifierFixtures holds all test dependencies for notifier tests.
type notifierFixtures struct {
	store           *memoryStore
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
	service         usecase.NotifierUsecase
}

func createTestNotifierService(t *testing.T) notifierFixtures {
	store := newMemoryStore()
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	return notifierFixtures{
		store:           store,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		service:         NewNotifierService(store, deviceRepo, notificationSvc, metrics.Nop{}, discardLogger()),
	}
}

func TestNotifierService_NotifiesFollowersAndDropsInvalidTokens(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")
	follower := fx.store.addUser("Vera", owner.ID)
	fx.store.addUser("Bob")

	good := &entity.UserDevice{ID: uuid.New(), UserID: follower.ID, FCMToken: "token-good", IsActive: true}
	stale := &entity.UserDevice{ID: uuid.New(), UserID: follower.ID, FCMToken: "token-stale", IsActive: true}
	duplicate := &entity.UserDevice{ID: uuid.New(), UserID: follower.ID, FCMToken: "token-good", IsActive: true}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUserIDs(ctx, []uuid.UUID{follower.ID}).
		Return([]*entity.UserDevice{good, stale, duplicate}, nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-good", "token-stale"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Body == "Olivia was last seen near Xinyi District" && msg.Data["record_id"] != ""
		})).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-stale"}}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, stale.ID).Return(nil)

	err := fx.service.HandleLocationEvent(ctx, &service.LocationEvent{
		Type:       constants.LocationEventLogged,
		OwnerID:    owner.ID.String(),
		RecordID:   uuid.NewString(),
		PlaceLabel: "Xinyi District",
		Visibility: "public",
	})
	require.NoError(t, err)
}

func TestNotifierService_SkipsUnlistedRecords(t *testing.T) {
	for _, eventType := range []string{constants.LocationEventLogged, constants.LocationEventCleared} {
		t.Run(eventType, func(t *testing.T) {
			fx := createTestNotifierService(t)
			owner := fx.store.addUser("Olivia")
			fx.store.addUser("Vera", owner.ID)

			err := fx.service.HandleLocationEvent(context.Background(), &service.LocationEvent{
				Type:       eventType,
				OwnerID:    owner.ID.String(),
				Visibility: "unlisted",
			})
			require.NoError(t, err)
			fx.notificationSvc.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestNotifierService_ClearedEventMessage(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")
	follower := fx.store.addUser("Vera", owner.ID)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUserIDs(ctx, []uuid.UUID{follower.ID}).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: follower.ID, FCMToken: "token"}}, nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token"}, service.PushMessage{
			Title: "Olivia",
			Body:  "Olivia stopped sharing their location",
			Data: map[string]string{
				"type":     constants.LocationEventCleared,
				"owner_id": owner.ID.String(),
			},
		}).
		Return(&service.PushResult{SuccessCount: 1}, nil)

	require.NoError(t, fx.service.HandleLocationEvent(ctx, &service.LocationEvent{
		Type:    constants.LocationEventCleared,
		OwnerID: owner.ID.String(),
	}))
}

func TestNotifierService_NothingToSend(t *testing.T) {
	t.Run("no followers", func(t *testing.T) {
		fx := createTestNotifierService(t)
		owner := fx.store.addUser("Olivia")

		err := fx.service.HandleLocationEvent(context.Background(), &service.LocationEvent{
			Type:    constants.LocationEventLogged,
			OwnerID: owner.ID.String(),
		})
		require.NoError(t, err)
	})

	t.Run("owner deleted", func(t *testing.T) {
		fx := createTestNotifierService(t)

		err := fx.service.HandleLocationEvent(context.Background(), &service.LocationEvent{
			Type:    constants.LocationEventLogged,
			OwnerID: uuid.NewString(),
		})
		require.NoError(t, err)
	})

	t.Run("followers without devices", func(t *testing.T) {
		fx := createTestNotifierService(t)
		ctx := context.Background()
		owner := fx.store.addUser("Olivia")
		fx.store.addUser("Vera", owner.ID)

		fx.deviceRepo.EXPECT().
			FindActiveDevicesByUserIDs(ctx, mock.Anything).
			Return([]*entity.UserDevice{}, nil)

		require.NoError(t, fx.service.HandleLocationEvent(ctx, &service.LocationEvent{
			Type:    constants.LocationEventLogged,
			OwnerID: owner.ID.String(),
		}))
	})
}

func TestNotifierService_InvalidEvents(t *testing.T) {
	tests := []struct {
		name  string
		event *service.LocationEvent
	}{
		{name: "nil", event: nil},
		{name: "bad owner id", event: &service.LocationEvent{Type: constants.LocationEventLogged, OwnerID: "not-a-uuid"}},
		{name: "unknown type", event: &service.LocationEvent{Type: "location.teleported", OwnerID: uuid.NewString()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotifierService(t)

			err := fx.service.HandleLocationEvent(context.Background(), tt.event)
			assert.True(t, errors.Is(err, usecase.ErrInvalidEvent))
		})
	}
}

func TestNotifierService_SendFailureIsRetryable(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")
	follower := fx.store.addUser("Vera", owner.ID)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUserIDs(ctx, []uuid.UUID{follower.ID}).
		Return([]*entity.UserDevice{{ID: uuid.New(), FCMToken: "token"}}, nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	err := fx.service.HandleLocationEvent(ctx, &service.LocationEvent{
		Type:    constants.LocationEventLogged,
		OwnerID: owner.ID.String(),
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrInvalidEvent))
}

func TestNotifierService_DeleteDeviceNotFoundIsIgnored(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")
	follower := fx.store.addUser("Vera", owner.ID)
	device := &entity.UserDevice{ID: uuid.New(), FCMToken: "token"}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUserIDs(ctx, []uuid.UUID{follower.ID}).
		Return([]*entity.UserDevice{device}, nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(&service.PushResult{FailureCount: 1, InvalidTokens: []string{"token"}}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(repository.ErrDeviceNotFound)

	require.NoError(t, fx.service.HandleLocationEvent(ctx, &service.LocationEvent{
		Type:    constants.LocationEventLogged,
		OwnerID: owner.ID.String(),
	}))
}
