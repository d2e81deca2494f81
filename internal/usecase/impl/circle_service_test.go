package impl

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"lastseen/config"
	"lastseen/internal/domain/constants"
	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/policy"
	"lastseen/internal/domain/repository"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/clock"
	"lastseen/internal/infra/mapscene"
	"lastseen/internal/infra/metrics"
	"lastseen/internal/infra/privacy"
	mockService "lastseen/internal/mocks/service"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var taipei101 = entity.Coordinates{Lat: 25.0339, Lng: 121.5645}

// circleFixture holds all test dependencies for circle service tests.
type circleFixture struct {
	store     *memoryStore
	clk       *clock.Fake
	hub       *CircleHub
	geocoder  *mockService.MockGeocoder
	publisher *mockService.MockEventPublisher
	service   usecase.CircleUsecase
}

func createTestCircleService(t *testing.T, mode policy.Mode) circleFixture {
	store := newMemoryStore()
	return createTestCircleServiceWith(t, mode, store, store)
}

func createTestCircleServiceWith(t *testing.T, mode policy.Mode, store *memoryStore, locations repository.LocationRepository) circleFixture {
	clk := clock.NewFake(testEpoch)
	deps := SyncDeps{
		Locations: locations,
		Users:     store,
		Evaluator: policy.NewEvaluator(mode, clk.Now),
		Clock:     clk,
		Logger:    discardLogger(),
		Metrics:   metrics.Nop{},
	}
	surfaces := func() service.MapSurface {
		return mapscene.NewScene(mapscene.Options{FitMaxZoom: 15})
	}
	hub := newCircleHub(deps, testSyncOptions(), time.Hour, 15, surfaces)
	t.Cleanup(func() { _ = hub.Close(context.Background()) })

	cfg := &config.Config{
		Privacy:  &config.PrivacyConfig{DefaultExpiryMinutes: 60, MaxExpiryMinutes: 1440},
		Geocoder: &config.GeocoderConfig{Timeout: time.Second},
	}
	geocoder := mockService.NewMockGeocoder(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewCircleService(CircleServiceParams{
		Config:     cfg,
		Logger:     discardLogger(),
		Hub:        hub,
		Locations:  locations,
		Obfuscator: privacy.NewObfuscatorWithRand(300, rand.New(rand.NewPCG(1, 2))),
		Geocoder:   geocoder,
		Publisher:  publisher,
		Clock:      clk,
		Metrics:    metrics.Nop{},
	})

	return circleFixture{
		store:     store,
		clk:       clk,
		hub:       hub,
		geocoder:  geocoder,
		publisher: publisher,
		service:   svc,
	}
}

func fixedPosition(c entity.Coordinates) service.PositionSource {
	return service.PositionSourceFunc(func(context.Context) (entity.Coordinates, error) {
		return c, nil
	})
}

func failingPosition(err error) service.PositionSource {
	return service.PositionSourceFunc(func(context.Context) (entity.Coordinates, error) {
		return entity.Coordinates{}, err
	})
}

func minutes(n int) *int {
	return &n
}

func (f circleFixture) recordsOf(t *testing.T, ownerID uuid.UUID) []*entity.LocationRecord {
	t.Helper()
	records, err := f.store.ListRecords(context.Background(), repository.ListFilter{OwnerID: &ownerID})
	require.NoError(t, err)
	return records
}

func TestCircleService_LogCurrentLocation_CreatesThenUpdatesOneRecord(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	fx.geocoder.EXPECT().Resolve(mock.Anything, taipei101.Lat, taipei101.Lng).Return("Xinyi District")
	fx.publisher.EXPECT().
		PublishLocationEvent(mock.Anything, mock.MatchedBy(func(e *service.LocationEvent) bool {
			return e.Type == constants.LocationEventLogged && e.OwnerID == owner.ID.String() && e.PlaceLabel == "Xinyi District"
		})).
		Return(nil).
		Times(2)

	first, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{
		Position: fixedPosition(taipei101),
		Note:     "lunch",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, taipei101, first.Coordinates)
	assert.Equal(t, "Xinyi District", first.PlaceLabel)
	assert.Equal(t, entity.VisibilityPublic, first.Visibility)
	assert.Equal(t, testEpoch, first.UpdatedAt)
	require.NotNil(t, first.ExpiresAt)
	assert.Equal(t, testEpoch.Add(60*time.Minute), *first.ExpiresAt)

	fx.clk.Advance(5 * time.Minute)
	second, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{
		Position:      fixedPosition(taipei101),
		Note:          "coffee",
		ExpiryMinutes: minutes(0),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "the viewer's record is updated in place")
	assert.Nil(t, second.ExpiresAt)

	records := fx.recordsOf(t, owner.ID)
	require.Len(t, records, 1)
	assert.Equal(t, "coffee", records[0].Note)
	assert.Equal(t, testEpoch.Add(5*time.Minute), records[0].UpdatedAt)

	view, err := fx.service.View(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Self)
	assert.Equal(t, "coffee", view.Self.Note)
	assert.False(t, view.SelfStale)
}

func TestCircleService_LogCurrentLocation_RecreatesRecordDeletedElsewhere(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("")
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	first, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101)})
	require.NoError(t, err)

	_, err = fx.store.DeleteRecordsByOwner(ctx, owner.ID)
	require.NoError(t, err)

	second, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101)})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, fx.recordsOf(t, owner.ID), 1)
}

func TestCircleService_LogCurrentLocation_SanitizesNote(t *testing.T) {
	tests := []struct {
		name string
		note string
		want string
	}{
		{name: "markup stripped", note: "  <b>Lunch</b> at Joe's  ", want: "Lunch at Joe's"},
		{name: "plain text kept", note: "by the fountain", want: "by the fountain"},
		{name: "truncated to limit", note: strings.Repeat("é", 200), want: strings.Repeat("é", MaxNoteRunes)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCircleService(t, policy.ModeCommunity)
			owner := fx.store.addUser("Olivia")
			fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("")
			fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

			record, err := fx.service.LogCurrentLocation(context.Background(), owner.ID, &usecase.LogLocationInput{
				Position: fixedPosition(taipei101),
				Note:     tt.note,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.Note)
			assert.LessOrEqual(t, utf8.RuneCountInString(record.Note), MaxNoteRunes)
		})
	}
}

func TestCircleService_LogCurrentLocation_RejectsInputBeforeReadingSensor(t *testing.T) {
	tests := []struct {
		name    string
		mode    policy.Mode
		input   usecase.LogLocationInput
		wantErr error
	}{
		{
			name:    "negative expiry",
			mode:    policy.ModeCommunity,
			input:   usecase.LogLocationInput{ExpiryMinutes: minutes(-1)},
			wantErr: domainerrors.ErrInvalidExpiry,
		},
		{
			name:    "expiry above maximum",
			mode:    policy.ModeCommunity,
			input:   usecase.LogLocationInput{ExpiryMinutes: minutes(1441)},
			wantErr: domainerrors.ErrInvalidExpiry,
		},
		{
			name:    "connections-only in community mode",
			mode:    policy.ModeCommunity,
			input:   usecase.LogLocationInput{Visibility: entity.VisibilityConnectionsOnly},
			wantErr: domainerrors.ErrVisibilityNotAllowed,
		},
		{
			name:    "public in connections mode",
			mode:    policy.ModeConnections,
			input:   usecase.LogLocationInput{Visibility: entity.VisibilityPublic},
			wantErr: domainerrors.ErrVisibilityNotAllowed,
		},
		{
			name:    "unknown visibility",
			mode:    policy.ModeCommunity,
			input:   usecase.LogLocationInput{Visibility: "everyone"},
			wantErr: domainerrors.ErrVisibilityNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCircleService(t, tt.mode)
			owner := fx.store.addUser("Olivia")

			sensorRead := false
			input := tt.input
			input.Position = service.PositionSourceFunc(func(context.Context) (entity.Coordinates, error) {
				sensorRead = true
				return taipei101, nil
			})

			_, err := fx.service.LogCurrentLocation(context.Background(), owner.ID, &input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.False(t, sensorRead)
			assert.Empty(t, fx.recordsOf(t, owner.ID))
		})
	}
}

func TestCircleService_LogCurrentLocation_DefaultVisibilityFollowsMode(t *testing.T) {
	tests := []struct {
		mode policy.Mode
		want entity.VisibilityMode
	}{
		{mode: policy.ModeCommunity, want: entity.VisibilityPublic},
		{mode: policy.ModeConnections, want: entity.VisibilityConnectionsOnly},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			fx := createTestCircleService(t, tt.mode)
			owner := fx.store.addUser("Olivia")
			fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("")
			fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

			record, err := fx.service.LogCurrentLocation(context.Background(), owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.Visibility)
		})
	}
}

func TestCircleService_LogCurrentLocation_SensorFailures(t *testing.T) {
	tests := []struct {
		name    string
		source  service.PositionSource
		wantErr error
	}{
		{name: "permission denied", source: failingPosition(domainerrors.ErrPermissionDenied), wantErr: domainerrors.ErrPermissionDenied},
		{name: "sensor error", source: failingPosition(errors.New("gps timeout")), wantErr: domainerrors.ErrPositionUnavailable},
		{name: "no sensor", source: nil, wantErr: domainerrors.ErrPositionUnavailable},
		{name: "out of range fix", source: fixedPosition(entity.Coordinates{Lat: 91, Lng: 0}), wantErr: domainerrors.ErrPositionUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCircleService(t, policy.ModeCommunity)
			owner := fx.store.addUser("Olivia")

			_, err := fx.service.LogCurrentLocation(context.Background(), owner.ID, &usecase.LogLocationInput{Position: tt.source})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, fx.recordsOf(t, owner.ID))
		})
	}
}

// failingWrites rejects every record write.
type failingWrites struct {
	*memoryStore
}

func (failingWrites) CreateRecord(context.Context, *entity.LocationRecord) error {
	return errors.New("connection refused")
}

func (failingWrites) UpdateRecord(context.Context, *entity.LocationRecord) error {
	return errors.New("connection refused")
}

func TestCircleService_LogCurrentLocation_WriteFailureChangesNothingLocally(t *testing.T) {
	store := newMemoryStore()
	fx := createTestCircleServiceWith(t, policy.ModeCommunity, store, failingWrites{store})
	ctx := context.Background()
	owner := store.addUser("Olivia")

	fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("Xinyi District")

	_, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationWriteFailed))
	assert.Contains(t, err.Error(), "connection refused")

	view, err := fx.service.View(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Self)
	assert.Empty(t, view.Locations)
	fx.publisher.AssertNotCalled(t, "PublishLocationEvent", mock.Anything, mock.Anything)
}

func TestCircleService_LogCurrentLocation_GeocoderAndPublisherFailuresAreNotFatal(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	owner := fx.store.addUser("Olivia")

	fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("")
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(errors.New("topic unavailable"))

	record, err := fx.service.LogCurrentLocation(context.Background(), owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101)})
	require.NoError(t, err)
	assert.Empty(t, record.PlaceLabel)
	assert.Len(t, fx.recordsOf(t, owner.ID), 1)
}

func TestCircleService_LogCurrentLocation_VagueGeocodesDisplayCoordinates(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	owner := fx.store.addUser("Olivia")

	var geocoded entity.Coordinates
	fx.geocoder.EXPECT().
		Resolve(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, lat, lng float64) string {
			geocoded = entity.Coordinates{Lat: lat, Lng: lng}
			return "Taipei"
		})
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	record, err := fx.service.LogCurrentLocation(context.Background(), owner.ID, &usecase.LogLocationInput{
		Position:   fixedPosition(taipei101),
		Visibility: entity.VisibilityVague,
	})
	require.NoError(t, err)

	assert.NotEqual(t, taipei101, record.Coordinates)
	assert.LessOrEqual(t, geo.Distance(taipei101.Point(), record.Coordinates.Point()), 300.5)
	assert.Equal(t, record.Coordinates, geocoded, "the label describes the displayed position")
	assert.Equal(t, record.Coordinates, fx.recordsOf(t, owner.ID)[0].Coordinates)
}

func TestCircleService_LoggedRecordReachesOtherViewers(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")
	viewer := fx.store.addUser("Vera")

	fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("Xinyi District")
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101), Note: "lunch"})
	require.NoError(t, err)

	view, err := fx.service.Refresh(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, view.Locations, 1)
	assert.Equal(t, owner.ID, view.Locations[0].Record.OwnerID)
	assert.Equal(t, "lunch", view.Locations[0].Record.Note)

	assert.Equal(t, owner.ID.String(), view.Locations[0].Key)

	snapshot, err := fx.service.FocusOwner(ctx, viewer.ID, owner.ID.String())
	require.NoError(t, err)
	require.NotNil(t, snapshot.OpenPopup)
	assert.Equal(t, owner.ID, *snapshot.OpenPopup)
	assert.Equal(t, owner.ID.String(), snapshot.PopupKey)
	assert.Equal(t, taipei101, snapshot.Center)

	scene, err := fx.service.MapScene(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Len(t, scene.Markers, 1)
	assert.True(t, scene.Fitted)
}

func TestCircleService_FocusOwnerNotInView(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	viewer := fx.store.addUser("Vera")

	_, err := fx.service.FocusOwner(context.Background(), viewer.ID, uuid.New().String())
	assert.True(t, errors.Is(err, domainerrors.ErrMarkerNotFound))
}

func TestCircleService_AnonymousStrangerIsKeyedOpaquely(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	ctx := context.Background()
	stranger := fx.store.addUser("Sam")
	viewer := fx.store.addUser("Vera")

	fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("")
	fx.publisher.EXPECT().PublishLocationEvent(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.LogCurrentLocation(ctx, stranger.ID, &usecase.LogLocationInput{
		Position:   fixedPosition(taipei101),
		Visibility: entity.VisibilityVague,
	})
	require.NoError(t, err)

	view, err := fx.service.Refresh(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, view.Locations, 1)
	entry := view.Locations[0]
	require.True(t, entry.IdentityWithheld())
	assert.True(t, strings.HasPrefix(entry.Key, "anon-"))
	assert.NotContains(t, entry.Key, stranger.ID.String())

	again, err := fx.service.Refresh(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Key, again.Locations[0].Key, "keys are stable within a session")

	_, err = fx.service.FocusOwner(ctx, viewer.ID, stranger.ID.String())
	assert.True(t, errors.Is(err, domainerrors.ErrMarkerNotFound), "a withheld owner cannot be focused by id")

	snapshot, err := fx.service.FocusOwner(ctx, viewer.ID, entry.Key)
	require.NoError(t, err)
	assert.Equal(t, entry.Key, snapshot.PopupKey)

	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), stranger.ID.String())
	assert.Contains(t, string(raw), entry.Key)
}

func TestCircleService_StopSharing(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("")
	fx.publisher.EXPECT().
		PublishLocationEvent(mock.Anything, mock.MatchedBy(func(e *service.LocationEvent) bool {
			return e.Type == constants.LocationEventLogged
		})).
		Return(nil).
		Once()
	fx.publisher.EXPECT().
		PublishLocationEvent(mock.Anything, mock.MatchedBy(func(e *service.LocationEvent) bool {
			return e.Type == constants.LocationEventCleared && e.OwnerID == owner.ID.String()
		})).
		Return(nil).
		Once()

	_, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101)})
	require.NoError(t, err)

	require.NoError(t, fx.service.StopSharing(ctx, owner.ID))
	assert.Empty(t, fx.recordsOf(t, owner.ID))

	view, err := fx.service.View(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Self)
	assert.True(t, view.SelfStale)

	err = fx.service.StopSharing(ctx, owner.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotSharing))
}

func TestCircleService_StopSharingCarriesRemovedVisibility(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	var cleared *service.LocationEvent
	fx.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return("")
	fx.publisher.EXPECT().
		PublishLocationEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *service.LocationEvent) {
			if e.Type == constants.LocationEventCleared {
				cleared = e
			}
		}).
		Return(nil)

	record, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{
		Position:   fixedPosition(taipei101),
		Visibility: entity.VisibilityUnlisted,
	})
	require.NoError(t, err)
	require.NoError(t, fx.service.StopSharing(ctx, owner.ID))

	require.NotNil(t, cleared)
	assert.Equal(t, entity.VisibilityUnlisted.String(), cleared.Visibility)
	assert.Equal(t, record.ID.String(), cleared.RecordID)
}

func TestCircleService_ClosedHubRejectsRequests(t *testing.T) {
	fx := createTestCircleService(t, policy.ModeCommunity)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	require.NoError(t, fx.hub.Close(ctx))

	_, err := fx.service.LogCurrentLocation(ctx, owner.ID, &usecase.LogLocationInput{Position: fixedPosition(taipei101)})
	assert.True(t, errors.Is(err, domainerrors.ErrSessionClosed))

	_, err = fx.service.View(ctx, owner.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionClosed))
}
