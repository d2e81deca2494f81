package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/errors"
	"lastseen/internal/infra/clock"
	"lastseen/internal/infra/metrics"
	mockService "lastseen/internal/mocks/service"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// publicShareFixtures holds all test dependencies for public share tests.
type publicShareFixtures struct {
	store   *memoryStore
	clk     *clock.Fake
	qrCode  *mockService.MockQRCodeService
	service usecase.PublicShareUsecase
}

func createTestPublicShareService(t *testing.T) publicShareFixtures {
	store := newMemoryStore()
	clk := clock.NewFake(testEpoch)
	qrCode := mockService.NewMockQRCodeService(t)
	qrCode.EXPECT().
		ShareURL(mock.Anything).
		RunAndReturn(func(token string) string { return "https://lastseen.example/s/" + token }).
		Maybe()

	return publicShareFixtures{
		store:   store,
		clk:     clk,
		qrCode:  qrCode,
		service: NewPublicShareService(store, store, qrCode, clk, metrics.Nop{}, discardLogger()),
	}
}

func TestPublicShareService_ScenarioC_DisableRevokesImmediately(t *testing.T) {
	fx := createTestPublicShareService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")
	logged := fx.store.put(newRecord(owner.ID, testEpoch.Add(-time.Minute), "at the park"))

	link, err := fx.service.Enable(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, link.Token, 32)
	assert.Equal(t, "https://lastseen.example/s/"+link.Token, link.URL)

	share, err := fx.service.Resolve(ctx, link.Token)
	require.NoError(t, err)
	assert.True(t, share.Sharing)
	assert.Equal(t, owner.ID, share.Owner.ID)
	require.NotNil(t, share.Record)
	assert.Equal(t, logged.ID, share.Record.ID)
	assert.Equal(t, "at the park", share.Record.Note)

	require.NoError(t, fx.service.Disable(ctx, owner.ID))

	_, err = fx.service.Resolve(ctx, link.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrShareUnavailable))
}

func TestPublicShareService_EnableIsIdempotent(t *testing.T) {
	fx := createTestPublicShareService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	first, err := fx.service.Enable(ctx, owner.ID)
	require.NoError(t, err)
	second, err := fx.service.Enable(ctx, owner.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
}

func TestPublicShareService_RotateInvalidatesPreviousToken(t *testing.T) {
	fx := createTestPublicShareService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	old, err := fx.service.Enable(ctx, owner.ID)
	require.NoError(t, err)
	rotated, err := fx.service.Rotate(ctx, owner.ID)
	require.NoError(t, err)
	assert.NotEqual(t, old.Token, rotated.Token)

	_, err = fx.service.Resolve(ctx, old.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrShareUnavailable))

	share, err := fx.service.Resolve(ctx, rotated.Token)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, share.Owner.ID)
}

func TestPublicShareService_ResolveWithoutCurrentRecord(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx publicShareFixtures, ownerID uuid.UUID)
	}{
		{
			name:  "never logged",
			setup: func(publicShareFixtures, uuid.UUID) {},
		},
		{
			name: "latest record expired",
			setup: func(fx publicShareFixtures, ownerID uuid.UUID) {
				fx.store.put(expiring(newRecord(ownerID, testEpoch.Add(-2*time.Hour), "old"), testEpoch.Add(-time.Hour)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPublicShareService(t)
			ctx := context.Background()
			owner := fx.store.addUser("Olivia")
			tt.setup(fx, owner.ID)

			link, err := fx.service.Enable(ctx, owner.ID)
			require.NoError(t, err)

			share, err := fx.service.Resolve(ctx, link.Token)
			require.NoError(t, err)
			assert.False(t, share.Sharing)
			assert.Nil(t, share.Record)
			assert.Equal(t, owner.ID, share.Owner.ID)
		})
	}
}

func TestPublicShareService_ResolveIgnoresAudienceScope(t *testing.T) {
	fx := createTestPublicShareService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")
	unlisted := newRecord(owner.ID, testEpoch, "hidden from the circle")
	unlisted.Visibility = "unlisted"
	fx.store.put(unlisted)

	link, err := fx.service.Enable(ctx, owner.ID)
	require.NoError(t, err)

	share, err := fx.service.Resolve(ctx, link.Token)
	require.NoError(t, err)
	assert.True(t, share.Sharing)
	assert.Equal(t, "hidden from the circle", share.Record.Note)
}

func TestPublicShareService_ResolveRejectsMalformedTokens(t *testing.T) {
	fx := createTestPublicShareService(t)

	for _, token := range []string{"", "short", "../../etc/passwd", "has space in it for sure", "token%20with%20escapes"} {
		_, err := fx.service.Resolve(context.Background(), token)
		assert.True(t, errors.Is(err, domainerrors.ErrShareUnavailable), "token %q", token)
	}
	assert.Zero(t, fx.store.listCount())
}

func TestPublicShareService_QRCode(t *testing.T) {
	fx := createTestPublicShareService(t)
	ctx := context.Background()
	owner := fx.store.addUser("Olivia")

	_, err := fx.service.QRCode(ctx, owner.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	link, err := fx.service.Enable(ctx, owner.ID)
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.qrCode.EXPECT().GenerateShareQR(link.Token).Return(png, nil)

	got, err := fx.service.QRCode(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPublicShareService_UnknownUser(t *testing.T) {
	fx := createTestPublicShareService(t)
	ctx := context.Background()

	_, err := fx.service.Enable(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = fx.service.Rotate(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	err = fx.service.Disable(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
