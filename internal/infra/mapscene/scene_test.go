package mapscene

import (
	"context"
	"testing"

	"lastseen/config"
	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marker(lat, lng float64) entity.MapMarker {
	id := uuid.New()
	return entity.MapMarker{OwnerID: id, Key: id.String(), Position: entity.Coordinates{Lat: lat, Lng: lng}}
}

func newTestScene() *Scene {
	return NewScene(Options{InitialZoom: 2, FitMaxZoom: 15, ClusterCellPixels: 60})
}

func TestScene_NearbyMarkersClusterAtLowZoom(t *testing.T) {
	ctx := context.Background()
	s := newTestScene()
	a, b := marker(0.3, 0.3), marker(0.3001, 0.3001)
	far := marker(-33.86, 151.2)

	for _, m := range []entity.MapMarker{a, b, far} {
		require.NoError(t, s.AddMarker(ctx, m))
	}

	assert.True(t, s.IsClustered(a.OwnerID))
	assert.True(t, s.IsClustered(b.OwnerID))
	assert.False(t, s.IsClustered(far.OwnerID))

	snap := s.Snapshot()
	require.Len(t, snap.Clusters, 1)
	assert.ElementsMatch(t, []uuid.UUID{a.OwnerID, b.OwnerID}, snap.Clusters[0].OwnerIDs)
	assert.ElementsMatch(t, []string{a.Key, b.Key}, snap.Clusters[0].Keys)
	require.Len(t, snap.Markers, 1)
	assert.Equal(t, far.OwnerID, snap.Markers[0].OwnerID)
}

func TestScene_ExpandClusterSeparatesMarker(t *testing.T) {
	ctx := context.Background()
	s := newTestScene()
	a, b := marker(0.3, 0.3), marker(0.3001, 0.3001)
	require.NoError(t, s.AddMarker(ctx, a))
	require.NoError(t, s.AddMarker(ctx, b))

	err := s.OpenPopup(ctx, a.OwnerID)
	assert.True(t, errors.Is(err, ErrMarkerHidden))

	require.NoError(t, s.ExpandCluster(ctx, a.OwnerID))
	assert.False(t, s.IsClustered(a.OwnerID))
	assert.Greater(t, s.Snapshot().Zoom, 2.0)
	assert.Equal(t, a.Position, s.Snapshot().Center)

	require.NoError(t, s.OpenPopup(ctx, a.OwnerID))
	snap := s.Snapshot()
	require.NotNil(t, snap.OpenPopup)
	assert.Equal(t, a.OwnerID, *snap.OpenPopup)
	assert.Equal(t, a.Key, snap.PopupKey)
	assert.Empty(t, snap.Clusters)
}

func TestScene_IdenticalPositionsSeparateAtMaxZoom(t *testing.T) {
	ctx := context.Background()
	s := newTestScene()
	a, b := marker(48.8566, 2.3522), marker(48.8566, 2.3522)
	require.NoError(t, s.AddMarker(ctx, a))
	require.NoError(t, s.AddMarker(ctx, b))

	require.NoError(t, s.ExpandCluster(ctx, a.OwnerID))
	assert.Equal(t, float64(DefaultMaxZoom), s.Snapshot().Zoom)
	assert.False(t, s.IsClustered(a.OwnerID))
	assert.Len(t, s.Snapshot().Markers, 2)
}

func TestScene_FitBounds(t *testing.T) {
	ctx := context.Background()

	t.Run("single point uses the fit limit", func(t *testing.T) {
		s := newTestScene()
		p := orb.Point{121.5, 25.03}
		require.NoError(t, s.FitBounds(ctx, orb.Bound{Min: p, Max: p}))

		snap := s.Snapshot()
		assert.Equal(t, 15.0, snap.Zoom)
		assert.True(t, snap.Fitted)
		assert.InDelta(t, 25.03, snap.Center.Lat, 1e-9)
		assert.InDelta(t, 121.5, snap.Center.Lng, 1e-9)
	})

	t.Run("spread points zoom out", func(t *testing.T) {
		s := newTestScene()
		bound := orb.Bound{Min: orb.Point{-74.0, 40.7}, Max: orb.Point{139.7, 51.5}}
		require.NoError(t, s.FitBounds(ctx, bound))

		snap := s.Snapshot()
		assert.LessOrEqual(t, snap.Zoom, 2.0)
		assert.InDelta(t, bound.Center().Lon(), snap.Center.Lng, 1e-9)
	})

	t.Run("city scale fits between", func(t *testing.T) {
		s := newTestScene()
		bound := orb.Bound{Min: orb.Point{2.25, 48.8}, Max: orb.Point{2.42, 48.9}}
		require.NoError(t, s.FitBounds(ctx, bound))

		zoom := s.Snapshot().Zoom
		assert.Greater(t, zoom, 8.0)
		assert.Less(t, zoom, 15.0)
	})
}

func TestScene_UnknownMarkers(t *testing.T) {
	ctx := context.Background()
	s := newTestScene()
	id := uuid.New()

	assert.True(t, errors.Is(s.RemoveMarker(ctx, id), domainerrors.ErrMarkerNotFound))
	assert.True(t, errors.Is(s.UpdateMarker(ctx, entity.MapMarker{OwnerID: id}), domainerrors.ErrMarkerNotFound))
	assert.True(t, errors.Is(s.ExpandCluster(ctx, id), domainerrors.ErrMarkerNotFound))
	assert.True(t, errors.Is(s.OpenPopup(ctx, id), domainerrors.ErrMarkerNotFound))
	assert.False(t, s.IsClustered(id))
}

func TestScene_RemoveMarkerClosesPopup(t *testing.T) {
	ctx := context.Background()
	s := newTestScene()
	m := marker(10, 10)
	require.NoError(t, s.AddMarker(ctx, m))
	require.NoError(t, s.OpenPopup(ctx, m.OwnerID))

	require.NoError(t, s.RemoveMarker(ctx, m.OwnerID))
	snap := s.Snapshot()
	assert.Nil(t, snap.OpenPopup)
	assert.Empty(t, snap.Markers)
}

func TestScene_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestScene()
	assert.ErrorIs(t, s.AddMarker(ctx, marker(1, 1)), context.Canceled)
	assert.Empty(t, s.Snapshot().Markers)
}

func TestNewFactory_UsesMapConfig(t *testing.T) {
	cfg := &config.Config{Map: &config.MapConfig{InitialZoom: 3, FitMaxZoom: 12, ClusterCellPixels: 40}}

	surface := NewFactory(cfg)()
	snap := surface.Snapshot()
	assert.Equal(t, 3.0, snap.Zoom)

	s := surface.(*Scene)
	assert.Equal(t, 12.0, s.opts.FitMaxZoom)
	assert.Equal(t, 40, s.opts.ClusterCellPixels)
}
