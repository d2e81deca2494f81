package service

import (
	"context"

	"lastseen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// MapSurface is the mapping widget as seen by the marker manager.
// Every call completes its visible effect before returning, which is what lets
// the manager sequence cluster expansion before opening a popup.
type MapSurface interface {
	AddMarker(ctx context.Context, marker entity.MapMarker) error
	UpdateMarker(ctx context.Context, marker entity.MapMarker) error
	RemoveMarker(ctx context.Context, ownerID uuid.UUID) error

	// FitBounds moves the viewport so the bound is fully visible.
	FitBounds(ctx context.Context, bound orb.Bound) error

	// IsClustered reports whether the marker is aggregated at the current zoom.
	IsClustered(ownerID uuid.UUID) bool
	// ExpandCluster zooms until the marker is rendered on its own.
	ExpandCluster(ctx context.Context, ownerID uuid.UUID) error

	FlyTo(ctx context.Context, position entity.Coordinates, zoom float64) error
	OpenPopup(ctx context.Context, ownerID uuid.UUID) error

	Snapshot() entity.MapSnapshot
}

// MapSurfaceFactory creates one surface per viewer session.
type MapSurfaceFactory func() MapSurface
