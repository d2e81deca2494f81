// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"lastseen/internal/domain/entity"
	"lastseen/internal/domain/service"

	"github.com/google/uuid"
)

// LogLocationInput represents one "log my spot" action.
type LogLocationInput struct {
	// Position is the one-shot sensor read for this action.
	Position service.PositionSource
	Note     string
	// ExpiryMinutes nil applies the configured default, 0 means never expires.
	ExpiryMinutes *int
	Visibility    entity.VisibilityMode
	Vague         bool
}

// CircleUsecase is the per-viewer circle: synchronized view, own record and map.
type CircleUsecase interface {
	// View returns the latest policy-filtered view, polling once if the session is new.
	View(ctx context.Context, viewerID uuid.UUID) (*entity.CircleView, error)

	// Refresh polls the record store now and returns the resulting view.
	Refresh(ctx context.Context, viewerID uuid.UUID) (*entity.CircleView, error)

	// LogCurrentLocation creates or updates the viewer's record.
	LogCurrentLocation(ctx context.Context, viewerID uuid.UUID, input *LogLocationInput) (*entity.LocationRecord, error)

	// StopSharing deletes every record of the viewer.
	StopSharing(ctx context.Context, viewerID uuid.UUID) error

	// FocusOwner centers the viewer's map on one marker and opens its popup.
	// markerKey is the key from the circle view or map snapshot.
	FocusOwner(ctx context.Context, viewerID uuid.UUID, markerKey string) (*entity.MapSnapshot, error)

	// MapScene returns the viewer's current map state.
	MapScene(ctx context.Context, viewerID uuid.UUID) (*entity.MapSnapshot, error)
}
