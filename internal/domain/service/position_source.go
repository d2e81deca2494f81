package service

import (
	"context"

	"lastseen/internal/domain/entity"
)

// PositionSource is the one-shot geolocation sensor.
// It fails with domainerrors.ErrPermissionDenied or domainerrors.ErrPositionUnavailable.
type PositionSource interface {
	CurrentPosition(ctx context.Context) (entity.Coordinates, error)
}

// PositionSourceFunc adapts a function to PositionSource.
type PositionSourceFunc func(ctx context.Context) (entity.Coordinates, error)

// CurrentPosition calls f.
func (f PositionSourceFunc) CurrentPosition(ctx context.Context) (entity.Coordinates, error) {
	return f(ctx)
}
