package repository

import (
	"context"

	"lastseen/internal/domain/entity"
	"lastseen/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers a device or refreshes its token, keyed by (user, device id).
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUserIDs retrieves active devices for the given users.
	FindActiveDevicesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
