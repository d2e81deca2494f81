package usecase

import (
	"context"

	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
)

// ErrInvalidEvent is returned for events that can never be processed and must not be redelivered.
var ErrInvalidEvent = errors.New("invalid location event")

// NotifierUsecase fans location events out to followers' devices.
type NotifierUsecase interface {
	// HandleLocationEvent notifies everyone who lists the event's owner as a connection.
	HandleLocationEvent(ctx context.Context, event *service.LocationEvent) error
}
