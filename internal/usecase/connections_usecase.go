package usecase

import (
	"context"

	"lastseen/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionsUsecase manages the one-directional visibility grants of a user.
type ConnectionsUsecase interface {
	// ListConnections returns the profiles of the users userID has listed.
	ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// AddConnection lists the user registered under email.
	AddConnection(ctx context.Context, userID uuid.UUID, email string) (*entity.User, error)

	// RemoveConnection drops targetID from the user's connections.
	RemoveConnection(ctx context.Context, userID, targetID uuid.UUID) error
}
