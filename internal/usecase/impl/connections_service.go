package impl

import (
	"context"
	"strings"

	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/repository"
	"lastseen/internal/errors"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
)

type connectionsService struct {
	users repository.UserRepository
}

// NewConnectionsService creates the connections use case.
func NewConnectionsService(users repository.UserRepository) usecase.ConnectionsUsecase {
	return &connectionsService{
		users: users,
	}
}

// ListConnections returns the profiles the user has listed.
func (s *connectionsService) ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}
	if len(user.Connections) == 0 {
		return []*entity.User{}, nil
	}

	connections, err := s.users.FindUsersByIDs(ctx, user.Connections)
	if err != nil {
		return nil, errors.Wrap(err, "find connections")
	}

	return connections, nil
}

// AddConnection lists the user registered under email. Unknown addresses are
// reported with ErrInviteRequired so the client can offer an invitation.
func (s *connectionsService) AddConnection(ctx context.Context, userID uuid.UUID, email string) (*entity.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	target, err := s.users.FindUserByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInviteRequired.WithDetails(normalized)
		}

		return nil, errors.Wrap(err, "find user by email")
	}
	if target.ID == userID {
		return nil, domainerrors.ErrSelfConnection
	}

	if err := s.users.AddConnection(ctx, userID, target.ID); err != nil {
		if errors.Is(err, repository.ErrConnectionExists) {
			return nil, domainerrors.ErrAlreadyConnected
		}

		return nil, errors.Wrap(err, "add connection")
	}

	return target, nil
}

// RemoveConnection drops targetID from the user's connections.
func (s *connectionsService) RemoveConnection(ctx context.Context, userID, targetID uuid.UUID) error {
	if err := s.users.RemoveConnection(ctx, userID, targetID); err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return domainerrors.ErrConnectionNotFound
		}

		return errors.Wrap(err, "remove connection")
	}

	return nil
}
