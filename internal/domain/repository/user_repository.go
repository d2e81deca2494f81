package repository

import (
	"context"

	"lastseen/internal/domain/entity"
	"lastseen/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrConnectionExists is returned when the connection is already listed.
	ErrConnectionExists = errors.New("connection already exists")
	// ErrConnectionNotFound is returned when removing a connection that is not listed.
	ErrConnectionNotFound = errors.New("connection not found")
)

// UserRepository defines the user and connection operations the engine relies on.
// Account creation belongs to the identity provider and is not part of this contract.
type UserRepository interface {
	// FindUserByID retrieves a single user, connections included.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUsersByIDs retrieves the users that exist among ids; missing ids are skipped.
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindUserByEmail retrieves a user by lower-cased e-mail.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUserByShareToken resolves a public share token by exact match.
	// Returns ErrUserNotFound when no user holds the token.
	FindUserByShareToken(ctx context.Context, token string) (*entity.User, error)

	// UpdateShareToken sets or (with nil) clears the user's public share token.
	UpdateShareToken(ctx context.Context, userID uuid.UUID, token *string) error

	// AddConnection grants userID visibility of targetID.
	AddConnection(ctx context.Context, userID, targetID uuid.UUID) error

	// RemoveConnection revokes a previously added connection.
	RemoveConnection(ctx context.Context, userID, targetID uuid.UUID) error

	// FindFollowerIDs returns the users that list ownerID as a connection.
	FindFollowerIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}
