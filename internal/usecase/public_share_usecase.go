package usecase

import (
	"context"

	"lastseen/internal/domain/policy"

	"github.com/google/uuid"
)

// ShareLink is an enabled public share link.
type ShareLink struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// PublicShareUsecase manages and resolves public share links.
type PublicShareUsecase interface {
	// Enable returns the user's share link, creating a token when none exists.
	Enable(ctx context.Context, userID uuid.UUID) (*ShareLink, error)

	// Rotate replaces the token; the previous link stops resolving immediately.
	Rotate(ctx context.Context, userID uuid.UUID) (*ShareLink, error)

	// Disable clears the token.
	Disable(ctx context.Context, userID uuid.UUID) error

	// QRCode renders the current share link as a PNG.
	QRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Resolve is the anonymous read path for a share token.
	Resolve(ctx context.Context, token string) (*policy.PublicShare, error)
}
