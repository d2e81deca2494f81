package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"regexp"

	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/policy"
	"lastseen/internal/domain/repository"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/metrics"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
)

// shareTokenBytes gives 192 bits of entropy, 32 characters once encoded.
const shareTokenBytes = 24

var shareTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{16,128}$`)

type publicShareService struct {
	users     repository.UserRepository
	locations repository.LocationRepository
	qrCode    service.QRCodeService
	clock     service.Clock
	metrics   metrics.Recorder
	logger    *slog.Logger
}

// NewPublicShareService creates the public share use case.
func NewPublicShareService(
	users repository.UserRepository,
	locations repository.LocationRepository,
	qrCode service.QRCodeService,
	clock service.Clock,
	recorder metrics.Recorder,
	logger *slog.Logger,
) usecase.PublicShareUsecase {
	return &publicShareService{
		users:     users,
		locations: locations,
		qrCode:    qrCode,
		clock:     clock,
		metrics:   recorder,
		logger:    logger,
	}
}

func newShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *publicShareService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	return user, nil
}

func (s *publicShareService) link(token string) *usecase.ShareLink {
	return &usecase.ShareLink{Token: token, URL: s.qrCode.ShareURL(token)}
}

// Enable is idempotent: an existing token is returned unchanged.
func (s *publicShareService) Enable(ctx context.Context, userID uuid.UUID) (*usecase.ShareLink, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.SharesPublicly() {
		return s.link(*user.PublicShareToken), nil
	}

	return s.setNewToken(ctx, userID)
}

// Rotate issues a new token even when one exists.
func (s *publicShareService) Rotate(ctx context.Context, userID uuid.UUID) (*usecase.ShareLink, error) {
	if _, err := s.findUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.setNewToken(ctx, userID)
}

func (s *publicShareService) setNewToken(ctx context.Context, userID uuid.UUID) (*usecase.ShareLink, error) {
	token, err := newShareToken()
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateShareToken(ctx, userID, &token); err != nil {
		return nil, domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}
	s.logger.InfoContext(ctx, "[PublicShare] Share token issued", slog.String("user_id", userID.String()))

	return s.link(token), nil
}

// Disable clears the token; bookmarked links stop resolving at once.
func (s *publicShareService) Disable(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.UpdateShareToken(ctx, userID, nil); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}
	s.logger.InfoContext(ctx, "[PublicShare] Share token cleared", slog.String("user_id", userID.String()))

	return nil
}

// QRCode renders the current link; it fails when sharing is disabled.
func (s *publicShareService) QRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.SharesPublicly() {
		return nil, domainerrors.ErrNotFound.WithDetails("public sharing is disabled")
	}

	png, err := s.qrCode.GenerateShareQR(*user.PublicShareToken)
	if err != nil {
		return nil, errors.Wrap(err, "generate share qr")
	}

	return png, nil
}

// Resolve looks the token up on every call. Malformed, unknown and revoked
// tokens all yield ErrShareUnavailable.
func (s *publicShareService) Resolve(ctx context.Context, token string) (*policy.PublicShare, error) {
	if !shareTokenPattern.MatchString(token) {
		s.metrics.RecordShareResolve(metrics.OutcomeNotFound)
		return nil, domainerrors.ErrShareUnavailable
	}

	owner, err := s.users.FindUserByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.RecordShareResolve(metrics.OutcomeNotFound)
			return nil, domainerrors.ErrShareUnavailable
		}
		s.metrics.RecordShareResolve(metrics.OutcomeFailure)

		return nil, errors.Wrap(err, "find share owner")
	}

	ownerID := owner.ID
	records, err := s.locations.ListRecords(ctx, repository.ListFilter{OwnerID: &ownerID})
	if err != nil {
		s.metrics.RecordShareResolve(metrics.OutcomeFailure)
		return nil, errors.Wrap(err, "list owner records")
	}

	share := policy.ResolvePublic(owner, records, s.clock.Now())
	if share.Sharing {
		s.metrics.RecordShareResolve(metrics.OutcomeSuccess)
	} else {
		s.metrics.RecordShareResolve(metrics.OutcomeEmpty)
	}

	return share, nil
}
