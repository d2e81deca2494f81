package impl

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"lastseen/config"
	"lastseen/internal/domain/constants"
	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/policy"
	"lastseen/internal/domain/repository"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/metrics"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/fx"
)

// MaxNoteRunes bounds the owner-authored note.
const MaxNoteRunes = 140

const (
	writeOpLog  = "log"
	writeOpStop = "stop"
)

// CircleServiceParams holds the dependencies of the circle use case.
type CircleServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Hub        *CircleHub
	Locations  repository.LocationRepository
	Obfuscator service.Obfuscator
	Geocoder   service.Geocoder
	Publisher  service.EventPublisher
	Clock      service.Clock
	Metrics    metrics.Recorder
}

type circleService struct {
	hub        *CircleHub
	locations  repository.LocationRepository
	obfuscator service.Obfuscator
	geocoder   service.Geocoder
	publisher  service.EventPublisher
	clock      service.Clock
	metrics    metrics.Recorder
	logger     *slog.Logger
	sanitizer  *bluemonday.Policy

	geocodeTimeout       time.Duration
	defaultExpiryMinutes int
	maxExpiryMinutes     int
}

// NewCircleService creates the circle use case.
func NewCircleService(params CircleServiceParams) usecase.CircleUsecase {
	return &circleService{
		hub:                  params.Hub,
		locations:            params.Locations,
		obfuscator:           params.Obfuscator,
		geocoder:             params.Geocoder,
		publisher:            params.Publisher,
		clock:                params.Clock,
		metrics:              params.Metrics,
		logger:               params.Logger,
		sanitizer:            bluemonday.StrictPolicy(),
		geocodeTimeout:       params.Config.Geocoder.Timeout,
		defaultExpiryMinutes: params.Config.Privacy.DefaultExpiryMinutes,
		maxExpiryMinutes:     params.Config.Privacy.MaxExpiryMinutes,
	}
}

// View returns the viewer's circle, polling first when nothing has been fetched yet.
func (s *circleService) View(ctx context.Context, viewerID uuid.UUID) (*entity.CircleView, error) {
	session, err := s.hub.session(viewerID)
	if err != nil {
		return nil, err
	}
	if view := session.engine.CircleView(); view != nil {
		return view, nil
	}

	return s.refresh(ctx, session)
}

// Refresh polls now. Poll failures are reported on the view, not as an error.
func (s *circleService) Refresh(ctx context.Context, viewerID uuid.UUID) (*entity.CircleView, error) {
	session, err := s.hub.session(viewerID)
	if err != nil {
		return nil, err
	}

	return s.refresh(ctx, session)
}

func (s *circleService) refresh(ctx context.Context, session *circleSession) (*entity.CircleView, error) {
	if err := session.engine.Refresh(ctx); err != nil {
		if errors.Is(err, domainerrors.ErrSessionClosed) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "[CircleService] Refresh failed", slog.Any("error", err))
	}
	if view := session.engine.CircleView(); view != nil {
		return view, nil
	}

	return &entity.CircleView{SelfStale: true}, nil
}

// LogCurrentLocation reads the sensor, applies the privacy transform, labels
// the spot and writes the viewer's record. Nothing local changes unless the write succeeds.
func (s *circleService) LogCurrentLocation(ctx context.Context, viewerID uuid.UUID, input *usecase.LogLocationInput) (*entity.LocationRecord, error) {
	visibility, err := s.resolveVisibility(input.Visibility)
	if err != nil {
		return nil, err
	}
	expiresIn, err := s.resolveExpiry(input.ExpiryMinutes)
	if err != nil {
		return nil, err
	}

	session, err := s.hub.session(viewerID)
	if err != nil {
		return nil, err
	}
	session.writeMu.Lock()
	defer session.writeMu.Unlock()

	position, err := readPosition(ctx, input.Position)
	if err != nil {
		return nil, err
	}

	display := s.obfuscator.ApplyMode(position, visibility, input.Vague)
	placeLabel := s.resolvePlace(ctx, display)

	if session.engine.Closed() {
		return nil, domainerrors.ErrSessionClosed
	}

	now := s.clock.Now()
	record := &entity.LocationRecord{
		OwnerID:     viewerID,
		Coordinates: display,
		Note:        s.sanitizeNote(input.Note),
		PlaceLabel:  placeLabel,
		Visibility:  visibility,
		Vague:       input.Vague,
		UpdatedAt:   now,
	}
	if expiresIn > 0 {
		expiresAt := now.Add(expiresIn)
		record.ExpiresAt = &expiresAt
	}

	if err := s.writeRecord(ctx, session, record, now); err != nil {
		s.metrics.RecordLocationWrite(writeOpLog, metrics.OutcomeFailure)
		s.logger.ErrorContext(ctx, "[CircleService] Failed to write location", slog.String("viewer_id", viewerID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrLocationWriteFailed.WrapMessage(err.Error())
	}
	s.metrics.RecordLocationWrite(writeOpLog, metrics.OutcomeSuccess)

	if err := session.engine.ApplyLocalRecord(ctx, record); err != nil {
		s.logger.DebugContext(ctx, "[CircleService] Session closed after write", slog.Any("error", err))
	}
	s.publish(ctx, &service.LocationEvent{
		Type:       constants.LocationEventLogged,
		OwnerID:    viewerID.String(),
		RecordID:   record.ID.String(),
		PlaceLabel: record.PlaceLabel,
		Visibility: record.Visibility.String(),
	})
	if _, err := s.refresh(ctx, session); err != nil {
		s.logger.DebugContext(ctx, "[CircleService] Post-write refresh skipped", slog.Any("error", err))
	}

	return record.Clone(), nil
}

// writeRecord updates the viewer's canonical record in place, or creates one.
func (s *circleService) writeRecord(ctx context.Context, session *circleSession, record *entity.LocationRecord, now time.Time) error {
	if current := session.engine.SelfRecord(); current != nil {
		record.ID = current.ID
		record.CreatedAt = current.CreatedAt
		err := s.locations.UpdateRecord(ctx, record)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrLocationNotFound) {
			return err
		}
		// Deleted elsewhere since the last poll.
		record.ID = uuid.Nil
	}

	record.CreatedAt = now

	return s.locations.CreateRecord(ctx, record)
}

func readPosition(ctx context.Context, source service.PositionSource) (entity.Coordinates, error) {
	if source == nil {
		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable
	}
	position, err := source.CurrentPosition(ctx)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return entity.Coordinates{}, err
		}

		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails(err.Error())
	}
	if !position.Valid() {
		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails("coordinates out of range")
	}

	return position, nil
}

// resolvePlace labels the display coordinates, so the label never reveals more than the marker does.
func (s *circleService) resolvePlace(ctx context.Context, c entity.Coordinates) string {
	if s.geocodeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.geocodeTimeout)
		defer cancel()
	}

	return s.geocoder.Resolve(ctx, c.Lat, c.Lng)
}

func (s *circleService) resolveVisibility(mode entity.VisibilityMode) (entity.VisibilityMode, error) {
	evaluator := s.hub.Evaluator()
	if mode == "" {
		if evaluator.Mode() == policy.ModeConnections {
			return entity.VisibilityConnectionsOnly, nil
		}

		return entity.VisibilityPublic, nil
	}
	if !mode.IsValid() || !evaluator.AllowsVisibility(mode) {
		return "", domainerrors.ErrVisibilityNotAllowed.WithDetails(mode.String())
	}

	return mode, nil
}

func (s *circleService) resolveExpiry(minutes *int) (time.Duration, error) {
	m := s.defaultExpiryMinutes
	if minutes != nil {
		m = *minutes
	}
	if m < 0 || (s.maxExpiryMinutes > 0 && m > s.maxExpiryMinutes) {
		return 0, domainerrors.ErrInvalidExpiry.WithDetails("expiry must be between 0 and the configured maximum")
	}

	return time.Duration(m) * time.Minute, nil
}

// sanitizeNote strips markup, trims and truncates to MaxNoteRunes.
func (s *circleService) sanitizeNote(note string) string {
	clean := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(note)))
	if utf8.RuneCountInString(clean) <= MaxNoteRunes {
		return clean
	}

	return strings.TrimSpace(string([]rune(clean)[:MaxNoteRunes]))
}

// StopSharing deletes every record of the viewer.
func (s *circleService) StopSharing(ctx context.Context, viewerID uuid.UUID) error {
	session, err := s.hub.session(viewerID)
	if err != nil {
		return err
	}
	session.writeMu.Lock()
	defer session.writeMu.Unlock()

	removed := s.currentRecord(ctx, session, viewerID)
	deleted, err := s.locations.DeleteRecordsByOwner(ctx, viewerID)
	if err != nil {
		s.metrics.RecordLocationWrite(writeOpStop, metrics.OutcomeFailure)
		s.logger.ErrorContext(ctx, "[CircleService] Failed to delete location", slog.String("viewer_id", viewerID.String()), slog.Any("error", err))

		return domainerrors.ErrLocationDeleteFailed.WrapMessage(err.Error())
	}

	if err := session.engine.ApplyLocalDelete(ctx); err != nil {
		s.logger.DebugContext(ctx, "[CircleService] Session closed after delete", slog.Any("error", err))
	}
	if deleted == 0 {
		s.metrics.RecordLocationWrite(writeOpStop, metrics.OutcomeEmpty)
		return domainerrors.ErrNotSharing
	}
	s.metrics.RecordLocationWrite(writeOpStop, metrics.OutcomeSuccess)

	event := &service.LocationEvent{
		Type:    constants.LocationEventCleared,
		OwnerID: viewerID.String(),
	}
	if removed != nil {
		event.RecordID = removed.ID.String()
		event.Visibility = removed.Visibility.String()
	}
	s.publish(ctx, event)

	return nil
}

// currentRecord returns the viewer's canonical record as stored, falling back
// to the session's copy when the store cannot be read.
func (s *circleService) currentRecord(ctx context.Context, session *circleSession, viewerID uuid.UUID) *entity.LocationRecord {
	records, err := s.locations.ListRecords(ctx, repository.ListFilter{OwnerID: &viewerID})
	if err != nil {
		s.logger.WarnContext(ctx, "[CircleService] Failed to read record before delete", slog.Any("error", err))
		return session.engine.SelfRecord()
	}

	return entity.MergeLatest(records)[viewerID]
}

func (s *circleService) publish(ctx context.Context, event *service.LocationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLocationEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "[CircleService] Failed to publish location event",
			slog.String("type", event.Type),
			slog.String("owner_id", event.OwnerID),
			slog.Any("error", err),
		)
	}
}

// FocusOwner centers the viewer's map on the marker with markerKey.
func (s *circleService) FocusOwner(ctx context.Context, viewerID uuid.UUID, markerKey string) (*entity.MapSnapshot, error) {
	session, err := s.hub.session(viewerID)
	if err != nil {
		return nil, err
	}
	if err := session.markers.FocusKey(ctx, markerKey); err != nil {
		return nil, err
	}
	snapshot := session.markers.Snapshot()

	return &snapshot, nil
}

// MapScene returns the viewer's map state.
func (s *circleService) MapScene(ctx context.Context, viewerID uuid.UUID) (*entity.MapSnapshot, error) {
	session, err := s.hub.session(viewerID)
	if err != nil {
		return nil, err
	}
	snapshot := session.markers.Snapshot()

	return &snapshot, nil
}
