package impl

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
	"slices"
	"sync"
	"time"

	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/policy"
	"lastseen/internal/domain/repository"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"
	"lastseen/internal/infra/metrics"

	"github.com/google/uuid"
)

// SyncOptions tunes one engine.
type SyncOptions struct {
	PollInterval   time.Duration
	PageSize       int // 0 fetches every record.
	StaleAfter     time.Duration
	CleanupTimeout time.Duration
}

// SyncDeps are the collaborators shared by every engine of a process.
type SyncDeps struct {
	Locations repository.LocationRepository
	Users     repository.UserRepository
	Evaluator *policy.Evaluator
	Clock     service.Clock
	Logger    *slog.Logger
	Metrics   metrics.Recorder
}

// ViewListener receives every newly published circle view, in publication order.
type ViewListener func(ctx context.Context, view *entity.CircleView)

// SyncEngine polls the record store for one viewer and maintains the
// synchronized view. Polls are strictly sequential. A local write bumps the
// generation so that a poll already in flight cannot overwrite it.
type SyncEngine struct {
	viewerID uuid.UUID
	deps     SyncDeps
	opts     SyncOptions
	listener ViewListener
	// keySecret derives the marker keys of withheld owners; it never leaves the engine.
	keySecret []byte

	pollMu sync.Mutex

	mu         sync.Mutex
	view       *entity.SynchronizedView
	circle     *entity.CircleView
	viewer     *entity.User
	owners     map[uuid.UUID]*entity.User
	generation uint64
	closed     bool
	started    bool
	cancel     context.CancelFunc
	loopDone   chan struct{}
	inflight   map[uuid.UUID]struct{}
	cleanups   sync.WaitGroup
}

// NewSyncEngine creates an engine for viewerID. listener may be nil.
func NewSyncEngine(viewerID uuid.UUID, deps SyncDeps, opts SyncOptions, listener ViewListener) *SyncEngine {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	deps.Logger = deps.Logger.With(slog.String("viewer_id", viewerID.String()))

	keySecret := make([]byte, 32)
	_, _ = rand.Read(keySecret)

	return &SyncEngine{
		viewerID:  viewerID,
		deps:      deps,
		opts:      opts,
		listener:  listener,
		keySecret: keySecret,
		inflight:  make(map[uuid.UUID]struct{}),
	}
}

// ViewerID returns the viewer the engine polls for.
func (e *SyncEngine) ViewerID() uuid.UUID {
	return e.viewerID
}

// Start polls once, then keeps polling every PollInterval until ctx ends or Stop is called.
func (e *SyncEngine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return domainerrors.ErrSessionClosed
	}
	if e.started {
		e.mu.Unlock()
		return nil
	}
	loopCtx, cancel := context.WithCancel(ctx)
	e.started = true
	e.cancel = cancel
	e.loopDone = make(chan struct{})
	ticker := e.deps.Clock.NewTicker(e.opts.PollInterval)
	e.mu.Unlock()

	e.poll(loopCtx)
	go e.loop(loopCtx, ticker)

	return nil
}

func (e *SyncEngine) loop(ctx context.Context, ticker service.Ticker) {
	defer close(e.loopDone)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			e.poll(ctx)
		}
	}
}

func (e *SyncEngine) poll(ctx context.Context) {
	err := e.Refresh(ctx)
	if err == nil || errors.Is(err, domainerrors.ErrSessionClosed) || ctx.Err() != nil {
		return
	}
	e.deps.Logger.Warn("[SyncEngine] Scheduled poll failed", slog.Any("error", err))
}

// Stop cancels the schedule, waits for the loop and any in-flight cleanup,
// and closes the engine. Results arriving afterwards are discarded.
func (e *SyncEngine) Stop() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	cancel, done := e.cancel, e.loopDone
	e.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	e.cleanups.Wait()
}

// Closed reports whether Stop was called.
func (e *SyncEngine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.closed
}

// Refresh runs one poll. A failed poll keeps the last good view and records the error on it.
func (e *SyncEngine) Refresh(ctx context.Context) error {
	e.pollMu.Lock()
	defer e.pollMu.Unlock()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return domainerrors.ErrSessionClosed
	}
	generation := e.generation
	e.mu.Unlock()

	start := e.deps.Clock.Now()
	records, viewer, owners, err := e.fetch(ctx)
	if err != nil {
		e.deps.Metrics.RecordPoll(metrics.OutcomeFailure, e.deps.Clock.Now().Sub(start))
		e.keepLastGood(ctx, err)

		return errors.Wrap(err, "poll records")
	}

	now := e.deps.Clock.Now()
	view := entity.BuildSynchronizedView(records, e.viewerID, now, e.opts.StaleAfter)
	circle := e.deps.Evaluator.Filter(viewer, view, owners, e.opts.StaleAfter)
	e.assignKeys(circle)
	expired := entity.ExpiredOwnedBy(records, e.viewerID, now)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return domainerrors.ErrSessionClosed
	}
	e.scheduleCleanupLocked(expired)
	if e.generation != generation {
		e.mu.Unlock()
		e.deps.Logger.Debug("[SyncEngine] Discarded poll superseded by a local write")
		e.deps.Metrics.RecordPoll(metrics.OutcomeSkipped, now.Sub(start))

		return nil
	}
	e.view, e.circle, e.viewer, e.owners = view, circle, viewer, owners
	e.publishLocked(ctx)
	e.mu.Unlock()

	e.deps.Metrics.RecordPoll(metrics.OutcomeSuccess, now.Sub(start))

	return nil
}

// fetch loads one page of records plus the users needed to filter them.
func (e *SyncEngine) fetch(ctx context.Context) ([]*entity.LocationRecord, *entity.User, map[uuid.UUID]*entity.User, error) {
	records, err := e.deps.Locations.ListRecords(ctx, repository.ListFilter{Limit: e.opts.PageSize})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "list records")
	}

	// A bounded page can miss the viewer's own record; fetch it explicitly.
	if e.opts.PageSize > 0 && !ownsAny(records, e.viewerID) {
		viewerID := e.viewerID
		own, err := e.deps.Locations.ListRecords(ctx, repository.ListFilter{OwnerID: &viewerID})
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "list own records")
		}
		records = append(records, own...)
	}

	viewer, err := e.deps.Users.FindUserByID(ctx, e.viewerID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "find viewer")
	}

	owners := map[uuid.UUID]*entity.User{viewer.ID: viewer}
	var ownerIDs []uuid.UUID
	for _, record := range records {
		if _, seen := owners[record.OwnerID]; seen || slices.Contains(ownerIDs, record.OwnerID) {
			continue
		}
		ownerIDs = append(ownerIDs, record.OwnerID)
	}
	if len(ownerIDs) > 0 {
		users, err := e.deps.Users.FindUsersByIDs(ctx, ownerIDs)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "find owners")
		}
		for _, user := range users {
			owners[user.ID] = user
		}
	}

	return records, viewer, owners, nil
}

func ownsAny(records []*entity.LocationRecord, ownerID uuid.UUID) bool {
	return slices.ContainsFunc(records, func(r *entity.LocationRecord) bool { return r.OwnerID == ownerID })
}

func (e *SyncEngine) keepLastGood(ctx context.Context, cause error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	if e.view == nil {
		e.view = &entity.SynchronizedView{LatestByOwner: map[uuid.UUID]*entity.LocationRecord{}, SelfStale: true}
	}
	if e.circle == nil {
		e.circle = selfOnlyCircle(e.view)
	}
	e.view.SyncError = cause.Error()
	circle := *e.circle
	circle.SyncError = cause.Error()
	e.circle = &circle
	e.publishLocked(ctx)
}

// scheduleCleanupLocked deletes the viewer's expired records in the background.
// A record already being deleted is not dispatched again.
func (e *SyncEngine) scheduleCleanupLocked(expired []*entity.LocationRecord) {
	for _, record := range expired {
		if _, busy := e.inflight[record.ID]; busy {
			continue
		}
		e.inflight[record.ID] = struct{}{}
		e.cleanups.Add(1)
		go e.cleanup(record.ID)
	}
}

func (e *SyncEngine) cleanup(recordID uuid.UUID) {
	defer e.cleanups.Done()
	defer func() {
		e.mu.Lock()
		delete(e.inflight, recordID)
		e.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), e.opts.CleanupTimeout)
	defer cancel()

	logger := e.deps.Logger.With(slog.String("record_id", recordID.String()))
	err := e.deps.Locations.DeleteRecord(ctx, recordID)
	switch {
	case err == nil:
		e.deps.Metrics.RecordCleanup(metrics.OutcomeSuccess)
		logger.Debug("[SyncEngine] Deleted expired record")
	case errors.Is(err, repository.ErrLocationNotFound):
		e.deps.Metrics.RecordCleanup(metrics.OutcomeNotFound)
		logger.Debug("[SyncEngine] Expired record was already deleted")
	default:
		e.deps.Metrics.RecordCleanup(metrics.OutcomeFailure)
		logger.Warn("[SyncEngine] Failed to delete expired record", slog.Any("error", err))
	}
}

// ApplyLocalRecord installs the viewer's freshly written record and
// supersedes any poll in flight.
func (e *SyncEngine) ApplyLocalRecord(ctx context.Context, record *entity.LocationRecord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return domainerrors.ErrSessionClosed
	}
	e.generation++

	view := e.view.Clone()
	if view == nil {
		view = &entity.SynchronizedView{LatestByOwner: map[uuid.UUID]*entity.LocationRecord{}}
	}
	now := e.deps.Clock.Now()
	if record.IsExpired(now) {
		delete(view.LatestByOwner, e.viewerID)
	} else {
		view.LatestByOwner[e.viewerID] = record.Clone()
	}
	e.installLocalLocked(ctx, view, now)

	return nil
}

// ApplyLocalDelete removes the viewer's record after stop sharing.
func (e *SyncEngine) ApplyLocalDelete(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return domainerrors.ErrSessionClosed
	}
	e.generation++

	view := e.view.Clone()
	if view == nil {
		view = &entity.SynchronizedView{LatestByOwner: map[uuid.UUID]*entity.LocationRecord{}}
	}
	delete(view.LatestByOwner, e.viewerID)
	e.installLocalLocked(ctx, view, e.deps.Clock.Now())

	return nil
}

func (e *SyncEngine) installLocalLocked(ctx context.Context, view *entity.SynchronizedView, now time.Time) {
	view.Self = view.LatestByOwner[e.viewerID]
	view.SelfStale = view.Self == nil || view.Self.IsStale(now, e.opts.StaleAfter)
	e.view = view

	// Without a successful poll there is no viewer to filter against yet.
	if e.viewer != nil {
		e.circle = e.deps.Evaluator.Filter(e.viewer, view, e.owners, e.opts.StaleAfter)
		e.assignKeys(e.circle)
	} else {
		e.circle = selfOnlyCircle(view)
	}
	e.publishLocked(ctx)
}

// assignKeys gives every entry its marker key. Revealed owners are keyed by
// their id; withheld owners get a handle that is stable for this engine only.
func (e *SyncEngine) assignKeys(circle *entity.CircleView) {
	for i := range circle.Locations {
		location := &circle.Locations[i]
		if !location.IdentityWithheld() {
			location.Key = location.Record.OwnerID.String()
			continue
		}
		mac := hmac.New(sha256.New, e.keySecret)
		mac.Write(location.Record.OwnerID[:])
		location.Key = "anon-" + base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:12])
	}
}

func selfOnlyCircle(view *entity.SynchronizedView) *entity.CircleView {
	return &entity.CircleView{
		Self:      view.Self.Clone(),
		SelfStale: view.Self == nil || view.SelfStale,
		SyncedAt:  view.SyncedAt,
	}
}

func (e *SyncEngine) publishLocked(ctx context.Context) {
	if e.listener != nil {
		e.listener(ctx, cloneCircle(e.circle))
	}
}

// View returns a copy of the synchronized view, nil before the first poll.
func (e *SyncEngine) View() *entity.SynchronizedView {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.view.Clone()
}

// CircleView returns a copy of the filtered view, nil before the first poll.
func (e *SyncEngine) CircleView() *entity.CircleView {
	e.mu.Lock()
	defer e.mu.Unlock()

	return cloneCircle(e.circle)
}

// SelfRecord returns the viewer's current canonical record, if any.
func (e *SyncEngine) SelfRecord() *entity.LocationRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.view == nil {
		return nil
	}

	return e.view.Self.Clone()
}

// Generation returns the local write counter.
func (e *SyncEngine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.generation
}

func cloneCircle(v *entity.CircleView) *entity.CircleView {
	if v == nil {
		return nil
	}
	cp := *v
	cp.Self = v.Self.Clone()
	cp.Locations = make([]entity.VisibleLocation, len(v.Locations))
	for i, location := range v.Locations {
		location.Record = location.Record.Clone()
		cp.Locations[i] = location
	}

	return &cp
}
