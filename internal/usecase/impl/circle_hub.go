package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lastseen/config"
	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/lifecycle"
	"lastseen/internal/domain/policy"
	"lastseen/internal/domain/repository"
	"lastseen/internal/domain/service"
	"lastseen/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// CircleHubParams holds the dependencies of the session hub.
type CircleHubParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Locations repository.LocationRepository
	Users     repository.UserRepository
	Clock     service.Clock
	Metrics   metrics.Recorder
	Surfaces  service.MapSurfaceFactory
}

// circleSession is one viewer's engine, marker manager and map surface.
type circleSession struct {
	engine  *SyncEngine
	markers *MarkerManager
	// writeMu serializes the viewer's own writes.
	writeMu  sync.Mutex
	lastUsed time.Time
}

// CircleHub owns the per-viewer sessions. A session is created on first use
// and torn down after an idle period or at shutdown.
type CircleHub struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*circleSession
	closed   bool

	deps        SyncDeps
	opts        SyncOptions
	idleTimeout time.Duration
	focusZoom   float64
	surfaces    service.MapSurfaceFactory

	baseCtx     context.Context
	cancel      context.CancelFunc
	janitorDone chan struct{}
}

// NewCircleHub creates the hub and registers its janitor with the lifecycle.
func NewCircleHub(params CircleHubParams) (*CircleHub, error) {
	mode, err := policy.ParseMode(params.Config.Privacy.Policy)
	if err != nil {
		return nil, err
	}

	deps := SyncDeps{
		Locations: params.Locations,
		Users:     params.Users,
		Evaluator: policy.NewEvaluator(mode, params.Clock.Now),
		Clock:     params.Clock,
		Logger:    params.Logger,
		Metrics:   params.Metrics,
	}
	hub := newCircleHub(deps, syncOptionsFromConfig(params.Config), params.Config.Sync.SessionIdleTimeout, params.Config.Map.FocusZoom, params.Surfaces)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			hub.startJanitor()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return hub.Close(ctx)
		},
	})

	return hub, nil
}

func syncOptionsFromConfig(cfg *config.Config) SyncOptions {
	return SyncOptions{
		PollInterval:   cfg.Sync.PollInterval,
		PageSize:       cfg.Sync.PageSize,
		StaleAfter:     cfg.Sync.StaleAfter,
		CleanupTimeout: cfg.Sync.CleanupTimeout,
	}
}

func newCircleHub(deps SyncDeps, opts SyncOptions, idleTimeout time.Duration, focusZoom float64, surfaces service.MapSurfaceFactory) *CircleHub {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &CircleHub{
		sessions:    make(map[uuid.UUID]*circleSession),
		deps:        deps,
		opts:        opts,
		idleTimeout: idleTimeout,
		focusZoom:   focusZoom,
		surfaces:    surfaces,
		baseCtx:     ctx,
		cancel:      cancel,
	}
}

// Evaluator returns the policy shared by all sessions.
func (h *CircleHub) Evaluator() *policy.Evaluator {
	return h.deps.Evaluator
}

// session returns the viewer's session, starting it on first use.
func (h *CircleHub) session(viewerID uuid.UUID) (*circleSession, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, domainerrors.ErrSessionClosed
	}
	now := h.deps.Clock.Now()
	if s, ok := h.sessions[viewerID]; ok {
		s.lastUsed = now
		h.mu.Unlock()
		return s, nil
	}

	s := h.newSession(viewerID)
	s.lastUsed = now
	h.sessions[viewerID] = s
	h.deps.Metrics.SetActiveSessions(len(h.sessions))
	h.mu.Unlock()

	h.deps.Logger.Info("[CircleHub] Session started", slog.String("viewer_id", viewerID.String()))
	if err := s.engine.Start(h.baseCtx); err != nil {
		return nil, err
	}

	return s, nil
}

func (h *CircleHub) newSession(viewerID uuid.UUID) *circleSession {
	markers := NewMarkerManager(h.surfaces(), h.focusZoom, h.deps.Logger)
	logger := h.deps.Logger
	listener := func(ctx context.Context, view *entity.CircleView) {
		// Rendering must not be cut short by the request that triggered the poll.
		if err := markers.Reconcile(context.WithoutCancel(ctx), view); err != nil {
			logger.Warn("[CircleHub] Marker reconcile failed", slog.String("viewer_id", viewerID.String()), slog.Any("error", err))
		}
	}

	return &circleSession{
		engine:  NewSyncEngine(viewerID, h.deps, h.opts, listener),
		markers: markers,
	}
}

// ActiveSessions returns the number of live sessions.
func (h *CircleHub) ActiveSessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.sessions)
}

func (h *CircleHub) startJanitor() {
	if h.idleTimeout <= 0 {
		return
	}
	ticker := h.deps.Clock.NewTicker(h.idleTimeout / 2)
	h.janitorDone = make(chan struct{})

	go func() {
		defer close(h.janitorDone)
		defer ticker.Stop()

		for {
			select {
			case <-h.baseCtx.Done():
				return
			case <-ticker.C():
				h.evictIdle()
			}
		}
	}()
}

// evictIdle stops sessions unused for at least the idle timeout.
func (h *CircleHub) evictIdle() {
	now := h.deps.Clock.Now()

	h.mu.Lock()
	var idle []*circleSession
	for viewerID, s := range h.sessions {
		if now.Sub(s.lastUsed) >= h.idleTimeout {
			idle = append(idle, s)
			delete(h.sessions, viewerID)
		}
	}
	h.deps.Metrics.SetActiveSessions(len(h.sessions))
	h.mu.Unlock()

	for _, s := range idle {
		s.engine.Stop()
		h.deps.Logger.Info("[CircleHub] Session evicted", slog.String("viewer_id", s.engine.ViewerID().String()))
	}
}

// Close stops every session. Sessions requested afterwards fail with ErrSessionClosed.
func (h *CircleHub) Close(ctx context.Context) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	sessions := h.sessions
	h.sessions = make(map[uuid.UUID]*circleSession)
	h.deps.Metrics.SetActiveSessions(0)
	h.mu.Unlock()

	h.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if h.janitorDone != nil {
			<-h.janitorDone
		}
		var wg sync.WaitGroup
		for _, s := range sessions {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.engine.Stop()
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
		h.deps.Logger.Info("[CircleHub] All sessions stopped", slog.Int("count", len(sessions)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
