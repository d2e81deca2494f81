package impl

import (
	"context"
	"log/slog"
	"maps"
	"math"
	"slices"
	"sync"

	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PatchOp is the kind of change applied to one marker.
type PatchOp int

const (
	PatchAdd PatchOp = iota
	PatchUpdate
	PatchRemove
)

// MarkerPatch is one incremental change to the rendered markers.
type MarkerPatch struct {
	Op     PatchOp
	Marker entity.MapMarker // For PatchRemove only OwnerID is set.
}

// ReconcileMarkers diffs the rendered markers against the next set, keyed by owner.
// Applying the patches to prev yields exactly next; unchanged markers produce no patch.
// Removals come first, then adds and updates, each ordered by owner id.
func ReconcileMarkers(prev map[uuid.UUID]entity.MapMarker, next []entity.MapMarker) []MarkerPatch {
	nextByOwner := make(map[uuid.UUID]entity.MapMarker, len(next))
	for _, marker := range next {
		nextByOwner[marker.OwnerID] = marker
	}

	var removals, changes []MarkerPatch
	for ownerID := range prev {
		if _, ok := nextByOwner[ownerID]; !ok {
			removals = append(removals, MarkerPatch{Op: PatchRemove, Marker: entity.MapMarker{OwnerID: ownerID}})
		}
	}
	for ownerID, marker := range nextByOwner {
		current, ok := prev[ownerID]
		switch {
		case !ok:
			changes = append(changes, MarkerPatch{Op: PatchAdd, Marker: marker})
		case !sameMarker(current, marker):
			changes = append(changes, MarkerPatch{Op: PatchUpdate, Marker: marker})
		}
	}

	byOwner := func(a, b MarkerPatch) int { return compareUUID(a.Marker.OwnerID, b.Marker.OwnerID) }
	slices.SortFunc(removals, byOwner)
	slices.SortFunc(changes, byOwner)

	return append(removals, changes...)
}

func sameMarker(a, b entity.MapMarker) bool {
	return a.OwnerID == b.OwnerID &&
		a.Key == b.Key &&
		a.Position == b.Position &&
		a.Label == b.Label &&
		a.Note == b.Note &&
		a.PlaceLabel == b.PlaceLabel &&
		a.IsSelf == b.IsSelf &&
		a.IsStale == b.IsStale &&
		a.Vague == b.Vague &&
		a.UpdatedAt.Equal(b.UpdatedAt)
}

func compareUUID(a, b uuid.UUID) int {
	switch as, bs := a.String(), b.String(); {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// MarkerManager keeps a map surface in step with the circle view.
// All surface calls go through one mutex, so focus and reconcile never interleave.
type MarkerManager struct {
	mu        sync.Mutex
	surface   service.MapSurface
	rendered  map[uuid.UUID]entity.MapMarker
	fitted    bool
	focusZoom float64
	logger    *slog.Logger
}

// NewMarkerManager creates a manager driving surface.
func NewMarkerManager(surface service.MapSurface, focusZoom float64, logger *slog.Logger) *MarkerManager {
	return &MarkerManager{
		surface:   surface,
		rendered:  make(map[uuid.UUID]entity.MapMarker),
		focusZoom: focusZoom,
		logger:    logger,
	}
}

// Reconcile applies the difference between the rendered markers and view.
// The viewport is fitted to the markers once, on the first non-empty view.
func (m *MarkerManager) Reconcile(ctx context.Context, view *entity.CircleView) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var next []entity.MapMarker
	if view != nil {
		next = make([]entity.MapMarker, 0, len(view.Locations))
		for _, location := range view.Locations {
			next = append(next, entity.MarkerFromLocation(location))
		}
	}

	for _, patch := range ReconcileMarkers(m.rendered, next) {
		if err := m.apply(ctx, patch); err != nil {
			return errors.Wrapf(err, "apply marker patch for %s", patch.Marker.OwnerID)
		}
	}

	if !m.fitted && len(next) > 0 {
		if err := m.surface.FitBounds(ctx, markerBounds(next)); err != nil {
			return errors.Wrap(err, "fit bounds")
		}
		m.fitted = true
	}

	return nil
}

func (m *MarkerManager) apply(ctx context.Context, patch MarkerPatch) error {
	switch patch.Op {
	case PatchAdd:
		if err := m.surface.AddMarker(ctx, patch.Marker); err != nil {
			return err
		}
		m.rendered[patch.Marker.OwnerID] = patch.Marker
	case PatchUpdate:
		if err := m.surface.UpdateMarker(ctx, patch.Marker); err != nil {
			return err
		}
		m.rendered[patch.Marker.OwnerID] = patch.Marker
	case PatchRemove:
		if err := m.surface.RemoveMarker(ctx, patch.Marker.OwnerID); err != nil {
			return err
		}
		delete(m.rendered, patch.Marker.OwnerID)
	}

	return nil
}

func markerBounds(markers []entity.MapMarker) orb.Bound {
	points := make(orb.MultiPoint, 0, len(markers))
	for _, marker := range markers {
		points = append(points, marker.Position.Point())
	}

	return points.Bound()
}

// FocusOwner brings one member's marker into view and opens its popup.
// A clustered marker is expanded first; each step completes before the next starts.
func (m *MarkerManager) FocusOwner(ctx context.Context, ownerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.focusLocked(ctx, ownerID)
}

// FocusKey is FocusOwner addressed by the marker key clients see.
func (m *MarkerManager) FocusKey(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ownerID, marker := range m.rendered {
		if key != "" && marker.Key == key {
			return m.focusLocked(ctx, ownerID)
		}
	}

	return domainerrors.ErrMarkerNotFound.WithDetails(key)
}

func (m *MarkerManager) focusLocked(ctx context.Context, ownerID uuid.UUID) error {
	marker, ok := m.rendered[ownerID]
	if !ok {
		return domainerrors.ErrMarkerNotFound.WithDetails(ownerID.String())
	}

	if err := m.expandIfClustered(ctx, ownerID); err != nil {
		return err
	}

	// Never zoom back out past the level the expansion needed.
	zoom := math.Max(m.focusZoom, m.surface.Snapshot().Zoom)
	if err := m.surface.FlyTo(ctx, marker.Position, zoom); err != nil {
		return errors.Wrap(err, "fly to marker")
	}
	// Moving the viewport can regroup markers that share a building.
	if err := m.expandIfClustered(ctx, ownerID); err != nil {
		return err
	}
	if err := m.surface.OpenPopup(ctx, ownerID); err != nil {
		return errors.Wrap(err, "open popup")
	}

	m.logger.Debug("[MarkerManager] Focused owner", slog.String("owner_id", ownerID.String()), slog.Float64("zoom", zoom))

	return nil
}

func (m *MarkerManager) expandIfClustered(ctx context.Context, ownerID uuid.UUID) error {
	if !m.surface.IsClustered(ownerID) {
		return nil
	}
	if err := m.surface.ExpandCluster(ctx, ownerID); err != nil {
		return errors.Wrap(err, "expand cluster")
	}

	return nil
}

// Snapshot returns the surface state.
func (m *MarkerManager) Snapshot() entity.MapSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.surface.Snapshot()
}

// Rendered returns a copy of the markers currently on the surface.
func (m *MarkerManager) Rendered() map[uuid.UUID]entity.MapMarker {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Clone(m.rendered)
}
