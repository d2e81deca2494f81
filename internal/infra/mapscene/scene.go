// Package mapscene keeps a server-side map surface per viewer: viewport,
// markers, clusters and the open popup. Thin clients render its snapshot.
package mapscene

import (
	"context"
	"math"
	"sync"

	"lastseen/config"
	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/service"
	"lastseen/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DefaultMaxZoom is the deepest zoom; clustering is disabled there.
const DefaultMaxZoom = 20

const (
	defaultViewportWidth  = 1024
	defaultViewportHeight = 768
	fitPaddingPixels      = 100
)

// ErrMarkerHidden is returned when opening the popup of a clustered marker.
var ErrMarkerHidden = errors.New("marker is aggregated in a cluster")

// Options configures a scene.
type Options struct {
	InitialZoom       float64
	FitMaxZoom        float64
	MaxZoom           float64
	ClusterCellPixels int
	ViewportWidth     int
	ViewportHeight    int
}

// OptionsFromConfig reads the map section.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{MaxZoom: DefaultMaxZoom}
	if cfg != nil && cfg.Map != nil {
		opts.InitialZoom = cfg.Map.InitialZoom
		opts.FitMaxZoom = cfg.Map.FitMaxZoom
		opts.ClusterCellPixels = cfg.Map.ClusterCellPixels
	}

	return opts
}

// NewFactory returns a constructor for per-session scenes.
func NewFactory(cfg *config.Config) service.MapSurfaceFactory {
	opts := OptionsFromConfig(cfg)

	return func() service.MapSurface {
		return NewScene(opts)
	}
}

// Scene is an in-memory map surface. It is safe for concurrent use.
type Scene struct {
	mu      sync.RWMutex
	opts    Options
	center  entity.Coordinates
	zoom    float64
	markers map[uuid.UUID]entity.MapMarker
	popup   *uuid.UUID
	fitted  bool
}

// NewScene creates an empty scene centered on (0, 0).
func NewScene(opts Options) *Scene {
	if opts.MaxZoom <= 0 {
		opts.MaxZoom = DefaultMaxZoom
	}
	if opts.FitMaxZoom <= 0 || opts.FitMaxZoom > opts.MaxZoom {
		opts.FitMaxZoom = opts.MaxZoom
	}
	if opts.InitialZoom <= 0 {
		opts.InitialZoom = 2
	}
	if opts.ClusterCellPixels <= 0 {
		opts.ClusterCellPixels = 60
	}
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = defaultViewportWidth
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = defaultViewportHeight
	}

	return &Scene{
		opts:    opts,
		zoom:    opts.InitialZoom,
		markers: make(map[uuid.UUID]entity.MapMarker),
	}
}

// AddMarker places a marker, replacing any marker of the same owner.
func (s *Scene) AddMarker(ctx context.Context, marker entity.MapMarker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers[marker.OwnerID] = marker

	return nil
}

// UpdateMarker replaces an existing marker.
func (s *Scene) UpdateMarker(ctx context.Context, marker entity.MapMarker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markers[marker.OwnerID]; !ok {
		return domainerrors.ErrMarkerNotFound.WithDetails(marker.OwnerID.String())
	}
	s.markers[marker.OwnerID] = marker

	return nil
}

// RemoveMarker deletes a marker and closes its popup.
func (s *Scene) RemoveMarker(ctx context.Context, ownerID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markers[ownerID]; !ok {
		return domainerrors.ErrMarkerNotFound.WithDetails(ownerID.String())
	}
	delete(s.markers, ownerID)
	if s.popup != nil && *s.popup == ownerID {
		s.popup = nil
	}

	return nil
}

// FitBounds centers the viewport on bound at the deepest zoom that shows all
// of it inside the padded viewport, capped at the fit zoom limit.
func (s *Scene) FitBounds(ctx context.Context, bound orb.Bound) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.zoom = s.fitZoom(bound)
	s.center = entity.CoordinatesFromPoint(bound.Center())
	s.fitted = true

	return nil
}

func (s *Scene) fitZoom(bound orb.Bound) float64 {
	availW := float64(max(s.opts.ViewportWidth-2*fitPaddingPixels, 1))
	availH := float64(max(s.opts.ViewportHeight-2*fitPaddingPixels, 1))
	sw := entity.CoordinatesFromPoint(bound.Min)
	ne := entity.CoordinatesFromPoint(bound.Max)

	for z := int(s.opts.FitMaxZoom); z > 0; z-- {
		a, b := project(sw, z), project(ne, z)
		if math.Abs(b.x-a.x) <= availW && math.Abs(a.y-b.y) <= availH {
			return float64(z)
		}
	}

	return 0
}

// IsClustered reports whether the marker shares its cell with another marker.
func (s *Scene) IsClustered(ownerID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.clusteredLocked(ownerID, s.zoom)
}

func (s *Scene) clusteredLocked(ownerID uuid.UUID, zoom float64) bool {
	if zoom >= s.opts.MaxZoom {
		return false
	}

	return buildGrid(s.markers, int(zoom), s.opts.ClusterCellPixels).clustered(ownerID)
}

// ExpandCluster zooms in on the marker one level at a time until it is rendered on its own.
func (s *Scene) ExpandCluster(ctx context.Context, ownerID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	marker, ok := s.markers[ownerID]
	if !ok {
		return domainerrors.ErrMarkerNotFound.WithDetails(ownerID.String())
	}

	zoom := math.Floor(s.zoom)
	for s.clusteredLocked(ownerID, zoom) && zoom < s.opts.MaxZoom {
		zoom++
	}
	s.zoom = zoom
	s.center = marker.Position

	return nil
}

// FlyTo moves the viewport.
func (s *Scene) FlyTo(ctx context.Context, position entity.Coordinates, zoom float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.center = position
	s.zoom = math.Max(0, math.Min(zoom, s.opts.MaxZoom))

	return nil
}

// OpenPopup opens the popup of a marker that is rendered on its own.
func (s *Scene) OpenPopup(ctx context.Context, ownerID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markers[ownerID]; !ok {
		return domainerrors.ErrMarkerNotFound.WithDetails(ownerID.String())
	}
	if s.clusteredLocked(ownerID, s.zoom) {
		return errors.Wrapf(ErrMarkerHidden, "owner %s", ownerID)
	}
	id := ownerID
	s.popup = &id

	return nil
}

// Snapshot returns the rendered state at the current zoom.
func (s *Scene) Snapshot() entity.MapSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := entity.MapSnapshot{
		Center: s.center,
		Zoom:   s.zoom,
		Fitted: s.fitted,
	}
	if s.popup != nil {
		id := *s.popup
		snapshot.OpenPopup = &id
		snapshot.PopupKey = s.markers[id].Key
	}

	if s.zoom >= s.opts.MaxZoom {
		snapshot.Markers = sortedMarkers(s.markers)
		return snapshot
	}
	snapshot.Markers, snapshot.Clusters = buildGrid(s.markers, int(s.zoom), s.opts.ClusterCellPixels).split(s.markers)

	return snapshot
}
