package entity

import (
	"time"

	"github.com/google/uuid"
)

// MapMarker is the rendered form of one visible location. Surfaces key markers
// by owner; clients only ever see Key.
type MapMarker struct {
	OwnerID    uuid.UUID   `json:"-"`
	Key        string      `json:"key"`
	Position   Coordinates `json:"position"`
	Label      string      `json:"label"`
	Note       string      `json:"note,omitempty"`
	PlaceLabel string      `json:"place_label,omitempty"`
	IsSelf     bool        `json:"is_self"`
	IsStale    bool        `json:"is_stale"`
	Vague      bool        `json:"vague"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// MarkerFromLocation builds the marker for a visible location.
func MarkerFromLocation(l VisibleLocation) MapMarker {
	return MapMarker{
		OwnerID:    l.Record.OwnerID,
		Key:        l.MarkerKey(),
		Position:   l.Record.Coordinates,
		Label:      l.OwnerLabel(),
		Note:       l.Record.Note,
		PlaceLabel: l.Record.PlaceLabel,
		IsSelf:     l.IsSelf,
		IsStale:    l.IsStale,
		Vague:      l.Record.IsObfuscated(),
		UpdatedAt:  l.Record.UpdatedAt,
	}
}

// MapCluster aggregates markers that fall into the same grid cell at the current zoom.
type MapCluster struct {
	Position Coordinates `json:"position"`
	OwnerIDs []uuid.UUID `json:"-"`
	Keys     []string    `json:"keys"`
}

// MapSnapshot is the full visible state of a map surface.
type MapSnapshot struct {
	Center    Coordinates  `json:"center"`
	Zoom      float64      `json:"zoom"`
	Markers   []MapMarker  `json:"markers"`  // Markers rendered on their own.
	Clusters  []MapCluster `json:"clusters"` // Aggregated markers.
	OpenPopup *uuid.UUID   `json:"-"`
	PopupKey  string       `json:"open_popup,omitempty"`
	Fitted    bool         `json:"fitted"`
}
