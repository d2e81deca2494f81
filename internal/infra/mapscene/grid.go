package mapscene

import (
	"math"
	"slices"
	"strings"

	"lastseen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const (
	// tileSizeShift turns a tile zoom into a pixel zoom for 256px tiles.
	tileSizeShift = 8
	// maxMercatorLat is the latitude limit of the web mercator projection.
	maxMercatorLat = 85.05112878
)

type pixel struct {
	x, y float64
}

// project returns the world pixel position of c at zoom.
func project(c entity.Coordinates, zoom int) pixel {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, c.Lat))
	lng := math.Max(-180, math.Min(180-1e-9, c.Lng))
	tile := maptile.At(orb.Point{lng, lat}, maptile.Zoom(zoom+tileSizeShift))

	return pixel{x: float64(tile.X), y: float64(tile.Y)}
}

type cellKey struct {
	x, y int64
}

// clusterGrid buckets markers into square screen cells at one zoom level.
// Markers sharing a cell are rendered as one cluster.
type clusterGrid struct {
	cells   map[cellKey][]uuid.UUID
	byOwner map[uuid.UUID]cellKey
}

func buildGrid(markers map[uuid.UUID]entity.MapMarker, zoom, cellPixels int) *clusterGrid {
	g := &clusterGrid{
		cells:   make(map[cellKey][]uuid.UUID),
		byOwner: make(map[uuid.UUID]cellKey, len(markers)),
	}
	size := float64(max(cellPixels, 1))
	for ownerID, marker := range markers {
		p := project(marker.Position, zoom)
		key := cellKey{x: int64(math.Floor(p.x / size)), y: int64(math.Floor(p.y / size))}
		g.cells[key] = append(g.cells[key], ownerID)
		g.byOwner[ownerID] = key
	}
	for key := range g.cells {
		slices.SortFunc(g.cells[key], compareIDs)
	}

	return g
}

func (g *clusterGrid) clustered(ownerID uuid.UUID) bool {
	key, ok := g.byOwner[ownerID]

	return ok && len(g.cells[key]) > 1
}

// split separates single markers from clusters, both in a stable order.
func (g *clusterGrid) split(markers map[uuid.UUID]entity.MapMarker) ([]entity.MapMarker, []entity.MapCluster) {
	singles := make([]entity.MapMarker, 0, len(markers))
	var clusters []entity.MapCluster

	for _, members := range g.cells {
		if len(members) == 1 {
			singles = append(singles, markers[members[0]])
			continue
		}
		var lat, lng float64
		keys := make([]string, 0, len(members))
		for _, id := range members {
			lat += markers[id].Position.Lat
			lng += markers[id].Position.Lng
			keys = append(keys, markers[id].Key)
		}
		slices.Sort(keys)
		n := float64(len(members))
		clusters = append(clusters, entity.MapCluster{
			Position: entity.Coordinates{Lat: lat / n, Lng: lng / n},
			OwnerIDs: slices.Clone(members),
			Keys:     keys,
		})
	}

	slices.SortFunc(singles, compareMarkers)
	slices.SortFunc(clusters, func(a, b entity.MapCluster) int {
		if c := strings.Compare(a.Keys[0], b.Keys[0]); c != 0 {
			return c
		}
		return compareIDs(a.OwnerIDs[0], b.OwnerIDs[0])
	})

	return singles, clusters
}

func sortedMarkers(markers map[uuid.UUID]entity.MapMarker) []entity.MapMarker {
	out := make([]entity.MapMarker, 0, len(markers))
	for _, marker := range markers {
		out = append(out, marker)
	}
	slices.SortFunc(out, compareMarkers)

	return out
}

// compareMarkers orders by the client-visible key so the order says nothing about owner ids.
func compareMarkers(a, b entity.MapMarker) int {
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}

	return compareIDs(a.OwnerID, b.OwnerID)
}

func compareIDs(a, b uuid.UUID) int {
	switch {
	case a.String() < b.String():
		return -1
	case a.String() > b.String():
		return 1
	default:
		return 0
	}
}
