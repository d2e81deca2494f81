package service

import "context"

// Geocoder turns coordinates into a short place label.
// Resolve never fails: any lookup problem yields an empty label.
type Geocoder interface {
	Resolve(ctx context.Context, lat, lng float64) string
}
