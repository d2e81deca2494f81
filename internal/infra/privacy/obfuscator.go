// Package privacy implements the vague-location transform.
package privacy

import (
	"math"
	"math/rand/v2"
	"sync"

	"lastseen/config"
	"lastseen/internal/domain/entity"
	"lastseen/internal/domain/service"

	"github.com/paulmach/orb/geo"
)

// DefaultRadiusMeters is used when no radius is configured.
const DefaultRadiusMeters = 500.0

type obfuscator struct {
	radius float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewObfuscator creates the obfuscator from the privacy config.
func NewObfuscator(cfg *config.Config) service.Obfuscator {
	radius := DefaultRadiusMeters
	if cfg.Privacy != nil && cfg.Privacy.VagueRadiusMeters > 0 {
		radius = cfg.Privacy.VagueRadiusMeters
	}

	return NewObfuscatorWithRand(radius, nil)
}

// NewObfuscatorWithRand creates an obfuscator with an explicit radius and random
// source. A nil rng draws from the runtime-seeded global generator.
func NewObfuscatorWithRand(radius float64, rng *rand.Rand) service.Obfuscator {
	return &obfuscator{radius: radius, rng: rng}
}

func (o *obfuscator) Radius() float64 {
	return o.radius
}

func (o *obfuscator) ApplyMode(c entity.Coordinates, mode entity.VisibilityMode, vague bool) entity.Coordinates {
	return o.Apply(c, mode == entity.VisibilityVague || vague)
}

// Apply offsets c to a uniformly distributed point inside a disc of the
// configured radius. The sqrt on the distance keeps density uniform over the
// area so the true position is not the most likely output.
func (o *obfuscator) Apply(c entity.Coordinates, obfuscate bool) entity.Coordinates {
	if !obfuscate || o.radius <= 0 {
		return c
	}

	u, v := o.draw()
	distance := o.radius * math.Sqrt(u)
	bearing := 360 * v

	moved := geo.PointAtBearingAndDistance(c.Point(), bearing, distance)
	moved[0] = wrapLongitude(moved[0])

	return entity.CoordinatesFromPoint(moved)
}

// wrapLongitude folds lng back into [-180, 180] after crossing the antimeridian.
func wrapLongitude(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}
	wrapped := math.Mod(lng+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}

	return wrapped - 180
}

func (o *obfuscator) draw() (float64, float64) {
	if o.rng == nil {
		return rand.Float64(), rand.Float64()
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.rng.Float64(), o.rng.Float64()
}
