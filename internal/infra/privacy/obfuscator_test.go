package privacy

import (
	"testing"

	"lastseen/config"
	"lastseen/internal/domain/entity"

	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taipei = entity.Coordinates{Lat: 25.0330, Lng: 121.5654}

func TestObfuscator_IdentityForNonVagueModes(t *testing.T) {
	o := NewObfuscatorWithRand(500, nil)

	for _, mode := range []entity.VisibilityMode{entity.VisibilityPublic, entity.VisibilityUnlisted, entity.VisibilityConnectionsOnly} {
		assert.Equal(t, taipei, o.ApplyMode(taipei, mode, false), string(mode))
	}
}

func TestObfuscator_VagueIsNonDeterministicAndBounded(t *testing.T) {
	o := NewObfuscatorWithRand(500, nil)

	const trials = 100
	seen := make(map[entity.Coordinates]int, trials)
	duplicates := 0
	for range trials {
		out := o.ApplyMode(taipei, entity.VisibilityVague, false)
		if seen[out] > 0 {
			duplicates++
		}
		seen[out]++

		// Small tolerance for the spherical model used by the destination formula.
		assert.LessOrEqual(t, geo.DistanceHaversine(taipei.Point(), out.Point()), 500.5)
		assert.NotEqual(t, taipei, out)
	}
	assert.Less(t, float64(duplicates)/trials, 0.01)
}

func TestObfuscator_VagueFlagComposesWithPublic(t *testing.T) {
	o := NewObfuscatorWithRand(500, nil)

	out := o.ApplyMode(taipei, entity.VisibilityPublic, true)
	assert.NotEqual(t, taipei, out)
}

func TestObfuscator_NotCenterBiased(t *testing.T) {
	o := NewObfuscatorWithRand(500, nil)

	// For a uniform disc the median distance is R/sqrt(2), about 354m.
	const trials = 2000
	far := 0
	for range trials {
		out := o.Apply(taipei, true)
		if geo.DistanceHaversine(taipei.Point(), out.Point()) > 250 {
			far++
		}
	}
	// Expected share beyond R/2 is 75%.
	assert.Greater(t, float64(far)/trials, 0.65)
}

func TestObfuscator_StaysInRangeAcrossAntimeridian(t *testing.T) {
	o := NewObfuscatorWithRand(500, nil)

	for _, origin := range []entity.Coordinates{{Lat: -16.5, Lng: 179.999}, {Lat: -16.5, Lng: -179.999}, {Lat: 65.0, Lng: 180}} {
		for range 500 {
			out := o.Apply(origin, true)
			require.True(t, out.Valid(), "out of range: %+v", out)
			assert.LessOrEqual(t, geo.DistanceHaversine(origin.Point(), out.Point()), 500.5)
		}
	}
}

func TestWrapLongitude(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 179.5, want: 179.5},
		{in: -180, want: -180},
		{in: 180.002, want: -179.998},
		{in: -180.002, want: 179.998},
		{in: 540.5, want: -179.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, wrapLongitude(tt.in), 1e-9, "%v", tt.in)
	}
}

func TestNewObfuscator_RadiusFromConfig(t *testing.T) {
	o := NewObfuscator(&config.Config{Privacy: &config.PrivacyConfig{VagueRadiusMeters: 200}})
	require.Equal(t, 200.0, o.Radius())

	o = NewObfuscator(&config.Config{})
	assert.Equal(t, DefaultRadiusMeters, o.Radius())
}
