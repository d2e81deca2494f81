package service

import "lastseen/internal/domain/entity"

// Obfuscator produces the coordinates to persist for a record.
type Obfuscator interface {
	// Apply returns c unchanged unless obfuscate is set, in which case a fresh
	// bounded random offset is added on every call.
	Apply(c entity.Coordinates, obfuscate bool) entity.Coordinates

	// ApplyMode derives the obfuscate flag from the record's visibility settings.
	ApplyMode(c entity.Coordinates, mode entity.VisibilityMode, vague bool) entity.Coordinates

	// Radius returns the maximum offset in meters.
	Radius() float64
}
