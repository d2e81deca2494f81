// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisibilityMode is the audience scope an owner picked for a record.
type VisibilityMode string

const (
	// VisibilityPublic is visible to every authenticated member in community mode.
	VisibilityPublic VisibilityMode = "public"
	// VisibilityUnlisted is visible only to the owner and public share-link holders.
	VisibilityUnlisted VisibilityMode = "unlisted"
	// VisibilityConnectionsOnly is visible to viewers who list the owner as a connection.
	VisibilityConnectionsOnly VisibilityMode = "connectionsOnly"
	// VisibilityVague is public in scope but always obfuscated.
	VisibilityVague VisibilityMode = "vague"
)

// IsValid checks if the VisibilityMode is a known value.
func (m VisibilityMode) IsValid() bool {
	switch m {
	case VisibilityPublic, VisibilityUnlisted, VisibilityConnectionsOnly, VisibilityVague:
		return true
	default:
		return false
	}
}

// String returns the string representation of the VisibilityMode.
func (m VisibilityMode) String() string {
	return string(m)
}

// LocationRecord is the single "last seen" broadcast of an owner.
// Coordinates are the display coordinates; for obfuscated records the true fix is never stored.
type LocationRecord struct {
	ID          uuid.UUID      // Store-assigned identifier.
	OwnerID     uuid.UUID      // The user who authored the record.
	Coordinates Coordinates    // Display coordinates.
	Note        string         // Optional short status text.
	PlaceLabel  string         // Derived place name, best-effort.
	Visibility  VisibilityMode // Audience scope.
	Vague       bool           // Vague transform composed with Visibility.
	ExpiresAt   *time.Time     // Nil means the record never expires.
	CreatedAt   time.Time
	UpdatedAt   time.Time // Ordering key for "latest".
}

// IsObfuscated reports whether the record's coordinates went through the vague transform.
func (r *LocationRecord) IsObfuscated() bool {
	return r.Visibility == VisibilityVague || r.Vague
}

// IsExpired reports whether the record's expiry is at or before now.
func (r *LocationRecord) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && !r.ExpiresAt.After(now)
}

// IsStale reports whether the record has not been refreshed for at least staleAfter.
func (r *LocationRecord) IsStale(now time.Time, staleAfter time.Duration) bool {
	return now.Sub(r.UpdatedAt) >= staleAfter
}

// Clone returns a deep copy so view consumers cannot mutate engine state.
func (r *LocationRecord) Clone() *LocationRecord {
	if r == nil {
		return nil
	}
	cp := *r
	if r.ExpiresAt != nil {
		expiresAt := *r.ExpiresAt
		cp.ExpiresAt = &expiresAt
	}

	return &cp
}

// dominates reports whether r should be kept over other for the same owner.
func (r *LocationRecord) dominates(other *LocationRecord) bool {
	if !r.UpdatedAt.Equal(other.UpdatedAt) {
		return r.UpdatedAt.After(other.UpdatedAt)
	}

	return r.ID.String() > other.ID.String()
}
