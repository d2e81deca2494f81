// Package policy decides what a viewer may see of another member's location.
// Every function here is pure; callers pass the viewer, the record and its owner.
package policy

import (
	"time"

	"lastseen/internal/domain/constants"
	"lastseen/internal/domain/entity"
	"lastseen/internal/errors"

	"github.com/google/uuid"
)

// Mode is the deployment-wide audience policy.
type Mode string

const (
	// ModeCommunity lets any member see every record that is not unlisted.
	ModeCommunity Mode = constants.PolicyCommunity
	// ModeConnections lets a member see only the owners they list as connections.
	ModeConnections Mode = constants.PolicyConnections
)

// ParseMode validates a configured policy name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCommunity, ModeConnections:
		return Mode(s), nil
	default:
		return "", errors.Errorf("unknown visibility policy %q", s)
	}
}

// Evaluator applies one policy mode at a fixed instant.
type Evaluator struct {
	mode Mode
	now  func() time.Time
}

// NewEvaluator creates an evaluator; now supplies the instant used for expiry checks.
func NewEvaluator(mode Mode, now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}

	return &Evaluator{mode: mode, now: now}
}

// Mode returns the configured policy.
func (e *Evaluator) Mode() Mode {
	return e.mode
}

// AllowsVisibility reports whether owners may pick mode under this policy.
// Audience scopes are per deployment: public belongs to community mode and
// connectionsOnly to connections mode. Unlisted and vague exist in both.
func (e *Evaluator) AllowsVisibility(mode entity.VisibilityMode) bool {
	switch mode {
	case entity.VisibilityUnlisted, entity.VisibilityVague:
		return true
	case entity.VisibilityPublic:
		return e.mode == ModeCommunity
	case entity.VisibilityConnectionsOnly:
		return e.mode == ModeConnections
	default:
		return false
	}
}

// IsVisible reports whether viewer may see record authored by owner.
func (e *Evaluator) IsVisible(viewer *entity.User, record *entity.LocationRecord, owner *entity.User) bool {
	if viewer == nil || record == nil {
		return false
	}
	if record.IsExpired(e.now()) {
		return false
	}
	if viewer.ID == record.OwnerID {
		return true
	}

	// Unlisted records are only reachable through the owner's share link.
	if record.Visibility == entity.VisibilityUnlisted {
		return false
	}

	switch e.mode {
	case ModeCommunity:
		return true
	case ModeConnections:
		return viewer.HasConnection(record.OwnerID)
	default:
		return false
	}
}

// RevealIdentity reports whether the viewer may learn who authored a visible record.
// In community mode an obfuscated record from someone the viewer has not
// connected with is shown anonymously.
func (e *Evaluator) RevealIdentity(viewer *entity.User, record *entity.LocationRecord, owner *entity.User) bool {
	if !e.IsVisible(viewer, record, owner) {
		return false
	}
	if viewer.ID == record.OwnerID {
		return true
	}
	if e.mode == ModeConnections {
		return true
	}

	return !record.IsObfuscated() || viewer.HasConnection(record.OwnerID)
}

// Filter projects a synchronized view onto what viewer may see, newest first.
// owners maps owner ids to their user rows; a missing owner is treated as unknown.
func (e *Evaluator) Filter(viewer *entity.User, view *entity.SynchronizedView, owners map[uuid.UUID]*entity.User, staleAfter time.Duration) *entity.CircleView {
	now := e.now()
	out := &entity.CircleView{}
	if view == nil {
		return out
	}
	out.SyncedAt = view.SyncedAt
	out.SyncError = view.SyncError
	out.SelfStale = view.SelfStale
	out.Self = view.Self.Clone()

	for ownerID, record := range view.LatestByOwner {
		owner := owners[ownerID]
		if !e.IsVisible(viewer, record, owner) {
			continue
		}
		location := entity.VisibleLocation{
			Record:  record.Clone(),
			IsSelf:  viewer.ID == ownerID,
			IsStale: record.IsStale(now, staleAfter),
		}
		if e.RevealIdentity(viewer, record, owner) {
			location.Owner = owner
		}
		out.Locations = append(out.Locations, location)
	}
	sortLocations(out.Locations)

	return out
}
