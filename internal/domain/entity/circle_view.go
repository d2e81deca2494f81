package entity

import "time"

// VisibleLocation is one entry of the circle as seen by a specific viewer.
type VisibleLocation struct {
	Record  *LocationRecord
	Owner   *User // Nil when the owner's identity is withheld from the viewer.
	IsSelf  bool
	IsStale bool
	Key     string // Per-session handle; opaque for withheld owners.
}

// IdentityWithheld reports whether the viewer must not learn who owns the entry.
func (l VisibleLocation) IdentityWithheld() bool {
	return !l.IsSelf && l.Owner == nil
}

// MarkerKey returns the handle clients address the entry by.
func (l VisibleLocation) MarkerKey() string {
	if l.Key != "" || l.IdentityWithheld() {
		return l.Key
	}

	return l.Record.OwnerID.String()
}

// OwnerLabel returns the label to render for the entry.
func (l VisibleLocation) OwnerLabel() string {
	switch {
	case l.IsSelf:
		return "You"
	case l.Owner == nil:
		return "Someone"
	default:
		return l.Owner.PublicLabel()
	}
}

// CircleView is the policy-filtered read model handed to the UI layer.
type CircleView struct {
	Locations []VisibleLocation // Sorted by UpdatedAt, newest first.
	Self      *LocationRecord
	SelfStale bool
	SyncedAt  time.Time
	SyncError string
}

// Empty reports whether nothing is visible.
func (v *CircleView) Empty() bool {
	return v == nil || len(v.Locations) == 0
}
