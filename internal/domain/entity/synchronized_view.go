package entity

import (
	"time"

	"github.com/google/uuid"
)

// SynchronizedView is the canonical per-owner view produced by one poll.
// It is derived, never persisted, and only the sync engine writes it.
type SynchronizedView struct {
	LatestByOwner map[uuid.UUID]*LocationRecord
	Self          *LocationRecord // Viewer's own canonical record, nil when not sharing.
	SelfStale     bool
	SyncedAt      time.Time
	SyncError     string // Transient error of the last poll, empty on success.
}

// MergeLatest groups records by owner and keeps the most recently updated one.
// Ties on UpdatedAt go to the greater record id.
func MergeLatest(records []*LocationRecord) map[uuid.UUID]*LocationRecord {
	latest := make(map[uuid.UUID]*LocationRecord, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		current, ok := latest[record.OwnerID]
		if !ok || record.dominates(current) {
			latest[record.OwnerID] = record
		}
	}

	return latest
}

// BuildSynchronizedView merges the fetched records and drops expired ones.
// Merge runs before the expiry filter so an expired newer record never
// resurrects an older one of the same owner.
func BuildSynchronizedView(records []*LocationRecord, viewerID uuid.UUID, now time.Time, staleAfter time.Duration) *SynchronizedView {
	merged := MergeLatest(records)

	view := &SynchronizedView{
		LatestByOwner: make(map[uuid.UUID]*LocationRecord, len(merged)),
		SyncedAt:      now,
	}
	for ownerID, record := range merged {
		if record.IsExpired(now) {
			continue
		}
		view.LatestByOwner[ownerID] = record.Clone()
	}

	view.Self = view.LatestByOwner[viewerID]
	view.SelfStale = view.Self == nil || view.Self.IsStale(now, staleAfter)

	return view
}

// Clone returns a copy that shares no mutable state with the receiver.
func (v *SynchronizedView) Clone() *SynchronizedView {
	if v == nil {
		return nil
	}
	cp := &SynchronizedView{
		LatestByOwner: make(map[uuid.UUID]*LocationRecord, len(v.LatestByOwner)),
		SelfStale:     v.SelfStale,
		SyncedAt:      v.SyncedAt,
		SyncError:     v.SyncError,
	}
	for ownerID, record := range v.LatestByOwner {
		cp.LatestByOwner[ownerID] = record.Clone()
	}
	if v.Self != nil {
		cp.Self = cp.LatestByOwner[v.Self.OwnerID]
	}

	return cp
}

// ExpiredOwnedBy returns the viewer's fetched records whose expiry has passed.
func ExpiredOwnedBy(records []*LocationRecord, ownerID uuid.UUID, now time.Time) []*LocationRecord {
	var expired []*LocationRecord
	for _, record := range records {
		if record != nil && record.OwnerID == ownerID && record.IsExpired(now) {
			expired = append(expired, record)
		}
	}

	return expired
}
