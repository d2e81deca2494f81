package policy

import (
	"time"

	"lastseen/internal/domain/entity"
)

// PublicShare is what an anonymous share-link holder gets to see.
type PublicShare struct {
	Owner   *entity.User
	Record  *entity.LocationRecord // Nil when the owner is not currently sharing.
	Sharing bool
}

// ResolvePublic picks the owner's latest non-expired record for the share-link
// view. The token is the authorization, so audience scope is ignored.
func ResolvePublic(owner *entity.User, records []*entity.LocationRecord, now time.Time) *PublicShare {
	share := &PublicShare{Owner: owner}
	if owner == nil {
		return share
	}

	var own []*entity.LocationRecord
	for _, record := range records {
		if record != nil && record.OwnerID == owner.ID {
			own = append(own, record)
		}
	}

	latest, ok := entity.MergeLatest(own)[owner.ID]
	if !ok || latest.IsExpired(now) {
		return share
	}
	share.Record = latest.Clone()
	share.Sharing = true

	return share
}
