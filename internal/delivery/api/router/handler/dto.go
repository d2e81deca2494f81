package handler

import (
	"time"

	"lastseen/internal/domain/entity"
	"lastseen/internal/domain/policy"

	"github.com/google/uuid"
)

// LocationResponse is the wire form of a location record.
// IDs are omitted on circle entries whose owner is withheld.
type LocationResponse struct {
	ID         *uuid.UUID            `json:"id,omitempty"`
	OwnerID    *uuid.UUID            `json:"owner_id,omitempty"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	Note       string                `json:"note,omitempty"`
	PlaceLabel string                `json:"place_label,omitempty"`
	Visibility entity.VisibilityMode `json:"visibility_mode"`
	Vague      bool                  `json:"vague"`
	ExpiresAt  *time.Time            `json:"expires_at,omitempty"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func toLocationResponse(r *entity.LocationRecord) *LocationResponse {
	if r == nil {
		return nil
	}

	id, ownerID := r.ID, r.OwnerID

	return &LocationResponse{
		ID:         &id,
		OwnerID:    &ownerID,
		Latitude:   r.Coordinates.Lat,
		Longitude:  r.Coordinates.Lng,
		Note:       r.Note,
		PlaceLabel: r.PlaceLabel,
		Visibility: r.Visibility,
		Vague:      r.IsObfuscated(),
		ExpiresAt:  r.ExpiresAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// VisibleLocationResponse is one entry of the circle. Owner is omitted when withheld.
type VisibleLocationResponse struct {
	Key      string            `json:"key"`
	Location *LocationResponse `json:"location"`
	Label    string            `json:"label"`
	Owner    *MemberResponse   `json:"owner,omitempty"`
	IsSelf   bool              `json:"is_self"`
	IsStale  bool              `json:"is_stale"`
}

// CircleViewResponse is the wire form of a circle view.
type CircleViewResponse struct {
	Locations []VisibleLocationResponse `json:"locations"`
	Self      *LocationResponse         `json:"self,omitempty"`
	SelfStale bool                      `json:"self_stale"`
	SyncedAt  *time.Time                `json:"synced_at,omitempty"`
	SyncError string                    `json:"sync_error,omitempty"`
}

func toCircleViewResponse(v *entity.CircleView) *CircleViewResponse {
	resp := &CircleViewResponse{Locations: []VisibleLocationResponse{}}
	if v == nil {
		return resp
	}

	for _, l := range v.Locations {
		location := toLocationResponse(l.Record)
		if l.IdentityWithheld() {
			location.ID, location.OwnerID = nil, nil
		}
		resp.Locations = append(resp.Locations, VisibleLocationResponse{
			Key:      l.MarkerKey(),
			Location: location,
			Label:    l.OwnerLabel(),
			Owner:    toMemberResponse(l.Owner),
			IsSelf:   l.IsSelf,
			IsStale:  l.IsStale,
		})
	}
	resp.Self = toLocationResponse(v.Self)
	resp.SelfStale = v.SelfStale
	if !v.SyncedAt.IsZero() {
		syncedAt := v.SyncedAt
		resp.SyncedAt = &syncedAt
	}
	resp.SyncError = v.SyncError

	return resp
}

// MemberResponse is what one member may see of another: never the e-mail,
// connection list or share token.
type MemberResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarRef   string    `json:"avatar_ref,omitempty"`
}

func toMemberResponse(u *entity.User) *MemberResponse {
	if u == nil {
		return nil
	}

	return &MemberResponse{
		ID:          u.ID,
		DisplayName: u.PublicLabel(),
		AvatarRef:   u.AvatarRef,
	}
}

// ConnectionResponse is a listed connection. The e-mail is included because
// the caller already knew it when adding the connection.
type ConnectionResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarRef   string    `json:"avatar_ref,omitempty"`
}

func toConnectionResponse(u *entity.User) ConnectionResponse {
	return ConnectionResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayLabel(),
		AvatarRef:   u.AvatarRef,
	}
}

// PublicOwnerResponse exposes only the name and avatar of a share-link owner.
type PublicOwnerResponse struct {
	DisplayName string `json:"display_name"`
	AvatarRef   string `json:"avatar_ref,omitempty"`
}

// PublicLocationResponse is the share-link location, without record or owner IDs.
type PublicLocationResponse struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Note       string     `json:"note,omitempty"`
	PlaceLabel string     `json:"place_label,omitempty"`
	Vague      bool       `json:"vague"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// PublicShareResponse is the anonymous share-link payload.
type PublicShareResponse struct {
	Owner    PublicOwnerResponse     `json:"owner"`
	Sharing  bool                    `json:"sharing"`
	Location *PublicLocationResponse `json:"location,omitempty"`
}

func toPublicShareResponse(s *policy.PublicShare) *PublicShareResponse {
	resp := &PublicShareResponse{
		Owner: PublicOwnerResponse{
			DisplayName: s.Owner.PublicLabel(),
			AvatarRef:   s.Owner.AvatarRef,
		},
		Sharing: s.Sharing,
	}
	if s.Sharing && s.Record != nil {
		resp.Location = &PublicLocationResponse{
			Latitude:   s.Record.Coordinates.Lat,
			Longitude:  s.Record.Coordinates.Lng,
			Note:       s.Record.Note,
			PlaceLabel: s.Record.PlaceLabel,
			Vague:      s.Record.IsObfuscated(),
			ExpiresAt:  s.Record.ExpiresAt,
			UpdatedAt:  s.Record.UpdatedAt,
		}
	}

	return resp
}
