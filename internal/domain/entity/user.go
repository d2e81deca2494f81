// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const unknownUserLabel = "Unknown User"

// User is a member of the circle.
type User struct {
	ID               uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Email            string      // Login e-mail, also used to find people when connecting.
	DisplayName      string      // The user's display name.
	AvatarRef        string      // Opaque avatar file reference, empty when unset.
	Connections      []uuid.UUID // Users this user has granted themselves visibility of.
	PublicShareToken *string     // Anonymous read grant for the public share link; nil when disabled.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasConnection reports whether the user lists other as a connection.
func (u *User) HasConnection(other uuid.UUID) bool {
	if u == nil {
		return false
	}

	return slices.Contains(u.Connections, other)
}

// SharesPublicly reports whether a public share token is currently set.
func (u *User) SharesPublicly() bool {
	return u != nil && u.PublicShareToken != nil && *u.PublicShareToken != ""
}

// DisplayLabel returns the name shown on markers: display name, else the
// e-mail local part, else a generic label.
func (u *User) DisplayLabel() string {
	if u == nil {
		return unknownUserLabel
	}
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(u.Email, "@"); ok && local != "" {
		return local
	}

	return unknownUserLabel
}

// PublicLabel is the name shown to anyone but the user: the display name or a
// generic label, never derived from the e-mail.
func (u *User) PublicLabel() string {
	if u == nil {
		return unknownUserLabel
	}
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}

	return unknownUserLabel
}
