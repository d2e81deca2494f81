package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table.
// Several rows per owner may exist; readers treat the latest updated_at as canonical.
type LocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_locations_owner_updated,priority:1"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Note       string    `gorm:"type:varchar(140);not null;default:''"`
	PlaceLabel string    `gorm:"type:varchar(255);not null;default:''"`
	Visibility string    `gorm:"type:varchar(32);not null"`
	Vague      bool      `gorm:"not null;default:false"`
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time `gorm:"index;index:idx_locations_owner_updated,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
