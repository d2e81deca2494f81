// Package model holds the GORM row structs of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	DisplayName      string    `gorm:"type:varchar(100)"`
	AvatarRef        string    `gorm:"type:varchar(255)"`
	PublicShareToken *string   `gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	Connections []UserConnectionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserConnectionModel mirrors the 'user_connections' table.
// A row (user_id, target_id) lets user_id see target_id; the grant is one-directional.
type UserConnectionModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TargetID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserConnectionModel) TableName() string {
	return "user_connections"
}
