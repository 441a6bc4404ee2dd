// Package model holds the GORM models of the relational user directory.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoogleID      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username      string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PreferredName string    `gorm:"type:varchar(255);not null;default:''"`
	PhoneNumber   string    `gorm:"type:varchar(32);not null;default:''"`
	Role          string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
