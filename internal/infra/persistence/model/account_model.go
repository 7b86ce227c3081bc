package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
