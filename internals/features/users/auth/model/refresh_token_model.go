package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
	Token     string     `gorm:"type:text;not null;column:token" json:"-"` // hash, bukan token mentah
	ExpiresAt time.Time  `gorm:"not null;column:expires_at" json:"expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`
	UserAgent *string    `gorm:"column:user_agent" json:"user_agent,omitempty"`
	IP        *string    `gorm:"column:ip" json:"ip,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
