package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type RefreshToken struct {
	ID        string    `gorm:"primaryKey;type:char(67)" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshToken builds an unsaved refresh token with a random opaque id.
func NewRefreshToken(userID uint, ttl time.Duration) (*RefreshToken, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &RefreshToken{
		ID:        fmt.Sprintf("rt_%s", hex.EncodeToString(b)),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
