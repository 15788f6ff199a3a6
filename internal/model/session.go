package model

import "time"

// Session is a stored login session. Nothing in this service creates or
// destroys sessions; they are only counted against wall-clock expiry, so
// the table is populated by seeds and test fixtures.
type Session struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
}
