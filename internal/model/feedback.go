package model

import "time"

// Feedback is a user's opinion on an emoji interpretation.
// Reviewed is terminal: once set, the record can no longer be deleted.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	EmojiID   uint      `json:"emoji_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Reviewed  bool      `json:"reviewed" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Relations
	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Emoji Emoji `json:"-" gorm:"foreignKey:EmojiID"`
}
