package model

// Emoji is a write-once memo of a remote lookup, keyed by character.
// Records are created lazily on the first successful provider call and
// never updated or deleted afterwards.
type Emoji struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Character string `json:"character" gorm:"uniqueIndex;size:32;not null"`
	Meaning   string `json:"meaning" gorm:"type:text;not null"`
}
