// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// MaxMessageLength is the upper bound on message text, in characters.
const MaxMessageLength = 140

// Message represents a short post ("warble") authored by a user.
// Messages are immutable after creation; only deletion is allowed.
type Message struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"type:varchar(140);not null" json:"text"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this message (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}
