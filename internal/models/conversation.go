package models

import (
	"time"
)

// Conversation is one logged exchange: the user's message and the response
// the bot gave it. Records are append-only: the store assigns ID and
// CreatedAt exactly once and nothing updates or deletes a row afterwards.
type Conversation struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserMessage string    `gorm:"not null" json:"user_message"`
	BotResponse string    `gorm:"not null" json:"bot_response"`
	SessionID   string    `gorm:"index" json:"session_id,omitempty"`
	MatchType   string    `json:"match_type"`
	Confidence  float64   `json:"confidence"`
	CreatedAt   time.Time `gorm:"index" json:"timestamp"`
}
