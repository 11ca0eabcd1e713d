package models

import "time"

// Feedback is append-only. Rating is stored as free text, matching whatever
// the form sends; no bounded scale is imposed.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Rating    string    `gorm:"type:varchar(10);not null" json:"rating"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
