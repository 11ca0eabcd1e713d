package models

import "time"

// Submission holds a user's project entry. The unique index on UserID is what
// enforces the one-submission-per-user policy; writes go through an upsert.
type Submission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	RepoLink    string    `gorm:"type:varchar(255);not null" json:"repo_link"`
	VideoLink   string    `gorm:"type:varchar(255);not null" json:"video_link"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
