package models

import "time"

// LiveUpdate and Notification are admin-managed append/delete lists shown
// newest-first on the dashboards.

type LiveUpdate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:varchar(255);not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:varchar(255);not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
