package models

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// InviteCodeLength is the length of a team invite code.
const InviteCodeLength = 6

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	InviteCode  string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"invite_code"`
	CreatedByID *uint     `json:"created_by_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Members []User `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// NewInviteCode returns a fresh 6-character uppercase-alphanumeric code.
// Uniqueness is enforced by the invite_code index; callers retry on conflict.
func NewInviteCode() (string, error) {
	return gonanoid.Generate(inviteCodeAlphabet, InviteCodeLength)
}
