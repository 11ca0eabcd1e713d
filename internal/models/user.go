package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(120);not null" json:"name"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone"`
	College      string    `gorm:"type:varchar(120);not null" json:"college"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	TeamID       *uint     `gorm:"index" json:"team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Submissions []Submission `gorm:"foreignKey:UserID" json:"-"`
	Feedbacks   []Feedback   `gorm:"foreignKey:UserID" json:"-"`
}

// SetPassword stores a bcrypt hash of the plaintext. The plaintext itself is
// never persisted or logged.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the plaintext against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
