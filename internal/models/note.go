package models

import "time"

// Note is a user-owned protected resource. Every note has exactly one owner;
// handlers scope every query by owner so a caller can never observe or
// mutate another caller's note.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
}
