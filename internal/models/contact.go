package models

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:15;not null" json:"phone"`
	Message   string    `gorm:"not null" json:"message"`
}
