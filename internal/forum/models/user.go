package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email     *string   `gorm:"uniqueIndex;size:120" json:"email"` // optional, unique when present
	Password  string    `gorm:"size:200;not null" json:"-"`        // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	// No DeletedAt: accounts are never removed by any exposed route
}
