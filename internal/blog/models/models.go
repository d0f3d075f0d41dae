// Package models holds the blog schema. The blog has no authentication:
// users are seeded rows shown on profile pages, and comments carry a
// free-text author name.
package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Age      int    `json:"age"`
}

type Post struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index" json:"user_id"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Posted time.Time `gorm:"not null" json:"posted"`
	Title  string    `gorm:"size:120;not null" json:"title"`
	Body   string    `gorm:"size:500;not null" json:"body"`
	Reads  int       `gorm:"default:0" json:"reads"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	Content   string    `gorm:"size:300;not null" json:"content"`
	Author    string    `gorm:"size:80;not null" json:"author"` // free text, no account needed
	CreatedAt time.Time `json:"created_at"`
}
