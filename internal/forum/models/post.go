package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	TeamID    uint      `gorm:"not null;index" json:"team_id"`
	Team      Team      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"team"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Filled by queries, not stored
	CommentCount int `gorm:"-" json:"comment_count"`
	VoteScore    int `gorm:"-" json:"vote_score"`
}
