package models

import (
	"time"
)

// PostVote records a single +1 per (user, post) pair. The unique index
// backs up the query-before-insert check in the store.
type PostVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_vote" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_vote" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	Value     int       `gorm:"not null;default:1" json:"value"` // always +1, no downvotes
	CreatedAt time.Time `json:"created_at"`
}

// CommentVote records a single +1 per (user, comment) pair.
type CommentVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_vote" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_vote" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comment"`
	Value     int       `gorm:"not null;default:1" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
