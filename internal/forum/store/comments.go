package store

import (
	"matchday/internal/forum/models"

	"gorm.io/gorm"
)

// ListComments returns a post's comments oldest first, with vote scores.
func ListComments(db *gorm.DB, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	if len(comments) > 0 {
		commentIDs := make([]uint, len(comments))
		for i, com := range comments {
			commentIDs[i] = com.ID
		}

		type scoreResult struct {
			CommentID uint
			Score     int
		}
		var results []scoreResult
		db.Model(&models.CommentVote{}).
			Select("comment_id, COALESCE(SUM(value), 0) as score").
			Where("comment_id IN ?", commentIDs).
			Group("comment_id").
			Scan(&results)

		scoreMap := make(map[uint]int)
		for _, r := range results {
			scoreMap[r.CommentID] = r.Score
		}
		for i := range comments {
			comments[i].VoteScore = scoreMap[comments[i].ID]
		}
	}

	return comments, nil
}

// CreateComment attaches a comment to an existing post. Content is
// required; a missing post is ErrNotFound and nothing is persisted.
func CreateComment(db *gorm.DB, userID, postID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrValidation
	}
	if _, err := GetPost(db, postID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
