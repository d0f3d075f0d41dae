package store

import (
	"errors"

	"matchday/internal/forum/models"

	"gorm.io/gorm"
)

// UpvotePost records a +1 for (user, post). The post must exist and belong
// to the team named in the route. A second vote by the same user returns
// ErrAlreadyVoted and changes nothing.
func UpvotePost(db *gorm.DB, userID, teamID, postID uint) (*models.PostVote, error) {
	post, err := GetPost(db, postID)
	if err != nil {
		return nil, err
	}
	if post.TeamID != teamID {
		return nil, ErrNotFound
	}

	var vote *models.PostVote
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.PostVote
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error; err == nil {
			return ErrAlreadyVoted
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		vote = &models.PostVote{
			UserID: userID,
			PostID: postID,
			Value:  1,
		}
		return tx.Create(vote).Error
	})
	if err != nil {
		return nil, err
	}
	return vote, nil
}

// UpvoteComment records a +1 for (user, comment). The comment must exist
// and belong to the post named in the route.
func UpvoteComment(db *gorm.DB, userID, postID, commentID uint) (*models.CommentVote, error) {
	var comment models.Comment
	if err := db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if comment.PostID != postID {
		return nil, ErrNotFound
	}

	var vote *models.CommentVote
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentVote
		if err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			First(&existing).Error; err == nil {
			return ErrAlreadyVoted
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		vote = &models.CommentVote{
			UserID:    userID,
			CommentID: commentID,
			Value:     1,
		}
		return tx.Create(vote).Error
	})
	if err != nil {
		return nil, err
	}
	return vote, nil
}

// PostScore sums the vote values for one post. Always non-negative since
// only +1 votes are ever inserted.
func PostScore(db *gorm.DB, postID uint) int {
	var score int
	db.Model(&models.PostVote{}).
		Select("COALESCE(SUM(value), 0)").
		Where("post_id = ?", postID).
		Scan(&score)
	return score
}

// CommentScore sums the vote values for one comment.
func CommentScore(db *gorm.DB, commentID uint) int {
	var score int
	db.Model(&models.CommentVote{}).
		Select("COALESCE(SUM(value), 0)").
		Where("comment_id = ?", commentID).
		Scan(&score)
	return score
}
