package store

import (
	"errors"

	"matchday/internal/forum/models"

	"gorm.io/gorm"
)

// fillCommentCounts batch-fills CommentCount for a page of posts.
func fillCommentCounts(db *gorm.DB, posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

// fillPostScores batch-fills VoteScore (sum of vote values) for posts.
func fillPostScores(db *gorm.DB, posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type scoreResult struct {
		PostID uint
		Score  int
	}
	var results []scoreResult
	db.Model(&models.PostVote{}).
		Select("post_id, COALESCE(SUM(value), 0) as score").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	scoreMap := make(map[uint]int)
	for _, r := range results {
		scoreMap[r.PostID] = r.Score
	}

	for i := range posts {
		posts[i].VoteScore = scoreMap[posts[i].ID]
	}
}

// ListPosts returns every post, newest first.
func ListPosts(db *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	if err := db.Preload("User").Preload("Team").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	fillCommentCounts(db, posts)
	fillPostScores(db, posts)
	return posts, nil
}

// ListTeamPosts returns the posts of one team, newest first.
// Returns ErrNotFound when the team does not exist.
func ListTeamPosts(db *gorm.DB, teamID uint) ([]models.Post, error) {
	if _, err := GetTeam(db, teamID); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := db.Preload("User").
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	fillCommentCounts(db, posts)
	fillPostScores(db, posts)
	return posts, nil
}

func GetPost(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	if err := db.Preload("User").Preload("Team").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CreatePost inserts a post under a team. Title and content are required;
// the team must exist.
func CreatePost(db *gorm.DB, userID, teamID uint, title, content string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, ErrValidation
	}
	if _, err := GetTeam(db, teamID); err != nil {
		return nil, err
	}

	post := models.Post{
		UserID:  userID,
		TeamID:  teamID,
		Title:   title,
		Content: content,
	}
	if err := db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
