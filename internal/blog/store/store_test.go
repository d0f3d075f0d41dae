package store

import (
	"errors"
	"testing"
	"time"

	blogdb "matchday/internal/blog/db"
	"matchday/internal/blog/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := blogdb.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)

	blogdb.Seed(db)

	var users, posts, comments int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	if users != 2 || posts != 2 || comments != 2 {
		t.Fatalf("after seed: %d users, %d posts, %d comments; want 2/2/2", users, posts, comments)
	}

	// Re-running must be a no-op
	blogdb.Seed(db)

	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	if users != 2 || posts != 2 || comments != 2 {
		t.Errorf("after reseed: %d users, %d posts, %d comments; want 2/2/2", users, posts, comments)
	}
}

func TestRecordRead_Increments(t *testing.T) {
	db := newTestDB(t)
	blogdb.Seed(db)

	post, err := GetPost(db, 1)
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if post.Reads != 0 {
		t.Fatalf("fresh post reads = %d, want 0", post.Reads)
	}

	// Two serialized page views move the counter 0 -> 2
	RecordRead(db, post)
	post, _ = GetPost(db, 1)
	RecordRead(db, post)

	post, _ = GetPost(db, 1)
	if post.Reads != 2 {
		t.Errorf("reads after two views = %d, want 2", post.Reads)
	}
}

func TestListPosts_NewestFirst(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		post := models.Post{Title: title, Body: "b", Posted: base.Add(time.Duration(i) * time.Hour)}
		if err := db.Create(&post).Error; err != nil {
			t.Fatalf("failed to insert post: %v", err)
		}
	}

	posts, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("ListPosts() returned %d posts, want 3", len(posts))
	}
	if posts[0].Title != "newest" || posts[2].Title != "oldest" {
		t.Errorf("posts not newest-first: got %s ... %s", posts[0].Title, posts[2].Title)
	}
}

func TestListComments_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	post := models.Post{Title: "t", Body: "b", Posted: time.Now()}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to insert post: %v", err)
	}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		comment := models.Comment{
			PostID:    post.ID,
			Content:   content,
			Author:    "anon",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&comment).Error; err != nil {
			t.Fatalf("failed to insert comment: %v", err)
		}
	}

	comments, err := ListComments(db, post.ID)
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	// The blog shows newest comments on top, unlike the forum
	if comments[0].Content != "third" || comments[2].Content != "first" {
		t.Errorf("comments not newest-first: got %s ... %s", comments[0].Content, comments[2].Content)
	}
}

func TestCreateComment(t *testing.T) {
	db := newTestDB(t)
	post := models.Post{Title: "t", Body: "b", Posted: time.Now()}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to insert post: %v", err)
	}

	comment, err := CreateComment(db, post.ID, "John", "Great post!")
	if err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}
	if comment.Author != "John" {
		t.Errorf("comment author = %s, want John", comment.Author)
	}
}

func TestCreateComment_MissingPost(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateComment(db, 999, "John", "hello"); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateComment() error = %v, want ErrNotFound", err)
	}

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	if count != 0 {
		t.Errorf("comment count = %d, want 0", count)
	}
}

func TestCreateComment_Validation(t *testing.T) {
	db := newTestDB(t)
	post := models.Post{Title: "t", Body: "b", Posted: time.Now()}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to insert post: %v", err)
	}

	if _, err := CreateComment(db, post.ID, "", "hello"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty author: error = %v, want ErrValidation", err)
	}
	if _, err := CreateComment(db, post.ID, "John", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty content: error = %v, want ErrValidation", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetUser(db, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser() error = %v, want ErrNotFound", err)
	}
}
