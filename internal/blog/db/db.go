package db

import (
	"log"
	"os"
	"time"

	"matchday/internal/blog/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")

	var err error
	if dsn != "" {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		// The blog has always run happily on an embedded database
		DB, err = gorm.Open(sqlite.Open("blog.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	Seed(DB)
}

// Migrate creates or updates the blog schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
}

// Seed inserts the starter users, posts and comments. Each row is guarded
// by a lookup on a unique field, so running it again is a no-op.
func Seed(db *gorm.DB) {
	var user models.User
	if err := db.Where("email = ?", "admin@example.com").First(&user).Error; err != nil {
		db.Create(&models.User{Username: "admin", Email: "admin@example.com", Age: 42})
	}
	if err := db.Where("email = ?", "user@example.com").First(&user).Error; err != nil {
		db.Create(&models.User{Username: "user", Email: "user@example.com", Age: 20})
	}

	var post models.Post
	if err := db.Where("title = ?", "First Post").First(&post).Error; err != nil {
		db.Create(&models.Post{UserID: 1, Posted: time.Now().UTC(), Title: "First Post", Body: "Welcome to the blog!"})
	}
	if err := db.Where("title = ?", "Another Day").First(&post).Error; err != nil {
		db.Create(&models.Post{UserID: 1, Posted: time.Now().UTC(), Title: "Another Day", Body: "This is the second blog post."})
	}

	var comment models.Comment
	if err := db.Where("content = ?", "Great post!").First(&comment).Error; err != nil {
		db.Create(&models.Comment{PostID: 1, Content: "Great post!", Author: "John"})
	}
	if err := db.Where("content = ?", "Very informative.").First(&comment).Error; err != nil {
		db.Create(&models.Comment{PostID: 1, Content: "Very informative.", Author: "Jane"})
	}

	log.Println("Seed data checked")
}
