package db

import (
	"log"
	"os"

	"matchday/internal/forum/models"

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
		// Fallback for local dev if not set
		DB, err = gorm.Open(sqlite.Open("forum.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	SeedTeams(DB)
}

// Migrate creates or updates the forum schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Post{},
		&models.Comment{},
		&models.PostVote{},
		&models.CommentVote{},
	)
}

// SeedTeams inserts the initial subforums. Safe to run on every startup:
// it checks for existing rows first.
func SeedTeams(db *gorm.DB) {
	var count int64
	db.Model(&models.Team{}).Count(&count)
	if count > 0 {
		log.Println("Teams already seeded, skipping")
		return
	}

	teams := []models.Team{
		{Name: "Arsenal", Description: "Gunners talk: matches, transfers, tactics"},
		{Name: "Liverpool", Description: "All things Anfield"},
		{Name: "Manchester City", Description: "Discussion for City supporters"},
		{Name: "General", Description: "Football chat that fits nowhere else"},
	}

	for _, team := range teams {
		if err := db.Create(&team).Error; err != nil {
			log.Printf("Failed to create team %s: %v", team.Name, err)
		}
	}
	log.Println("Initial teams created successfully")
}
